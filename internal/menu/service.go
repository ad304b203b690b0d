package menu

import (
	"context"
	"net/http"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coffai/pos/internal/common"
)

// CreateInput carries the payload for adding a menu option.
type CreateInput struct {
	Name  string          `json:"name" validate:"required,min=1,max=120"`
	Price decimal.Decimal `json:"price"`
}

// ServiceConfig configures the menu service dependencies.
type ServiceConfig struct {
	Store    *Store
	Validate *validator.Validate
	NewID    func() uuid.UUID
}

// Service implements catalog management over the in-memory store.
type Service struct {
	store    *Store
	validate *validator.Validate
	newID    func() uuid.UUID
}

// NewService constructs a Service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Store == nil {
		return nil, common.NewAppError("INTERNAL", "menu store is required", http.StatusInternalServerError, nil)
	}
	validate := cfg.Validate
	if validate == nil {
		validate = validator.New()
	}
	newID := cfg.NewID
	if newID == nil {
		newID = uuid.New
	}
	return &Service{store: cfg.Store, validate: validate, newID: newID}, nil
}

// List returns all options of the given kind in insertion order.
func (s *Service) List(_ context.Context, kind Kind) ([]Option, error) {
	if !kind.Valid() {
		return nil, common.NewAppError("INVALID_KIND", "unknown menu option kind", http.StatusNotFound, nil)
	}
	return s.store.List(kind), nil
}

// Create validates and stores a new option of the given kind.
func (s *Service) Create(_ context.Context, kind Kind, input CreateInput) (Option, error) {
	if !kind.Valid() {
		return Option{}, common.NewAppError("INVALID_KIND", "unknown menu option kind", http.StatusNotFound, nil)
	}
	if err := s.validate.Struct(input); err != nil {
		return Option{}, common.NewAppError("VALIDATION", "invalid menu option payload", http.StatusBadRequest, err)
	}
	if input.Price.IsNegative() {
		return Option{}, common.NewAppError("VALIDATION", "price must not be negative", http.StatusBadRequest, nil)
	}
	opt := Option{
		ID:    s.newID(),
		Kind:  kind,
		Name:  input.Name,
		Price: input.Price,
	}
	s.store.Put(opt)
	return opt, nil
}

// Delete removes an option. Removal never touches existing line items or
// bills, which capture options by value at selection time.
func (s *Service) Delete(_ context.Context, kind Kind, id uuid.UUID) error {
	if !kind.Valid() {
		return common.NewAppError("INVALID_KIND", "unknown menu option kind", http.StatusNotFound, nil)
	}
	if opt, ok := s.store.Get(id); !ok || opt.Kind != kind {
		return common.NewAppError("NOT_FOUND", "menu option not found", http.StatusNotFound, nil)
	}
	s.store.Delete(id)
	return nil
}
