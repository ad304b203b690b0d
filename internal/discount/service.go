package discount

import (
	"context"
	"net/http"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coffai/pos/internal/common"
)

var maxPercent = decimal.NewFromInt(100)

// CreateInput carries the payload for defining a discount rule.
type CreateInput struct {
	Name            string          `json:"name" validate:"required,min=1,max=120"`
	MinQuantity     int             `json:"minQuantity" validate:"min=1"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	IsActive        *bool           `json:"isActive"`
}

// UpdateInput carries a partial rule update. Nil fields are left unchanged.
type UpdateInput struct {
	Name            *string          `json:"name"`
	MinQuantity     *int             `json:"minQuantity"`
	DiscountPercent *decimal.Decimal `json:"discountPercent"`
	IsActive        *bool            `json:"isActive"`
}

// ServiceConfig configures the discount service dependencies.
type ServiceConfig struct {
	Store    *Store
	Validate *validator.Validate
	NewID    func() uuid.UUID
}

// Service implements rule management. Invalid definitions are rejected here
// so the resolver can assume every stored rule is well-formed.
type Service struct {
	store    *Store
	validate *validator.Validate
	newID    func() uuid.UUID
}

// NewService constructs a Service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Store == nil {
		return nil, common.NewAppError("INTERNAL", "discount store is required", http.StatusInternalServerError, nil)
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

// List returns every rule, active or not, in insertion order.
func (s *Service) List(_ context.Context) []Rule {
	return s.store.List()
}

// Create validates and stores a new rule. Rules default to active.
func (s *Service) Create(_ context.Context, input CreateInput) (Rule, error) {
	if err := s.validate.Struct(input); err != nil {
		return Rule{}, common.NewAppError("VALIDATION", "invalid discount rule payload", http.StatusBadRequest, err)
	}
	if err := validatePercent(input.DiscountPercent); err != nil {
		return Rule{}, err
	}
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	rule := Rule{
		ID:              s.newID(),
		Name:            input.Name,
		MinQuantity:     input.MinQuantity,
		DiscountPercent: input.DiscountPercent,
		IsActive:        active,
	}
	s.store.Put(rule)
	return rule, nil
}

// Update applies a partial edit, including the activation toggle.
func (s *Service) Update(_ context.Context, id uuid.UUID, input UpdateInput) (Rule, error) {
	rule, ok := s.store.Get(id)
	if !ok {
		return Rule{}, common.NewAppError("NOT_FOUND", "discount rule not found", http.StatusNotFound, nil)
	}
	if input.Name != nil {
		if *input.Name == "" {
			return Rule{}, common.NewAppError("VALIDATION", "name must not be empty", http.StatusBadRequest, nil)
		}
		rule.Name = *input.Name
	}
	if input.MinQuantity != nil {
		if *input.MinQuantity < 1 {
			return Rule{}, common.NewAppError("VALIDATION", "minQuantity must be at least 1", http.StatusBadRequest, nil)
		}
		rule.MinQuantity = *input.MinQuantity
	}
	if input.DiscountPercent != nil {
		if err := validatePercent(*input.DiscountPercent); err != nil {
			return Rule{}, err
		}
		rule.DiscountPercent = *input.DiscountPercent
	}
	if input.IsActive != nil {
		rule.IsActive = *input.IsActive
	}
	s.store.Put(rule)
	return rule, nil
}

// Delete removes a rule.
func (s *Service) Delete(_ context.Context, id uuid.UUID) error {
	if !s.store.Delete(id) {
		return common.NewAppError("NOT_FOUND", "discount rule not found", http.StatusNotFound, nil)
	}
	return nil
}

func validatePercent(percent decimal.Decimal) error {
	if percent.IsNegative() || percent.GreaterThan(maxPercent) {
		return common.NewAppError("VALIDATION", "discountPercent must be between 0 and 100", http.StatusBadRequest, nil)
	}
	return nil
}
