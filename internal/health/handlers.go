package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

var ready atomic.Bool

// SetReady toggles the readiness gate. Shutdown flips it off so load
// balancers drain the instance before the listener closes.
func SetReady(value bool) {
	ready.Store(value)
}

// Checker represents dependencies that can be probed for readiness.
type Checker interface {
	PingCatalog(ctx context.Context, timeout time.Duration) error
	PingSessions(ctx context.Context, timeout time.Duration) error
}

// Handler exposes HTTP handlers for health endpoints.
type Handler struct {
	Checker        Checker
	CatalogTimeout time.Duration
	SessionTimeout time.Duration
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness based on the gate and dependency probes.
func (h Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !ready.Load() {
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	}
	if h.Checker == nil {
		http.Error(w, "dependencies unavailable", http.StatusServiceUnavailable)
		return
	}
	ctx := r.Context()
	catalogStatus := "ok"
	if err := h.Checker.PingCatalog(ctx, h.catalogTimeout()); err != nil {
		catalogStatus = err.Error()
	}
	sessionStatus := "ok"
	if err := h.Checker.PingSessions(ctx, h.sessionTimeout()); err != nil {
		sessionStatus = err.Error()
	}
	status := map[string]string{
		"catalog":  catalogStatus,
		"sessions": sessionStatus,
	}
	w.Header().Set("Content-Type", "application/json")
	if catalogStatus != "ok" || sessionStatus != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(status)
}

func (h Handler) catalogTimeout() time.Duration {
	if h.CatalogTimeout <= 0 {
		return 200 * time.Millisecond
	}
	return h.CatalogTimeout
}

func (h Handler) sessionTimeout() time.Duration {
	if h.SessionTimeout <= 0 {
		return 200 * time.Millisecond
	}
	return h.SessionTimeout
}
