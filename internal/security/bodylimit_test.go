package security_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coffai/pos/internal/security"
)

const itemPayload = `{"coffeeId":"9b0a","quantity":2}`

func postItem(handler http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/carts/9b0a/items", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestBodyLimitPassesSmallPayloadThrough(t *testing.T) {
	var seen string
	handler := security.BodyLimit{Max: 1 << 10}.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		seen = string(data)
		w.WriteHeader(http.StatusCreated)
	}))

	rr := postItem(handler, itemPayload)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	if seen != itemPayload {
		t.Fatalf("handler saw %q, want %q", seen, itemPayload)
	}
}

func TestBodyLimitRejectsOversizedPayload(t *testing.T) {
	handler := security.BodyLimit{Max: 16}.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for an oversized body")
	}))

	rr := postItem(handler, itemPayload)
	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rr.Code)
	}
	if body := rr.Body.String(); !strings.Contains(body, "PAYLOAD_TOO_LARGE") {
		t.Fatalf("expected error envelope, got %q", body)
	}
}

func TestBodyLimitRejectsDeclaredOversizedLength(t *testing.T) {
	handler := security.BodyLimit{Max: 16}.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run when Content-Length exceeds the cap")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/carts/9b0a/items", strings.NewReader("{}"))
	req.ContentLength = 1 << 20
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 for declared oversized body, got %d", rr.Code)
	}
}
