package common

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"
)

// Idem provides an Idempotency-Key middleware backed by an in-process TTL
// map. Checkout retries with the same key are rejected instead of producing a
// second bill.
type Idem struct {
	TTL time.Duration
	Now func() time.Time

	mu   sync.Mutex
	seen map[string]time.Time
}

func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

func (i *Idem) now() time.Time {
	if i.Now != nil {
		return i.Now()
	}
	return time.Now()
}

func (i *Idem) ttl() time.Duration {
	if i.TTL <= 0 {
		return 10 * time.Minute
	}
	return i.TTL
}

// claim records the key, reporting false when it is still live.
func (i *Idem) claim(key string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	now := i.now()
	if i.seen == nil {
		i.seen = make(map[string]time.Time)
	}
	for k, expiry := range i.seen {
		if now.After(expiry) {
			delete(i.seen, k)
		}
	}
	if expiry, ok := i.seen[key]; ok && now.Before(expiry) {
		return false
	}
	i.seen[key] = now.Add(i.ttl())
	return true
}

// Middleware enforces idempotency semantics for write endpoints.
func (i *Idem) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Idempotency-Key")
		if header == "" || i == nil {
			next.ServeHTTP(w, r)
			return
		}
		if !i.claim(hashKey(header)) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, "{\"error\":{\"code\":\"IDEMPOTENT_REPLAY\",\"message\":\"duplicate request\"}}")
			return
		}
		next.ServeHTTP(w, r)
	})
}
