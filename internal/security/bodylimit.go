package security

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/coffai/pos/internal/common"
)

// BodyLimit caps request payload size. Cart and catalog payloads are small,
// so the cap mostly guards against accidental or hostile large uploads.
type BodyLimit struct {
	Max int64
}

// Middleware rejects payloads over Max with 413 using the service error
// envelope. Accepted bodies are buffered and replayed so later handlers can
// read them as usual.
func (b BodyLimit) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if b.Max <= 0 || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}

		// Trust a declared Content-Length enough to refuse early.
		if r.ContentLength > b.Max {
			common.JSONError(w, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "request body exceeds the allowed size", nil)
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, b.Max+1))
		if err != nil && !errors.Is(err, io.EOF) {
			common.JSONError(w, http.StatusBadRequest, "VALIDATION", "request body could not be read", nil)
			return
		}
		if int64(len(body)) > b.Max {
			common.JSONError(w, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "request body exceeds the allowed size", nil)
			return
		}
		_ = r.Body.Close()

		r.Body = io.NopCloser(bytes.NewReader(body))
		r.ContentLength = int64(len(body))
		next.ServeHTTP(w, r)
	})
}
