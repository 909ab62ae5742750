package webhooks

import (
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SignatureHeader is the request header carrying the delivery signature.
const SignatureHeader = "X-Hashnode-Signature"

// maxBodySize caps the accepted delivery body at 1 MiB.
const maxBodySize = 1 << 20

// NewRouter returns an http.Handler that accepts webhook deliveries with
// POST on path, verifies each delivery's signature against secret, validates
// the payload, and dispatches it through handlers.
//
// Responses: 401 for a missing or invalid signature, 400 for a payload that
// fails parsing or validation, 500 when a handler fails, 204 on success.
func NewRouter(path, secret string, handlers HandlerMap) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Post(path, deliveryHandler(secret, handlers))
	return r
}

// deliveryHandler builds the POST handler for one webhook endpoint.
func deliveryHandler(secret string, handlers HandlerMap) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// The signature covers the exact raw bytes; read before any
		// decoding.
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}

		signature := r.Header.Get(SignatureHeader)
		if !VerifySignature(body, signature, secret) {
			http.Error(w, "invalid signature", http.StatusUnauthorized)
			return
		}

		payload, err := ParsePayload(body)
		if err != nil {
			log.Printf("webhooks: rejected delivery: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := Dispatch(r.Context(), payload, handlers); err != nil {
			log.Printf("webhooks: handler for %s failed: %v", payload.Event, err)
			http.Error(w, "handler failed", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
