package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type contextKey string

const (
	requestIDKey    = contextKey("requestID")
	requestIDHeader = "X-Request-ID"
)

// NewRouter wires the relay endpoint behind CORS, request IDs and request
// logging.
func NewRouter(h http.Handler) http.Handler {
	router := mux.NewRouter()
	router.Handle("/ai-analysis", h).Methods(http.MethodPost)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodHead, http.MethodPut,
			http.MethodPatch, http.MethodPost, http.MethodDelete,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With", requestIDHeader}),
		handlers.ExposedHeaders([]string{requestIDHeader}),
		handlers.OptionStatusCode(http.StatusNoContent),
	)

	return withRequestID(handlers.CustomLoggingHandler(io.Discard, cors(router), logRequest))
}

// withRequestID tags every request with an ID, reusing the caller's if sent.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}
