package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"farmacia-api/internal/apperror"

	"go.uber.org/zap"
)

// ErrorEnvelope is the uniform JSON shape of every error response. The stack
// field is only populated in development mode.
type ErrorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// RespondWithJSON sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// RespondWithError renders the error envelope for an explicit status code.
func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithAppError(w, apperror.New(message, statusCode))
}

// RespondWithAppError classifies err and renders the {status, message}
// envelope.
func RespondWithAppError(w http.ResponseWriter, err error) {
	appErr := apperror.From(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode)
	json.NewEncoder(w).Encode(ErrorEnvelope{
		Status:  appErr.Status(),
		Message: appErr.Message,
	})
}

// ErrorHandlingMiddleware catches panics and converts them to 500 envelopes.
// In development the response carries the stack trace.
func ErrorHandlingMiddleware(logger *zap.Logger, isDevelopment bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Panic recovered",
						zap.Any("error", rec),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
					)

					envelope := ErrorEnvelope{
						Status:  "error",
						Message: "Error interno del servidor",
					}
					if isDevelopment {
						envelope.Stack = string(debug.Stack())
					}

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(envelope)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// NotFoundHandler renders the 404 envelope for unmatched routes.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondWithError(w, http.StatusNotFound,
			fmt.Sprintf("No se puede encontrar %s en este servidor", r.URL.Path))
	}
}
