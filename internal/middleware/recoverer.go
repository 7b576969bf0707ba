package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/InQaaaaGit/qrcode_api.git/internal/models"
	"go.uber.org/zap"
)

const msgInternalError = "Internal server error"

// Recoverer перехватывает панику обработчика, пишет ее в лог со стеком
// и отвечает 500. Паника означает нарушение внутреннего инварианта,
// а не ошибку во входных данных.
func Recoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				logger.Error("Panic while handling request",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.String("path", r.URL.Path),
					zap.Any("panic", rvr),
					zap.Stack("stack"),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				if err := json.NewEncoder(w).Encode(models.ErrorResponse{Error: msgInternalError}); err != nil {
					logger.Error("Error writing panic response", zap.Error(err))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
