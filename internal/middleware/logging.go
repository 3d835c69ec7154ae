package middleware

import (
	"fmt"
	"net/http"

	"chargen-connector/internal/infra/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func LoggingMiddleware(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()

			wrappedWriter := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			log.Info(fmt.Sprintf("Request: %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr), logrus.Fields{"request_id": requestID})

			next.ServeHTTP(wrappedWriter, r)

			log.Info(fmt.Sprintf("Response: %d for %s %s", wrappedWriter.statusCode, r.Method, r.URL.Path), logrus.Fields{"request_id": requestID})
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}
