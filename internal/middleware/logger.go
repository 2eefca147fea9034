package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Logger registra cada requisição com um request-id próprio, método, rota,
// status e duração.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inicio := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		gravador := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(gravador, r)

		logrus.WithFields(logrus.Fields{
			"requestId": requestID,
			"metodo":    r.Method,
			"rota":      r.URL.Path,
			"status":    gravador.status,
			"duracao":   time.Since(inicio).String(),
		}).Info("requisição atendida")
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
