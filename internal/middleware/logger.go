package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// loggingWriter перехватывает статус и размер ответа для логирования
type loggingWriter struct {
	http.ResponseWriter
	status int
	size   int64
}

func (w *loggingWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *loggingWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.size += int64(n)
	return n, err
}

// Logger возвращает middleware, логирующий каждый HTTP запрос:
// метод, путь, статус, длительность и размер ответа
func Logger(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			lw := &loggingWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(lw, r)

			logger.Info("HTTP request",
				zap.String("method", r.Method),
				zap.String("uri", r.RequestURI),
				zap.Int("status", lw.status),
				zap.Duration("duration", time.Since(start)),
				zap.Int64("size", lw.size),
				zap.String("remote_addr", r.RemoteAddr),
			)
		})
	}
}
