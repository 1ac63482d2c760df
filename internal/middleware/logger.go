package middleware

import (
	"net/http"
	"time"

	"github.com/trsv-dev/unity-scene-client/internal/logger"
)

// RequestIDHeader Заголовок с идентификатором запроса, который выставляет клиент.
const RequestIDHeader = "X-Request-Id"

// Структура для хранения данных ответа.
type responseData struct {
	status int
	size   int
}

// LoggingResponseWriter Обёртка над http.ResponseWriter, запоминающая статус и размер ответа.
type LoggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

func (l *LoggingResponseWriter) Write(b []byte) (int, error) {
	// если WriteHeader не вызывался - статус 200
	if l.responseData.status == 0 {
		l.responseData.status = http.StatusOK
	}

	size, err := l.ResponseWriter.Write(b)
	l.responseData.size += size

	return size, err
}

func (l *LoggingResponseWriter) WriteHeader(statusCode int) {
	l.ResponseWriter.WriteHeader(statusCode)
	l.responseData.status = statusCode
}

// LogMiddleware Middleware для логирования всех запросов к заглушке движка.
func LogMiddleware(h http.Handler) http.Handler {
	f := func(w http.ResponseWriter, r *http.Request) {
		data := responseData{}

		lw := LoggingResponseWriter{
			ResponseWriter: w,
			responseData:   &data,
		}

		start := time.Now()
		h.ServeHTTP(&lw, r)
		duration := time.Since(start)

		logger.Get().Debug("Got incoming HTTP request",
			logger.String("uri", r.RequestURI),
			logger.String("method", r.Method),
			logger.String("request_id", r.Header.Get(RequestIDHeader)),
			logger.Int("status", data.status),
			logger.Duration("duration", duration),
			logger.Int("size", data.size),
		)
	}

	return http.HandlerFunc(f)
}
