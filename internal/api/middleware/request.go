package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FitnessScheduling/pkg/logger"
)

// HeaderRequestID заголовок сквозного ID запроса
const HeaderRequestID = "X-Request-ID"

const requestIDKey contextKey = "requestID"

// GetRequestID достаёт ID запроса из контекста
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RequestLogging присваивает запросу ID (или берёт входящий) и логирует итог обработки.
// ID запроса пишется отдельным полем request_id
func RequestLogging(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(HeaderRequestID, requestID)

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID)))

			duration := time.Since(start)
			reqLog := log.With("request_id", requestID)
			switch {
			case rec.status >= http.StatusInternalServerError:
				reqLog.Error("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, duration)
			case rec.status >= http.StatusBadRequest:
				reqLog.Warn("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, duration)
			default:
				reqLog.Info("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, duration)
			}
		})
	}
}
