package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/Rynhardt5/forest-and-flow/internal/logger"
	"github.com/Rynhardt5/forest-and-flow/internal/reqctx"

	"go.uber.org/zap"
)

func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				fields := []zap.Field{
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
				}
				if rid, ok := reqctx.GetRequestID(r.Context()); ok {
					fields = append(fields, zap.String("request_id", rid))
				}
				logger.Log.Error("panic recovered", fields...)

				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("internal server error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
