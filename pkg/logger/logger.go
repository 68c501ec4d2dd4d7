// Package logger provides the structured, levelled logger for local-connect,
// built on log/slog.
//
// Handlers log through a per-request logger carrying the request_id injected
// by the reqid/Logger middleware:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("cart line added", "product_id", p.ID, "quantity", qty)
//	// → time=... level=INFO msg="cart line added" request_id=a1b2c3d4 ...
//
// When LOG_MONGO_URI is configured, records are additionally shipped to
// MongoDB via MongoHandler (see mongo_handler.go).
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	// Log shipping is best-effort: a failed mongo connection falls back to
	// stdout only and must never take the service down.
	if uri := config.LogMongoURI(); uri != "" {
		if mh, err := NewMongoHandler(uri, config.LogMongoDatabase(), config.LogMongoCollection()); err == nil {
			handler = NewMultiHandler(handler, mh)
		}
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// ctxKey is the unexported key under which the per-request logger is stored.
type ctxKey struct{}

// WithCtx returns the request-scoped *slog.Logger stored in ctx by the Logger
// middleware, or the base logger when ctx carries none.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// Inject stores a request-scoped logger into ctx. Called by the Logger
// middleware — application code normally only reads via WithCtx.
func Inject(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level on the base logger.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level on the base logger.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level on the base logger.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level on the base logger.
func Error(msg string, args ...any) { L.Error(msg, args...) }
