// Package context carries request-scoped values (request id, logger,
// authenticated identity) between middleware and the layers below.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyUserID is the key for the authenticated user's id.
	KeyUserID ContextKey = "user_id"

	// KeyUserEmail is the key for the authenticated user's email.
	KeyUserEmail ContextKey = "user_email"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetIdentity stores the verified token claims on the echo context for
// downstream handlers. The identity lives only for this request.
func SetIdentity(c echo.Context, userID int64, email string) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyUserEmail), email)
}

// GetIdentity returns the authenticated identity set by the auth
// middleware. ok is false when the request never passed authentication.
func GetIdentity(c echo.Context) (userID int64, email string, ok bool) {
	userID, ok = c.Get(string(KeyUserID)).(int64)
	if !ok {
		return 0, "", false
	}

	email, _ = c.Get(string(KeyUserEmail)).(string)

	return userID, email, true
}
