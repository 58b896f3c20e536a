package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/delivery/http/response"
	"quill/internal/domain/service"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer access token and stores the verified
// identity on the request context. Requests fail closed: any gate that does
// not pass ends the request with 401 and the handler never runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "no Authorization header")
		}

		// Exactly two single-space-separated parts; extra or non-space
		// whitespace is malformed.
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Unauthorized(c, "UNAUTHORIZED", "invalid Authorization header format")
		}

		claims, err := m.tokenSvc.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("Token verification failed",
				"error", err.Error(),
				"path", c.Request().URL.Path,
			)

			return response.Unauthorized(c, "UNAUTHORIZED", "token is invalid")
		}

		deliverycontext.SetIdentity(c, claims.UserID, claims.Email)

		return next(c)
	}
}
