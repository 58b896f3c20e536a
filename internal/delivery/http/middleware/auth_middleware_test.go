package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/delivery/http/response"
	"quill/internal/domain/service"
	mockSvc "quill/internal/mocks/service"
)

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockSvc.MockTokenService
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	t.Helper()

	tokenSvc := &mockSvc.MockTokenService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc, logger),
		tokenSvc:   tokenSvc,
	}
}

// runAuthenticated sends a request with the given Authorization header through
// the middleware and reports whether the wrapped handler ran.
func runAuthenticated(fx authMiddlewareFixtures, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/blog", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	handler := fx.middleware.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})

	_ = handler(c)

	return rec, c, nextCalled
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	rec, _, nextCalled := runAuthenticated(fx, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "no Authorization header", body.Message)
	fx.tokenSvc.AssertNotCalled(t, "ValidateToken", mock.Anything)
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	rec, _, nextCalled := runAuthenticated(fx, "Basic dXNlcjpwYXNz")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "invalid Authorization header format", body.Message)
	fx.tokenSvc.AssertNotCalled(t, "ValidateToken", mock.Anything)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	// Runs of whitespace are not collapsed; the header must be exactly
	// "Bearer" and the token separated by a single space.
	for _, header := range []string{"Bearer", "Bearer one two", "Bearer  doublespace", "Bearer\ttabbed"} {
		rec, _, nextCalled := runAuthenticated(fx, header)

		assert.False(t, nextCalled, "header %q must not reach the handler", header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, "invalid Authorization header format", body.Message)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.On("ValidateToken", "garbage-token").Return(nil, assert.AnError)

	rec, _, nextCalled := runAuthenticated(fx, "Bearer garbage-token")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "token is invalid", body.Message)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.On("ValidateToken", "good-token").Return(&service.Claims{
		UserID: 42,
		Email:  "writer@example.com",
	}, nil)

	rec, c, nextCalled := runAuthenticated(fx, "Bearer good-token")

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)

	userID, email, ok := deliverycontext.GetIdentity(c)
	require.True(t, ok)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "writer@example.com", email)
}
