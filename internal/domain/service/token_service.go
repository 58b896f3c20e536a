package service

import "github.com/golang-jwt/jwt/v5"

// Claims defines the identity fields carried by a signed token.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed,
// stateless identity tokens. Tokens are never persisted; the signature
// plus the shared secret is the only proof of validity.
type TokenService interface {
	// IssueToken creates a signed token bound to the given user id and email.
	IssueToken(userID int64, email string) (string, error)

	// ValidateToken checks signature and expiry of a token string and
	// returns the decoded claims.
	ValidateToken(tokenString string) (*Claims, error)
}
