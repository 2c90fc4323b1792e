package auth

import (
	"context"
	"time"
)

// JWTService defines operations for issuing and verifying bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT carrying the customer's id and email.
	// Returns the token with its expiry, or an error if signing fails.
	GenerateToken(ctx context.Context, customerID int64, email string) (*IssuedToken, error)

	// ValidateToken checks signature, issuer, audience and expiry of the token
	// and extracts the claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// IssuedToken is a freshly signed token and the moment it stops being accepted.
type IssuedToken struct {
	Value     string
	ExpiresAt time.Time
}

// Claims is the verified identity carried by a token.
type Claims struct {
	// CustomerID identifies the customer the token was issued for.
	CustomerID int64
	// Email is the customer's email at the time of login.
	Email string

	Issuer    string
	Audience  []string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
