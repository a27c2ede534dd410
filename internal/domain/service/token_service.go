package service

import (
	"time"

	"marketplace/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the session token.
type Claims struct {
	BusinessID   uuid.UUID           `json:"-"`
	BusinessType entity.BusinessType `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed session token for a business.
	GenerateToken(businessID uuid.UUID, businessType entity.BusinessType) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
