// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterBusinessInput defines the data required to register a hotel or a seller.
// Only the detail group matching BusinessType is persisted.
type RegisterBusinessInput struct {
	BusinessType       entity.BusinessType
	Name               string
	OwnerName          string
	Email              string
	Phone              string
	Password           string
	Address            entity.BusinessAddress
	LicenseDocument    string
	RegistrationNumber string
	Hotel              *entity.HotelDetails
	Seller             *entity.SellerDetails
}

// LoginInput defines the data required for a business to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UploadLicenseInput carries an uploaded license document.
type UploadLicenseInput struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// --- Output DTOs ---

// AuthOutput returns the session token together with the public profile.
type AuthOutput struct {
	Token     string
	ExpiresAt time.Time
	Business  *entity.Business
}

// BusinessUsecase defines the registry operations for hotels and sellers.
type BusinessUsecase interface {
	Register(ctx context.Context, input *RegisterBusinessInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetProfile(ctx context.Context, businessID uuid.UUID) (*entity.Business, error)

	// UpdateVerificationStatus is an admin operation. Verifying requires a stored license document.
	UpdateVerificationStatus(ctx context.Context, businessID uuid.UUID, status entity.VerificationStatus) error

	// Deactivate soft-deletes a business; it can no longer log in.
	Deactivate(ctx context.Context, businessID uuid.UUID) error

	// FindSellersNear lists active verified sellers whose delivery radius covers the point.
	FindSellersNear(ctx context.Context, latitude, longitude float64) ([]*entity.Business, error)

	// UploadLicense stores a license document and returns the reference accepted by Register.
	UploadLicense(ctx context.Context, input *UploadLicenseInput) (*service.StoredDocument, error)
}
