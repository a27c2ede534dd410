// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for business persistence.
var (
	// ErrBusinessNotFound is returned when a business is not found.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateRegistrationNumber is returned when the registration number is already registered.
	ErrDuplicateRegistrationNumber = errors.New("registration number already registered")
)

// BusinessRepository defines the interface for hotel and seller account persistence.
type BusinessRepository interface {
	// Create persists a new business. Unique violations map to ErrDuplicateEmail or
	// ErrDuplicateRegistrationNumber.
	Create(ctx context.Context, business *entity.Business) error

	// FindByID retrieves a business by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindByEmail retrieves a business by its normalised email.
	FindByEmail(ctx context.Context, email string) (*entity.Business, error)

	// ExistsByEmail reports whether a business with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByRegistrationNumber reports whether a business with the registration number exists.
	ExistsByRegistrationNumber(ctx context.Context, registrationNumber string) (bool, error)

	// UpdateVerificationStatus sets the admin verification status.
	UpdateVerificationStatus(ctx context.Context, id uuid.UUID, status entity.VerificationStatus) error

	// SetActive flips the soft-deactivation flag.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// AddRatingScore folds one review score into the stored rating under a row lock and
	// returns the new rating. It must run inside a transaction.
	AddRatingScore(ctx context.Context, id uuid.UUID, score int) (entity.Rating, error)

	// FindActiveVerifiedSellers lists sellers that are active, verified and geocoded.
	FindActiveVerifiedSellers(ctx context.Context) ([]*entity.Business, error)

	// FindHotelsByCreation lists all hotels ordered by creation time, oldest first.
	FindHotelsByCreation(ctx context.Context) ([]*entity.Business, error)
}
