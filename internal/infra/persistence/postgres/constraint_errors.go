package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// Unique index names referenced when translating duplicate-key errors.
const (
	idxBusinessesEmail              = "idx_businesses_email"
	idxBusinessesRegistrationNumber = "idx_businesses_registration_number"
	idxCategoriesSlug               = "idx_categories_slug"
	idxReviewsUserProduct           = "idx_reviews_user_product"
	idxPaymentMethodsSingleDefault  = "idx_payment_methods_single_default"
)

func pgErrorCode(err error) (code, constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}

	return "", "", false
}

// uniqueViolation reports whether err is a duplicate-key error and, when the
// driver exposes it, the name of the violated index.
func uniqueViolation(err error) (constraint string, ok bool) {
	if code, name, found := pgErrorCode(err); found && code == pgUniqueViolation {
		return name, true
	}

	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}

	return "", false
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	code, _, ok := pgErrorCode(err)

	return ok && code == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	code, _, ok := pgErrorCode(err)

	return ok && code == pgNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	code, _, ok := pgErrorCode(err)

	return ok && code == pgCheckViolation
}
