// Package model holds the GORM persistence structs. They are exported so the
// GORM Gen tool can generate typed query code from them.
package model

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// assignID gives a record a time-ordered UUIDv7 unless the caller already chose one.
func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate id")
	}
	*id = generated

	return nil
}

// All lists every model for migrations and code generation.
func All() []any {
	return []any{
		&BusinessModel{},
		&CategoryModel{},
		&ProductModel{},
		&OrderModel{},
		&PaymentMethodModel{},
		&PaymentSummaryModel{},
		&AppliedOrderEventModel{},
		&ReviewModel{},
	}
}
