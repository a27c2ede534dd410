package postgres

import (
	"context"

	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates every table and index declared on the models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate models")
	}

	return nil
}
