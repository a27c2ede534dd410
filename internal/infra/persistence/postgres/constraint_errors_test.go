package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUniqueViolation(t *testing.T) {
	wrapped := errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: idxBusinessesEmail}, "insert")

	name, ok := uniqueViolation(wrapped)
	assert.True(t, ok)
	assert.Equal(t, idxBusinessesEmail, name)

	name, ok = uniqueViolation(gorm.ErrDuplicatedKey)
	assert.True(t, ok)
	assert.Empty(t, name)

	_, ok = uniqueViolation(&pgconn.PgError{Code: pgForeignKeyViolation})
	assert.False(t, ok)

	_, ok = uniqueViolation(errors.New("connection reset"))
	assert.False(t, ok)
}

func TestIntegrityViolationHelpers(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgNotNullViolation}))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: pgCheckViolation}))
	assert.False(t, isCheckConstraintViolation(errors.New("boom")))
}
