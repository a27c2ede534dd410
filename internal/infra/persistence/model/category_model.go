package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryModel mirrors the 'categories' table. Slug is NULL on legacy rows
// until the backfill job derives one.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Slug      *string   `gorm:"type:varchar(160);uniqueIndex:idx_categories_slug"`
	Color     string    `gorm:"type:varchar(16)"`
	Order     int       `gorm:"column:display_order;not null;default:0"`
	SellerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// BeforeCreate assigns the primary key.
func (m *CategoryModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// CategoryWithCount is the scan target of the product-count aggregate queries.
type CategoryWithCount struct {
	CategoryModel
	ProductCount int64
}
