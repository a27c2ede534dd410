package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table. Deleting a category clears CategoryID.
type ProductModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SellerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID *uuid.UUID      `gorm:"type:uuid;index"`
	Category   *CategoryModel  `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Name       string          `gorm:"type:varchar(200);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Unit       string          `gorm:"type:varchar(32)"`
	IsActive   bool            `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeCreate assigns the primary key.
func (m *ProductModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}
