package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderModel mirrors the 'orders' table. The buyer snapshot and line items are
// immutable jsonb documents; SellerID and HotelID are NULL on legacy rows.
type OrderModel struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey"`
	BuyerID         uuid.UUID           `gorm:"type:uuid;not null;index"`
	Buyer           BuyerDoc            `gorm:"type:jsonb;serializer:json;not null"`
	SellerID        *uuid.UUID          `gorm:"type:uuid;index"`
	HotelID         *uuid.UUID          `gorm:"type:uuid;index"`
	Items           []OrderItemDoc      `gorm:"type:jsonb;serializer:json;not null"`
	ShippingAddress ShippingAddressCols `gorm:"embedded;embeddedPrefix:shipping_"`
	TotalAmount     decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	Status          string              `gorm:"type:varchar(16);not null;default:'pending';index"`
	PaymentMethod   string              `gorm:"type:varchar(32)"`
	PaymentStatus   string              `gorm:"type:varchar(16);not null;default:'pending'"`
	CreatedAt       time.Time           `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// BeforeCreate assigns the primary key.
func (m *OrderModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// BuyerDoc is the jsonb snapshot of the buyer.
type BuyerDoc struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

// OrderItemDoc is one jsonb line item.
type OrderItemDoc struct {
	ProductID *uuid.UUID      `json:"productId,omitempty"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Unit      string          `json:"unit"`
}

// ShippingAddressCols is embedded into orders with the shipping_ prefix.
type ShippingAddressCols struct {
	Street     string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(100)"`
	State      string `gorm:"type:varchar(100)"`
	PostalCode string `gorm:"type:varchar(20)"`
	Country    string `gorm:"type:varchar(100)"`
}
