package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is an item a seller offers. CategoryID is nil when uncategorised.
type Product struct {
	ID         uuid.UUID       `json:"id"`
	SellerID   uuid.UUID       `json:"sellerId"`
	CategoryID *uuid.UUID      `json:"categoryId,omitempty"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Unit       string          `json:"unit"`
	IsActive   bool            `json:"isActive"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
