package entity

import (
	"strings"
	"time"

	"marketplace/internal/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderReturned   OrderStatus = "returned"
)

// orderTransitions lists the statuses reachable from each status.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
	OrderDelivered:  {OrderReturned},
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled, OrderReturned:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether an order may move from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return lo.Contains(orderTransitions[s], next)
}

// PaymentStatus is the settlement state of an order.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Order validation errors.
var (
	ErrOrderHasNoItems      = errors.New("order must contain at least one item")
	ErrInvalidOrderQuantity = errors.New("item quantity must be greater than zero")
	ErrInvalidOrderPrice    = errors.New("item price cannot be negative")
	ErrMissingItemName      = errors.New("item name is required")
)

// BuyerSnapshot is an immutable copy of the buyer taken when the order is placed.
type BuyerSnapshot struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

// OrderItem is one line of an order. ProductID is nil for free-text items.
type OrderItem struct {
	ProductID *uuid.UUID      `json:"productId,omitempty"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Unit      string          `json:"unit"`
}

// Subtotal is price times quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ShippingAddress is where an order is delivered.
type ShippingAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// String joins the non-empty address parts with ", ".
func (a ShippingAddress) String() string {
	parts := lo.Filter([]string{a.Street, a.City, a.State, a.PostalCode, a.Country}, func(p string, _ int) bool {
		return strings.TrimSpace(p) != ""
	})

	return strings.Join(parts, ", ")
}

// Order is a purchase placed by a buyer with one seller.
// SellerID is nil only on legacy rows awaiting backfill.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	Buyer           BuyerSnapshot   `json:"user"`
	SellerID        *uuid.UUID      `json:"sellerId,omitempty"`
	HotelID         *uuid.UUID      `json:"hotelId,omitempty"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          OrderStatus     `json:"status"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ValidateItems checks every line item.
func ValidateItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return ErrMissingItemName
		}
		if item.Quantity <= 0 {
			return errors.Wrapf(ErrInvalidOrderQuantity, "item %q", item.Name)
		}
		if item.Price.IsNegative() {
			return errors.Wrapf(ErrInvalidOrderPrice, "item %q", item.Name)
		}
	}

	return nil
}

// ComputeTotal sums price times quantity over items.
func ComputeTotal(items []OrderItem) decimal.Decimal {
	return lo.Reduce(items, func(acc decimal.Decimal, item OrderItem, _ int) decimal.Decimal {
		return acc.Add(item.Subtotal())
	}, decimal.Zero)
}

// ProductIDs returns the referenced product ids in item order.
func (o *Order) ProductIDs() []uuid.UUID {
	return lo.FilterMap(o.Items, func(item OrderItem, _ int) (uuid.UUID, bool) {
		if item.ProductID == nil {
			return uuid.Nil, false
		}

		return *item.ProductID, true
	})
}

// HasSeller reports whether the order carries a seller reference.
func (o *Order) HasSeller() bool {
	return o.SellerID != nil && *o.SellerID != uuid.Nil
}
