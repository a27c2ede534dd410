// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"marketplace/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// BusinessType discriminates the two kinds of registered business.
type BusinessType string

const (
	// BusinessTypeHotel is a restaurant or hotel that buys from sellers.
	BusinessTypeHotel BusinessType = "hotel"
	// BusinessTypeSeller is a supplier that lists products and receives orders.
	BusinessTypeSeller BusinessType = "seller"
)

// String returns the string representation of the BusinessType.
func (t BusinessType) String() string {
	return string(t)
}

// IsValid checks if the BusinessType is a valid value.
func (t BusinessType) IsValid() bool {
	switch t {
	case BusinessTypeHotel, BusinessTypeSeller:
		return true
	default:
		return false
	}
}

// VerificationStatus tracks the admin review of a business or payout method.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// IsValid checks if the VerificationStatus is a valid value.
func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	default:
		return false
	}
}

// Validation errors raised by Business.Validate.
var (
	ErrInvalidBusinessType  = errors.New("business type must be hotel or seller")
	ErrBusinessDetailsShape = errors.New("exactly the detail group matching the business type must be present")
	ErrMissingBusinessField = errors.New("missing required business field")
)

// Business is a registered hotel or seller account. Hotel and Seller form a tagged union:
// exactly the pointer matching Type is non-nil.
type Business struct {
	ID                 uuid.UUID          `json:"id"`
	Type               BusinessType       `json:"businessType"`
	Name               string             `json:"name"`
	OwnerName          string             `json:"ownerName"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone"`
	PasswordHash       string             `json:"-"`
	Address            BusinessAddress    `json:"address"`
	LicenseDocument    string             `json:"licenseDocument"`
	RegistrationNumber string             `json:"registrationNumber"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	Hotel              *HotelDetails      `json:"hotelDetails,omitempty"`
	Seller             *SellerDetails     `json:"sellerDetails,omitempty"`
	Rating             Rating             `json:"ratings"`
	IsActive           bool               `json:"isActive"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// BusinessAddress is the postal address of a business, with optional coordinates.
type BusinessAddress struct {
	Street     string  `json:"street"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postalCode"`
	Country    string  `json:"country"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// Point returns the address coordinates as an orb point (lon, lat).
func (a BusinessAddress) Point() orb.Point {
	return orb.Point{a.Longitude, a.Latitude}
}

// HasCoordinates reports whether the address was geocoded.
func (a BusinessAddress) HasCoordinates() bool {
	return a.Latitude != 0 || a.Longitude != 0
}

// HotelDetails holds the fields only hotels carry.
type HotelDetails struct {
	HotelType       string   `json:"hotelType"`
	Cuisine         []string `json:"cuisine"`
	SeatingCapacity int      `json:"seatingCapacity"`
}

// SellerDetails holds the fields only sellers carry.
type SellerDetails struct {
	ProductCategories []string `json:"productCategories"`
	StorageType       string   `json:"storageType"`
	DeliveryRadiusKm  float64  `json:"deliveryRadius"`
}

// Rating is a running average of review scores.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Add folds one score into the running average.
func (r Rating) Add(score int) Rating {
	total := r.Average*float64(r.Count) + float64(score)
	count := r.Count + 1

	return Rating{Average: total / float64(count), Count: count}
}

// Validate checks the discriminator and the required identity fields.
func (b *Business) Validate() error {
	if !b.Type.IsValid() {
		return ErrInvalidBusinessType
	}

	switch b.Type {
	case BusinessTypeHotel:
		if b.Hotel == nil || b.Seller != nil {
			return ErrBusinessDetailsShape
		}
	case BusinessTypeSeller:
		if b.Seller == nil || b.Hotel != nil {
			return ErrBusinessDetailsShape
		}
		if b.Seller.DeliveryRadiusKm < 0 {
			return errors.Wrap(ErrMissingBusinessField, "delivery radius cannot be negative")
		}
	}

	required := []struct{ field, value string }{
		{"name", b.Name},
		{"email", b.Email},
		{"registrationNumber", b.RegistrationNumber},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errors.Wrap(ErrMissingBusinessField, r.field)
		}
	}

	return nil
}

// IsSeller reports whether the business is a seller.
func (b *Business) IsSeller() bool {
	return b.Type == BusinessTypeSeller
}

// IsHotel reports whether the business is a hotel.
func (b *Business) IsHotel() bool {
	return b.Type == BusinessTypeHotel
}

// DeliversTo reports whether point lies within the seller's delivery radius.
// Hotels and sellers without coordinates never deliver.
func (b *Business) DeliversTo(point orb.Point) bool {
	if !b.IsSeller() || b.Seller == nil || !b.Address.HasCoordinates() {
		return false
	}

	distanceKm := geo.Distance(b.Address.Point(), point) / 1000

	return distanceKm <= b.Seller.DeliveryRadiusKm
}

// NormalizeEmail lowercases and trims an email so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
