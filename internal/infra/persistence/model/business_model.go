package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessModel mirrors the 'businesses' table. Hotel and seller detail groups are
// jsonb columns; only the one matching BusinessType is non-null.
type BusinessModel struct {
	ID                 uuid.UUID           `gorm:"type:uuid;primaryKey"`
	BusinessType       string              `gorm:"type:varchar(16);not null;index"`
	Name               string              `gorm:"type:varchar(200);not null"`
	OwnerName          string              `gorm:"type:varchar(200)"`
	Email              string              `gorm:"type:varchar(255);not null;uniqueIndex:idx_businesses_email"`
	Phone              string              `gorm:"type:varchar(32)"`
	PasswordHash       string              `gorm:"type:varchar(255);not null"`
	Address            BusinessAddressCols `gorm:"embedded;embeddedPrefix:address_"`
	LicenseDocument    string              `gorm:"type:varchar(512);not null;default:''"`
	RegistrationNumber string              `gorm:"type:varchar(100);not null;uniqueIndex:idx_businesses_registration_number"`
	VerificationStatus string              `gorm:"type:varchar(16);not null;default:'pending'"`
	HotelDetails       *HotelDetailsDoc    `gorm:"type:jsonb;serializer:json"`
	SellerDetails      *SellerDetailsDoc   `gorm:"type:jsonb;serializer:json"`
	RatingAverage      float64             `gorm:"type:double precision;not null;default:0"`
	RatingCount        int                 `gorm:"not null;default:0"`
	IsActive           bool                `gorm:"not null;default:true"`
	CreatedAt          time.Time           `gorm:"index"`
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}

// BeforeCreate assigns the primary key.
func (m *BusinessModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// BusinessAddressCols is embedded into businesses with the address_ prefix.
type BusinessAddressCols struct {
	Street     string  `gorm:"type:varchar(255)"`
	City       string  `gorm:"type:varchar(100)"`
	State      string  `gorm:"type:varchar(100)"`
	PostalCode string  `gorm:"type:varchar(20)"`
	Country    string  `gorm:"type:varchar(100)"`
	Latitude   float64 `gorm:"type:decimal(10,8)"`
	Longitude  float64 `gorm:"type:decimal(11,8)"`
}

// HotelDetailsDoc is the jsonb document for hotel-only fields.
type HotelDetailsDoc struct {
	HotelType       string   `json:"hotelType"`
	Cuisine         []string `json:"cuisine"`
	SeatingCapacity int      `json:"seatingCapacity"`
}

// SellerDetailsDoc is the jsonb document for seller-only fields.
type SellerDetailsDoc struct {
	ProductCategories []string `json:"productCategories"`
	StorageType       string   `json:"storageType"`
	DeliveryRadiusKm  float64  `json:"deliveryRadius"`
}
