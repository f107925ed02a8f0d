package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the canonical catalog record. A product exists once and may be
// listed at many supermarkets through SupermarketProduct rows; the barcode is
// unique across the whole registry regardless of who lists it.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Barcode     string    `gorm:"uniqueIndex;not null"`
	Name        string    `gorm:"index;not null"`
	Description *string
	Brand       string          `gorm:"not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	UnitMeasure string          `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
