package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupermarketProductPrice is one entry in a catalog link's price ledger.
// Entries are append-only — never updated or deleted individually; the row ID
// is a sequence so insertion order stays total even when timestamps collide
// inside a transaction. "Current price" is the highest ID for the link.
type SupermarketProductPrice struct {
	ID                   uint64          `gorm:"primaryKey;autoIncrement"`
	SupermarketProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Price                decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt            time.Time
}
