package model

import (
	"time"

	"github.com/google/uuid"
)

// SupermarketProduct links one product into one supermarket's catalog and owns
// that pairing's price ledger. The (supermarket, product) pair is unique: a
// product is listed at most once per supermarket.
type SupermarketProduct struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SupermarketID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_supermarket_product"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_supermarket_product"`
	CreatedAt     time.Time

	Supermarket Supermarket              `gorm:"foreignKey:SupermarketID"`
	Product     Product                  `gorm:"foreignKey:ProductID"`
	Prices      []SupermarketProductPrice `gorm:"foreignKey:SupermarketProductID;constraint:OnDelete:CASCADE"`
}
