package model

import (
	"time"

	"github.com/google/uuid"
)

// Supermarket owns its catalog links; deleting one removes its links and
// their price ledgers (done explicitly inside a transaction, see
// SupermarketRepository.Delete).
type Supermarket struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"not null"`
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
