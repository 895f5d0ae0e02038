package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProductKind tags the product variants the factory knows about.
type ProductKind string

const (
	ProductLaptop     ProductKind = "laptop"
	ProductSmartphone ProductKind = "smartphone"
)

// Receipt is what the card processor hands back for a charge.
type Receipt struct {
	ID          uuid.UUID
	CardToken   string // never the raw card number
	AmountKurus int64
	CreatedAt   time.Time
}
