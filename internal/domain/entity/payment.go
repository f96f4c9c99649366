package entity

import "time"

// Payment is an immutable record of an amount charged to a user for a tarif.
// Amount and currency are what the caller reported; they are not tied to the
// tarif's current price.
type Payment struct {
	ID        int64
	UserID    int64
	TarifID   int64
	Amount    Money  // Strictly positive.
	Currency  string // Three-letter code.
	CreatedAt time.Time
}
