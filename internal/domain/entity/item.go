package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Item is a geographically located object users can be linked to.
type Item struct {
	ID        int64
	Title     string
	Latitude  *float64
	Longitude *float64
	Location  orb.Point // Derived from Longitude/Latitude by the storage layer on every write, SRID 4326.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemUser links a user to an item. The same pair may appear more than once.
type ItemUser struct {
	ID        int64
	ItemID    int64
	UserID    int64
	CreatedAt time.Time
}
