package model

import "time"

// ItemModel mirrors the 'items' table. Location is always written together
// with the coordinates it is derived from.
type ItemModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Title     string  `gorm:"type:varchar(255)"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
	Location  Point   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}

// ItemUserModel mirrors the 'items_users' join table. The pair is not unique.
type ItemUserModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	ItemID    int64 `gorm:"not null;index"`
	UserID    int64 `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemUserModel) TableName() string {
	return "items_users"
}
