package model

import "time"

// SubscriptionModel mirrors the 'subscriptions' table.
type SubscriptionModel struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	UserID    int64      `gorm:"not null;index"`
	TarifID   int64      `gorm:"not null;index"`
	StartDate time.Time  `gorm:"not null"`
	EndDate   *time.Time
	Status    string     `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
