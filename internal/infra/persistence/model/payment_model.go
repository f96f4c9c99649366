package model

import "time"

// PaymentModel mirrors the insert-only 'payments' table.
type PaymentModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"not null;index"`
	TarifID   int64  `gorm:"not null;index"`
	Amount    Money  `gorm:"type:numeric(10,2);not null"`
	Currency  string `gorm:"type:varchar(3);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
