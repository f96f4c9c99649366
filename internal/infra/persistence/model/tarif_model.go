package model

import "time"

// TarifModel mirrors the 'tarifs' table. Scope and terms are indexed for catalog filtering.
type TarifModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Price       Money  `gorm:"type:numeric(10,2);not null"`
	Currency    string `gorm:"type:varchar(3);not null"`
	Scope       string `gorm:"type:varchar(50);not null;index:idx_tarifs_scope"`
	Terms       string `gorm:"type:varchar(50);not null;index:idx_tarifs_terms"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TarifModel) TableName() string {
	return "tarifs"
}
