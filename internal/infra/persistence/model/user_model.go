// Package model holds the GORM structs mirroring the database tables.
// Column defaults live in the SQL migrations only; GORM never fills them in,
// so an explicit zero value is always written as given.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Username       string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName       string `gorm:"type:varchar(255)"`
	HashedPassword string `gorm:"type:varchar(255);not null"`
	Disabled       bool   `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
