// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a unique account able to log in, subscribe to tarifs and own items.
type User struct {
	ID           int64     // Serial identifier, immutable once assigned.
	Username     string    // Unique login name.
	Email        string    // Unique contact email.
	FullName     string    // Optional display name.
	PasswordHash string    // bcrypt hash; the plaintext password is never stored.
	Disabled     bool      // Disabled accounts can authenticate but cannot act.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// IsActive reports whether the account may perform state-changing operations.
func (u *User) IsActive() bool {
	return u != nil && !u.Disabled
}
