// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User represents a registered account. The PasswordHash field holds the
// bcrypt digest of the signup password; it must never appear in any
// response body or log line.
type User struct {
	ID           int64     // Server-assigned identifier, immutable.
	Email        string    // Unique login identifier, immutable after creation.
	Name         string    // Optional display name.
	PasswordHash string    // One-way bcrypt digest of the password.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
