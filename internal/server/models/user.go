// Package models defines server-side data models persisted in the database.
package models

import "time"

// Field limits enforced by the services and mirrored in the schema.
const (
	MaxUsernameLength = 20
	MaxNameLength     = 100
	MaxEmailLength    = 254
)

type User struct {
	ID           int64
	Username     string
	Email        string
	Name         string
	PasswordHash []byte
	CreatedAt    time.Time
}

// UserChanges is the repository-level partial update of a user. Nil fields
// are left untouched; PasswordHash is already hashed.
type UserChanges struct {
	Username     *string
	Email        *string
	Name         *string
	PasswordHash []byte
}

func (c UserChanges) IsEmpty() bool {
	return c.Username == nil && c.Email == nil && c.Name == nil && c.PasswordHash == nil
}
