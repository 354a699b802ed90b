package models

import "time"

// Token is the single live bearer credential of a user.
type Token struct {
	Key       string
	UserID    int64
	CreatedAt time.Time
}
