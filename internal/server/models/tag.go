package models

const MaxTagNameLength = 50

type Tag struct {
	ID     int64
	UserID int64
	Name   string
}
