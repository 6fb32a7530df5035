package entity

import "time"

// Contact pertenece siempre a un único User.
type Contact struct {
	ID        string
	UserID    string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
