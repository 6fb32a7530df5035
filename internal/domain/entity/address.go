package entity

import "time"

// Address dirección de un Contact; el dueño del contacto es el dueño de la dirección.
type Address struct {
	ID         string
	ContactID  string
	Street     string
	City       string
	Province   string
	Country    string
	PostalCode string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
