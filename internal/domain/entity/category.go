package entity

import "time"

// Category agrupa productos. Es global: cualquier usuario autenticado la administra.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
