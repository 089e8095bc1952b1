package entity

import "time"

// Admin representa un administrador del sistema. Lista plana, sin rol.
type Admin struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
