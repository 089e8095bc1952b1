package entity

import "time"

// User representa una credencial de acceso (email + hash bcrypt).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
