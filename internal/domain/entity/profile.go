package entity

import "time"

// Profile es el perfil visible de un usuario. Comparte ID con el User que lo
// creó en el signup y no se actualiza después.
type Profile struct {
	ID        string // igual al User.ID
	Name      string
	Email     string
	Role      string // informativo; la API no autoriza sobre este campo
	CreatedAt time.Time
}
