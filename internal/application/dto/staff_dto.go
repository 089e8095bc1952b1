package dto

import "time"

// StaffRequest alta/edición de un empleado. Los cuatro campos son requeridos.
type StaffRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// StaffResponse fila de empleado. RoleKnown indica si el rol pertenece al
// conjunto cerrado de tres; el cliente no tiene que re-derivar la lista.
type StaffResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	RoleKnown bool      `json:"role_known"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
