package entity

import "time"

// Roles conocidos de Staff. El campo es texto libre en los datos; cualquier
// valor fuera de este conjunto se trata como el bucket "otro".
const (
	RoleLaundryAttendant    = "Laundry Attendant / Washer"
	RoleIroningAttendant    = "Ironing Attendant / Presser"
	RoleDryCleaningOperator = "Dry Cleaning Operator"
)

// Staff representa un empleado de la lavandería.
type Staff struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsKnownStaffRole indica si role pertenece al conjunto cerrado de tres roles.
func IsKnownStaffRole(role string) bool {
	return role == RoleLaundryAttendant || role == RoleIroningAttendant || role == RoleDryCleaningOperator
}
