package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de servicio ofrecidos por la lavandería. Los valores son los que la
// aplicación original persiste; cambiar el texto rompe los registros existentes.
const (
	ServiceWashAndFold        = "Wash & Fold"
	ServiceIroningAndPressing = "Ironing & Pressing"
	ServiceDryCleaning        = "Dry Cleaning"
)

// Estados de una orden. Pending es el inicial; ambos son alcanzables desde el
// otro (el operador puede revertir una orden completada).
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// Order es la entidad central: cliente + servicio + agenda de recogida + total
// calculado + estado.
//
// Total siempre se deriva de ServiceType y Quantity en el servidor; el valor
// que envíe el cliente se ignora.
type Order struct {
	ID          string
	Name        string
	Email       string
	ServiceType string
	Quantity    decimal.Decimal // kg para Wash & Fold, piezas para el resto
	Total       decimal.Decimal
	PickupDate  string // "2006-01-02"
	PickupTime  string // "15:04"
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidServiceType indica si s es uno de los tres servicios conocidos.
func ValidServiceType(s string) bool {
	return s == ServiceWashAndFold || s == ServiceIroningAndPressing || s == ServiceDryCleaning
}

// ValidStatus indica si s es uno de los dos estados conocidos.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusCompleted
}
