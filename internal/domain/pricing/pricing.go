// Package pricing implementa la tarifa de servicios de la lavandería.
//
// Tabla fija (pesos por unidad): Wash & Fold = 50/kg,
// Ironing & Pressing = 30/pieza, Dry Cleaning = 150/pieza.
// El total es siempre un cálculo del servidor; nunca se confía en el valor
// enviado por el cliente.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/laundry-api/internal/domain/entity"
)

var (
	rateWashAndFold = decimal.NewFromInt(50)
	rateIroning     = decimal.NewFromInt(30)
	rateDryCleaning = decimal.NewFromInt(150)
)

// Rate devuelve la tarifa por unidad del servicio. Un servicio desconocido
// (incluido el vacío) devuelve 0: es un default permisivo, no un error.
func Rate(serviceType string) decimal.Decimal {
	switch serviceType {
	case entity.ServiceWashAndFold:
		return rateWashAndFold
	case entity.ServiceIroningAndPressing:
		return rateIroning
	case entity.ServiceDryCleaning:
		return rateDryCleaning
	default:
		return decimal.Zero
	}
}

// Total calcula tarifa × cantidad, redondeado a 2 decimales.
func Total(serviceType string, quantity decimal.Decimal) decimal.Decimal {
	return Rate(serviceType).Mul(quantity).Round(2)
}

// ParseQuantity interpreta una cantidad escrita por el usuario. Vacío o
// no numérico devuelve 0 (mismo default permisivo que Rate).
func ParseQuantity(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	q, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return q
}
