package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/laundry-api/internal/domain/entity"
	"github.com/jhoicas/laundry-api/internal/domain/pricing"
)

// TestTotal_TarifasConocidas valida la tabla de precios contra valores exactos:
// 3 kg de Wash & Fold = 150, 2 piezas de Dry Cleaning = 300,
// 4 piezas de Ironing & Pressing = 120.
func TestTotal_TarifasConocidas(t *testing.T) {
	cases := []struct {
		service  string
		quantity string
		want     int64
	}{
		{entity.ServiceWashAndFold, "3", 150},
		{entity.ServiceDryCleaning, "2", 300},
		{entity.ServiceIroningAndPressing, "4", 120},
	}
	for _, tc := range cases {
		got := pricing.Total(tc.service, pricing.ParseQuantity(tc.quantity))
		assert.True(t, got.Equal(decimal.NewFromInt(tc.want)),
			"%s x %s debe ser %d, fue %s", tc.service, tc.quantity, tc.want, got)
	}
}

// TestTotal_ServicioDesconocidoEsCero cubre el default permisivo: servicio
// vacío o fuera de la enumeración devuelve 0 en vez de error.
func TestTotal_ServicioDesconocidoEsCero(t *testing.T) {
	assert.True(t, pricing.Total("", pricing.ParseQuantity("5")).IsZero())
	assert.True(t, pricing.Total("Shoe Repair", decimal.NewFromInt(2)).IsZero())
}

func TestParseQuantity_VacioONoNumericoEsCero(t *testing.T) {
	assert.True(t, pricing.ParseQuantity("").IsZero())
	assert.True(t, pricing.ParseQuantity("   ").IsZero())
	assert.True(t, pricing.ParseQuantity("dos").IsZero())
	assert.True(t, pricing.Total(entity.ServiceWashAndFold, pricing.ParseQuantity("")).IsZero())
}

func TestParseQuantity_Decimal(t *testing.T) {
	q := pricing.ParseQuantity("2.5")
	got := pricing.Total(entity.ServiceWashAndFold, q)
	assert.True(t, got.Equal(decimal.NewFromInt(125)), "2.5 kg x 50 debe ser 125, fue %s", got)
}

// TestTotal_RedondeoADosDecimales fija el contrato de precisión: el total se
// redondea al centavo en el momento del cálculo.
func TestTotal_RedondeoADosDecimales(t *testing.T) {
	got := pricing.Total(entity.ServiceIroningAndPressing, pricing.ParseQuantity("0.333"))
	assert.Equal(t, "9.99", got.StringFixed(2))
	assert.True(t, got.Exponent() >= -2, "el total no debe llevar más de 2 decimales")
}

// TestTotal_Determinista: recomputar con los mismos insumos produce el mismo total.
func TestTotal_Determinista(t *testing.T) {
	q := pricing.ParseQuantity("7")
	a := pricing.Total(entity.ServiceDryCleaning, q)
	b := pricing.Total(entity.ServiceDryCleaning, q)
	assert.True(t, a.Equal(b))
}
