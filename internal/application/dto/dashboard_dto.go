package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
// Se recalcula completo en cada petición; a escala de una tienda los conjuntos
// son pequeños y no hay caché ni acumulado incremental.
type DashboardStatsDTO struct {
	TotalOrders int             `json:"total_orders"`
	Completed   int             `json:"completed"`
	Pending     int             `json:"pending"`
	Revenue     decimal.Decimal `json:"revenue"` // suma de totales de todas las órdenes
	TotalStaff  int             `json:"total_staff"`
	TotalAdmins int             `json:"total_admins"`
}
