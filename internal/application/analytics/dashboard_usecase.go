// Package analytics contiene el agregador de estadísticas del dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/laundry-api/internal/application/dto"
	"github.com/jhoicas/laundry-api/internal/domain/entity"
	"github.com/jhoicas/laundry-api/internal/domain/repository"
)

// DashboardUseCase deriva los KPIs de la tienda a partir del conjunto
// completo de registros. Se recalcula todo en cada petición: los conjuntos
// son pequeños (una tienda) y el orden de iteración no afecta el resultado.
type DashboardUseCase struct {
	orderRepo repository.OrderRepository
	staffRepo repository.StaffRepository
	adminRepo repository.AdminRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(orderRepo repository.OrderRepository, staffRepo repository.StaffRepository, adminRepo repository.AdminRepository) *DashboardUseCase {
	return &DashboardUseCase{orderRepo: orderRepo, staffRepo: staffRepo, adminRepo: adminRepo}
}

// GetStats construye el DashboardStatsDTO.
//
// Tres llamadas en paralelo:
//  1. List()  → órdenes completas (conteos por estado + revenue)
//  2. staff.Count()  → TotalStaff sin materializar filas
//  3. admins.Count() → TotalAdmins sin materializar filas
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	type ordersResult struct {
		orders []*entity.Order
		err    error
	}
	type countResult struct {
		n   int
		err error
	}

	ordersCh := make(chan ordersResult, 1)
	staffCh := make(chan countResult, 1)
	adminCh := make(chan countResult, 1)

	go func() {
		orders, err := uc.orderRepo.List()
		ordersCh <- ordersResult{orders, err}
	}()
	go func() {
		n, err := uc.staffRepo.Count()
		staffCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.adminRepo.Count()
		adminCh <- countResult{n, err}
	}()

	orders := <-ordersCh
	staff := <-staffCh
	admins := <-adminCh

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if orders.err != nil {
		return nil, fmt.Errorf("dashboard: listar órdenes: %w", orders.err)
	}
	if staff.err != nil {
		return nil, fmt.Errorf("dashboard: contar staff: %w", staff.err)
	}
	if admins.err != nil {
		return nil, fmt.Errorf("dashboard: contar admins: %w", admins.err)
	}

	stats := BuildStats(orders.orders, staff.n, admins.n)
	return &stats, nil
}

// BuildStats deriva las métricas de un conjunto de órdenes. Pura: suma y
// conteo son conmutativos, así que no exige orden alguno. Un Total en cero
// (orden malformada o servicio desconocido) simplemente no aporta al revenue.
func BuildStats(orders []*entity.Order, staffCount, adminCount int) dto.DashboardStatsDTO {
	stats := dto.DashboardStatsDTO{
		TotalOrders: len(orders),
		Revenue:     decimal.Zero,
		TotalStaff:  staffCount,
		TotalAdmins: adminCount,
	}
	for _, o := range orders {
		switch o.Status {
		case entity.StatusCompleted:
			stats.Completed++
		case entity.StatusPending:
			stats.Pending++
		}
		stats.Revenue = stats.Revenue.Add(o.Total)
	}
	return stats
}
