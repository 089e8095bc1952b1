// seed puebla la base con datos de demostración: órdenes, personal y
// administradores. Pensado para entornos de desarrollo y demos.
//
// Uso: go run ./cmd/seed [-orders N] [-staff N] [-admins N]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/laundry-api/internal/domain/entity"
	"github.com/jhoicas/laundry-api/internal/domain/pricing"
	"github.com/jhoicas/laundry-api/internal/infrastructure/postgres"
	"github.com/jhoicas/laundry-api/pkg/config"
)

var (
	customerNames = []string{"Maria Cruz", "Jose Santos", "Ana Reyes", "Paolo Garcia", "Liza Mendoza", "Ramon Dizon"}
	services      = []string{entity.ServiceWashAndFold, entity.ServiceIroningAndPressing, entity.ServiceDryCleaning}
	staffRoles    = []string{entity.RoleLaundryAttendant, entity.RoleIroningAttendant, entity.RoleDryCleaningOperator}
)

func main() {
	nOrders := flag.Int("orders", 12, "órdenes de demostración a insertar")
	nStaff := flag.Int("staff", 3, "empleados de demostración a insertar")
	nAdmins := flag.Int("admins", 2, "administradores de demostración a insertar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Datos de demo: vaciar primero para que la corrida sea idempotente.
	for _, table := range []string{"orders", "staff", "admins"} {
		if _, err := pool.Exec(ctx, "TRUNCATE TABLE "+table); err != nil {
			fmt.Fprintf(os.Stderr, "truncate %s: %v\n", table, err)
			os.Exit(1)
		}
	}

	orderRepo := postgres.NewOrderRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)

	now := time.Now()

	ordersInserted := 0
	for i := 0; i < *nOrders; i++ {
		name := customerNames[i%len(customerNames)]
		service := services[i%len(services)]
		qty := decimal.NewFromInt(int64(1 + i%5))
		status := entity.StatusPending
		if i%3 == 0 {
			status = entity.StatusCompleted
		}
		order := &entity.Order{
			ID:          uuid.New().String(),
			Name:        name,
			Email:       emailFor(name, i),
			ServiceType: service,
			Quantity:    qty,
			Total:       pricing.Total(service, qty),
			PickupDate:  now.AddDate(0, 0, 1+i%7).Format("2006-01-02"),
			PickupTime:  fmt.Sprintf("%02d:00", 9+i%8),
			Status:      status,
			CreatedAt:   now.Add(-time.Duration(i) * time.Hour),
			UpdatedAt:   now.Add(-time.Duration(i) * time.Hour),
		}
		if err := orderRepo.Create(order); err != nil {
			fmt.Fprintf(os.Stderr, "insertar orden %d: %v\n", i, err)
			os.Exit(1)
		}
		ordersInserted++
	}

	staffInserted := 0
	for i := 0; i < *nStaff; i++ {
		name := customerNames[(i+2)%len(customerNames)]
		s := &entity.Staff{
			ID:        uuid.New().String(),
			Name:      name,
			Email:     emailFor(name, 100+i),
			Phone:     fmt.Sprintf("0917-555-%04d", 1000+i),
			Role:      staffRoles[i%len(staffRoles)],
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := staffRepo.Create(s); err != nil {
			fmt.Fprintf(os.Stderr, "insertar staff %d: %v\n", i, err)
			os.Exit(1)
		}
		staffInserted++
	}

	adminsInserted := 0
	for i := 0; i < *nAdmins; i++ {
		name := customerNames[(i+4)%len(customerNames)]
		a := &entity.Admin{
			ID:        uuid.New().String(),
			Name:      name,
			Email:     emailFor(name, 200+i),
			Phone:     fmt.Sprintf("0918-555-%04d", 2000+i),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := adminRepo.Create(a); err != nil {
			fmt.Fprintf(os.Stderr, "insertar admin %d: %v\n", i, err)
			os.Exit(1)
		}
		adminsInserted++
	}

	// Resumen en tabla
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Entidad", "Insertados")
	_ = table.Append([]string{"orders", strconv.Itoa(ordersInserted)})
	_ = table.Append([]string{"staff", strconv.Itoa(staffInserted)})
	_ = table.Append([]string{"admins", strconv.Itoa(adminsInserted)})
	if err := table.Render(); err != nil {
		fmt.Fprintf(os.Stderr, "render tabla: %v\n", err)
	}
}

// emailFor deriva un email de demo único a partir del nombre.
func emailFor(name string, n int) string {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return fmt.Sprintf("%s.%d@example.com", local, n)
}
