package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/laundry-api/internal/domain/entity"
	"github.com/jhoicas/laundry-api/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación de StaffRepository (usable con pool o tx).
type StaffRepo struct {
	q Querier
}

// NewStaffRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

const staffColumns = `id, name, email, phone, role, created_at, updated_at`

// Create persiste un nuevo empleado.
func (r *StaffRepo) Create(staff *entity.Staff) error {
	query := `
		INSERT INTO staff (` + staffColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		staff.ID, staff.Name, staff.Email, staff.Phone, staff.Role, staff.CreatedAt, staff.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID. Devuelve (nil, nil) si no existe.
func (r *StaffRepo) GetByID(id string) (*entity.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`
	var s entity.Staff
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.Role, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return &s, nil
}

// List devuelve todo el personal, más recientes primero.
func (r *StaffRepo) List() ([]*entity.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()
	var list []*entity.Staff
	for rows.Next() {
		var s entity.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Role, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un empleado.
func (r *StaffRepo) Update(staff *entity.Staff) error {
	query := `
		UPDATE staff SET name = $2, email = $3, phone = $4, role = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		staff.ID, staff.Name, staff.Email, staff.Phone, staff.Role, staff.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update staff: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID.
func (r *StaffRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	return nil
}

// Count devuelve el total de empleados sin materializar filas (dashboard).
func (r *StaffRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM staff`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count staff: %w", err)
	}
	return n, nil
}
