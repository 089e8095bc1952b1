package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/laundry-api/internal/domain/entity"
	"github.com/jhoicas/laundry-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación de AdminRepository (usable con pool o tx).
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

const adminColumns = `id, name, email, phone, created_at, updated_at`

// Create persiste un nuevo administrador.
func (r *AdminRepo) Create(admin *entity.Admin) error {
	query := `
		INSERT INTO admins (` + adminColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		admin.ID, admin.Name, admin.Email, admin.Phone, admin.CreatedAt, admin.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetByID obtiene un administrador por ID. Devuelve (nil, nil) si no existe.
func (r *AdminRepo) GetByID(id string) (*entity.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`
	var a entity.Admin
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}

// List devuelve todos los administradores, más recientes primero.
func (r *AdminRepo) List() ([]*entity.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()
	var list []*entity.Admin
	for rows.Next() {
		var a entity.Admin
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza un administrador.
func (r *AdminRepo) Update(admin *entity.Admin) error {
	query := `
		UPDATE admins SET name = $2, email = $3, phone = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		admin.ID, admin.Name, admin.Email, admin.Phone, admin.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update admin: %w", err)
	}
	return nil
}

// Delete elimina un administrador por ID.
func (r *AdminRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}
	return nil
}

// Count devuelve el total de administradores sin materializar filas (dashboard).
func (r *AdminRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM admins`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return n, nil
}
