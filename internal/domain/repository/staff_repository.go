package repository

import "github.com/jhoicas/laundry-api/internal/domain/entity"

// StaffRepository define el puerto de persistencia para Staff.
// Count existe para que el dashboard no materialice filas solo para contarlas.
type StaffRepository interface {
	Create(staff *entity.Staff) error
	GetByID(id string) (*entity.Staff, error)
	List() ([]*entity.Staff, error)
	Update(staff *entity.Staff) error
	Delete(id string) error
	Count() (int, error)
}
