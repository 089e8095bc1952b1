package repository

import "github.com/jhoicas/laundry-api/internal/domain/entity"

// AdminRepository define el puerto de persistencia para Admin.
type AdminRepository interface {
	Create(admin *entity.Admin) error
	GetByID(id string) (*entity.Admin, error)
	List() ([]*entity.Admin, error)
	Update(admin *entity.Admin) error
	Delete(id string) error
	Count() (int, error)
}
