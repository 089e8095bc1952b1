package repository

import "github.com/jhoicas/laundry-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order.
// List devuelve siempre el conjunto completo ordenado por created_at DESC;
// a escala de una sola tienda no hay paginación.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List() ([]*entity.Order, error)
	Update(order *entity.Order) error
	UpdateStatus(id, status string) error
	Delete(id string) error
}
