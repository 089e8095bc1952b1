package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/laundry-api/internal/application/dto"
	"github.com/jhoicas/laundry-api/internal/domain"
	"github.com/jhoicas/laundry-api/internal/domain/entity"
	"github.com/jhoicas/laundry-api/internal/domain/pickup"
	"github.com/jhoicas/laundry-api/internal/domain/pricing"
	"github.com/jhoicas/laundry-api/internal/domain/repository"
)

// OrderUseCase casos de uso del libro de órdenes: alta, edición, cambio de
// estado, borrado y listado. El total se recalcula aquí en cada escritura;
// el valor que venga del cliente nunca se persiste.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// validateOrder revisa los seis campos requeridos. Devuelve ErrMissingFields
// envuelto con la lista de faltantes; el handler lo colapsa en una sola
// respuesta de validación.
func validateOrder(in dto.OrderRequest) error {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.ServiceType == "" {
		missing = append(missing, "service_type")
	}
	if in.PickupDate == "" {
		missing = append(missing, "pickup_date")
	}
	if in.PickupTime == "" {
		missing = append(missing, "pickup_time")
	}
	if !in.Quantity.IsPositive() {
		missing = append(missing, "quantity")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrMissingFields, strings.Join(missing, ", "))
	}
	if !pickup.ValidSchedule(in.PickupDate, in.PickupTime) {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create da de alta una orden. El estado es siempre Pending: la creación no
// expone control de estado. Devuelve la fila tal como quedó persistida.
func (uc *OrderUseCase) Create(in dto.OrderRequest) (*dto.OrderResponse, error) {
	if err := validateOrder(in); err != nil {
		return nil, err
	}
	now := time.Now()
	order := &entity.Order{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Email:       in.Email,
		ServiceType: in.ServiceType,
		Quantity:    in.Quantity,
		Total:       pricing.Total(in.ServiceType, in.Quantity),
		PickupDate:  in.PickupDate,
		PickupTime:  in.PickupTime,
		Status:      entity.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Update edita una orden existente. Recalcula el total con los valores
// recibidos (nunca reutiliza el último mostrado) y, si viene status, lo acepta
// solo si es uno de los dos estados conocidos; en blanco conserva el actual.
func (uc *OrderUseCase) Update(id string, in dto.OrderRequest) (*dto.OrderResponse, error) {
	if err := validateOrder(in); err != nil {
		return nil, err
	}
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	status := order.Status
	if in.Status != "" {
		if !entity.ValidStatus(in.Status) {
			return nil, domain.ErrInvalidStatus
		}
		status = in.Status
	}
	order.Name = in.Name
	order.Email = in.Email
	order.ServiceType = in.ServiceType
	order.Quantity = in.Quantity
	order.Total = pricing.Total(in.ServiceType, in.Quantity)
	order.PickupDate = in.PickupDate
	order.PickupTime = in.PickupTime
	order.Status = status
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// UpdateStatus cambia solo el estado (el select inline de la tabla).
// Ambas transiciones están permitidas sin guardas: nada impide completar una
// orden antes de su hora de recogida ni revertirla después. Es una brecha de
// regla de negocio asumida, no un defecto.
func (uc *OrderUseCase) UpdateStatus(id, status string) (*dto.OrderResponse, error) {
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	return toOrderResponse(order), nil
}

// GetByID obtiene una orden.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// List devuelve todas las órdenes, más recientes primero.
func (uc *OrderUseCase) List() ([]*dto.OrderResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// Delete elimina una orden (borrado duro, sin tombstone).
func (uc *OrderUseCase) Delete(id string) error {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	displayDate, displayTime := pickup.Format(o.PickupDate, o.PickupTime)
	return &dto.OrderResponse{
		ID:                o.ID,
		Name:              o.Name,
		Email:             o.Email,
		ServiceType:       o.ServiceType,
		Quantity:          o.Quantity,
		Total:             o.Total,
		PickupDate:        o.PickupDate,
		PickupTime:        o.PickupTime,
		PickupDateDisplay: displayDate,
		PickupTimeDisplay: displayTime,
		Status:            o.Status,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}
