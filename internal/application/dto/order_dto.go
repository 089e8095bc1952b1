package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRequest alta/edición de una orden. Total no se acepta del cliente:
// el servidor lo recalcula siempre a partir de service_type y quantity.
// Status solo se respeta en edición; en alta la orden nace Pending.
type OrderRequest struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	ServiceType string          `json:"service_type"`
	Quantity    decimal.Decimal `json:"quantity"`
	PickupDate  string          `json:"pickup_date"`
	PickupTime  string          `json:"pickup_time"`
	Status      string          `json:"status,omitempty"`
}

// UpdateOrderStatusRequest cambio de estado inline (select de la tabla de órdenes).
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse fila de orden para la vista, con la agenda de recogida ya
// renderizada en hora de Manila.
type OrderResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	ServiceType       string          `json:"service_type"`
	Quantity          decimal.Decimal `json:"quantity"`
	Total             decimal.Decimal `json:"total"`
	PickupDate        string          `json:"pickup_date"`
	PickupTime        string          `json:"pickup_time"`
	PickupDateDisplay string          `json:"pickup_date_display"`
	PickupTimeDisplay string          `json:"pickup_time_display"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
