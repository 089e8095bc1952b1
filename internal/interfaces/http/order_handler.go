package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/laundry-api/internal/application/dto"
	"github.com/jhoicas/laundry-api/internal/application/receipt"
	"github.com/jhoicas/laundry-api/internal/application/usecase"
	"github.com/jhoicas/laundry-api/internal/domain"
)

// OrderHandler maneja el CRUD de órdenes, el cambio de estado y el recibo PDF.
type OrderHandler struct {
	uc        *usecase.OrderUseCase
	receiptUC *receipt.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, receiptUC *receipt.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc, receiptUC: receiptUC}
}

// orderError colapsa los errores del caso de uso en la respuesta HTTP.
// ErrMissingFields lleva la lista de faltantes en el propio mensaje.
func orderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FIELDS", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "status debe ser Pending o Completed"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pickup_date o pickup_time con formato inválido"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	default:
		return internalError(c, "orders", err)
	}
}

// Create godoc
// @Summary      Crear orden
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrderRequest  true  "datos de la orden; total se recalcula en el servidor"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.OrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Create(in)
	if err != nil {
		return orderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// List GET /api/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return internalError(c, "orders.list", err)
	}
	return c.JSON(list)
}

// GetByID GET /api/orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(order)
}

// Update PUT /api/orders/:id
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.OrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(order)
}

// UpdateStatus PATCH /api/orders/:id/status
// Ambas transiciones (Pending↔Completed) están permitidas.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.UpdateStatus(c.Params("id"), in.Status)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(order)
}

// Delete DELETE /api/orders/:id
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return orderError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "orden eliminada"})
}

// Receipt godoc
// @Summary      Descargar recibo PDF de la orden
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.receiptUC.Generate(c.Context(), c.Params("id"))
	if err != nil {
		return orderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
