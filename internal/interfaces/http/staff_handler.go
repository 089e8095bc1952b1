package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/laundry-api/internal/application/dto"
	"github.com/jhoicas/laundry-api/internal/application/usecase"
	"github.com/jhoicas/laundry-api/internal/domain"
)

// StaffHandler maneja el roster de personal de la tienda.
type StaffHandler struct {
	uc *usecase.StaffUseCase
}

// NewStaffHandler construye el handler.
func NewStaffHandler(uc *usecase.StaffUseCase) *StaffHandler {
	return &StaffHandler{uc: uc}
}

// Create POST /api/staff
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var in dto.StaffRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	staff, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email, phone y role son requeridos"})
		}
		return internalError(c, "staff.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(staff)
}

// List GET /api/staff
func (h *StaffHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return internalError(c, "staff.list", err)
	}
	return c.JSON(list)
}

// Update PUT /api/staff/:id
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	var in dto.StaffRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	staff, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email, phone y role son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
		}
		return internalError(c, "staff.update", err)
	}
	return c.JSON(staff)
}

// Delete DELETE /api/staff/:id
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
		}
		return internalError(c, "staff.delete", err)
	}
	return c.JSON(dto.MessageResponse{Message: "empleado eliminado"})
}
