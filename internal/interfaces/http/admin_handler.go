package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/laundry-api/internal/application/dto"
	"github.com/jhoicas/laundry-api/internal/application/usecase"
	"github.com/jhoicas/laundry-api/internal/domain"
)

// AdminHandler maneja el roster de administradores.
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Create POST /api/admins
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var in dto.AdminRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	admin, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y email son requeridos"})
		}
		return internalError(c, "admins.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(admin)
}

// List GET /api/admins
func (h *AdminHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return internalError(c, "admins.list", err)
	}
	return c.JSON(list)
}

// Update PUT /api/admins/:id
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	var in dto.AdminRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	admin, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y email son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "administrador no encontrado"})
		}
		return internalError(c, "admins.update", err)
	}
	return c.JSON(admin)
}

// Delete DELETE /api/admins/:id
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "administrador no encontrado"})
		}
		return internalError(c, "admins.delete", err)
	}
	return c.JSON(dto.MessageResponse{Message: "administrador eliminado"})
}
