package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/laundry-api/internal/application/dto"
)

// internalError registra la causa real con el logger estructurado y responde
// un mensaje genérico: el detalle del store o del driver nunca viaja al cliente.
func internalError(c *fiber.Ctx, op string, err error) error {
	log.Error().Err(err).Str("op", op).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: "error interno del servidor",
	})
}
