package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/laundry-api/internal/application/dto"
	"github.com/jhoicas/laundry-api/internal/application/usecase"
	"github.com/jhoicas/laundry-api/internal/domain"
)

// ChatHandler maneja el widget de chat de la landing (público).
type ChatHandler struct {
	uc *usecase.ChatUseCase
}

// NewChatHandler construye el handler.
func NewChatHandler(uc *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// Send godoc
// @Summary      Enviar mensaje al asistente de la tienda
// @Description  Proxy sin estado hacia el LLM: el cliente conserva el historial
//               y lo reenvía completo en cada petición. Timeout interno de 10 s.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "message (obligatorio) e history (opcional)"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/chat [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo de la petición inválido"})
	}

	out, err := h.uc.Send(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "message es obligatorio"})
		}
		// Timeout del contexto → 408 Request Timeout
		if isTimeout(err) {
			return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{
				Code: "TIMEOUT", Message: "el asistente tardó demasiado; intenta de nuevo",
			})
		}
		// API key no configurada
		if strings.Contains(err.Error(), "ANTHROPIC_API_KEY") {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "AI_UNAVAILABLE", Message: "el asistente no está configurado",
			})
		}
		return internalError(c, "chat", err)
	}
	return c.JSON(out)
}

// isTimeout detecta timeouts o cancelaciones de contexto en la cadena de errores.
func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
