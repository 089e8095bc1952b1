package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/laundry-api/internal/application/dto"
	"github.com/jhoicas/laundry-api/internal/application/usecase"
	apphttp "github.com/jhoicas/laundry-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// erroringChatService devuelve siempre el mismo error, imitando al adaptador
// real que envuelve la causa con %w.
type erroringChatService struct{ err error }

func (s *erroringChatService) Reply(context.Context, string, []dto.ChatTurn) (string, error) {
	return "", s.err
}

func buildChatApp(svcErr error) *fiber.App {
	h := apphttp.NewChatHandler(usecase.NewChatUseCase(&erroringChatService{err: svcErr}))
	app := fiber.New()
	app.Post("/api/chat", h.Send)
	return app
}

func postChat(t *testing.T, app *fiber.App, message string) *http.Response {
	t.Helper()
	payload, err := json.Marshal(dto.ChatRequest{Message: message})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ChatHandler — mapeo de errores del asistente
// ──────────────────────────────────────────────────────────────────────────────

// Un deadline excedido en cualquier punto de la cadena de errores debe mapear
// a 408, aunque el adaptador lo haya envuelto varias veces.
func TestChatHandler_TimeoutDelContexto_Retorna408(t *testing.T) {
	svcErr := fmt.Errorf("AI: timeout o cancelación: %w", context.DeadlineExceeded)
	app := buildChatApp(svcErr)

	resp := postChat(t, app, "¿cuánto cuesta el lavado?")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusRequestTimeout, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "TIMEOUT", body.Code)
}

// Cancelación del contexto recibe el mismo tratamiento que el timeout.
func TestChatHandler_ContextoCancelado_Retorna408(t *testing.T) {
	app := buildChatApp(fmt.Errorf("AI: timeout o cancelación: %w", context.Canceled))

	resp := postChat(t, app, "hola")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusRequestTimeout, resp.StatusCode)
}

// API key ausente → 503: el asistente no está configurado, no es culpa del cliente.
func TestChatHandler_APIKeyAusente_Retorna503(t *testing.T) {
	app := buildChatApp(errors.New("AI: ANTHROPIC_API_KEY no configurado"))

	resp := postChat(t, app, "hola")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "AI_UNAVAILABLE", body.Code)
}

// Cualquier otro fallo del adaptador responde 500 genérico sin filtrar la causa.
func TestChatHandler_ErrorDesconocido_Retorna500Generico(t *testing.T) {
	app := buildChatApp(errors.New("AI: api status 500: upstream exploded"))

	resp := postChat(t, app, "hola")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INTERNAL", body.Code)
	assert.NotContains(t, body.Message, "upstream exploded")
}
