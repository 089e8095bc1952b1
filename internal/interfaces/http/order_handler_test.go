package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/laundry-api/internal/application/dto"
	"github.com/jhoicas/laundry-api/internal/application/receipt"
	"github.com/jhoicas/laundry-api/internal/application/usecase"
	"github.com/jhoicas/laundry-api/internal/domain/entity"
	apphttp "github.com/jhoicas/laundry-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// failingOrderRepo simula una base de datos caída: toda operación falla con el
// mismo error de infraestructura.
type failingOrderRepo struct{ err error }

func (r *failingOrderRepo) Create(*entity.Order) error            { return r.err }
func (r *failingOrderRepo) GetByID(string) (*entity.Order, error) { return nil, r.err }
func (r *failingOrderRepo) List() ([]*entity.Order, error)        { return nil, r.err }
func (r *failingOrderRepo) Update(*entity.Order) error            { return r.err }
func (r *failingOrderRepo) UpdateStatus(string, string) error     { return r.err }
func (r *failingOrderRepo) Delete(string) error                   { return r.err }

type stubPDFGenerator struct{}

func (stubPDFGenerator) GenerateReceiptPDF(context.Context, *entity.Order) ([]byte, error) {
	return []byte("%PDF-1.7"), nil
}

func buildOrderApp(repo *failingOrderRepo) *fiber.App {
	uc := usecase.NewOrderUseCase(repo)
	receiptUC := receipt.NewUseCase(repo, stubPDFGenerator{})
	h := apphttp.NewOrderHandler(uc, receiptUC)

	app := fiber.New()
	app.Get("/api/orders", h.List)
	app.Get("/api/orders/:id", h.GetByID)
	return app
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests OrderHandler — errores internos
// ──────────────────────────────────────────────────────────────────────────────

// Un fallo de infraestructura debe responder 500 con un mensaje genérico;
// el detalle del error (credenciales, host, driver) nunca viaja al cliente.
func TestOrderHandler_List_FalloDeRepo_NoFiltraDetalleInterno(t *testing.T) {
	dbErr := errors.New("FATAL: password authentication failed for user \"laundry\"")
	app := buildOrderApp(&failingOrderRepo{err: dbErr})

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password authentication failed",
		"el detalle del error de infraestructura no debe llegar al cliente")

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "error interno del servidor", body.Message)
}

// El mismo contrato aplica a las rutas que pasan por orderError.
func TestOrderHandler_GetByID_FalloDeRepo_Retorna500Generico(t *testing.T) {
	app := buildOrderApp(&failingOrderRepo{err: errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")})

	req := httptest.NewRequest(http.MethodGet, "/api/orders/abc-123", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "connection refused")

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "INTERNAL", body.Code)
}
