package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/laundry-api/internal/application/analytics"
)

// DashboardHandler expone las estadísticas agregadas de la tienda.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      KPIs del dashboard
// @Description  Totales de órdenes (por estado), revenue acumulado y conteos
//               de personal y administradores. Recalculado en cada petición.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context())
	if err != nil {
		return internalError(c, "dashboard.stats", err)
	}
	return c.JSON(stats)
}
