package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/facturacion-api/internal/application/analytics"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/domain"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
// Todos aceptan ?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD opcionales; sin
// parámetros el reporte cubre todo el histórico.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_customers, total_invoices,
// total_amount_invoiced, total_amount_paid, outstanding_balance).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return h.reportError(c, err)
	}
	return c.JSON(summary)
}

// GetTopCustomers GET /api/dashboard/top-customers
func (h *DashboardHandler) GetTopCustomers(c *fiber.Ctx) error {
	top, err := h.uc.TopCustomers(c.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return h.reportError(c, err)
	}
	return c.JSON(top)
}

// GetMonthlyRevenue GET /api/dashboard/monthly-revenue
func (h *DashboardHandler) GetMonthlyRevenue(c *fiber.Ctx) error {
	months, err := h.uc.MonthlyRevenue(c.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return h.reportError(c, err)
	}
	return c.JSON(months)
}

func (h *DashboardHandler) reportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas en formato YYYY-MM-DD"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
