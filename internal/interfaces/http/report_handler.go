package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quikfix/spares-api/internal/application/report"
)

// ReportHandler serves the admin dashboard summary.
type ReportHandler struct {
	uc *report.SummaryUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *report.SummaryUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Stock value, monthly throughput and low-stock alerts
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReportSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/admin/reports [get]
func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
