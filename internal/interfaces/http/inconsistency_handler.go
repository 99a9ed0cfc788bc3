package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appattendance "github.com/jhoicas/asistencia-api/internal/application/attendance"
)

// InconsistencyHandler expone el detector de inconsistencias y su informe
// imprimible.
type InconsistencyHandler struct {
	scan   *appattendance.InconsistencyUseCase
	report appattendance.ReportGenerator
}

// NewInconsistencyHandler construye el handler.
func NewInconsistencyHandler(scan *appattendance.InconsistencyUseCase, report appattendance.ReportGenerator) *InconsistencyHandler {
	return &InconsistencyHandler{scan: scan, report: report}
}

// List godoc
// @Summary      Días con inconsistencias de marcaje
// @Description  Solo lectura y rederivable: se recalcula desde el libro de asistencia en cada llamada.
// @Tags         attendance
// @Produce      json
// @Success      200  {array}  dto.InconsistencyResponse
// @Router       /api/inconsistencies [get]
func (h *InconsistencyHandler) List(c *fiber.Ctx) error {
	out, err := h.scan.Scan()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Informe PDF de inconsistencias
// @Tags         attendance
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/inconsistencies/report [get]
func (h *InconsistencyHandler) Report(c *fiber.Ctx) error {
	findings, err := h.scan.Scan()
	if err != nil {
		return errorJSON(c, err)
	}
	pdf, err := h.report.GenerateInconsistencyReport(c.UserContext(), time.Now(), findings)
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inconsistencias.pdf"`)
	return c.Send(pdf)
}
