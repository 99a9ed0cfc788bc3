// Package pdf implementa el informe imprimible de inconsistencias de
// marcaje: el panel de administración lo imprime para la revisión mensual.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Número | Nombre | Fecha | Incidencias                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de días señalados + nota                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appattendance "github.com/jhoicas/asistencia-api/internal/application/attendance"
	"github.com/jhoicas/asistencia-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appattendance.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa attendance.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInconsistencyReport genera el PDF y devuelve sus bytes. Los
// findings llegan ya ordenados por número de empleado y fecha.
func (g *MarotoReportGenerator) GenerateInconsistencyReport(
	_ context.Context,
	generatedAt time.Time,
	findings []dto.InconsistencyResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de inconsistencias de marcaje", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(findings) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin inconsistencias en la ventana analizada.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	for _, r := range tableRows(findings) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(findings)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del informe + fecha de generación.
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("INCONSISTENCIAS DE MARCAJE", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Revisión de registros de asistencia", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de incidencias.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Número", 2, align.Left),
		h("Nombre", 3, align.Left),
		h("Fecha", 2, align.Center),
		h("Incidencias", 5, align.Left),
	)
}

// tableRows: una fila por (empleado, fecha) señalado.
func tableRows(findings []dto.InconsistencyResponse) []core.Row {
	result := make([]core.Row, 0, len(findings))
	for _, f := range findings {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				f.EmployeeNumber,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				f.EmployeeName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				f.Date,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				strings.Join(f.Issues, ", "),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// footerRow: total y nota sobre el carácter consultivo del informe.
func footerRow(total int) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Días señalados: %d", total), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1,
		}),
		text.New(
			"El detector es consultivo: las incidencias no bloquean registros "+
				"y el informe se recalcula íntegro desde el libro de asistencia.",
			props.Text{Size: 6.5, Color: colorGray, Top: 7},
		),
	))
}
