package attendance

import "github.com/jhoicas/asistencia-api/internal/domain/entity"

// Etiquetas de inconsistencia. Son contrato estable con el panel de
// administración: se muestran tal cual.
const (
	IssueMissingClockOut  = "missing clock_out"
	IssueMissingClockIn   = "missing clock_in"
	IssueClockOutBeforeIn = "clock_out before clock_in"
	IssueExcessiveBreak   = "excessive break"
)

// ClassifyDay examina los registros confirmados de un (empleado, fecha) y
// devuelve las etiquetas aplicables en orden estable; vacío si el día es
// consistente. La detección es solo consultiva: nada de lo que marque aquí
// bloquea escrituras. today es la fecha civil de referencia del negocio
// (YYYY-MM-DD); un clock_out ausente solo es incidencia en días
// estrictamente anteriores, porque el día en curso puede seguir abierto.
func ClassifyDay(date string, records []*entity.AttendanceRecord, today string, breakCeilingMinutes int) []string {
	var (
		clockIn, clockOut *entity.AttendanceRecord
		breakTotal        int
	)
	for _, r := range records {
		switch r.Type {
		case entity.RecordClockIn:
			clockIn = r
		case entity.RecordClockOut:
			clockOut = r
		case entity.RecordBreakDuration:
			breakTotal += r.BreakMinutes
		}
	}

	var issues []string
	if clockIn != nil && clockOut == nil && date < today {
		issues = append(issues, IssueMissingClockOut)
	}
	if clockOut != nil && clockIn == nil {
		issues = append(issues, IssueMissingClockIn)
	}
	// Comparación lexicográfica: válida para HH:MM con cero a la izquierda.
	if clockIn != nil && clockOut != nil && clockOut.ClockTime < clockIn.ClockTime {
		issues = append(issues, IssueClockOutBeforeIn)
	}
	if breakCeilingMinutes > 0 && breakTotal > breakCeilingMinutes {
		issues = append(issues, IssueExcessiveBreak)
	}
	return issues
}
