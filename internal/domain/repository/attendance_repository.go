package repository

import "github.com/jhoicas/asistencia-api/internal/domain/entity"

// AttendanceRepository puerto del libro de asistencia. Es append-only: no
// expone actualización ni borrado de registros confirmados.
type AttendanceRepository interface {
	Append(r *entity.AttendanceRecord) error
	// ListForDay registros confirmados de un (empleado, fecha civil).
	ListForDay(employeeID int, date string) ([]*entity.AttendanceRecord, error)
	// ListSince registros con fecha >= cutoff (YYYY-MM-DD); acota el escaneo
	// del detector de inconsistencias sin releer todo el historial.
	ListSince(cutoff string) ([]*entity.AttendanceRecord, error)
}
