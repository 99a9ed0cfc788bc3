package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

// AttendanceRepo implementación append-only del libro de asistencia sobre
// PostgreSQL. El índice único parcial sobre (employee_id, date, type) para
// clock_in/clock_out es el cinturón de seguridad contra duplicados que
// lleguen desde otro proceso.
type AttendanceRepo struct {
	q Querier
}

// NewAttendanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAttendanceRepository(q Querier) *AttendanceRepo {
	return &AttendanceRepo{q: q}
}

// Append inserta un registro confirmado. Nunca actualiza ni borra.
func (r *AttendanceRepo) Append(rec *entity.AttendanceRecord) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO attendance_records (id, employee_id, date, type, clock_time, break_minutes, created_at)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7)`,
		rec.ID, rec.EmployeeID, rec.Date, string(rec.Type), rec.ClockTime, rec.BreakMinutes, rec.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: evento de marcaje duplicado (%s)", domain.ErrConflict, rec.Type)
		}
		return fmt.Errorf("insert attendance record: %w", err)
	}
	return nil
}

const recordColumns = `id, employee_id, to_char(date, 'YYYY-MM-DD'), type, clock_time, break_minutes, created_at`

// ListForDay registros confirmados de un (empleado, fecha civil).
func (r *AttendanceRepo) ListForDay(employeeID int, date string) ([]*entity.AttendanceRecord, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT `+recordColumns+`
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2::date
		ORDER BY created_at`,
		employeeID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("list records for day: %w", err)
	}
	return collectRecords(rows)
}

// ListSince registros con fecha >= cutoff, para acotar el escaneo del
// detector a la ventana reciente.
func (r *AttendanceRepo) ListSince(cutoff string) ([]*entity.AttendanceRecord, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT `+recordColumns+`
		FROM attendance_records
		WHERE date >= $1::date
		ORDER BY employee_id, date, created_at`,
		cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("list records since: %w", err)
	}
	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]*entity.AttendanceRecord, error) {
	defer rows.Close()
	var out []*entity.AttendanceRecord
	for rows.Next() {
		var rec entity.AttendanceRecord
		var t string
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &t, &rec.ClockTime, &rec.BreakMinutes, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan attendance record: %w", err)
		}
		rec.Type = entity.RecordType(t)
		out = append(out, &rec)
	}
	return out, rows.Err()
}
