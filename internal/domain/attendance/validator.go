// Package attendance lógica pura del libro de asistencia: validación de
// registros entrantes y clasificación de inconsistencias por día.
package attendance

import (
	"fmt"
	"time"

	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
)

// Formatos del contrato API: fecha civil y hora local de 24h.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	// MidnightTime hora fijada para los registros paid_vacation.
	MidnightTime = "00:00"
)

// Candidate registro entrante aún no confirmado.
type Candidate struct {
	EmployeeID   int
	Date         string
	ClockTime    string
	Type         entity.RecordType
	BreakMinutes int
}

// ValidateCandidate aplica las reglas de negocio en orden (la primera falla
// gana) sobre el candidato y los registros ya confirmados de ese
// (empleado, fecha). La existencia del empleado se comprueba antes, y el
// débito de vacaciones después: reservar saldo es responsabilidad del caso
// de uso transaccional, no de esta función.
func ValidateCandidate(c Candidate, committed []*entity.AttendanceRecord) error {
	if _, err := time.Parse(DateLayout, c.Date); err != nil {
		return fmt.Errorf("%w: fecha %q", domain.ErrMalformedInput, c.Date)
	}
	if _, err := time.Parse(TimeLayout, c.ClockTime); err != nil {
		return fmt.Errorf("%w: hora %q", domain.ErrMalformedInput, c.ClockTime)
	}

	// Validación de tipo y campos antes de mirar el estado del día.
	switch c.Type {
	case entity.RecordBreakDuration:
		if c.BreakMinutes < 0 {
			return fmt.Errorf("%w: la duración del descanso debe ser un entero de minutos no negativo", domain.ErrInvalidInput)
		}
	case entity.RecordClockIn, entity.RecordClockOut, entity.RecordPaidVacation:
	default:
		return fmt.Errorf("%w: tipo de registro %q", domain.ErrInvalidInput, c.Type)
	}

	// Un día marcado como vacaciones pagadas no admite ningún otro registro.
	for _, r := range committed {
		if r.Type == entity.RecordPaidVacation {
			return fmt.Errorf("%w: el día %s ya está registrado como vacaciones pagadas", domain.ErrConflict, c.Date)
		}
	}

	switch c.Type {
	case entity.RecordClockIn, entity.RecordClockOut:
		for _, r := range committed {
			if r.Type == c.Type {
				return fmt.Errorf("%w: evento de marcaje duplicado (%s)", domain.ErrConflict, c.Type)
			}
		}
	case entity.RecordPaidVacation:
		// Exclusión mutua: vacaciones pagadas marcan el día completo.
		if len(committed) > 0 {
			return fmt.Errorf("%w: el día %s ya tiene marcajes registrados", domain.ErrConflict, c.Date)
		}
	}
	return nil
}
