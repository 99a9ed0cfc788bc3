// Package attendance casos de uso del libro de asistencia: confirmación
// transaccional de registros y escaneo de inconsistencias.
package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/asistencia-api/internal/application/dto"
	"github.com/jhoicas/asistencia-api/internal/domain"
	domattendance "github.com/jhoicas/asistencia-api/internal/domain/attendance"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
)

// SaveRecordUseCase valida y confirma registros de asistencia. Las
// submissions concurrentes sobre el mismo (empleado, fecha) se serializan
// con un candado por clave además de la transacción de BD, para que no haya
// marcajes duplicados ni días de vacaciones gastados dos veces.
type SaveRecordUseCase struct {
	txRunner  TxRunner
	employees repository.EmployeeRepository
	keys      keyedMutex
}

// NewSaveRecordUseCase construye el caso de uso.
func NewSaveRecordUseCase(txRunner TxRunner, employees repository.EmployeeRepository) *SaveRecordUseCase {
	return &SaveRecordUseCase{txRunner: txRunner, employees: employees}
}

// Save aplica las reglas de negocio en orden (la primera falla gana) y, si
// todo pasa, confirma el registro (y el débito de vacaciones cuando es
// paid_vacation) como unidad atómica.
func (uc *SaveRecordUseCase) Save(ctx context.Context, in dto.SaveWorkRecordRequest) (*entity.AttendanceRecord, error) {
	// Regla 1: el empleado debe existir y estar activo.
	e, err := uc.employees.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if e == nil || !e.IsActive() {
		return nil, fmt.Errorf("%w: empleado %d", domain.ErrNotFound, in.EmployeeID)
	}

	// Regla 2: fecha y hora interpretables, antes de validar tipo y campos.
	if _, err := time.Parse(domattendance.DateLayout, in.TargetDate); err != nil {
		return nil, fmt.Errorf("%w: fecha %q", domain.ErrMalformedInput, in.TargetDate)
	}
	if _, err := time.Parse(domattendance.TimeLayout, in.TargetTime); err != nil {
		return nil, fmt.Errorf("%w: hora %q", domain.ErrMalformedInput, in.TargetTime)
	}

	rt, ok := entity.ParseRecordType(in.TargetType)
	if !ok {
		return nil, fmt.Errorf("%w: target_type %q", domain.ErrInvalidInput, in.TargetType)
	}

	cand := domattendance.Candidate{
		EmployeeID: in.EmployeeID,
		Date:       in.TargetDate,
		ClockTime:  in.TargetTime,
		Type:       rt,
	}
	switch rt {
	case entity.RecordPaidVacation:
		// Las vacaciones pagadas marcan el día completo; la hora es fija.
		cand.ClockTime = domattendance.MidnightTime
	case entity.RecordBreakDuration:
		if in.BreakDuration == nil {
			return nil, fmt.Errorf("%w: break_duration es requerido", domain.ErrInvalidInput)
		}
		cand.BreakMinutes = *in.BreakDuration
	}

	unlock := uc.keys.lock(recordKey(in.EmployeeID, in.TargetDate))
	defer unlock()

	rec := &entity.AttendanceRecord{
		ID:           uuid.New().String(),
		EmployeeID:   cand.EmployeeID,
		Date:         cand.Date,
		Type:         cand.Type,
		ClockTime:    cand.ClockTime,
		BreakMinutes: cand.BreakMinutes,
		CreatedAt:    time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(
		records repository.AttendanceRepository,
		vacations repository.VacationRepository,
	) error {
		committed, err := records.ListForDay(cand.EmployeeID, cand.Date)
		if err != nil {
			return err
		}
		if err := domattendance.ValidateCandidate(cand, committed); err != nil {
			return err
		}
		if rt == entity.RecordPaidVacation {
			if err := vacations.Reserve(cand.EmployeeID, cand.Date); err != nil {
				return err
			}
		}
		return records.Append(rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func recordKey(employeeID int, date string) string {
	return fmt.Sprintf("%d/%s", employeeID, date)
}
