package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/width"

	"github.com/jhoicas/asistencia-api/internal/application/dto"
	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/attendance"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
	"github.com/jhoicas/asistencia-api/internal/domain/vacation"
)

// DefaultMaxAttendanceCount tope diario de registros cuando el alta no lo
// especifica (el panel legado envía 20 fijo).
const DefaultMaxAttendanceCount = 20

// EmployeeUseCase casos de uso del directorio de empleados.
type EmployeeUseCase struct {
	employees repository.EmployeeRepository
	jobs      repository.JobTypeRepository
	vacations repository.VacationRepository
}

// NewEmployeeUseCase construye el caso de uso con los puertos de persistencia.
func NewEmployeeUseCase(
	employees repository.EmployeeRepository,
	jobs repository.JobTypeRepository,
	vacations repository.VacationRepository,
) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees, jobs: jobs, vacations: vacations}
}

// Add da de alta un empleado: valida el puesto contra el catálogo, exige los
// campos de personal por horas cuando aplica, asigna el siguiente número
// secuencial e inicializa su saldo de vacaciones.
func (uc *EmployeeUseCase) Add(in dto.AddEmployeeRequest) (*dto.AddEmployeeResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}

	et, ok := entity.ParseEmploymentType(in.EmploymentType)
	if !ok {
		return nil, fmt.Errorf("%w: employment_type %q", domain.ErrInvalidInput, in.EmploymentType)
	}

	job, err := uc.jobs.GetByName(strings.TrimSpace(in.Job))
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, fmt.Errorf("%w: el puesto %q no existe en el catálogo", domain.ErrInvalidInput, in.Job)
	}

	wage := decimal.Zero
	expense := decimal.Zero
	if et == entity.EmploymentHourly {
		if in.HourlyWage.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: hourly_wage es requerido para personal por horas", domain.ErrInvalidInput)
		}
		if in.TransportationExpense.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: transportation_expense no puede ser negativo", domain.ErrInvalidInput)
		}
		wage = in.HourlyWage
		expense = in.TransportationExpense
	}

	if in.PaidVacationLimit < 0 {
		return nil, fmt.Errorf("%w: paid_vacation_limit no puede ser negativo", domain.ErrInvalidInput)
	}

	grant, err := resolveGrantDate(in)
	if err != nil {
		return nil, err
	}

	maxCount := in.MaxAttendanceCount
	if maxCount <= 0 {
		maxCount = DefaultMaxAttendanceCount
	}

	now := time.Now()
	e := &entity.Employee{
		Name:                  name,
		JobCode:               job.Code,
		JobName:               job.Name,
		EmploymentType:        et,
		HourlyWage:            wage,
		TransportationExpense: expense,
		MaxAttendanceCount:    maxCount,
		PaidVacationLimit:     in.PaidVacationLimit,
		VacationGrantDate:     grant,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := uc.employees.Create(e); err != nil {
		return nil, err
	}
	if err := uc.vacations.Init(&entity.VacationBalance{
		EmployeeID:  e.ID,
		Granted:     in.PaidVacationLimit,
		PeriodStart: grant,
		UpdatedAt:   now,
	}); err != nil {
		return nil, err
	}
	return &dto.AddEmployeeResponse{EmployeeNumber: e.Number, Name: e.Name}, nil
}

// SoftDelete baja lógica por número. Es idempotente: repetir la baja de un
// empleado ya oculto es un éxito sin efecto.
func (uc *EmployeeUseCase) SoftDelete(number string) error {
	number = foldInput(number)
	if number == "" {
		return fmt.Errorf("%w: employee_number es requerido", domain.ErrInvalidInput)
	}
	e, err := uc.employees.GetByNumber(number)
	if err != nil {
		return err
	}
	if e == nil {
		return fmt.Errorf("%w: empleado %s", domain.ErrNotFound, number)
	}
	if !e.IsActive() {
		return nil
	}
	return uc.employees.SetHidden(e.ID)
}

// ListActive empleados visibles en orden de alta. Nunca incluye números con
// prefijo reservado ni fichas con baja lógica.
func (uc *EmployeeUseCase) ListActive() ([]dto.EmployeeResponse, error) {
	list, err := uc.employees.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.EmployeeResponse{
			ID:             e.ID,
			EmployeeNumber: e.Number,
			Name:           e.Name,
			Job:            e.JobName,
			JobCode:        e.JobCode,
		})
	}
	return out, nil
}

// resolveGrantDate toma la fecha de concesión del request o la deriva de
// join_date + 6 meses calendario cuando solo llega la incorporación.
func resolveGrantDate(in dto.AddEmployeeRequest) (time.Time, error) {
	if s := strings.TrimSpace(in.PaidVacationGrantDate); s != "" {
		t, err := time.Parse(attendance.DateLayout, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: paid_vacation_grant_date %q", domain.ErrMalformedInput, s)
		}
		return t, nil
	}
	if s := strings.TrimSpace(in.JoinDate); s != "" {
		t, err := time.Parse(attendance.DateLayout, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: join_date %q", domain.ErrMalformedInput, s)
		}
		return vacation.GrantDate(t), nil
	}
	return time.Time{}, fmt.Errorf("%w: falta paid_vacation_grant_date o join_date", domain.ErrInvalidInput)
}

// foldInput normaliza texto de formularios japoneses: pliega los caracteres
// de ancho completo (全角) a su forma estrecha y recorta espacios.
func foldInput(s string) string {
	return strings.TrimSpace(width.Fold.String(s))
}
