package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/attendance"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
	"github.com/jhoicas/asistencia-api/internal/domain/vacation"
)

var _ repository.VacationRepository = (*VacationRepo)(nil)

// VacationRepo implementación del libro de vacaciones sobre PostgreSQL.
type VacationRepo struct {
	q Querier
}

// NewVacationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVacationRepository(q Querier) *VacationRepo {
	return &VacationRepo{q: q}
}

// Init crea el saldo del empleado al alta.
func (r *VacationRepo) Init(b *entity.VacationBalance) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO vacation_balances (employee_id, granted, consumed, period_start, updated_at)
		VALUES ($1, $2, 0, $3, $4)`,
		b.EmployeeID, b.Granted, b.PeriodStart, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el empleado %d ya tiene saldo", domain.ErrConflict, b.EmployeeID)
		}
		return fmt.Errorf("insert vacation balance: %w", err)
	}
	return nil
}

// Get obtiene el saldo; nil si el empleado no tiene fila.
func (r *VacationRepo) Get(employeeID int) (*entity.VacationBalance, error) {
	var b entity.VacationBalance
	err := r.q.QueryRow(context.Background(), `
		SELECT employee_id, granted, consumed, period_start, updated_at
		FROM vacation_balances WHERE employee_id = $1`,
		employeeID,
	).Scan(&b.EmployeeID, &b.Granted, &b.Consumed, &b.PeriodStart, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vacation balance: %w", err)
	}
	return &b, nil
}

// Reserve descuenta un día para la fecha dada. La habilitación y el período
// anual salen de la fecha de concesión del empleado; el UPDATE condicional
// dentro del mismo statement hace la operación linealizable, sin doble gasto
// bajo submissions concurrentes. Cuando la fecha cae en un período posterior
// al vigente, el consumo se reinicia a cero antes de descontar.
func (r *VacationRepo) Reserve(employeeID int, date string) error {
	day, err := time.Parse(attendance.DateLayout, date)
	if err != nil {
		return fmt.Errorf("%w: fecha %q", domain.ErrMalformedInput, date)
	}

	var grant time.Time
	err = r.q.QueryRow(context.Background(),
		`SELECT vacation_grant_date FROM employees WHERE id = $1`, employeeID,
	).Scan(&grant)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: empleado %d", domain.ErrNotFound, employeeID)
		}
		return fmt.Errorf("get grant date: %w", err)
	}

	periodStart, ok := vacation.PeriodStart(grant, day)
	if !ok {
		return fmt.Errorf("%w: la fecha %s es anterior a la concesión de vacaciones (%s)",
			domain.ErrInvalidInput, date, grant.Format(attendance.DateLayout))
	}

	cmd, err := r.q.Exec(context.Background(), `
		UPDATE vacation_balances
		SET consumed = CASE WHEN period_start = $2 THEN consumed + 1 ELSE 1 END,
		    period_start = $2,
		    updated_at = now()
		WHERE employee_id = $1
		  AND granted > 0
		  AND (period_start <> $2 OR consumed < granted)`,
		employeeID, periodStart,
	)
	if err != nil {
		return fmt.Errorf("reserve vacation day: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		b, err := r.Get(employeeID)
		if err != nil {
			return err
		}
		if b == nil {
			return fmt.Errorf("%w: saldo de vacaciones del empleado %d", domain.ErrNotFound, employeeID)
		}
		return fmt.Errorf("%w: 0 de %d días disponibles", domain.ErrInsufficientBalance, b.Granted)
	}
	return nil
}
