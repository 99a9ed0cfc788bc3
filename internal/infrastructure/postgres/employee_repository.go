package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL
// (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `
	e.id, e.number, e.name, e.job_code, j.name,
	e.employment_type, e.hourly_wage, e.transportation_expense,
	e.max_attendance_count, e.paid_vacation_limit, e.vacation_grant_date,
	e.hidden, e.created_at, e.updated_at`

// Create inserta la ficha asignando número desde la secuencia dedicada
// (cero-rellenado a 4 dígitos, como los números legados).
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	query := `
		INSERT INTO employees (number, name, job_code, employment_type, hourly_wage, transportation_expense,
			max_attendance_count, paid_vacation_limit, vacation_grant_date, hidden, created_at, updated_at)
		VALUES (lpad(nextval('employee_number_seq')::text, 4, '0'), $1, $2, $3, $4, $5, $6, $7, $8, FALSE, $9, $10)
		RETURNING id, number`
	err := r.q.QueryRow(context.Background(), query,
		e.Name, e.JobCode, string(e.EmploymentType), e.HourlyWage, e.TransportationExpense,
		e.MaxAttendanceCount, e.PaidVacationLimit, e.VacationGrantDate, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID, &e.Number)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número de empleado ya asignado", domain.ErrConflict)
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene la ficha con el nombre del puesto resuelto.
func (r *EmployeeRepo) GetByID(id int) (*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e JOIN job_types j ON j.code = e.job_code
		WHERE e.id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByNumber obtiene la ficha por número visible.
func (r *EmployeeRepo) GetByNumber(number string) (*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e JOIN job_types j ON j.code = e.job_code
		WHERE e.number = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, number))
}

// ListActive empleados visibles en orden de alta. El filtro por prefijo
// cubre las filas legadas que llegaron con ZZ/ZY en vez del flag.
func (r *EmployeeRepo) ListActive() ([]*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e JOIN job_types j ON j.code = e.job_code
		WHERE NOT e.hidden AND e.number NOT LIKE 'ZZ%' AND e.number NOT LIKE 'ZY%'
		ORDER BY e.id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var out []*entity.Employee
	for rows.Next() {
		e, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// List todas las fichas en orden de alta, ocultas incluidas.
func (r *EmployeeRepo) List() ([]*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e JOIN job_types j ON j.code = e.job_code
		ORDER BY e.id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all employees: %w", err)
	}
	defer rows.Close()

	var out []*entity.Employee
	for rows.Next() {
		e, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// SetHidden marca la baja lógica.
func (r *EmployeeRepo) SetHidden(id int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE employees SET hidden = TRUE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("hide employee: %w", err)
	}
	return nil
}

// CountActiveByJobCode empleados activos que referencian un puesto.
func (r *EmployeeRepo) CountActiveByJobCode(code string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `
		SELECT count(*) FROM employees
		WHERE job_code = $1 AND NOT hidden AND number NOT LIKE 'ZZ%' AND number NOT LIKE 'ZY%'`,
		code,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count employees by job: %w", err)
	}
	return n, nil
}

func (r *EmployeeRepo) scanOne(row pgx.Row) (*entity.Employee, error) {
	e, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepo) scanRow(rows pgx.Rows) (*entity.Employee, error) {
	e, err := scanEmployee(rows)
	if err != nil {
		return nil, fmt.Errorf("scan employee: %w", err)
	}
	return e, nil
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	var et string
	err := row.Scan(
		&e.ID, &e.Number, &e.Name, &e.JobCode, &e.JobName,
		&et, &e.HourlyWage, &e.TransportationExpense,
		&e.MaxAttendanceCount, &e.PaidVacationLimit, &e.VacationGrantDate,
		&e.Hidden, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.EmploymentType = entity.EmploymentType(et)
	return &e, nil
}
