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

var _ repository.JobTypeRepository = (*JobTypeRepo)(nil)

// JobTypeRepo implementación del puerto JobTypeRepository sobre PostgreSQL.
type JobTypeRepo struct {
	q Querier
}

// NewJobTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewJobTypeRepository(q Querier) *JobTypeRepo {
	return &JobTypeRepo{q: q}
}

// Create persiste un puesto nuevo.
func (r *JobTypeRepo) Create(j *entity.JobType) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO job_types (code, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`,
		j.Code, j.Name, j.CreatedAt, j.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el código %s ya existe", domain.ErrConflict, j.Code)
		}
		return fmt.Errorf("insert job type: %w", err)
	}
	return nil
}

// GetByCode obtiene un puesto por su clave.
func (r *JobTypeRepo) GetByCode(code string) (*entity.JobType, error) {
	return r.getBy(`SELECT code, name, created_at, updated_at FROM job_types WHERE code = $1`, code)
}

// GetByName obtiene un puesto por nombre visible (el panel legado referencia
// por nombre, no por código).
func (r *JobTypeRepo) GetByName(name string) (*entity.JobType, error) {
	return r.getBy(`SELECT code, name, created_at, updated_at FROM job_types WHERE name = $1`, name)
}

// List catálogo completo en orden de alta.
func (r *JobTypeRepo) List() ([]*entity.JobType, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT code, name, created_at, updated_at FROM job_types ORDER BY created_at, code`)
	if err != nil {
		return nil, fmt.Errorf("list job types: %w", err)
	}
	defer rows.Close()

	var out []*entity.JobType
	for rows.Next() {
		var j entity.JobType
		if err := rows.Scan(&j.Code, &j.Name, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan job type: %w", err)
		}
		out = append(out, &j)
	}
	return out, rows.Err()
}

// UpdateName renombra un puesto; la clave no cambia.
func (r *JobTypeRepo) UpdateName(code, name string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE job_types SET name = $2, updated_at = now() WHERE code = $1`, code, name)
	if err != nil {
		return fmt.Errorf("update job type: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: puesto %s", domain.ErrNotFound, code)
	}
	return nil
}

// Delete elimina un puesto. La comprobación de referencias activas es del
// caso de uso; aquí solo se borra la fila.
func (r *JobTypeRepo) Delete(code string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM job_types WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("delete job type: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: puesto %s", domain.ErrNotFound, code)
	}
	return nil
}

func (r *JobTypeRepo) getBy(query, arg string) (*entity.JobType, error) {
	var j entity.JobType
	err := r.q.QueryRow(context.Background(), query, arg).Scan(&j.Code, &j.Name, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job type: %w", err)
	}
	return &j, nil
}
