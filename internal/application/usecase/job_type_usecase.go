package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/asistencia-api/internal/application/dto"
	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
)

// JobTypeUseCase casos de uso del catálogo de puestos.
type JobTypeUseCase struct {
	jobs      repository.JobTypeRepository
	employees repository.EmployeeRepository
}

// NewJobTypeUseCase construye el caso de uso.
func NewJobTypeUseCase(jobs repository.JobTypeRepository, employees repository.EmployeeRepository) *JobTypeUseCase {
	return &JobTypeUseCase{jobs: jobs, employees: employees}
}

// Add crea un puesto. El código es la clave inmutable; se pliega el ancho
// completo porque el panel japonés lo teclea en zenkaku con frecuencia.
func (uc *JobTypeUseCase) Add(in dto.JobTypeRequest) (*dto.JobTypeResponse, error) {
	code := foldInput(in.Code)
	name := strings.TrimSpace(in.Name)
	if code == "" || name == "" {
		return nil, fmt.Errorf("%w: code y name son requeridos", domain.ErrInvalidInput)
	}
	existing, err := uc.jobs.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: el código %s ya existe", domain.ErrConflict, code)
	}
	now := time.Now()
	j := &entity.JobType{Code: code, Name: name, CreatedAt: now, UpdatedAt: now}
	if err := uc.jobs.Create(j); err != nil {
		return nil, err
	}
	return &dto.JobTypeResponse{Code: j.Code, Name: j.Name}, nil
}

// Update renombra un puesto existente; el código no cambia nunca.
func (uc *JobTypeUseCase) Update(in dto.JobTypeRequest) (*dto.JobTypeResponse, error) {
	code := foldInput(in.Code)
	name := strings.TrimSpace(in.Name)
	if code == "" || name == "" {
		return nil, fmt.Errorf("%w: code y name son requeridos", domain.ErrInvalidInput)
	}
	existing, err := uc.jobs.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: puesto %s", domain.ErrNotFound, code)
	}
	if err := uc.jobs.UpdateName(code, name); err != nil {
		return nil, err
	}
	return &dto.JobTypeResponse{Code: code, Name: name}, nil
}

// Delete elimina un puesto. Cerrado por defecto: mientras algún empleado
// activo lo referencie la operación se rechaza, y hay que reasignar o dar de
// baja a esos empleados primero.
func (uc *JobTypeUseCase) Delete(code string) error {
	code = foldInput(code)
	if code == "" {
		return fmt.Errorf("%w: code es requerido", domain.ErrInvalidInput)
	}
	existing, err := uc.jobs.GetByCode(code)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: puesto %s", domain.ErrNotFound, code)
	}
	n, err := uc.employees.CountActiveByJobCode(code)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: %d empleados activos usan el puesto %s", domain.ErrConflict, n, code)
	}
	return uc.jobs.Delete(code)
}

// List catálogo completo.
func (uc *JobTypeUseCase) List() ([]dto.JobTypeResponse, error) {
	list, err := uc.jobs.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.JobTypeResponse, 0, len(list))
	for _, j := range list {
		out = append(out, dto.JobTypeResponse{Code: j.Code, Name: j.Name})
	}
	return out, nil
}
