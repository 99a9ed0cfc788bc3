package repository

import "github.com/jhoicas/asistencia-api/internal/domain/entity"

// JobTypeRepository puerto de persistencia del catálogo de puestos.
type JobTypeRepository interface {
	Create(j *entity.JobType) error
	GetByCode(code string) (*entity.JobType, error)
	GetByName(name string) (*entity.JobType, error)
	List() ([]*entity.JobType, error)
	UpdateName(code, name string) error
	Delete(code string) error
}
