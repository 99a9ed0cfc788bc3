package repository

import "github.com/jhoicas/asistencia-api/internal/domain/entity"

// EmployeeRepository puerto de persistencia del directorio de empleados (DIP).
type EmployeeRepository interface {
	// Create persiste la ficha y asigna ID y el siguiente Number secuencial.
	Create(e *entity.Employee) error
	GetByID(id int) (*entity.Employee, error)
	GetByNumber(number string) (*entity.Employee, error)
	// ListActive devuelve los empleados no ocultos en orden de alta.
	ListActive() ([]*entity.Employee, error)
	// List devuelve todas las fichas en orden de alta, ocultas incluidas
	// (la auditoría de asistencia cubre también a los retirados).
	List() ([]*entity.Employee, error)
	// SetHidden marca la baja lógica; la fila se conserva.
	SetHidden(id int) error
	CountActiveByJobCode(code string) (int, error)
}
