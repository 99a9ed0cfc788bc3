package repository

import "github.com/jhoicas/asistencia-api/internal/domain/entity"

// VacationRepository puerto del libro de vacaciones pagadas.
type VacationRepository interface {
	// Init crea el saldo del empleado al darlo de alta, con el período de
	// consumo anclado en su fecha de concesión.
	Init(b *entity.VacationBalance) error
	Get(employeeID int) (*entity.VacationBalance, error)
	// Reserve descuenta un día para la fecha civil dada (YYYY-MM-DD) de
	// forma atómica. Rechaza fechas anteriores a la concesión del empleado;
	// cuando la fecha cae en un período anual posterior al vigente, el
	// consumo arranca de cero en ese período. Devuelve
	// domain.ErrInsufficientBalance si el período no tiene días libres;
	// nunca deja el consumo por encima de lo concedido bajo concurrencia.
	Reserve(employeeID int, date string) error
}
