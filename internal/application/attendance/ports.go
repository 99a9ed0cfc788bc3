package attendance

import (
	"context"
	"time"

	"github.com/jhoicas/asistencia-api/internal/application/dto"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que el alta del registro y el débito de
// vacaciones sean una unidad atómica: o se confirman ambos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		records repository.AttendanceRepository,
		vacations repository.VacationRepository,
	) error) error
}

// ReportGenerator puerto de generación del informe imprimible de
// inconsistencias.
type ReportGenerator interface {
	GenerateInconsistencyReport(ctx context.Context, generatedAt time.Time, findings []dto.InconsistencyResponse) ([]byte, error)
}
