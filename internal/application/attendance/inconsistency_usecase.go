package attendance

import (
	"sort"
	"time"

	"github.com/jhoicas/asistencia-api/internal/application/dto"
	domattendance "github.com/jhoicas/asistencia-api/internal/domain/attendance"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
)

// ScanConfig parámetros del detector de inconsistencias.
type ScanConfig struct {
	// BreakCeilingMinutes techo diario de descanso; por encima se marca
	// "excessive break". Solo consultivo: la escritura nunca se bloquea.
	BreakCeilingMinutes int
	// WindowDays días hacia atrás que cubre el escaneo.
	WindowDays int
	// Location zona horaria del negocio: de aquí sale el "hoy" del escaneo.
	// Las fechas de los registros siguen siendo las que envió el cliente.
	Location *time.Location
	// Now inyectable en tests; nil usa time.Now.
	Now func() time.Time
}

// InconsistencyUseCase recalcula las incidencias por (empleado, fecha) desde
// el libro de asistencia. Es de solo lectura y no guarda estado propio:
// ejecutarlo dos veces sobre el mismo libro produce el mismo resultado.
type InconsistencyUseCase struct {
	employees repository.EmployeeRepository
	records   repository.AttendanceRepository
	cfg       ScanConfig
}

// NewInconsistencyUseCase construye el detector.
func NewInconsistencyUseCase(
	employees repository.EmployeeRepository,
	records repository.AttendanceRepository,
	cfg ScanConfig,
) *InconsistencyUseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &InconsistencyUseCase{employees: employees, records: records, cfg: cfg}
}

type dayKey struct {
	employeeID int
	date       string
}

// Scan devuelve los días con incidencias dentro de la ventana, ordenados
// por número de empleado y fecha ascendentes. Los días sin incidencias se
// omiten. La auditoría cubre también a los empleados retirados: sus
// jornadas sin resolver siguen apareciendo, con el número prefijado que
// muestra el panel legado.
func (uc *InconsistencyUseCase) Scan() ([]dto.InconsistencyResponse, error) {
	now := uc.cfg.Now().In(uc.cfg.Location)
	today := now.Format(domattendance.DateLayout)
	cutoff := now.AddDate(0, 0, -uc.cfg.WindowDays).Format(domattendance.DateLayout)

	all, err := uc.employees.List()
	if err != nil {
		return nil, err
	}
	byID := make(map[int]*entity.Employee, len(all))
	for _, e := range all {
		byID[e.ID] = e
	}

	recs, err := uc.records.ListSince(cutoff)
	if err != nil {
		return nil, err
	}
	days := make(map[dayKey][]*entity.AttendanceRecord)
	for _, r := range recs {
		if _, ok := byID[r.EmployeeID]; !ok {
			continue
		}
		k := dayKey{employeeID: r.EmployeeID, date: r.Date}
		days[k] = append(days[k], r)
	}

	findings := make([]dto.InconsistencyResponse, 0)
	for k, rs := range days {
		issues := domattendance.ClassifyDay(k.date, rs, today, uc.cfg.BreakCeilingMinutes)
		if len(issues) == 0 {
			continue
		}
		e := byID[k.employeeID]
		findings = append(findings, dto.InconsistencyResponse{
			EmployeeNumber: e.DisplayNumber(),
			EmployeeName:   e.Name,
			Date:           k.date,
			Issues:         issues,
		})
	}

	sort.Slice(findings, func(i, j int) bool {
		if findings[i].EmployeeNumber != findings[j].EmployeeNumber {
			return findings[i].EmployeeNumber < findings[j].EmployeeNumber
		}
		return findings[i].Date < findings[j].Date
	})
	return findings, nil
}
