package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EmploymentType modalidad de contratación.
type EmploymentType string

const (
	EmploymentSalaried EmploymentType = "salaried"
	EmploymentHourly   EmploymentType = "hourly"
)

// Etiquetas que el cliente japonés legado sigue enviando en employment_type.
const (
	legacyLabelSalaried = "正社員"
	legacyLabelHourly   = "パート"
)

// ParseEmploymentType acepta el valor canónico o la etiqueta legada.
func ParseEmploymentType(s string) (EmploymentType, bool) {
	switch strings.TrimSpace(s) {
	case string(EmploymentSalaried), legacyLabelSalaried:
		return EmploymentSalaried, true
	case string(EmploymentHourly), legacyLabelHourly:
		return EmploymentHourly, true
	}
	return "", false
}

// HiddenPrefixes prefijos reservados de número de empleado que marcan filas
// ocultas/retiradas en los datos legados. Las filas nuevas usan el campo
// Hidden; el prefijo solo sobrevive en la frontera de serialización.
var HiddenPrefixes = []string{"ZZ", "ZY"}

// HasHiddenPrefix indica si un número de empleado lleva un prefijo reservado.
func HasHiddenPrefix(number string) bool {
	for _, p := range HiddenPrefixes {
		if strings.HasPrefix(number, p) {
			return true
		}
	}
	return false
}

// Employee ficha del directorio de personal. Number es único e inmutable una
// vez asignado; la baja es lógica (Hidden), la fila se conserva para
// auditoría e historial.
type Employee struct {
	ID                    int
	Number                string
	Name                  string
	JobCode               string
	JobName               string // denormalizado en lecturas (join con job_types)
	EmploymentType        EmploymentType
	HourlyWage            decimal.Decimal // solo hourly
	TransportationExpense decimal.Decimal // solo hourly
	MaxAttendanceCount    int
	PaidVacationLimit     int // días por período anual
	VacationGrantDate     time.Time
	Hidden                bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// IsActive indica si el empleado aparece en listados y puede registrar
// asistencia. Las filas legadas con prefijo reservado cuentan como ocultas
// aunque no tengan el flag.
func (e *Employee) IsActive() bool {
	return !e.Hidden && !HasHiddenPrefix(e.Number)
}

// DisplayNumber número con el prefijo reservado legado cuando el empleado
// está oculto. Solo para salidas de compatibilidad; el número almacenado no
// se reescribe.
func (e *Employee) DisplayNumber() string {
	if e.Hidden && !HasHiddenPrefix(e.Number) {
		return HiddenPrefixes[0] + e.Number
	}
	return e.Number
}
