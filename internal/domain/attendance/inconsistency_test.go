package attendance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/asistencia-api/internal/domain/attendance"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
)

const (
	testToday   = "2026-08-30"
	testCeiling = 120
)

func classify(records []*entity.AttendanceRecord) []string {
	return attendance.ClassifyDay("2026-08-20", records, testToday, testCeiling)
}

func TestClassifyDay_DiaConsistente(t *testing.T) {
	issues := classify([]*entity.AttendanceRecord{
		rec(entity.RecordClockIn, "09:00", 0),
		rec(entity.RecordBreakDuration, "12:00", 60),
		rec(entity.RecordClockOut, "18:00", 0),
	})
	assert.Empty(t, issues)
}

func TestClassifyDay_DiaVacioSinIncidencias(t *testing.T) {
	assert.Empty(t, classify(nil))
}

func TestClassifyDay_SalidaAusente(t *testing.T) {
	issues := classify([]*entity.AttendanceRecord{rec(entity.RecordClockIn, "09:00", 0)})
	assert.Equal(t, []string{attendance.IssueMissingClockOut}, issues)
}

// El día en curso puede seguir abierto: entrada sin salida hoy no es
// incidencia todavía.
func TestClassifyDay_SalidaAusenteSoloEnDiasPasados(t *testing.T) {
	records := []*entity.AttendanceRecord{rec(entity.RecordClockIn, "09:00", 0)}

	assert.Empty(t, attendance.ClassifyDay(testToday, records, testToday, testCeiling))
	assert.Empty(t, attendance.ClassifyDay("2026-09-01", records, testToday, testCeiling),
		"una fecha futura tampoco cuenta como jornada sin cerrar")
	assert.NotEmpty(t, attendance.ClassifyDay("2026-08-29", records, testToday, testCeiling))
}

func TestClassifyDay_EntradaAusente(t *testing.T) {
	issues := classify([]*entity.AttendanceRecord{rec(entity.RecordClockOut, "18:00", 0)})
	assert.Equal(t, []string{attendance.IssueMissingClockIn}, issues)

	// A diferencia de la salida, la entrada ausente se marca también hoy.
	issues = attendance.ClassifyDay(testToday,
		[]*entity.AttendanceRecord{rec(entity.RecordClockOut, "18:00", 0)}, testToday, testCeiling)
	assert.Equal(t, []string{attendance.IssueMissingClockIn}, issues)
}

func TestClassifyDay_SalidaAntesDeEntrada(t *testing.T) {
	issues := classify([]*entity.AttendanceRecord{
		rec(entity.RecordClockIn, "18:00", 0),
		rec(entity.RecordClockOut, "09:00", 0),
	})
	assert.Equal(t, []string{attendance.IssueClockOutBeforeIn}, issues)
}

func TestClassifyDay_SalidaIgualAEntradaEsValida(t *testing.T) {
	issues := classify([]*entity.AttendanceRecord{
		rec(entity.RecordClockIn, "09:00", 0),
		rec(entity.RecordClockOut, "09:00", 0),
	})
	assert.Empty(t, issues)
}

func TestClassifyDay_DescansoExcesivo(t *testing.T) {
	base := []*entity.AttendanceRecord{
		rec(entity.RecordClockIn, "09:00", 0),
		rec(entity.RecordClockOut, "18:00", 0),
	}

	// Justo en el techo: sin incidencia. El total es la suma de descansos.
	enElTecho := append(append([]*entity.AttendanceRecord{}, base...),
		rec(entity.RecordBreakDuration, "12:00", 60),
		rec(entity.RecordBreakDuration, "15:00", 60),
	)
	assert.Empty(t, classify(enElTecho))

	// Un minuto por encima: incidencia.
	porEncima := append(append([]*entity.AttendanceRecord{}, base...),
		rec(entity.RecordBreakDuration, "12:00", 60),
		rec(entity.RecordBreakDuration, "15:00", 61),
	)
	assert.Equal(t, []string{attendance.IssueExcessiveBreak}, classify(porEncima))
}

func TestClassifyDay_TechoCeroDesactivaLaRegla(t *testing.T) {
	records := []*entity.AttendanceRecord{
		rec(entity.RecordClockIn, "09:00", 0),
		rec(entity.RecordClockOut, "18:00", 0),
		rec(entity.RecordBreakDuration, "12:00", 600),
	}
	assert.Empty(t, attendance.ClassifyDay("2026-08-20", records, testToday, 0))
}

func TestClassifyDay_IncidenciasCombinadasEnOrdenEstable(t *testing.T) {
	issues := classify([]*entity.AttendanceRecord{
		rec(entity.RecordClockIn, "18:00", 0),
		rec(entity.RecordClockOut, "09:00", 0),
		rec(entity.RecordBreakDuration, "12:00", 300),
	})
	assert.Equal(t, []string{
		attendance.IssueClockOutBeforeIn,
		attendance.IssueExcessiveBreak,
	}, issues)
}

func TestClassifyDay_VacacionesNoGeneranIncidencias(t *testing.T) {
	issues := classify([]*entity.AttendanceRecord{rec(entity.RecordPaidVacation, "00:00", 0)})
	assert.Empty(t, issues)
}

// Clasificar dos veces el mismo día produce el mismo resultado: el detector
// no guarda estado.
func TestClassifyDay_Rederivable(t *testing.T) {
	records := []*entity.AttendanceRecord{rec(entity.RecordClockIn, "09:00", 0)}
	primera := classify(records)
	segunda := classify(records)
	assert.Equal(t, primera, segunda)
}
