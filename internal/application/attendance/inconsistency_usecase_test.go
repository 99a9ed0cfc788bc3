package attendance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appattendance "github.com/jhoicas/asistencia-api/internal/application/attendance"
	domattendance "github.com/jhoicas/asistencia-api/internal/domain/attendance"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
)

type scanFixture struct {
	uc        *appattendance.InconsistencyUseCase
	store     *fakeStore
	employees *fakeEmployeeRepo
}

// newScanFixture fija "hoy" en 2026-08-30 con una ventana de 31 días.
func newScanFixture(t *testing.T) *scanFixture {
	t.Helper()
	f := &scanFixture{
		store:     newFakeStore(),
		employees: newFakeEmployeeRepo(),
	}
	f.uc = appattendance.NewInconsistencyUseCase(f.employees, &fakeAttendanceRepo{store: f.store}, appattendance.ScanConfig{
		BreakCeilingMinutes: 120,
		WindowDays:          31,
		Location:            time.UTC,
		Now: func() time.Time {
			return time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)
		},
	})
	f.employees.add(&entity.Employee{ID: 1, Number: "0001", Name: "佐藤 花子", JobCode: "hall"})
	f.employees.add(&entity.Employee{ID: 2, Number: "0002", Name: "鈴木 太郎", JobCode: "kitchen"})
	return f
}

func (f *scanFixture) append(t *testing.T, employeeID int, date string, typ entity.RecordType, clock string, breakMin int) {
	t.Helper()
	repo := &fakeAttendanceRepo{store: f.store}
	require.NoError(t, repo.Append(&entity.AttendanceRecord{
		EmployeeID:   employeeID,
		Date:         date,
		Type:         typ,
		ClockTime:    clock,
		BreakMinutes: breakMin,
	}))
}

func TestScan_LibroLimpio(t *testing.T) {
	f := newScanFixture(t)
	f.append(t, 1, "2026-08-20", entity.RecordClockIn, "09:00", 0)
	f.append(t, 1, "2026-08-20", entity.RecordClockOut, "18:00", 0)

	findings, err := f.uc.Scan()
	require.NoError(t, err)
	assert.Empty(t, findings)
	assert.NotNil(t, findings, "sin incidencias se responde lista vacía, no null")
}

func TestScan_OrdenadoPorNumeroYFecha(t *testing.T) {
	f := newScanFixture(t)
	// Incidencias desordenadas a propósito.
	f.append(t, 2, "2026-08-21", entity.RecordClockIn, "09:00", 0)
	f.append(t, 1, "2026-08-22", entity.RecordClockIn, "09:00", 0)
	f.append(t, 1, "2026-08-19", entity.RecordClockOut, "18:00", 0)

	findings, err := f.uc.Scan()
	require.NoError(t, err)
	require.Len(t, findings, 3)

	assert.Equal(t, "0001", findings[0].EmployeeNumber)
	assert.Equal(t, "2026-08-19", findings[0].Date)
	assert.Equal(t, []string{domattendance.IssueMissingClockIn}, findings[0].Issues)

	assert.Equal(t, "0001", findings[1].EmployeeNumber)
	assert.Equal(t, "2026-08-22", findings[1].Date)
	assert.Equal(t, []string{domattendance.IssueMissingClockOut}, findings[1].Issues)

	assert.Equal(t, "0002", findings[2].EmployeeNumber)
	assert.Equal(t, "鈴木 太郎", findings[2].EmployeeName)
}

// La auditoría no se detiene con la baja: las jornadas abiertas de un
// empleado retirado siguen informándose, con el número ya prefijado.
func TestScan_IncluyeEmpleadosDadosDeBaja(t *testing.T) {
	f := newScanFixture(t)
	f.append(t, 1, "2026-08-20", entity.RecordClockIn, "09:00", 0)
	require.NoError(t, f.employees.SetHidden(1))

	findings, err := f.uc.Scan()
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "ZZ0001", findings[0].EmployeeNumber)
	assert.Equal(t, []string{domattendance.IssueMissingClockOut}, findings[0].Issues)
}

func TestScan_RespetaLaVentana(t *testing.T) {
	f := newScanFixture(t)
	// Jornada sin cerrar fuera de la ventana de 31 días.
	f.append(t, 1, "2026-07-01", entity.RecordClockIn, "09:00", 0)
	// Y una dentro.
	f.append(t, 1, "2026-08-20", entity.RecordClockIn, "09:00", 0)

	findings, err := f.uc.Scan()
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "2026-08-20", findings[0].Date)
}

func TestScan_DiaEnCursoAbiertoNoEsIncidencia(t *testing.T) {
	f := newScanFixture(t)
	f.append(t, 1, "2026-08-30", entity.RecordClockIn, "09:00", 0)

	findings, err := f.uc.Scan()
	require.NoError(t, err)
	assert.Empty(t, findings)
}

// El "hoy" del detector sale de la zona horaria del negocio: a las 23:00 UTC
// del día 29 en Tokio ya es 30, así que el 29 sigue sin contar como pasado...
// para un negocio en Tokio.
func TestScan_HoySegunZonaDelNegocio(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	store := newFakeStore()
	employees := newFakeEmployeeRepo()
	employees.add(&entity.Employee{ID: 1, Number: "0001", Name: "佐藤 花子"})
	uc := appattendance.NewInconsistencyUseCase(employees, &fakeAttendanceRepo{store: store}, appattendance.ScanConfig{
		BreakCeilingMinutes: 120,
		WindowDays:          31,
		Location:            tokyo,
		Now: func() time.Time {
			return time.Date(2026, time.August, 29, 23, 0, 0, 0, time.UTC)
		},
	})
	repo := &fakeAttendanceRepo{store: store}
	require.NoError(t, repo.Append(&entity.AttendanceRecord{
		EmployeeID: 1, Date: "2026-08-29", Type: entity.RecordClockIn, ClockTime: "09:00",
	}))

	findings, err := uc.Scan()
	require.NoError(t, err)
	require.Len(t, findings, 1, "en Tokio ya es día 30: el 29 cuenta como jornada sin cerrar")
	assert.Equal(t, []string{domattendance.IssueMissingClockOut}, findings[0].Issues)
}

func TestScan_MismoLibroMismoResultado(t *testing.T) {
	f := newScanFixture(t)
	f.append(t, 1, "2026-08-20", entity.RecordClockIn, "18:00", 0)
	f.append(t, 1, "2026-08-20", entity.RecordClockOut, "09:00", 0)
	f.append(t, 1, "2026-08-20", entity.RecordBreakDuration, "12:00", 300)

	primera, err := f.uc.Scan()
	require.NoError(t, err)
	segunda, err := f.uc.Scan()
	require.NoError(t, err)
	assert.Equal(t, primera, segunda)

	require.Len(t, primera, 1)
	assert.Equal(t, []string{
		domattendance.IssueClockOutBeforeIn,
		domattendance.IssueExcessiveBreak,
	}, primera[0].Issues)
}
