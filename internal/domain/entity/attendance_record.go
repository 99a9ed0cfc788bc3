package entity

import "time"

// RecordType tipo de registro de asistencia.
type RecordType string

const (
	RecordClockIn       RecordType = "clock_in"
	RecordClockOut      RecordType = "clock_out"
	RecordBreakDuration RecordType = "break_duration"
	RecordPaidVacation  RecordType = "paid_vacation"
)

// ParseRecordType valida el target_type recibido por la API.
func ParseRecordType(s string) (RecordType, bool) {
	switch RecordType(s) {
	case RecordClockIn, RecordClockOut, RecordBreakDuration, RecordPaidVacation:
		return RecordType(s), true
	}
	return "", false
}

// AttendanceRecord registro confirmado del libro de asistencia. Es inmutable:
// no existe API de corrección ni borrado. Date es la fecha civil local del
// empleado en formato YYYY-MM-DD (la calcula quien envía, nunca el servidor)
// y ClockTime la hora local HH:MM, fijada a 00:00 para paid_vacation.
type AttendanceRecord struct {
	ID           string // uuid
	EmployeeID   int
	Date         string
	Type         RecordType
	ClockTime    string
	BreakMinutes int // solo break_duration; aditivo dentro del día
	CreatedAt    time.Time
}
