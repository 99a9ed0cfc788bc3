// Package vacation reglas puras del libro de vacaciones pagadas: fecha de
// concesión y ventana anual de consumo.
package vacation

import "time"

// GrantDate fecha en que el empleado queda habilitado para usar vacaciones
// pagadas: incorporación + 6 meses calendario (no 180 días). El desborde de
// fin de mes se normaliza igual que Date.setMonth en el cliente legado
// (31 de agosto + 6 meses cae a comienzos de marzo).
func GrantDate(joinDate time.Time) time.Time {
	return joinDate.AddDate(0, 6, 0)
}

// PeriodEnd fin de la ventana de 12 meses en la que deben consumirse los
// días concedidos a partir de grant.
func PeriodEnd(grant time.Time) time.Time {
	return grant.AddDate(1, 0, 0)
}

// PeriodStart inicio del período anual de consumo que contiene date,
// avanzando de año en año desde la concesión. ok=false cuando date es
// anterior a la concesión: el empleado todavía no está habilitado y no
// existe período que la contenga.
func PeriodStart(grant, date time.Time) (start time.Time, ok bool) {
	if date.Before(grant) {
		return time.Time{}, false
	}
	start = grant
	for !date.Before(PeriodEnd(start)) {
		start = PeriodEnd(start)
	}
	return start, true
}
