package entity

import "time"

// VacationBalance saldo de vacaciones pagadas de un empleado dentro de su
// período anual de consumo. Granted proviene de paid_vacation_limit;
// Consumed cuenta los registros paid_vacation confirmados del período que
// empieza en PeriodStart y se pone a cero cuando una reserva cae en el
// período siguiente (los días no consumidos no se arrastran).
type VacationBalance struct {
	EmployeeID  int
	Granted     int
	Consumed    int
	PeriodStart time.Time
	UpdatedAt   time.Time
}

// Available días restantes; nunca negativo.
func (b *VacationBalance) Available() int {
	if b.Consumed >= b.Granted {
		return 0
	}
	return b.Granted - b.Consumed
}
