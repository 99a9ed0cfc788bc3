package dto

import "github.com/shopspring/decimal"

// AddEmployeeRequest alta de empleado. Job referencia un puesto del catálogo
// por nombre (así lo envía el panel legado). La fecha de concesión de
// vacaciones puede venir ya calculada (paid_vacation_grant_date) o derivarse
// de join_date + 6 meses si solo llega la incorporación.
type AddEmployeeRequest struct {
	Name                  string          `json:"name"`
	Job                   string          `json:"job"`
	MaxAttendanceCount    int             `json:"max_attendance_count"`
	PaidVacationLimit     int             `json:"paid_vacation_limit"`
	PaidVacationGrantDate string          `json:"paid_vacation_grant_date"`
	JoinDate              string          `json:"join_date,omitempty"`
	EmploymentType        string          `json:"employment_type"`
	HourlyWage            decimal.Decimal `json:"hourly_wage"`
	TransportationExpense decimal.Decimal `json:"transportation_expense"`
}

// AddEmployeeResponse confirmación de alta con el número asignado.
type AddEmployeeResponse struct {
	EmployeeNumber string `json:"employee_number"`
	Name           string `json:"name"`
}

// DeleteEmployeeRequest baja lógica por número de empleado.
type DeleteEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number"`
}

// EmployeeResponse fila del listado de empleados activos.
type EmployeeResponse struct {
	ID             int    `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	Name           string `json:"name"`
	Job            string `json:"job"`
	JobCode        string `json:"job_code"`
}
