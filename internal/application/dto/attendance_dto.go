package dto

// SaveWorkRecordRequest registro de asistencia entrante. target_date es la
// fecha civil local de quien marca (el cliente la calcula con su zona
// horaria; el servidor no la rederiva) y target_time la hora local HH:MM.
// break_duration solo acompaña a target_type = break_duration.
type SaveWorkRecordRequest struct {
	EmployeeID    int    `json:"employee_id"`
	TargetDate    string `json:"target_date"`
	TargetTime    string `json:"target_time"`
	TargetType    string `json:"target_type"`
	BreakDuration *int   `json:"break_duration,omitempty"`
}

// InconsistencyResponse día señalado por el detector para un empleado.
type InconsistencyResponse struct {
	EmployeeNumber string   `json:"employee_number"`
	EmployeeName   string   `json:"employee_name"`
	Date           string   `json:"date"`
	Issues         []string `json:"issues"`
}
