package dto

// JobTypeRequest alta o renombrado de un puesto del catálogo.
type JobTypeRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// JobTypeResponse representación de un puesto.
type JobTypeResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DeleteJobTypeRequest borrado por código.
type DeleteJobTypeRequest struct {
	Code string `json:"code"`
}
