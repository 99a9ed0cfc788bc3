package dto

// ErrorResponse cuerpo de error HTTP. Code es estable para los clientes;
// Message es legible y puede incluir el texto legado que el cliente japonés
// todavía busca por substring.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
