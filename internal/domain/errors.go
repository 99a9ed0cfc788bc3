package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa HTTP los mapea a
// estado + código estable; ninguno se reintenta internamente.
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrMalformedInput      = errors.New("entrada no interpretable")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrInsufficientBalance = errors.New("saldo de vacaciones pagadas insuficiente")
)
