package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asistencia-api/internal/application/dto"
	"github.com/jhoicas/asistencia-api/internal/domain"
)

// legacyInsufficientText el cliente japonés legado decide su mensaje de
// pantalla buscando este substring en el cuerpo del error; se conserva como
// fallback de display junto al código estructurado.
const legacyInsufficientText = "有給休暇が不足しています"

// statusAndCode mapea los errores de dominio a estado HTTP y código estable.
func statusAndCode(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMalformedInput):
		return fiber.StatusBadRequest, "MALFORMED_INPUT"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrInsufficientBalance):
		return fiber.StatusUnprocessableEntity, "INSUFFICIENT_BALANCE"
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

// errorJSON responde el error con su código estable.
func errorJSON(c *fiber.Ctx, err error) error {
	status, code := statusAndCode(err)
	msg := err.Error()
	if code == "INSUFFICIENT_BALANCE" {
		msg = msg + " / " + legacyInsufficientText
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// badRequest respuesta para cuerpos que no se pueden interpretar.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MALFORMED_INPUT", Message: message})
}
