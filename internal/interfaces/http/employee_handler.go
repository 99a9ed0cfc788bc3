package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asistencia-api/internal/application/dto"
	"github.com/jhoicas/asistencia-api/internal/application/usecase"
)

// EmployeeHandler maneja las peticiones HTTP del directorio de empleados.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler inyectando el caso de uso.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List godoc
// @Summary      Listar empleados activos
// @Tags         employees
// @Produce      json
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListActive()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Dar de alta un empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddEmployeeRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.AddEmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/addEmployee [post]
func (h *EmployeeHandler) Add(c *fiber.Ctx) error {
	var in dto.AddEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Add(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Baja lógica de un empleado
// @Description  La ficha se conserva oculta para auditoría; repetir la baja es un éxito sin efecto.
// @Tags         employees
// @Accept       json
// @Produce      plain
// @Param        body  body  dto.DeleteEmployeeRequest  true  "Número de empleado"
// @Success      200   {string}  string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/deleteEmployee [post]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := h.uc.SoftDelete(in.EmployeeNumber); err != nil {
		return errorJSON(c, err)
	}
	// Texto plano en japonés: el panel legado lo muestra tal cual.
	return c.SendString("従業員を削除しました")
}
