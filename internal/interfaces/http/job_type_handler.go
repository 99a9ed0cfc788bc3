package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asistencia-api/internal/application/dto"
	"github.com/jhoicas/asistencia-api/internal/application/usecase"
)

// JobTypeHandler maneja las peticiones HTTP del catálogo de puestos.
type JobTypeHandler struct {
	uc *usecase.JobTypeUseCase
}

// NewJobTypeHandler construye el handler inyectando el caso de uso.
func NewJobTypeHandler(uc *usecase.JobTypeUseCase) *JobTypeHandler {
	return &JobTypeHandler{uc: uc}
}

// List godoc
// @Summary      Listar puestos
// @Tags         job-types
// @Produce      json
// @Success      200  {array}  dto.JobTypeResponse
// @Router       /api/jobTypes [get]
func (h *JobTypeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Crear un puesto
// @Tags         job-types
// @Accept       json
// @Produce      json
// @Param        body  body  dto.JobTypeRequest  true  "Código y nombre"
// @Success      201   {object}  dto.JobTypeResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/addJobType [post]
func (h *JobTypeHandler) Add(c *fiber.Ctx) error {
	var in dto.JobTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Add(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Renombrar un puesto
// @Description  El código es inmutable; solo cambia el nombre visible.
// @Tags         job-types
// @Accept       json
// @Produce      json
// @Param        body  body  dto.JobTypeRequest  true  "Código y nuevo nombre"
// @Success      200   {object}  dto.JobTypeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/updateJobType [post]
func (h *JobTypeHandler) Update(c *fiber.Ctx) error {
	var in dto.JobTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un puesto
// @Description  Cerrado por defecto: se rechaza mientras algún empleado activo lo referencie.
// @Tags         job-types
// @Accept       json
// @Produce      plain
// @Param        body  body  dto.DeleteJobTypeRequest  true  "Código"
// @Success      200   {string}  string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/deleteJobType [post]
func (h *JobTypeHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteJobTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := h.uc.Delete(in.Code); err != nil {
		return errorJSON(c, err)
	}
	return c.SendString("職種を削除しました")
}
