package http

import (
	"github.com/gofiber/fiber/v2"

	appattendance "github.com/jhoicas/asistencia-api/internal/application/attendance"
	"github.com/jhoicas/asistencia-api/internal/application/dto"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
)

// AttendanceHandler maneja el registro de marcajes.
type AttendanceHandler struct {
	uc *appattendance.SaveRecordUseCase
}

// NewAttendanceHandler construye el handler inyectando el caso de uso.
func NewAttendanceHandler(uc *appattendance.SaveRecordUseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// Textos de éxito en japonés: la pantalla del reloj de fichaje los muestra
// tal cual (o los reemplaza por los suyos, según el tipo).
var successText = map[entity.RecordType]string{
	entity.RecordClockIn:       "出勤を記録しました",
	entity.RecordClockOut:      "退勤を記録しました",
	entity.RecordBreakDuration: "休憩時間を登録しました",
	entity.RecordPaidVacation:  "有給休暇を登録しました",
}

// Save godoc
// @Summary      Registrar un marcaje
// @Description  clock_in/clock_out únicos por día, break_duration aditivo, paid_vacation excluye al resto y descuenta saldo.
// @Tags         attendance
// @Accept       json
// @Produce      plain
// @Param        body  body  dto.SaveWorkRecordRequest  true  "Registro de asistencia"
// @Success      200   {string}  string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/saveWorkRecord [post]
func (h *AttendanceHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveWorkRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	rec, err := h.uc.Save(c.UserContext(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.SendString(successText[rec.Type])
}
