package http

import (
	"github.com/gofiber/fiber/v2"

	appattendance "github.com/jhoicas/asistencia-api/internal/application/attendance"
	"github.com/jhoicas/asistencia-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmployeeUC      *usecase.EmployeeUseCase
	JobTypeUC       *usecase.JobTypeUseCase
	SaveRecordUC    *appattendance.SaveRecordUseCase
	InconsistencyUC *appattendance.InconsistencyUseCase
	ReportGenerator appattendance.ReportGenerator
}

// Router registra las rutas de la API. Los paths planos (addEmployee,
// saveWorkRecord, ...) son el contrato del cliente legado y no se tocan.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	api.Get("/employees", employeeHandler.List)
	api.Post("/addEmployee", employeeHandler.Add)
	api.Post("/deleteEmployee", employeeHandler.Delete)

	attendanceHandler := NewAttendanceHandler(deps.SaveRecordUC)
	api.Post("/saveWorkRecord", attendanceHandler.Save)

	inconsistencyHandler := NewInconsistencyHandler(deps.InconsistencyUC, deps.ReportGenerator)
	api.Get("/inconsistencies", inconsistencyHandler.List)
	api.Get("/inconsistencies/report", inconsistencyHandler.Report)

	jobTypeHandler := NewJobTypeHandler(deps.JobTypeUC)
	api.Get("/jobTypes", jobTypeHandler.List)
	api.Post("/addJobType", jobTypeHandler.Add)
	api.Post("/updateJobType", jobTypeHandler.Update)
	api.Post("/deleteJobType", jobTypeHandler.Delete)
}
