// @title        Asistencia API
// @description  Control de asistencia: marcajes, vacaciones pagadas, directorio de empleados y detección de inconsistencias.
// @version      1.0
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/asistencia-api/docs"
	appattendance "github.com/jhoicas/asistencia-api/internal/application/attendance"
	"github.com/jhoicas/asistencia-api/internal/application/usecase"
	"github.com/jhoicas/asistencia-api/internal/infrastructure/pdf"
	"github.com/jhoicas/asistencia-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/asistencia-api/internal/interfaces/http"
	"github.com/jhoicas/asistencia-api/pkg/config"
	"github.com/jhoicas/asistencia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	loc, err := time.LoadLocation(cfg.Attendance.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("tz", cfg.Attendance.Timezone).Msg("zona horaria del negocio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	employeeRepo := postgres.NewEmployeeRepository(pool)
	jobTypeRepo := postgres.NewJobTypeRepository(pool)
	attendanceRepo := postgres.NewAttendanceRepository(pool)
	vacationRepo := postgres.NewVacationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, jobTypeRepo, vacationRepo)
	jobTypeUC := usecase.NewJobTypeUseCase(jobTypeRepo, employeeRepo)
	saveRecordUC := appattendance.NewSaveRecordUseCase(txRunner, employeeRepo)
	inconsistencyUC := appattendance.NewInconsistencyUseCase(employeeRepo, attendanceRepo, appattendance.ScanConfig{
		BreakCeilingMinutes: cfg.Attendance.BreakCeilingMinutes,
		WindowDays:          cfg.Attendance.ScanWindowDays,
		Location:            loc,
	})
	reportGen := pdf.NewMarotoReportGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Asistencia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmployeeUC:      employeeUC,
		JobTypeUC:       jobTypeUC,
		SaveRecordUC:    saveRecordUC,
		InconsistencyUC: inconsistencyUC,
		ReportGenerator: reportGen,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
