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

	"github.com/jhoicas/farm-ledger/internal/application/auth"
	"github.com/jhoicas/farm-ledger/internal/bootstrap"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/metrics"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/scheduler"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/farm-ledger/internal/interfaces/http"
	"github.com/jhoicas/farm-ledger/pkg/config"
	"github.com/jhoicas/farm-ledger/pkg/logger"
)

const devJWTSecret = "dev-secret-change-me"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		if cfg.App.Env == "production" {
			log.Fatal().Msg("JWT_SECRET es requerido en producción")
		}
		log.Warn().Msg("JWT_SECRET vacío, usando secreto de desarrollo")
		cfg.JWT.Secret = devJWTSecret
	}

	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("abrir almacenamiento")
	}

	m := metrics.New()
	container := bootstrap.New(backend.Store, bootstrap.Options{
		Logger:     log,
		Metrics:    m,
		AuditLimit: cfg.Audit.Limit,
		JWT: auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		FarmName: cfg.App.Name,
	})

	if _, err := container.Auth.EnsureAdmin(ctx, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("crear administrador inicial")
	}

	// Resumen semanal archivado en el mismo almacén, solo si hay calendario.
	var sched *scheduler.Scheduler
	if cfg.Report.CronSchedule != "" {
		sched, err = scheduler.New(cfg.Report.CronSchedule, container.Export, log)
		if err != nil {
			log.Fatal().Err(err).Msg("programar exportación")
		}
		sched.Start()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Farm Ledger API",
		}))
	}

	httpRouter.Router(app, container.RouterDeps(cfg.JWT.Secret))

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

	if sched != nil {
		sched.Stop(shutdownCtx)
	}
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := backend.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cerrar almacenamiento")
	}

	log.Info().Msg("aplicación detenida")
}
