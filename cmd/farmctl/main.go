// Command farmctl tareas de operación sobre el almacén de la granja: usuarios,
// exportación de reportes, conciliación del kardex y archivo del resumen semanal.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/farm-ledger/internal/application/auth"
	"github.com/jhoicas/farm-ledger/internal/bootstrap"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/storage"
	"github.com/jhoicas/farm-ledger/pkg/config"
	"github.com/jhoicas/farm-ledger/pkg/logger"
)

// cliActor autor de las acciones hechas desde la línea de comandos.
var cliActor = &entity.Actor{UserID: "system", Username: "farmctl", Role: entity.RoleAdmin}

// globalFlags opciones compartidas por todos los subcomandos.
type globalFlags struct {
	driver  string
	verbose bool
	timeout time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "farmctl",
		Short: "Operación del libro de la granja",
		Long: `farmctl trabaja directamente sobre el almacén configurado (STORAGE_DRIVER).

Subcomandos:
  seed-admin      - Crea el administrador inicial si no hay usuarios
  create-user     - Crea un usuario con rol admin o user
  export          - Genera un reporte CSV o HTML para un rango de fechas
  reconcile       - Compara el stock almacenado con el neto del kardex
  archive-summary - Archiva el resumen de los últimos 7 días en el almacén`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.driver, "driver", "", "Backend de almacenamiento (sobrescribe STORAGE_DRIVER)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log en nivel debug")
	root.PersistentFlags().DurationVar(&g.timeout, "timeout", time.Minute, "Tiempo máximo de la operación")

	root.AddCommand(
		newSeedAdminCmd(g),
		newCreateUserCmd(g),
		newExportCmd(g),
		newReconcileCmd(g),
		newArchiveSummaryCmd(g),
	)
	return root
}

// withContainer abre el almacén, arma los casos de uso y ejecuta fn; cierra el backend al terminar.
func withContainer(cmd *cobra.Command, g *globalFlags, fn func(ctx context.Context, c *bootstrap.Container) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if g.driver != "" {
		cfg.Storage.Driver = g.driver
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	level := "warn"
	if g.verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Env: "development", Level: level, Output: cmd.ErrOrStderr()})

	ctx, cancel := context.WithTimeout(cmd.Context(), g.timeout)
	defer cancel()

	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("abrir almacenamiento %s: %w", cfg.Storage.Driver, err)
	}
	defer func() {
		if cerr := backend.Close(context.Background()); cerr != nil {
			log.Warn().Err(cerr).Msg("cerrar almacenamiento")
		}
	}()

	c := bootstrap.New(backend.Store, bootstrap.Options{
		Logger:     log,
		AuditLimit: cfg.Audit.Limit,
		JWT: auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		FarmName: cfg.App.Name,
	})
	return fn(ctx, c)
}
