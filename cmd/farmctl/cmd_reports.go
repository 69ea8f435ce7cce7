package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/farm-ledger/internal/application/report"
	"github.com/jhoicas/farm-ledger/internal/bootstrap"
)

func newExportCmd(g *globalFlags) *cobra.Command {
	var format, start, end, out string
	cmd := &cobra.Command{
		Use:   "export <kind>",
		Short: "Genera un reporte para el rango [start, end]",
		Long: `Genera un reporte en CSV (por defecto) o HTML.

Tipos: ` + strings.Join(report.Kinds, ", ") + `

Sin --out el archivo se escribe en el directorio actual con su nombre por defecto,
p. ej. egg-sales-2024-03-01-to-2024-03-31.csv. Con --out - se escribe en stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd, g, func(ctx context.Context, c *bootstrap.Container) error {
				art, err := c.Export.Export(ctx, cliActor, args[0], format, start, end)
				if err != nil {
					return err
				}
				if out == "-" {
					_, err := cmd.OutOrStdout().Write(art.Payload)
					return err
				}
				path := out
				if path == "" {
					path = art.Filename
				}
				if err := os.WriteFile(path, art.Payload, 0o644); err != nil {
					return fmt.Errorf("escribir %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "reporte escrito en %s (%d bytes)\n", path, len(art.Payload))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", report.FormatCSV, "Formato: csv o html")
	cmd.Flags().StringVar(&start, "start", "", "Fecha inicial YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVar(&end, "end", "", "Fecha final YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Archivo de salida ('-' = stdout)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newArchiveSummaryCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "archive-summary",
		Short: "Archiva el resumen financiero de los últimos 7 días en el almacén",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, g, func(ctx context.Context, c *bootstrap.Container) error {
				key, err := c.Export.ArchiveWeeklySummary(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "resumen archivado en", key)
				return nil
			})
		},
	}
}

func newReconcileCmd(g *globalFlags) *cobra.Command {
	var onlyDrift bool
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Compara el stock almacenado de cada artículo con el neto del kardex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, g, func(ctx context.Context, c *bootstrap.Container) error {
				lines, err := c.Transactions.Reconcile(ctx)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ITEM\tSTORED\tIN\tOUT\tNET\tDRIFT")
				for _, l := range lines {
					if onlyDrift && l.Drift.IsZero() {
						continue
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
						l.ItemName, l.StoredQuantity, l.LedgerIn, l.LedgerOut, l.LedgerNet, l.Drift)
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().BoolVar(&onlyDrift, "drift-only", false, "Solo artículos con diferencia")
	return cmd
}
