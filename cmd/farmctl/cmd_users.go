package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/bootstrap"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
)

func newSeedAdminCmd(g *globalFlags) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Crea el administrador inicial si no hay usuarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, g, func(ctx context.Context, c *bootstrap.Container) error {
				created, err := c.Auth.EnsureAdmin(ctx, username, password)
				if err != nil {
					return err
				}
				if created {
					fmt.Fprintf(cmd.OutOrStdout(), "administrador %q creado\n", username)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "ya existen usuarios, no se creó nada")
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&username, "username", "admin", "Nombre del administrador")
	cmd.Flags().StringVar(&password, "password", "", "Contraseña (vacío = contraseña de desarrollo)")
	return cmd
}

func newCreateUserCmd(g *globalFlags) *cobra.Command {
	var in dto.CreateUserRequest
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Crea un usuario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, g, func(ctx context.Context, c *bootstrap.Container) error {
				u, err := c.Users.Create(ctx, cliActor, in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "usuario %s (%s) creado: %s\n", u.Username, u.Role, u.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&in.Username, "username", "", "Nombre de usuario")
	cmd.Flags().StringVar(&in.Password, "password", "", "Contraseña (mínimo 6 caracteres)")
	cmd.Flags().StringVar(&in.Role, "role", entity.RoleUser, "Rol: admin o user")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
