package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/facturacion/internal/application/session"
)

// NewRegisterCommand registra una empresa sin abrir el shell.
func NewRegisterCommand(opts *RootOptions) *cobra.Command {
	var name, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Registra una empresa en el servicio de credenciales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := session.New(opts.newGateway())
			if err := s.Register(cmd.Context(), name, password); err != nil {
				opts.log.Debug().Err(err).Msg("registro rechazado")
				return errors.New(userMessage(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Empresa registrada.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "nombre de la empresa")
	cmd.Flags().StringVar(&password, "password", "", "contraseña")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
