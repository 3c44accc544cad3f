// Package cli expone el cliente de facturación como comandos cobra: un shell
// interactivo y el registro de una sola vez.
package cli

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/facturacion/internal/infrastructure/gateway"
	"github.com/jhoicas/facturacion/internal/infrastructure/pdf"
	"github.com/jhoicas/facturacion/pkg/config"
	"github.com/jhoicas/facturacion/pkg/logger"
)

// RootOptions flags globales.
type RootOptions struct {
	APIBaseURL string
	TaxRate    string
	Timeout    time.Duration

	taxRate decimal.Decimal
	log     *logger.Logger
}

// NewRootCommand crea el comando raíz. cfg aporta los valores por defecto de los flags.
func NewRootCommand(cfg config.ClientConfig, log *logger.Logger) *cobra.Command {
	if log == nil {
		log = logger.Nop()
	}
	opts := &RootOptions{log: log}

	cmd := &cobra.Command{
		Use:           "facturacion",
		Short:         "Cliente de facturación",
		Long:          "Compone facturas línea por línea con totales e IVA, tras iniciar sesión en el servicio de credenciales.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			rate, err := decimal.NewFromString(opts.TaxRate)
			if err != nil || rate.IsNegative() {
				return fmt.Errorf("--tax-rate inválido %q: debe ser un número >= 0", opts.TaxRate)
			}
			if opts.Timeout <= 0 {
				return fmt.Errorf("--timeout debe ser mayor que cero")
			}
			opts.taxRate = rate
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.APIBaseURL, "api", cfg.APIBaseURL, "URL base del servicio de credenciales")
	cmd.PersistentFlags().StringVar(&opts.TaxRate, "tax-rate", cfg.TaxRate.String(), "tasa de IVA (0.15 = 15%)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", cfg.Timeout, "tiempo máximo por llamada al servicio")

	cmd.AddCommand(NewShellCommand(opts))
	cmd.AddCommand(NewRegisterCommand(opts))

	return cmd
}

func (o *RootOptions) newGateway() *gateway.HTTPGateway {
	return gateway.NewHTTPGateway(o.APIBaseURL, o.Timeout)
}

// NewShellCommand abre la sesión interactiva.
func NewShellCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Sesión interactiva (login y factura)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}
}

func runShell(cmd *cobra.Command, opts *RootOptions) error {
	sh := NewShell(ShellConfig{
		In:      cmd.InOrStdin(),
		Out:     cmd.OutOrStdout(),
		Gateway: opts.newGateway(),
		Printer: pdf.NewTicketPrinter(),
		TaxRate: opts.taxRate,
		Log:     opts.log,
	})
	return sh.Run(cmd.Context())
}
