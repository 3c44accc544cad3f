package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/facturacion/internal/interfaces/cli"
	"github.com/jhoicas/facturacion/pkg/config"
	"github.com/jhoicas/facturacion/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	// stdout es de la sesión; los logs van a stderr
	log := logger.New(logger.Config{
		Env:    "development",
		Level:  cfg.Log.Level,
		Output: os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Ctrl-C cierra el shell de forma limpia
	if err := cli.NewRootCommand(cfg.Client, log).ExecuteContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
