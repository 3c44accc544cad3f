// @title        Facturación API
// @version      1.0
// @description  Servicio de credenciales del cliente de facturación: registro de empresas y validación de login.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jhoicas/facturacion/docs"
	"github.com/jhoicas/facturacion/internal/application/auth"
	"github.com/jhoicas/facturacion/internal/domain/repository"
	"github.com/jhoicas/facturacion/internal/infrastructure/postgres"
	"github.com/jhoicas/facturacion/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/facturacion/internal/interfaces/http"
	"github.com/jhoicas/facturacion/pkg/config"
	"github.com/jhoicas/facturacion/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Driver).
		Msg("iniciando servicio de credenciales")

	ctx := context.Background()

	var repo repository.CredentialRepository
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("esquema PostgreSQL")
		}
		repo = postgres.NewCredentialRepository(pool)
	default:
		db, err := sqlite.Open(cfg.DB.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DB.SQLitePath).Msg("abrir SQLite")
		}
		defer db.Close()
		repo = sqlite.NewCredentialRepository(db)
	}

	authUC, err := auth.NewAuthUseCase(repo, auth.Config{
		BcryptCost:           cfg.Auth.BcryptCost,
		CaseInsensitiveNames: cfg.Auth.CaseInsensitiveNames,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("caso de uso de autenticación")
	}

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		AppName:     cfg.App.Name,
		Credentials: authUC,
		Log:         log,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		SwaggerFile: cfg.HTTP.SwaggerFile,
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

	log.Info().Msg("servicio detenido")
}
