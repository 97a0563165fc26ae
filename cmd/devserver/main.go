// Command devserver levanta una réplica en memoria del API Ekraf (auth, productos,
// artículos, taxonomías, estadísticas y host de imágenes) para desarrollar contra el cliente.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/ekraf-client/internal/infrastructure/devstore"
	httpRouter "github.com/jhoicas/ekraf-client/internal/interfaces/http"
	"github.com/jhoicas/ekraf-client/pkg/config"
	"github.com/jhoicas/ekraf-client/pkg/logger"
)

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
		Str("addr", cfg.HTTP.Addr()).
		Msg("iniciando servidor de desarrollo")

	store, err := devstore.New()
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar datos de demostración")
	}
	log.Info().
		Str("umkm", devstore.DemoUsername).
		Str("admin", devstore.AdminUsername).
		Msg("usuarios de demostración listos")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		AppName:  cfg.App.Name + "-devserver",
		Store:    store,
		JWT:      cfg.JWT,
		Log:      log,
		Registry: reg,
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

	log.Info().Msg("servidor detenido")
}
