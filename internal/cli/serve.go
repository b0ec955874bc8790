package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-PetHotelService/internal/app"
	"github.com/m04kA/SMC-PetHotelService/internal/infra/changefeed"
	"github.com/m04kA/SMC-PetHotelService/internal/infra/storage/migrations"
)

// ServeCmd запускает HTTP API
func ServeCmd(configPath *string) *cobra.Command {
	var (
		inMemory bool
		migrate  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Start the pet hotel HTTP API.

With --in-memory the service keeps rooms, pets and bookings in process memory
and needs no database. Otherwise it connects to PostgreSQL from the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			env, err := bootstrap(ctx, bootstrapOptions{configPath: *configPath, inMemory: inMemory, serve: true})
			if err != nil {
				return err
			}
			defer env.Close()

			log := env.log
			cfg := env.cfg
			log.Info("Starting SMC-PetHotelService...")
			log.Info("Configuration loaded from %s", *configPath)

			// Миграции при старте (опционально)
			if migrate && !inMemory {
				applied, err := migrations.NewMigrator(env.storage.DB, env.storage.Tx, log).Up(ctx)
				if err != nil {
					return err
				}
				log.Info("Applied %d migrations", len(applied))
			}

			// Настраиваем роутер
			r := app.NewRouter(env.app, env.metrics, cfg.Metrics.Path, log)

			// Слушаем изменения бронирований от других экземпляров
			listenerCtx, cancelListener := context.WithCancel(ctx)
			defer cancelListener()
			if !inMemory && cfg.Database.NotifyChannel != "" {
				listener := changefeed.NewListener(
					cfg.Database.DSN(),
					cfg.Database.NotifyChannel,
					time.Duration(cfg.Database.ListenerMinReconnect)*time.Second,
					time.Duration(cfg.Database.ListenerMaxReconnect)*time.Second,
					env.app.Capacity,
					log,
				)
				go func() {
					if err := listener.Run(listenerCtx); err != nil {
						log.Error("Change feed listener stopped: %v", err)
					}
				}()
				log.Info("Change feed listener started on channel %s", cfg.Database.NotifyChannel)
			}

			// Создаем HTTP сервер
			addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
			srv := &http.Server{
				Addr:         addr,
				Handler:      r,
				ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
				WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
				IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
			}

			serverErr := make(chan error, 1)
			go func() {
				log.Info("Starting server on %s", addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Ожидаем сигнал завершения
			select {
			case <-ctx.Done():
			case err := <-serverErr:
				return fmt.Errorf("server failed to start: %w", err)
			}

			log.Info("Shutting down server...")
			cancelListener()

			shutdownCtx, cancel := context.WithTimeout(
				context.Background(),
				time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
			)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("Server forced to shutdown: %v", err)
			}

			log.Info("Server stopped gracefully")
			return nil
		},
	}

	cmd.Flags().BoolVar(&inMemory, "in-memory", false, "keep data in process memory instead of PostgreSQL")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")

	return cmd
}
