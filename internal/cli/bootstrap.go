package cli

import (
	"context"
	"os"

	"github.com/m04kA/SMC-PetHotelService/internal/app"
	"github.com/m04kA/SMC-PetHotelService/internal/config"
	"github.com/m04kA/SMC-PetHotelService/pkg/logger"
	"github.com/m04kA/SMC-PetHotelService/pkg/metrics"
)

// environment зависимости, общие для команд
type environment struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics
	storage *app.Storage
	app     *app.App
	stopCh  chan struct{}
}

type bootstrapOptions struct {
	configPath string
	inMemory   bool

	// serve пишет логи по конфигурации и включает метрики,
	// остальные команды пишут в stderr только предупреждения
	serve bool
}

// bootstrap читает конфигурацию и поднимает хранилище с сервисами
func bootstrap(ctx context.Context, opts bootstrapOptions) (*environment, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	env := &environment{cfg: cfg, stopCh: make(chan struct{})}

	if opts.serve {
		env.log, err = logger.New(cfg.Logs.File, cfg.Logs.Level)
		if err != nil {
			return nil, err
		}
		if cfg.Metrics.Enabled {
			env.metrics = metrics.New(cfg.Metrics.ServiceName)
			env.log.Info("Metrics enabled at %s", cfg.Metrics.Path)
		}
	} else {
		env.log = logger.NewWithWriter(os.Stderr, "warn")
	}

	if opts.inMemory {
		env.storage = app.InMemory()
		env.log.Warn("Using in-memory storage, data is lost on exit")
	} else {
		env.storage, err = app.OpenPostgres(ctx, cfg.Database, env.metrics, env.stopCh)
		if err != nil {
			_ = env.log.Close()
			return nil, err
		}
		env.log.Info("Successfully connected to database (driver=%s, host=%s, port=%d, db=%s)",
			cfg.Database.Driver, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	env.app = app.New(cfg, env.storage, env.metrics, env.log)
	return env, nil
}

// Close останавливает сбор метрик пула и закрывает соединения
func (e *environment) Close() {
	close(e.stopCh)
	if err := e.storage.Close(); err != nil {
		e.log.Error("Failed to close database: %v", err)
	}
	_ = e.log.Close()
}
