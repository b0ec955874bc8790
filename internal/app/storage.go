package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-PetHotelService/internal/config"
	bookingRepo "github.com/m04kA/SMC-PetHotelService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PetHotelService/internal/infra/storage/memory"
	petRepo "github.com/m04kA/SMC-PetHotelService/internal/infra/storage/pet"
	roomRepo "github.com/m04kA/SMC-PetHotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-PetHotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PetHotelService/pkg/metrics"
	"github.com/m04kA/SMC-PetHotelService/pkg/txmanager"
)

const pingTimeout = 5 * time.Second

// ErrOpenDatabase ошибка подключения к БД
var ErrOpenDatabase = errors.New("app: failed to open database")

// Storage набор репозиториев поверх одного источника данных
type Storage struct {
	Rooms    RoomStore
	Pets     PetStore
	Bookings BookingStore
	Tx       TxManager

	// DB nil в режиме хранения в памяти
	DB *dbmetrics.DB
}

// Close закрывает соединение с БД
func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// InMemory возвращает хранилище в памяти процесса (разработка и демо)
func InMemory() *Storage {
	store := memory.NewStore()
	return &Storage{
		Rooms:    store.Rooms(),
		Pets:     store.Pets(),
		Bookings: store.Bookings(),
		Tx:       memory.NewTxManager(store),
	}
}

// OpenPostgres подключается к PostgreSQL драйвером из конфигурации (lib/pq или pgx).
// Статистика пула собирается до закрытия stopCh, если метрики включены.
func OpenPostgres(ctx context.Context, cfg config.DatabaseConfig, m *metrics.Metrics, stopCh <-chan struct{}) (*Storage, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenDatabase, err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping %s:%d/%s: %v", ErrOpenDatabase, cfg.Host, cfg.Port, cfg.DBName, err)
	}

	wrapped := dbmetrics.WrapWithDefault(db, m, stopCh)

	return &Storage{
		Rooms:    roomRepo.NewRepository(wrapped),
		Pets:     petRepo.NewRepository(wrapped),
		Bookings: bookingRepo.NewRepository(wrapped),
		Tx:       txmanager.NewTransactionManager(wrapped),
		DB:       wrapped,
	}, nil
}
