package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PetHotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PetHotelService/pkg/psqlbuilder"
)

//go:embed sql/*.sql
var files embed.FS

var (
	// ErrReadMigrations ошибка чтения встроенных файлов миграций
	ErrReadMigrations = errors.New("migrations: failed to read migration files")

	// ErrApply ошибка применения миграции
	ErrApply = errors.New("migrations: failed to apply migration")
)

const createVersionsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Migration одна миграция
type Migration struct {
	Version string
	SQL     string
}

// Migrator применяет встроенные SQL миграции по порядку имён файлов
type Migrator struct {
	db        dbmetrics.DBExecutor
	txManager TransactionManager
	logger    Logger
}

// NewMigrator создает мигратор
func NewMigrator(db dbmetrics.DBExecutor, txManager TransactionManager, logger Logger) *Migrator {
	return &Migrator{db: db, txManager: txManager, logger: logger}
}

// List возвращает встроенные миграции, упорядоченные по версии
func List() ([]Migration, error) {
	entries, err := fs.ReadDir(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadMigrations, err)
	}

	migrations := make([]Migration, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		body, err := fs.ReadFile(files, "sql/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReadMigrations, entry.Name(), err)
		}
		migrations = append(migrations, Migration{
			Version: strings.TrimSuffix(entry.Name(), ".sql"),
			SQL:     string(body),
		})
	}

	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Version < migrations[j].Version })
	return migrations, nil
}

// Up применяет все ещё не применённые миграции, каждую в своей транзакции.
// Возвращает список применённых версий.
func (m *Migrator) Up(ctx context.Context) ([]string, error) {
	if _, err := m.db.ExecContext(ctx, createVersionsTable); err != nil {
		return nil, fmt.Errorf("%w: create schema_migrations: %w", ErrApply, err)
	}

	migrations, err := List()
	if err != nil {
		return nil, err
	}

	applied := make([]string, 0)
	for _, migration := range migrations {
		done, err := m.isApplied(ctx, migration.Version)
		if err != nil {
			return applied, err
		}
		if done {
			continue
		}

		m.logger.Info("Migrator: applying %s", migration.Version)

		err = m.txManager.Do(ctx, func(txCtx context.Context) error {
			executor := dbmetrics.GetExecutor(txCtx, m.db)
			if _, err := executor.ExecContext(txCtx, migration.SQL); err != nil {
				return err
			}

			query, args, err := psqlbuilder.Insert("schema_migrations").
				Columns("version").
				Values(migration.Version).
				ToSql()
			if err != nil {
				return err
			}
			_, err = executor.ExecContext(txCtx, query, args...)
			return err
		})
		if err != nil {
			m.logger.Error("Migrator: %s failed: %v", migration.Version, err)
			return applied, fmt.Errorf("%w: %s: %w", ErrApply, migration.Version, err)
		}

		applied = append(applied, migration.Version)
	}

	return applied, nil
}

func (m *Migrator) isApplied(ctx context.Context, version string) (bool, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("schema_migrations").
		Where(squirrel.Eq{"version": version}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: build version query: %w", ErrApply, err)
	}

	var count int
	if err := m.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: read version %s: %w", ErrApply, version, err)
	}
	return count > 0, nil
}
