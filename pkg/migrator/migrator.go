package migrator

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/lock"
)

var (
	ErrInitMigrator   = errors.New("migrator: failed to initialize")
	ErrApplyMigration = errors.New("migrator: failed to apply migration")
)

type Logger interface {
	Info(format string, v ...interface{})
}

// Migrator применяет goose-миграции из files. На время применения берется
// session-level advisory lock, поэтому параллельные запуски migrate не применят файл дважды
type Migrator struct {
	provider *goose.Provider
	logger   Logger
}

func New(db *sql.DB, files fs.FS, logger Logger) (*Migrator, error) {
	locker, err := lock.NewPostgresSessionLocker()
	if err != nil {
		return nil, fmt.Errorf("%w: session locker: %v", ErrInitMigrator, err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, files, goose.WithSessionLocker(locker))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitMigrator, err)
	}

	return &Migrator{provider: provider, logger: logger}, nil
}

// Up применяет все непримененные миграции и возвращает их количество
func (m *Migrator) Up(ctx context.Context) (int, error) {
	results, err := m.provider.Up(ctx)
	for _, r := range results {
		m.logger.Info("Migrator: applied %s in %s", r.Source.Path, r.Duration)
	}
	if err != nil {
		return len(results), fmt.Errorf("%w: %v", ErrApplyMigration, err)
	}
	return len(results), nil
}

// Pending возвращает число непримененных миграций
func (m *Migrator) Pending(ctx context.Context) (int, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: status: %v", ErrApplyMigration, err)
	}

	pending := 0
	for _, s := range statuses {
		if s.State == goose.StatePending {
			pending++
		}
	}
	return pending, nil
}
