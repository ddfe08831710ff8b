package backend

import (
	"context"
	"fmt"
	"log/slog"

	"kharcha/internal/adapters"
	"kharcha/internal/config"
	"kharcha/internal/rows"
	gsheet "kharcha/internal/rows/google"
	"kharcha/internal/rows/memory"
	"kharcha/internal/storage"
)

// Type identifies which row store implementation backs the application.
type Type string

const (
	Memory Type = "memory"
	Sheets Type = "sheets"
	SQLite Type = "sqlite"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case Memory, Sheets, SQLite:
		return true
	default:
		return false
	}
}

// CleanupFunc represents a cleanup function for backend resources
type CleanupFunc func() error

// Result contains the row store and an optional cleanup function
type Result struct {
	Store   rows.Store
	Cleanup CleanupFunc
}

// Factory creates row stores based on configuration
type Factory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Create builds the row store named by the application config.
func (f *Factory) Create(ctx context.Context, cfg *config.Config) (*Result, error) {
	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	switch t {
	case SQLite:
		return f.createSQLite(cfg)
	case Sheets:
		return f.createSheets(ctx)
	case Memory:
		return f.createMemory()
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", t)
	}
}

func (f *Factory) createSQLite(cfg *config.Config) (*Result, error) {
	repo, err := storage.NewRepository(cfg.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	f.logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)

	return &Result{
		Store:   adapters.NewSQLiteStore(repo),
		Cleanup: repo.Close,
	}, nil
}

func (f *Factory) createSheets(ctx context.Context) (*Result, error) {
	cli, err := gsheet.NewFromEnv(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Google Sheets client: %w", err)
	}

	f.logger.Info("Initialized Google Sheets backend")

	return &Result{Store: cli}, nil
}

func (f *Factory) createMemory() (*Result, error) {
	f.logger.Info("Initialized memory backend")
	return &Result{Store: memory.New()}, nil
}
