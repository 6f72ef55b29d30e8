package storage

import (
	"context"
	"log/slog"

	"bay-sanitation/internal/config"
)

type Provider interface {
	Close() error
	GetSchemaVersion(ctx context.Context) (int, error)

	// Record methods
	CreateRecord(ctx context.Context, record Record) (int64, error)
	GetRecord(ctx context.Context, id int64) (*Record, error)
	ListRecords(ctx context.Context) ([]Record, error)
	ListCompleted(ctx context.Context) ([]Record, error)
	ListBayRecords(ctx context.Context, bayNumber int) ([]Record, error)
	UpdateRecord(ctx context.Context, id int64, bayNumber int, performedDate, method, note string) error
	DeleteRecord(ctx context.Context, id int64) (bool, error)

	// Scheduling methods
	ListPending(ctx context.Context) ([]Record, error)
	MarkFulfilled(ctx context.Context, id int64, performedDate string) (bool, error)
	MarkCancelled(ctx context.Context, id int64) (bool, error)
	CompleteFromSchedule(ctx context.Context, scheduleID int64, performedDate string) (int64, error)
	LastCompletedDate(ctx context.Context, bayNumber int) (*string, error)

	// Interval policy methods
	GetPolicy(ctx context.Context) (*IntervalPolicy, error)
	SetPolicy(ctx context.Context, intervalDays int) error
}

func NewProvider(config *config.Storage) Provider {
	switch {
	case config.SQLite != nil:
		provider := NewSQLiteProvider(config)
		if provider == nil {
			slog.Error("Failed to open sqlite database", "path", config.SQLite.Path)
			return nil
		}
		if err := provider.runMigrations("sqlite3"); err != nil {
			slog.Error("Failed to run migrations", "error", err)
			return nil
		}
		return provider

	default:
		slog.Error("Unsupported storage configuration", "config", config)
	}

	return nil
}
