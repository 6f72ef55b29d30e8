// Package sanitation holds the scheduling engine and report aggregator:
// the rules that turn dated bay records into actionable state.
package sanitation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bay-sanitation/internal/methods"
	"bay-sanitation/internal/status"
	"bay-sanitation/internal/storage"
)

var (
	// ErrValidation marks missing or invalid caller input.
	ErrValidation = errors.New("validation failed")
)

// Store is the persistence surface the engine needs. storage.Provider
// satisfies it; tests use an in-memory mock.
type Store interface {
	CreateRecord(ctx context.Context, record storage.Record) (int64, error)
	ListRecords(ctx context.Context) ([]storage.Record, error)
	ListCompleted(ctx context.Context) ([]storage.Record, error)
	ListBayRecords(ctx context.Context, bayNumber int) ([]storage.Record, error)
	UpdateRecord(ctx context.Context, id int64, bayNumber int, performedDate, method, note string) error
	DeleteRecord(ctx context.Context, id int64) (bool, error)

	ListPending(ctx context.Context) ([]storage.Record, error)
	MarkFulfilled(ctx context.Context, id int64, performedDate string) (bool, error)
	MarkCancelled(ctx context.Context, id int64) (bool, error)
	CompleteFromSchedule(ctx context.Context, scheduleID int64, performedDate string) (int64, error)
	LastCompletedDate(ctx context.Context, bayNumber int) (*string, error)

	GetPolicy(ctx context.Context) (*storage.IntervalPolicy, error)
	SetPolicy(ctx context.Context, intervalDays int) error
}

type Service struct {
	store      Store
	thresholds status.Thresholds
	catalog    *methods.Catalog

	logger *slog.Logger
}

func NewService(store Store, thresholds status.Thresholds, catalog *methods.Catalog) *Service {
	return &Service{
		store:      store,
		thresholds: thresholds,
		catalog:    catalog,
		logger:     slog.With("component", "sanitation"),
	}
}

func (s *Service) validateCommon(bayNumber int, method string) error {
	if bayNumber <= 0 {
		return fmt.Errorf("%w: bay_number must be positive", ErrValidation)
	}
	if method == "" {
		return fmt.Errorf("%w: method is required", ErrValidation)
	}
	if !s.catalog.Contains(method) {
		return fmt.Errorf("%w: unknown method %q", ErrValidation, method)
	}
	return nil
}

func validateDate(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	if _, err := status.ParseDate(value); err != nil {
		return fmt.Errorf("%w: %s must be a valid %s date", ErrValidation, field, status.DateLayout)
	}
	return nil
}

// CreateDisinfection logs an already-performed disinfection. The record
// is born done.
func (s *Service) CreateDisinfection(ctx context.Context, bayNumber int, performedDate, method, note string) (int64, error) {
	if err := s.validateCommon(bayNumber, method); err != nil {
		return 0, err
	}
	if err := validateDate("performed_date", performedDate); err != nil {
		return 0, err
	}

	id, err := s.store.CreateRecord(ctx, storage.Record{
		BayNumber:      bayNumber,
		PerformedDate:  &performedDate,
		Method:         method,
		Note:           note,
		ScheduleStatus: storage.ScheduleDone,
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Disinfection logged", "id", id, "bay", bayNumber, "method", method)
	return id, nil
}

func (s *Service) ListDisinfections(ctx context.Context) ([]storage.Record, error) {
	return s.store.ListRecords(ctx)
}

func (s *Service) ListBayRecords(ctx context.Context, bayNumber int) ([]storage.Record, error) {
	if bayNumber <= 0 {
		return nil, fmt.Errorf("%w: bay_number must be positive", ErrValidation)
	}
	return s.store.ListBayRecords(ctx, bayNumber)
}

// UpdateDisinfection rewrites an existing log entry. Returns
// storage.ErrNotFound for an unknown id.
func (s *Service) UpdateDisinfection(ctx context.Context, id int64, bayNumber int, performedDate, method, note string) error {
	if err := s.validateCommon(bayNumber, method); err != nil {
		return err
	}
	if err := validateDate("performed_date", performedDate); err != nil {
		return err
	}
	return s.store.UpdateRecord(ctx, id, bayNumber, performedDate, method, note)
}

// DeleteDisinfection is best-effort: a missing id is not an error, the
// bool reports whether anything was removed.
func (s *Service) DeleteDisinfection(ctx context.Context, id int64) (bool, error) {
	existed, err := s.store.DeleteRecord(ctx, id)
	if err != nil {
		return false, err
	}
	if existed {
		s.logger.Info("Disinfection deleted", "id", id)
	}
	return existed, nil
}

// Schedule creates a pending entry for a planned disinfection.
func (s *Service) Schedule(ctx context.Context, bayNumber int, scheduledDate, method, note string) (int64, error) {
	if err := s.validateCommon(bayNumber, method); err != nil {
		return 0, err
	}
	if err := validateDate("scheduled_date", scheduledDate); err != nil {
		return 0, err
	}

	id, err := s.store.CreateRecord(ctx, storage.Record{
		BayNumber:      bayNumber,
		ScheduledDate:  &scheduledDate,
		Method:         method,
		Note:           note,
		ScheduleStatus: storage.SchedulePending,
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Disinfection scheduled", "id", id, "bay", bayNumber, "date", scheduledDate)
	return id, nil
}

// ListPending returns pending entries, earliest scheduled date first.
func (s *Service) ListPending(ctx context.Context) ([]storage.Record, error) {
	return s.store.ListPending(ctx)
}

// Fulfill transitions a pending entry to done. performedDate defaults to
// today when empty. A false return means the id is missing or no longer
// pending; nothing changed.
func (s *Service) Fulfill(ctx context.Context, id int64, performedDate string) (bool, error) {
	if performedDate == "" {
		performedDate = time.Now().UTC().Format(status.DateLayout)
	} else if err := validateDate("performed_date", performedDate); err != nil {
		return false, err
	}
	return s.store.MarkFulfilled(ctx, id, performedDate)
}

// Cancel transitions a pending entry to cancelled with the same
// not-found semantics as Fulfill.
func (s *Service) Cancel(ctx context.Context, id int64) (bool, error) {
	return s.store.MarkCancelled(ctx, id)
}

// CompleteFromSchedule creates a new completed record dated today from a
// schedule entry and marks the original done, atomically. Returns
// storage.ErrNotFound if the schedule id does not resolve.
func (s *Service) CompleteFromSchedule(ctx context.Context, scheduleID int64) (int64, error) {
	today := time.Now().UTC().Format(status.DateLayout)
	newID, err := s.store.CompleteFromSchedule(ctx, scheduleID, today)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Schedule completed", "schedule_id", scheduleID, "record_id", newID)
	return newID, nil
}

// NextDueDate computes when a bay is next due from its last completed
// disinfection plus the live interval policy. The policy is re-read on
// every call since it is mutable. Returns nil when the bay has no
// completed disinfection on record.
func (s *Service) NextDueDate(ctx context.Context, bayNumber int) (*time.Time, error) {
	if bayNumber <= 0 {
		return nil, fmt.Errorf("%w: bay_number must be positive", ErrValidation)
	}

	last, err := s.store.LastCompletedDate(ctx, bayNumber)
	if err != nil {
		return nil, err
	}
	if last == nil {
		return nil, nil
	}

	performed, err := status.ParseDate(*last)
	if err != nil {
		return nil, fmt.Errorf("stored completion date %q for bay %d is not a valid date: %w", *last, bayNumber, err)
	}

	policy, err := s.store.GetPolicy(ctx)
	if err != nil {
		return nil, err
	}

	due := performed.AddDate(0, 0, policy.IntervalDays)
	return &due, nil
}

func (s *Service) GetPolicy(ctx context.Context) (*storage.IntervalPolicy, error) {
	return s.store.GetPolicy(ctx)
}

// SetPolicy replaces the global re-disinfection interval.
func (s *Service) SetPolicy(ctx context.Context, intervalDays int) error {
	if intervalDays <= 0 {
		return fmt.Errorf("%w: interval_days must be positive", ErrValidation)
	}
	if err := s.store.SetPolicy(ctx, intervalDays); err != nil {
		return err
	}
	s.logger.Info("Interval policy updated", "interval_days", intervalDays)
	return nil
}
