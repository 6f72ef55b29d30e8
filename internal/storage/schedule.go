package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ListPending returns schedule entries awaiting fulfillment, earliest
// scheduled date first. Callers rely on the first entry being the most
// urgent one.
func (p *SQLProvider) ListPending(ctx context.Context) ([]Record, error) {
	records := []Record{}
	err := p.db.SelectContext(ctx, &records, `
		SELECT * FROM bay_sanitation_records
		WHERE schedule_status = 'pending'
		ORDER BY scheduled_date ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending schedules: %w", err)
	}
	return records, nil
}

// MarkFulfilled transitions a pending entry to done in place. The WHERE
// clause on schedule_status makes concurrent fulfills race-safe: only
// one caller observes an affected row.
func (p *SQLProvider) MarkFulfilled(ctx context.Context, id int64, performedDate string) (bool, error) {
	res, err := p.db.ExecContext(ctx, `
		UPDATE bay_sanitation_records
		SET performed_date = ?, schedule_status = 'done', updated_at = ?
		WHERE id = ? AND schedule_status = 'pending'`,
		performedDate, time.Now().UTC(), id)
	if err != nil {
		return false, fmt.Errorf("failed to fulfill schedule %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// MarkCancelled transitions a pending entry to cancelled. The row is
// retained; done and cancelled are terminal states.
func (p *SQLProvider) MarkCancelled(ctx context.Context, id int64) (bool, error) {
	res, err := p.db.ExecContext(ctx, `
		UPDATE bay_sanitation_records
		SET schedule_status = 'cancelled', updated_at = ?
		WHERE id = ? AND schedule_status = 'pending'`,
		time.Now().UTC(), id)
	if err != nil {
		return false, fmt.Errorf("failed to cancel schedule %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// CompleteFromSchedule creates a new completed record dated performedDate
// from an existing schedule entry, and marks the original entry done.
// Both writes happen in one transaction so a failure leaves no orphaned
// completion row.
func (p *SQLProvider) CompleteFromSchedule(ctx context.Context, scheduleID int64, performedDate string) (int64, error) {
	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var orig Record
	err = tx.GetContext(ctx, &orig,
		`SELECT * FROM bay_sanitation_records WHERE id = ?`, scheduleID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load schedule %d: %w", scheduleID, err)
	}

	note := fmt.Sprintf("completed from schedule #%d", scheduleID)
	if orig.ScheduledDate != nil {
		note = fmt.Sprintf("completed from schedule #%d (planned for %s)", scheduleID, *orig.ScheduledDate)
	}
	if orig.Note != "" {
		note = orig.Note + "; " + note
	}

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx, `
		INSERT INTO bay_sanitation_records
			(bay_number, performed_date, scheduled_date, method, note, schedule_status, created_at, updated_at)
		VALUES (?, ?, NULL, ?, ?, 'done', ?, ?)`,
		orig.BayNumber, performedDate, orig.Method, note, now, now)
	if err != nil {
		return 0, fmt.Errorf("failed to insert completion record: %w", err)
	}

	newID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}

	// Mark the original done as well so it drops out of the pending list.
	// It gets the same performed date to keep the done/performed invariant.
	if _, err := tx.ExecContext(ctx, `
		UPDATE bay_sanitation_records
		SET schedule_status = 'done', performed_date = ?, updated_at = ?
		WHERE id = ?`,
		performedDate, now, scheduleID); err != nil {
		return 0, fmt.Errorf("failed to close schedule %d: %w", scheduleID, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit completion: %w", err)
	}
	return newID, nil
}

// LastCompletedDate returns the most recent performed date among a bay's
// done records, or nil if the bay has no completed disinfection.
func (p *SQLProvider) LastCompletedDate(ctx context.Context, bayNumber int) (*string, error) {
	var last sql.NullString
	err := p.db.GetContext(ctx, &last, `
		SELECT MAX(performed_date) FROM bay_sanitation_records
		WHERE bay_number = ? AND schedule_status = 'done'`, bayNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to query last completion for bay %d: %w", bayNumber, err)
	}
	if !last.Valid {
		return nil, nil
	}
	return &last.String, nil
}
