package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreateRecord inserts a new bay-event row and returns its id.
// Timestamps are assigned here; callers set the scheduling fields.
func (p *SQLProvider) CreateRecord(ctx context.Context, record Record) (int64, error) {
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	res, err := p.db.NamedExecContext(ctx, `
		INSERT INTO bay_sanitation_records
			(bay_number, performed_date, scheduled_date, method, note, schedule_status, created_at, updated_at)
		VALUES
			(:bay_number, :performed_date, :scheduled_date, :method, :note, :schedule_status, :created_at, :updated_at)`,
		record)
	if err != nil {
		return 0, fmt.Errorf("failed to insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return id, nil
}

func (p *SQLProvider) GetRecord(ctx context.Context, id int64) (*Record, error) {
	var record Record
	err := p.db.GetContext(ctx, &record,
		`SELECT * FROM bay_sanitation_records WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record %d: %w", id, err)
	}
	return &record, nil
}

// ListRecords returns all rows, most recently performed first. Pending
// entries carry a NULL performed_date and sort last.
func (p *SQLProvider) ListRecords(ctx context.Context) ([]Record, error) {
	records := []Record{}
	err := p.db.SelectContext(ctx, &records,
		`SELECT * FROM bay_sanitation_records ORDER BY performed_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

// ListCompleted returns only rows with a performed date, most recent first.
func (p *SQLProvider) ListCompleted(ctx context.Context) ([]Record, error) {
	records := []Record{}
	err := p.db.SelectContext(ctx, &records, `
		SELECT * FROM bay_sanitation_records
		WHERE performed_date IS NOT NULL
		ORDER BY performed_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed records: %w", err)
	}
	return records, nil
}

// ListBayRecords returns a single bay's history, most recent first.
func (p *SQLProvider) ListBayRecords(ctx context.Context, bayNumber int) ([]Record, error) {
	records := []Record{}
	err := p.db.SelectContext(ctx, &records, `
		SELECT * FROM bay_sanitation_records
		WHERE bay_number = ?
		ORDER BY performed_date DESC`, bayNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list records for bay %d: %w", bayNumber, err)
	}
	return records, nil
}

// UpdateRecord rewrites the caller-editable fields of a completed
// disinfection log. Returns ErrNotFound if the id does not exist.
func (p *SQLProvider) UpdateRecord(ctx context.Context, id int64, bayNumber int, performedDate, method, note string) error {
	res, err := p.db.ExecContext(ctx, `
		UPDATE bay_sanitation_records
		SET bay_number = ?, performed_date = ?, method = ?, note = ?, updated_at = ?
		WHERE id = ?`,
		bayNumber, performedDate, method, note, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update record %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteRecord removes a row. Best-effort: a missing id is not an error,
// the bool reports whether a row actually existed.
func (p *SQLProvider) DeleteRecord(ctx context.Context, id int64) (bool, error) {
	res, err := p.db.ExecContext(ctx,
		`DELETE FROM bay_sanitation_records WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete record %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}
