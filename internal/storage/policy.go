package storage

import (
	"context"
	"fmt"
)

// GetPolicy reads the interval-policy singleton. The row is seeded by
// the initial migration so it always exists.
func (p *SQLProvider) GetPolicy(ctx context.Context) (*IntervalPolicy, error) {
	var policy IntervalPolicy
	err := p.db.GetContext(ctx, &policy, `
		SELECT id, interval_days, default_time, notify_before_days
		FROM interval_policy WHERE id = 1`)
	if err != nil {
		return nil, fmt.Errorf("failed to get interval policy: %w", err)
	}
	return &policy, nil
}

// SetPolicy replaces the interval value in the singleton row. A single
// UPDATE keeps concurrent readers from seeing a partial write.
func (p *SQLProvider) SetPolicy(ctx context.Context, intervalDays int) error {
	_, err := p.db.ExecContext(ctx,
		`UPDATE interval_policy SET interval_days = ? WHERE id = 1`, intervalDays)
	if err != nil {
		return fmt.Errorf("failed to update interval policy: %w", err)
	}
	return nil
}
