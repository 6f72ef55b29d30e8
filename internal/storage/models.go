package storage

import "time"

// ScheduleStatus tracks the lifecycle of a record's scheduling role.
// pending -> done (fulfill) or pending -> cancelled (cancel); both are terminal.
type ScheduleStatus string

const (
	SchedulePending   ScheduleStatus = "pending"
	ScheduleDone      ScheduleStatus = "done"
	ScheduleCancelled ScheduleStatus = "cancelled"
)

// Record is one bay-event: either a completed disinfection or a pending
// schedule entry. Dates are stored as YYYY-MM-DD strings so malformed
// historical data can still be surfaced instead of dropped.
type Record struct {
	ID             int64          `db:"id" json:"id"`
	BayNumber      int            `db:"bay_number" json:"bay_number"`
	PerformedDate  *string        `db:"performed_date" json:"performed_date"`
	ScheduledDate  *string        `db:"scheduled_date" json:"scheduled_date"`
	Method         string         `db:"method" json:"method"`
	Note           string         `db:"note" json:"note"`
	ScheduleStatus ScheduleStatus `db:"schedule_status" json:"schedule_status"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

// IntervalPolicy is the single global scheduling policy row.
type IntervalPolicy struct {
	ID               int64  `db:"id" json:"-"`
	IntervalDays     int    `db:"interval_days" json:"interval_days"`
	DefaultTime      string `db:"default_time" json:"default_time"`
	NotifyBeforeDays int    `db:"notify_before_days" json:"notify_before_days"`
}
