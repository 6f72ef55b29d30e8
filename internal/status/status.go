// Package status derives an urgency classification from a record's
// performed date and a reference time. It is pure: no clock access,
// no storage, same inputs always give the same outputs.
package status

import "time"

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// Kind is a derived urgency classification. The values are the wire
// vocabulary inherited from the stored data and its existing clients.
type Kind string

const (
	OK      Kind = "ok"
	NearDue Kind = "proximo"
	Overdue Kind = "pendente"
	Invalid Kind = "erro"
)

// Thresholds are the elapsed-day boundaries for the report
// classification. They are deliberately distinct from the scheduling
// interval policy, which only drives next-due computation.
type Thresholds struct {
	NearDueDays int
	OverdueDays int
}

// DefaultThresholds returns the historical 10/15 day boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{NearDueDays: 10, OverdueDays: 15}
}

// Classify turns a performed date into elapsed days and a Kind.
//
// A date in the future clamps to zero elapsed days and reads as OK, so
// callers never see a negative "days since". A date that fails to parse
// yields Invalid with a nil day count; the record must still surface in
// aggregate output rather than being dropped.
func (t Thresholds) Classify(performedDate string, now time.Time) (days *int, kind Kind) {
	performed, err := time.Parse(DateLayout, performedDate)
	if err != nil {
		return nil, Invalid
	}

	elapsed := int(now.Sub(performed) / (24 * time.Hour))
	if elapsed < 0 {
		elapsed = 0
	}

	switch {
	case elapsed >= t.OverdueDays:
		kind = Overdue
	case elapsed >= t.NearDueDays:
		kind = NearDue
	default:
		kind = OK
	}
	return &elapsed, kind
}

// ParseDate validates a YYYY-MM-DD input date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}
