package sanitation

import (
	"context"
	"sort"
	"time"

	"bay-sanitation/internal/status"
	"bay-sanitation/internal/storage"
)

// ReportEntry is a completed record annotated with its derived status.
// DaysElapsed is nil when the stored date failed to parse.
type ReportEntry struct {
	storage.Record
	DaysElapsed *int        `json:"days_elapsed"`
	Status      status.Kind `json:"status"`
}

type ReportStats struct {
	Total   int `json:"total"`
	OK      int `json:"ok"`
	NearDue int `json:"proximo"`
	Overdue int `json:"pendente"`
	Invalid int `json:"erro"`
}

// Report is the aggregated view of all completed disinfections. Empty is
// set when there is no data at all, so callers can tell "no data yet"
// apart from a zero-count report.
type Report struct {
	Empty      bool          `json:"empty"`
	Statistics *ReportStats  `json:"statistics,omitempty"`
	Records    []ReportEntry `json:"records,omitempty"`
}

// BuildReport classifies every completed record against now, sorts by
// urgency (most overdue first, unparseable dates last) and totals the
// per-status counts. Pending schedule entries are not part of this
// report; they surface via ListPending.
func (s *Service) BuildReport(ctx context.Context, now time.Time) (*Report, error) {
	records, err := s.store.ListCompleted(ctx)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return &Report{Empty: true}, nil
	}

	entries := make([]ReportEntry, 0, len(records))
	stats := &ReportStats{Total: len(records)}

	for _, record := range records {
		performed := ""
		if record.PerformedDate != nil {
			performed = *record.PerformedDate
		}

		days, kind := s.thresholds.Classify(performed, now)
		switch kind {
		case status.OK:
			stats.OK++
		case status.NearDue:
			stats.NearDue++
		case status.Overdue:
			stats.Overdue++
		case status.Invalid:
			stats.Invalid++
		}

		entries = append(entries, ReportEntry{
			Record:      record,
			DaysElapsed: days,
			Status:      kind,
		})
	}

	// Most overdue first; records with unparseable dates group last.
	// Stable keeps the store's ordering for ties.
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := entries[i].DaysElapsed, entries[j].DaysElapsed
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return *di > *dj
	})

	return &Report{Statistics: stats, Records: entries}, nil
}
