package sanitation

import (
	"context"
	"sort"
	"time"

	"bay-sanitation/internal/storage"
)

// mockStore implements Store in memory for engine tests.
type mockStore struct {
	records map[int64]*storage.Record
	order   []int64
	policy  storage.IntervalPolicy
	nextID  int64
}

func newMockStore() *mockStore {
	return &mockStore{
		records: make(map[int64]*storage.Record),
		policy:  storage.IntervalPolicy{ID: 1, IntervalDays: 15, DefaultTime: "09:00:00", NotifyBeforeDays: 2},
		nextID:  1,
	}
}

func (m *mockStore) CreateRecord(ctx context.Context, record storage.Record) (int64, error) {
	id := m.nextID
	m.nextID++
	record.ID = id
	record.CreatedAt = time.Now().UTC()
	record.UpdatedAt = record.CreatedAt
	m.records[id] = &record
	m.order = append(m.order, id)
	return id, nil
}

func (m *mockStore) ListRecords(ctx context.Context) ([]storage.Record, error) {
	return m.collect(func(r *storage.Record) bool { return true }), nil
}

func (m *mockStore) ListCompleted(ctx context.Context) ([]storage.Record, error) {
	completed := m.collect(func(r *storage.Record) bool { return r.PerformedDate != nil })
	// ISO dates sort lexically
	sort.SliceStable(completed, func(i, j int) bool {
		return *completed[i].PerformedDate > *completed[j].PerformedDate
	})
	return completed, nil
}

func (m *mockStore) ListBayRecords(ctx context.Context, bayNumber int) ([]storage.Record, error) {
	return m.collect(func(r *storage.Record) bool { return r.BayNumber == bayNumber }), nil
}

func (m *mockStore) UpdateRecord(ctx context.Context, id int64, bayNumber int, performedDate, method, note string) error {
	record, ok := m.records[id]
	if !ok {
		return storage.ErrNotFound
	}
	record.BayNumber = bayNumber
	record.PerformedDate = &performedDate
	record.Method = method
	record.Note = note
	record.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *mockStore) DeleteRecord(ctx context.Context, id int64) (bool, error) {
	if _, ok := m.records[id]; !ok {
		return false, nil
	}
	delete(m.records, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (m *mockStore) ListPending(ctx context.Context) ([]storage.Record, error) {
	pending := m.collect(func(r *storage.Record) bool { return r.ScheduleStatus == storage.SchedulePending })
	sort.SliceStable(pending, func(i, j int) bool {
		return *pending[i].ScheduledDate < *pending[j].ScheduledDate
	})
	return pending, nil
}

func (m *mockStore) MarkFulfilled(ctx context.Context, id int64, performedDate string) (bool, error) {
	record, ok := m.records[id]
	if !ok || record.ScheduleStatus != storage.SchedulePending {
		return false, nil
	}
	record.PerformedDate = &performedDate
	record.ScheduleStatus = storage.ScheduleDone
	record.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (m *mockStore) MarkCancelled(ctx context.Context, id int64) (bool, error) {
	record, ok := m.records[id]
	if !ok || record.ScheduleStatus != storage.SchedulePending {
		return false, nil
	}
	record.ScheduleStatus = storage.ScheduleCancelled
	record.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (m *mockStore) CompleteFromSchedule(ctx context.Context, scheduleID int64, performedDate string) (int64, error) {
	orig, ok := m.records[scheduleID]
	if !ok {
		return 0, storage.ErrNotFound
	}

	newID, _ := m.CreateRecord(ctx, storage.Record{
		BayNumber:      orig.BayNumber,
		PerformedDate:  &performedDate,
		Method:         orig.Method,
		Note:           "completed from schedule",
		ScheduleStatus: storage.ScheduleDone,
	})

	orig.ScheduleStatus = storage.ScheduleDone
	orig.PerformedDate = &performedDate
	orig.UpdatedAt = time.Now().UTC()
	return newID, nil
}

func (m *mockStore) LastCompletedDate(ctx context.Context, bayNumber int) (*string, error) {
	var last *string
	for _, record := range m.records {
		if record.BayNumber != bayNumber || record.ScheduleStatus != storage.ScheduleDone || record.PerformedDate == nil {
			continue
		}
		if last == nil || *record.PerformedDate > *last {
			last = record.PerformedDate
		}
	}
	return last, nil
}

func (m *mockStore) GetPolicy(ctx context.Context) (*storage.IntervalPolicy, error) {
	policy := m.policy
	return &policy, nil
}

func (m *mockStore) SetPolicy(ctx context.Context, intervalDays int) error {
	m.policy.IntervalDays = intervalDays
	return nil
}

func (m *mockStore) collect(keep func(*storage.Record) bool) []storage.Record {
	var out []storage.Record
	for _, id := range m.order {
		record, ok := m.records[id]
		if !ok || !keep(record) {
			continue
		}
		out = append(out, *record)
	}
	return out
}
