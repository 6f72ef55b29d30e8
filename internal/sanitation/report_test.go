package sanitation

import (
	"context"
	"testing"
	"time"

	"bay-sanitation/internal/status"
	"bay-sanitation/internal/storage"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse(status.DateLayout, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return d
}

func TestBuildReport_EmptyPayload(t *testing.T) {
	svc := newTestService(newMockStore())

	report, err := svc.BuildReport(context.Background(), time.Now().UTC())
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if !report.Empty {
		t.Error("Empty = false with no completed records")
	}
	if report.Statistics != nil || report.Records != nil {
		t.Errorf("empty report carries data: %+v", report)
	}
}

func TestBuildReport_PendingExcluded(t *testing.T) {
	store := newMockStore()
	svc := newTestService(store)
	ctx := context.Background()

	svc.Schedule(ctx, 1, "2024-07-10", "chlorine", "")

	report, err := svc.BuildReport(ctx, mustDate(t, "2024-06-30"))
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if !report.Empty {
		t.Error("pending-only store should yield the empty payload")
	}
}

func TestBuildReport_SortAndStats(t *testing.T) {
	store := newMockStore()
	svc := newTestService(store)
	ctx := context.Background()
	now := mustDate(t, "2024-06-30")

	svc.CreateDisinfection(ctx, 1, "2024-06-28", "chlorine", "") // 2 days, ok
	svc.CreateDisinfection(ctx, 2, "2024-06-01", "chlorine", "") // 29 days, pendente
	svc.CreateDisinfection(ctx, 3, "2024-06-19", "steam", "")    // 11 days, proximo
	svc.CreateDisinfection(ctx, 4, "2024-06-10", "steam", "")    // 20 days, pendente

	// Malformed stored date must surface as erro, not vanish
	bad := "junk"
	store.CreateRecord(ctx, storage.Record{
		BayNumber: 5, PerformedDate: &bad, Method: "chlorine", ScheduleStatus: storage.ScheduleDone,
	})

	report, err := svc.BuildReport(ctx, now)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if report.Empty {
		t.Fatal("report unexpectedly empty")
	}

	stats := report.Statistics
	if stats.Total != 5 || stats.OK != 1 || stats.NearDue != 1 || stats.Overdue != 2 || stats.Invalid != 1 {
		t.Errorf("stats = %+v, want total=5 ok=1 proximo=1 pendente=2 erro=1", stats)
	}

	// Most overdue first, erro last
	wantBays := []int{2, 4, 3, 1, 5}
	if len(report.Records) != len(wantBays) {
		t.Fatalf("len(records) = %d, want %d", len(report.Records), len(wantBays))
	}
	for i, bay := range wantBays {
		if report.Records[i].BayNumber != bay {
			t.Errorf("records[%d].BayNumber = %d, want %d", i, report.Records[i].BayNumber, bay)
		}
	}

	last := report.Records[len(report.Records)-1]
	if last.Status != status.Invalid || last.DaysElapsed != nil {
		t.Errorf("erro record: status=%s days=%v", last.Status, last.DaysElapsed)
	}
}

func TestBuildReport_StableTieOrder(t *testing.T) {
	store := newMockStore()
	svc := newTestService(store)
	ctx := context.Background()
	now := mustDate(t, "2024-06-30")

	// Same performed date; store order must be preserved on ties
	first, _ := svc.CreateDisinfection(ctx, 10, "2024-06-20", "chlorine", "")
	second, _ := svc.CreateDisinfection(ctx, 11, "2024-06-20", "steam", "")

	report, err := svc.BuildReport(ctx, now)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if report.Records[0].ID != first || report.Records[1].ID != second {
		t.Errorf("tie order changed: got [%d %d], want [%d %d]",
			report.Records[0].ID, report.Records[1].ID, first, second)
	}
}
