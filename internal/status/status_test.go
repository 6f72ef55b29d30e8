package status

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return d
}

func TestClassify_Boundaries(t *testing.T) {
	thresholds := DefaultThresholds()
	now := mustDate(t, "2024-06-30")

	cases := []struct {
		performed string
		wantDays  int
		wantKind  Kind
	}{
		{"2024-06-30", 0, OK},
		{"2024-06-21", 9, OK},
		{"2024-06-20", 10, NearDue},
		{"2024-06-16", 14, NearDue},
		{"2024-06-15", 15, Overdue},
		{"2024-05-01", 60, Overdue},
	}

	for _, tc := range cases {
		days, kind := thresholds.Classify(tc.performed, now)
		if days == nil {
			t.Fatalf("Classify(%q): days is nil", tc.performed)
		}
		if *days != tc.wantDays {
			t.Errorf("Classify(%q): days = %d, want %d", tc.performed, *days, tc.wantDays)
		}
		if kind != tc.wantKind {
			t.Errorf("Classify(%q): kind = %s, want %s", tc.performed, kind, tc.wantKind)
		}
	}
}

func TestClassify_FutureDateClampsToZero(t *testing.T) {
	thresholds := DefaultThresholds()
	now := mustDate(t, "2024-06-30")

	days, kind := thresholds.Classify("2024-07-15", now)
	if days == nil || *days != 0 {
		t.Fatalf("future date: days = %v, want 0", days)
	}
	if kind != OK {
		t.Errorf("future date: kind = %s, want %s", kind, OK)
	}
}

func TestClassify_InvalidDate(t *testing.T) {
	thresholds := DefaultThresholds()
	now := mustDate(t, "2024-06-30")

	for _, bad := range []string{"", "not-a-date", "2024-13-01", "01/02/2024"} {
		days, kind := thresholds.Classify(bad, now)
		if days != nil {
			t.Errorf("Classify(%q): days = %d, want nil", bad, *days)
		}
		if kind != Invalid {
			t.Errorf("Classify(%q): kind = %s, want %s", bad, kind, Invalid)
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	thresholds := DefaultThresholds()
	now := mustDate(t, "2024-06-30")

	d1, k1 := thresholds.Classify("2024-06-10", now)
	d2, k2 := thresholds.Classify("2024-06-10", now)
	if *d1 != *d2 || k1 != k2 {
		t.Errorf("Classify is not deterministic: (%d,%s) vs (%d,%s)", *d1, k1, *d2, k2)
	}
}

func TestClassify_CustomThresholds(t *testing.T) {
	thresholds := Thresholds{NearDueDays: 3, OverdueDays: 7}
	now := mustDate(t, "2024-06-30")

	if _, kind := thresholds.Classify("2024-06-27", now); kind != NearDue {
		t.Errorf("3 days with 3/7 thresholds: kind = %s, want %s", kind, NearDue)
	}
	if _, kind := thresholds.Classify("2024-06-23", now); kind != Overdue {
		t.Errorf("7 days with 3/7 thresholds: kind = %s, want %s", kind, Overdue)
	}
}
