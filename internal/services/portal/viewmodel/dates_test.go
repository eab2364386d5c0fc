package viewmodel

import (
	"testing"
	"time"
)

func TestFormatDates(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 14, 5, 9, 0, time.UTC)
	if got := FormatDate(ts); got != "2024-03-07" {
		t.Fatalf("FormatDate = %q", got)
	}
	if got := FormatDateTime(ts); got != "2024-03-07 14:05:09" {
		t.Fatalf("FormatDateTime = %q", got)
	}
	if FormatDate(time.Time{}) != "" || FormatDateTime(time.Time{}) != "" {
		t.Fatal("expected zero time to format as empty")
	}
}

func TestEmbargoStateOf(t *testing.T) {
	now := time.Date(2024, time.June, 10, 16, 30, 0, 0, time.UTC)
	day := func(y int, m time.Month, d int) *time.Time {
		ts := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &ts
	}

	tests := []struct {
		name string
		end  *time.Time
		want EmbargoState
	}{
		{name: "perpetual", end: nil, want: EmbargoState{Phase: EmbargoPerpetual}},
		{name: "zero end", end: &time.Time{}, want: EmbargoState{Phase: EmbargoPerpetual}},
		{name: "expired yesterday", end: day(2024, time.June, 9), want: EmbargoState{Phase: EmbargoExpired}},
		{name: "ends today", end: day(2024, time.June, 10), want: EmbargoState{Phase: EmbargoActive, DaysRemaining: 0, ExpiringSoon: true}},
		{name: "within window", end: day(2024, time.June, 30), want: EmbargoState{Phase: EmbargoActive, DaysRemaining: 20, ExpiringSoon: true}},
		{name: "outside window", end: day(2024, time.August, 1), want: EmbargoState{Phase: EmbargoActive, DaysRemaining: 52}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EmbargoStateOf(tc.end, now, 30); got != tc.want {
				t.Fatalf("EmbargoStateOf = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestEmbargoStateUsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("SAST", 2*60*60)
	// 23:30 UTC on the 9th is already the 10th in Johannesburg.
	now := time.Date(2024, time.June, 9, 23, 30, 0, 0, time.UTC).In(loc)
	end := time.Date(2024, time.June, 9, 12, 0, 0, 0, loc)
	if got := EmbargoStateOf(&end, now, 0); got.Phase != EmbargoExpired {
		t.Fatalf("phase = %q, want expired", got.Phase)
	}
}
