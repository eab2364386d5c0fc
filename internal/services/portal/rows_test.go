package portal

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/heritage.archive/internal/services/portal/records"
	"github.com/louisbranch/heritage.archive/internal/services/portal/templates"
	"github.com/louisbranch/heritage.archive/internal/services/portal/viewmodel"
)

var testNow = time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)

func datePtr(y int, m time.Month, d int) *time.Time {
	ts := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &ts
}

func TestJobRows(t *testing.T) {
	f := newTestFormatter(t)
	rows := f.JobRows([]records.BatchJob{
		{ID: "job-1", Name: "NER extraction", Status: "processing", Processed: 50, Total: 200, Failed: 2,
			StartedAt: time.Date(2024, time.June, 1, 8, 30, 0, 0, time.UTC)},
		{ID: "job-2", Status: "mystery"},
	})

	want := []templates.JobRow{
		{
			ID:        "job-1",
			Name:      "NER extraction",
			Status:    templates.Badge{Label: "Processing", Variant: "primary", Color: "blue"},
			Progress:  templates.Progress{Percent: 25, Caption: "50 / 200", Variant: "primary"},
			Failed:    "2",
			StartedAt: "2024-06-01 08:30:00",
		},
		{
			ID:       "job-2",
			Name:     "Untitled",
			Status:   templates.Badge{Label: "Mystery", Variant: "secondary", Color: "gray"},
			Progress: templates.Progress{Percent: 0, Caption: "0 / 0", Variant: "primary"},
			Failed:   "0",
		},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("JobRows mismatch (-want +got):\n%s", diff)
	}
}

func TestEmbargoRows(t *testing.T) {
	f := newTestFormatter(t)
	rows := f.EmbargoRows([]records.Embargo{
		{ID: "e1", ItemTitle: "Diary of a settler", Type: "full", EndDate: datePtr(2024, time.June, 20)},
		{ID: "e2", ItemTitle: "Land claim maps", Type: "digital_only", EndDate: datePtr(2025, time.January, 1)},
		{ID: "e3", ItemTitle: "Court record", Type: "metadata_hidden", EndDate: datePtr(2024, time.May, 1)},
		{ID: "e4", Type: "bogus", Reason: "Donor agreement restricts access until the family consents"},
		{ID: "e5", Type: "full", EndDate: datePtr(2024, time.June, 10)},
	}, testNow)

	if len(rows) != 5 {
		t.Fatalf("EmbargoRows len = %d, want 5", len(rows))
	}

	soon := rows[0]
	if soon.Type.Variant != "danger" || soon.State.Variant != "warning" || !soon.ExpiringSoon {
		t.Fatalf("expiring row = %+v", soon)
	}
	if soon.Remaining != "10 days left" || soon.EndDate != "2024-06-20" {
		t.Fatalf("expiring row remaining = %q, end = %q", soon.Remaining, soon.EndDate)
	}

	active := rows[1]
	if active.State.Label != "Active" || active.State.Variant != "danger" || active.ExpiringSoon {
		t.Fatalf("active row = %+v", active)
	}

	expired := rows[2]
	if expired.State.Label != "Expired" || expired.Remaining != "" || expired.State.Variant != "success" {
		t.Fatalf("expired row = %+v", expired)
	}

	perpetual := rows[3]
	if perpetual.State.Label != "Perpetual" || perpetual.EndDate != "" || perpetual.ItemTitle != "Untitled" {
		t.Fatalf("perpetual row = %+v", perpetual)
	}
	if perpetual.Type.Variant != "secondary" {
		t.Fatalf("unknown embargo type variant = %q, want secondary", perpetual.Type.Variant)
	}
	if perpetual.Reason != "Donor agreement restricts access until the family consents" {
		t.Fatalf("short reason should not be truncated, got %q", perpetual.Reason)
	}

	if rows[4].Remaining != "Ends today" {
		t.Fatalf("ends today remaining = %q", rows[4].Remaining)
	}
}

func TestPrivacyFlagRowsOrdering(t *testing.T) {
	f := newTestFormatter(t)
	rows := f.PrivacyFlagRows([]records.PrivacyFlag{
		{ID: "low", Severity: "low"},
		{ID: "reviewed-critical", Severity: "critical", Reviewed: true},
		{ID: "critical", Severity: "critical", Category: "id_number"},
		{ID: "unknown", Severity: "whatever"},
		{ID: "high", Severity: "HIGH"},
	})

	var ids []string
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	want := []string{"critical", "high", "low", "unknown", "reviewed-critical"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("PrivacyFlagRows order mismatch (-want +got):\n%s", diff)
	}
	if rows[0].Category != "Id number" || rows[0].Severity.Variant != "danger" {
		t.Fatalf("critical row = %+v", rows[0])
	}
	if rows[1].Severity.Variant != "warning" {
		t.Fatalf("high row severity = %+v", rows[1].Severity)
	}
}

func TestPrivacyFlagRowsTruncatesExcerpt(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExcerptLength = 10
	f := NewFormatter(cfg)
	rows := f.PrivacyFlagRows([]records.PrivacyFlag{{Excerpt: "ID 8001015009087 belongs to Zoë"}})
	if rows[0].Excerpt != "ID 8001015..." {
		t.Fatalf("excerpt = %q", rows[0].Excerpt)
	}
}

func TestAccessRequestRows(t *testing.T) {
	f := newTestFormatter(t)
	rows := f.AccessRequestRows([]records.AccessRequest{
		{ID: "r1", RequesterName: " Thandi ", ItemTitle: "Mission register", Status: "approved"},
		{ID: "r2", Status: "withdrawn"},
		{ID: "r3", Status: "pending"},
	})
	if rows[0].RequesterName != "Thandi" || rows[0].Status.Variant != "success" {
		t.Fatalf("approved row = %+v", rows[0])
	}
	if rows[1].Status.Color != string(viewmodel.ColorGray) {
		t.Fatalf("withdrawn color = %q", rows[1].Status.Color)
	}
	if rows[2].Status.Variant != "warning" {
		t.Fatalf("pending variant = %q", rows[2].Status.Variant)
	}
}

func TestContributorCards(t *testing.T) {
	f := newTestFormatter(t)
	cards := f.ContributorCards([]records.Contributor{
		{ID: "c1", DisplayName: "nomsa van der merwe", TrustLevel: "trusted", Contributions: 1520},
		{DisplayName: "  "},
	})
	if cards[0].Initials != "NV" || cards[0].TrustLevel.Variant != "success" || cards[0].Contributions != "1,520" {
		t.Fatalf("card = %+v", cards[0])
	}
	if cards[0].AvatarColor != viewmodel.PlaceholderColor("c1").CSSVariant() {
		t.Fatalf("avatar color = %q", cards[0].AvatarColor)
	}
	if cards[1].Initials != "" || cards[1].TrustLevel.Variant != "secondary" {
		t.Fatalf("empty card = %+v", cards[1])
	}
}

func TestItemCards(t *testing.T) {
	f := newTestFormatter(t)
	cards := f.ItemCards([]records.Item{
		{ID: "42", Title: "Photograph of District Six", Slug: "district-six", Views: 250, Featured: true},
		{ID: "43", Slug: "untitled-43", Views: 3},
	}, "/items/")

	if cards[0].URL != "/items/district-six" || !cards[0].Trending || !cards[0].Featured || cards[0].Untitled {
		t.Fatalf("titled card = %+v", cards[0])
	}
	untitled := cards[1]
	if !untitled.Untitled || untitled.Title != "Untitled" || untitled.Trending {
		t.Fatalf("untitled card = %+v", untitled)
	}
	if untitled.PlaceholderIcon != viewmodel.PlaceholderIcon("43") {
		t.Fatalf("placeholder icon = %q", untitled.PlaceholderIcon)
	}

	again := f.ItemCards([]records.Item{{ID: "43"}}, "/items")
	if again[0].PlaceholderColor != untitled.PlaceholderColor || again[0].PlaceholderIcon != untitled.PlaceholderIcon {
		t.Fatal("expected placeholder to be stable across renders")
	}
	if again[0].URL != "" {
		t.Fatalf("card without slug URL = %q, want empty", again[0].URL)
	}
}

func TestItemCardsTrendingDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TrendingViews = 0
	f := NewFormatter(cfg)
	if f.ItemCards([]records.Item{{ID: "1", Views: 10_000}}, "/items")[0].Trending {
		t.Fatal("expected trending badge disabled")
	}
}

func TestProjectRows(t *testing.T) {
	f := newTestFormatter(t)
	rows := f.ProjectRows([]records.Project{{ID: "p1", Title: "Oral histories", Status: "on_hold", ItemCount: -3}})
	if rows[0].Status.Label != "On hold" || rows[0].Status.Variant != "warning" || rows[0].ItemCount != "0" {
		t.Fatalf("project row = %+v", rows[0])
	}
}

func TestEntityChips(t *testing.T) {
	f := newTestFormatter(t)
	chips := f.EntityChips([]records.Entity{
		{Text: "1913", Type: "date", Confidence: 0.5},
		{Text: "Sol Plaatje", Type: "person", Confidence: 0.95},
		{Text: "Kimberley", Type: "place", Confidence: 0.7},
	})
	want := []templates.EntityChip{
		{Label: "Sol Plaatje", Type: "Person", Tier: "high", Variant: "success", Percent: 95},
		{Label: "Kimberley", Type: "Place", Tier: "medium", Variant: "warning", Percent: 70},
		{Label: "1913", Type: "Date", Tier: "low", Variant: "danger", Percent: 50},
	}
	if diff := cmp.Diff(want, chips); diff != "" {
		t.Fatalf("EntityChips mismatch (-want +got):\n%s", diff)
	}
}

func TestEntityChipsSortsNaNLast(t *testing.T) {
	f := newTestFormatter(t)
	chips := f.EntityChips([]records.Entity{
		{Text: "Unknown", Type: "person", Confidence: math.NaN()},
		{Text: "1913", Type: "date", Confidence: 0.5},
		{Text: "Blank", Type: "place", Confidence: math.NaN()},
		{Text: "Sol Plaatje", Type: "person", Confidence: 0.95},
		{Text: "Kimberley", Type: "place", Confidence: -0.2},
	})
	var got []string
	for _, chip := range chips {
		got = append(got, chip.Label)
	}
	want := []string{"Sol Plaatje", "1913", "Kimberley", "Unknown", "Blank"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("EntityChips order mismatch (-want +got):\n%s", diff)
	}
	if chips[3].Tier != "low" || chips[3].Percent != 0 {
		t.Fatalf("NaN chip = %+v, want low tier at 0%%", chips[3])
	}
}

func TestDashboardStats(t *testing.T) {
	f := newTestFormatter(t)
	stats := f.DashboardStats(
		[]records.Embargo{
			{EndDate: datePtr(2024, time.June, 20)},
			{EndDate: datePtr(2030, time.January, 1)},
			{EndDate: datePtr(2020, time.January, 1)},
			{},
		},
		[]records.PrivacyFlag{{Reviewed: true}, {}, {}},
		[]records.AccessRequest{{Status: "Pending"}, {Status: "approved"}},
		[]records.BatchJob{{Status: "processing"}, {Status: "failed"}},
		testNow,
	)
	want := templates.DashboardStats{
		ActiveEmbargoes:   "3",
		ExpiringEmbargoes: "1",
		OpenPrivacyFlags:  "2",
		PendingRequests:   "1",
		RunningJobs:       "1",
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Fatalf("DashboardStats mismatch (-want +got):\n%s", diff)
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "", want: ""},
		{name: "Émile", want: "É"},
		{name: "ada lovelace byron", want: "AL"},
		{name: "(anon) contributor", want: "AC"},
	}
	for _, tt := range tests {
		if got := initials(tt.name); got != tt.want {
			t.Fatalf("initials(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
