package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/heritage.archive/internal/services/portal/viewmodel"
	"golang.org/x/text/message"
)

type fakeLocalizer struct {
	value string
}

func (f fakeLocalizer) Sprintf(key message.Reference, args ...any) string {
	return f.value
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func TestTranslateFallback(t *testing.T) {
	if T(nil, "hello") != "hello" {
		t.Fatal("expected key fallback")
	}
	if T(nil, message.Reference(123)) != "" {
		t.Fatal("expected empty string for non-string key")
	}
	if T(fakeLocalizer{value: "translated"}, "hello") != "translated" {
		t.Fatal("expected translated value")
	}
}

func TestAppendQueryParam(t *testing.T) {
	if got := AppendQueryParam("/embargoes", "page", "2"); got != "/embargoes?page=2" {
		t.Fatalf("AppendQueryParam = %q", got)
	}
	if got := AppendQueryParam("/embargoes?type=full", "page", "2"); got != "/embargoes?type=full&page=2" {
		t.Fatalf("AppendQueryParam = %q", got)
	}
}

func TestBadgeViewEscapesLabel(t *testing.T) {
	got := render(t, BadgeView(Badge{Label: "<b>Full</b>", Variant: "danger"}))
	want := `<span class="badge bg-danger">&lt;b&gt;Full&lt;/b&gt;</span>`
	if got != want {
		t.Fatalf("BadgeView = %q, want %q", got, want)
	}
}

func TestBadgeViewDefaultsVariant(t *testing.T) {
	got := render(t, BadgeView(Badge{Label: "Unknown"}))
	if !strings.Contains(got, "bg-secondary") {
		t.Fatalf("BadgeView = %q, want secondary variant", got)
	}
}

func TestProgressView(t *testing.T) {
	got := render(t, ProgressView(Progress{Percent: 25, Caption: "50 / 200", Variant: "primary"}))
	for _, want := range []string{`aria-valuenow="25"`, `width: 25%`, `>25%<`, `50 / 200`, `bg-primary`} {
		if !strings.Contains(got, want) {
			t.Fatalf("ProgressView = %q, missing %q", got, want)
		}
	}
}

func TestEntityChipView(t *testing.T) {
	got := render(t, EntityChipView(EntityChip{Label: "Robben Island", Tier: "high", Variant: "success", Percent: 94}))
	if !strings.Contains(got, "text-bg-success") || !strings.Contains(got, "high 94%") {
		t.Fatalf("EntityChipView = %q", got)
	}
}

func TestPagerView(t *testing.T) {
	pager := Pager{Window: viewmodel.Paginate(5, 10, viewmodel.DefaultPageRadius), BaseURL: "/jobs?status=failed"}
	got := render(t, PagerView(pager, nil))

	for _, want := range []string{
		`href="/jobs?status=failed&amp;page=4">pager.previous`,
		`href="/jobs?status=failed&amp;page=1">1`,
		`aria-current="page"><a class="page-link" href="/jobs?status=failed&amp;page=5">5`,
		`href="/jobs?status=failed&amp;page=10">10`,
		`href="/jobs?status=failed&amp;page=6">pager.next`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("PagerView missing %q in %q", want, got)
		}
	}
	if strings.Count(got, "&hellip;") != 2 {
		t.Fatalf("expected two ellipsis gaps in %q", got)
	}
}

func TestPagerViewCustomParam(t *testing.T) {
	pager := Pager{Window: viewmodel.Paginate(1, 2, viewmodel.DefaultPageRadius), BaseURL: "/flags", Param: "p"}
	got := render(t, PagerView(pager, nil))
	if !strings.Contains(got, `href="/flags?p=2"`) {
		t.Fatalf("PagerView = %q, want custom param", got)
	}
	if strings.Contains(got, "pager.previous") {
		t.Fatalf("PagerView = %q, want no previous link on first page", got)
	}
}

func TestPagerViewEmpty(t *testing.T) {
	got := render(t, PagerView(Pager{Window: viewmodel.Paginate(1, 0, 2)}, nil))
	if got != "" {
		t.Fatalf("PagerView = %q, want empty", got)
	}
}

func TestPagerViewSkipsGapNextToFirstPage(t *testing.T) {
	got := render(t, PagerView(Pager{Window: viewmodel.Paginate(4, 6, viewmodel.DefaultPageRadius), BaseURL: "/items"}, nil))
	if strings.Contains(got, "&hellip;") {
		t.Fatalf("PagerView = %q, want no gap when window touches the edges", got)
	}
}
