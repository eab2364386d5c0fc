package viewmodel

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestBadgeForMappedStatuses(t *testing.T) {
	tests := []struct {
		domain Domain
		status string
		want   ColorToken
	}{
		{DomainJob, "pending", ColorGray},
		{DomainJob, "processing", ColorBlue},
		{DomainJob, "completed", ColorGreen},
		{DomainJob, "failed", ColorRed},
		{DomainJob, "cancelled", ColorGray},
		{DomainJob, "paused", ColorYellow},
		{DomainEmbargo, "full", ColorRed},
		{DomainEmbargo, "digital_only", ColorYellow},
		{DomainEmbargo, "metadata_hidden", ColorCyan},
		{DomainPrivacySeverity, "critical", ColorRed},
		{DomainPrivacySeverity, "high", ColorYellow},
		{DomainPrivacySeverity, "medium", ColorCyan},
		{DomainPrivacySeverity, "low", ColorGray},
		{DomainAccessRequest, "pending", ColorYellow},
		{DomainAccessRequest, "approved", ColorGreen},
		{DomainAccessRequest, "denied", ColorRed},
		{DomainAccessRequest, "expired", ColorGray},
		{DomainAccessRequest, "withdrawn", ColorGray},
		{DomainTrustLevel, "trusted", ColorGreen},
		{DomainProjectStatus, "on_hold", ColorYellow},
		{DomainConditionPriority, "urgent", ColorRed},
	}
	for _, tc := range tests {
		got := BadgeFor(tc.domain, tc.status)
		if got.Color != tc.want {
			t.Fatalf("BadgeFor(%s, %q).Color = %q, want %q", tc.domain, tc.status, got.Color, tc.want)
		}
		if got.Domain != tc.domain || got.Status != tc.status {
			t.Fatalf("BadgeFor(%s, %q) = %+v, want domain and status echoed", tc.domain, tc.status, got)
		}
	}
}

func TestBadgeForNormalizesStatus(t *testing.T) {
	got := BadgeFor(DomainEmbargo, "  Digital-Only ")
	if got.Status != "digital_only" {
		t.Fatalf("status = %q, want %q", got.Status, "digital_only")
	}
	if got.Color != ColorYellow {
		t.Fatalf("color = %q, want %q", got.Color, ColorYellow)
	}
	if got.Label != "Digital only" {
		t.Fatalf("label = %q, want %q", got.Label, "Digital only")
	}

	if BadgeFor(DomainProjectStatus, "On Hold").Color != ColorYellow {
		t.Fatal("expected spaced status to match on_hold")
	}
}

func TestBadgeForFallbacks(t *testing.T) {
	if got := BadgeFor(DomainJob, ""); got.Color != FallbackColor || got.Label != "" {
		t.Fatalf("empty status = %+v, want fallback with empty label", got)
	}
	if got := BadgeFor(DomainJob, "running"); got.Color != FallbackColor {
		t.Fatalf("unmapped status color = %q, want %q", got.Color, FallbackColor)
	}
	if got := BadgeFor(Domain("unknown"), "full"); got.Color != FallbackColor {
		t.Fatalf("unknown domain color = %q, want %q", got.Color, FallbackColor)
	}
	if got := BadgeFor(DomainJob, "bogus").CSSVariant(); got != "secondary" {
		t.Fatalf("fallback css variant = %q, want secondary", got)
	}
}

func TestBadgeForUnknownStatusProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("statuses outside a table resolve to the fallback", prop.ForAll(
		func(index int, status string) bool {
			domain := Domains()[index]
			if _, mapped := badgeTables[domain][NormalizeStatus(status)]; mapped {
				return true
			}
			return BadgeFor(domain, status).Color == FallbackColor
		},
		gen.IntRange(0, len(Domains())-1),
		gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestTableListsEveryMappedStatus(t *testing.T) {
	for _, domain := range Domains() {
		rows := Table(domain)
		if len(rows) != len(badgeTables[domain]) {
			t.Fatalf("Table(%s) has %d rows, want %d", domain, len(rows), len(badgeTables[domain]))
		}
		for i := 1; i < len(rows); i++ {
			if rows[i-1].Status >= rows[i].Status {
				t.Fatalf("Table(%s) not sorted at %d: %q >= %q", domain, i, rows[i-1].Status, rows[i].Status)
			}
		}
		for _, row := range rows {
			if !row.Color.Valid() {
				t.Fatalf("Table(%s) has invalid color %q for %q", domain, row.Color, row.Status)
			}
		}
	}
}

func TestColorTokenCSSVariant(t *testing.T) {
	tests := map[ColorToken]string{
		ColorGray:             "secondary",
		ColorBlue:             "primary",
		ColorGreen:            "success",
		ColorRed:              "danger",
		ColorYellow:           "warning",
		ColorCyan:             "info",
		ColorDark:             "dark",
		ColorToken("magenta"): "secondary",
	}
	for token, want := range tests {
		if got := token.CSSVariant(); got != want {
			t.Fatalf("%q.CSSVariant() = %q, want %q", token, got, want)
		}
	}
}
