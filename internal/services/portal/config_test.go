package portal

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("env defaults differ from DefaultConfig (-want +got):\n%s", diff)
	}
}

func TestLoadConfigReadsEnv(t *testing.T) {
	t.Setenv("HERITAGE_ARCHIVE_PORTAL_LOCALE", "af-ZA")
	t.Setenv("HERITAGE_ARCHIVE_PORTAL_PAGE_SIZE", "10")
	t.Setenv("HERITAGE_ARCHIVE_PORTAL_EXPIRY_WARNING_DAYS", "7")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Locale != "af-ZA" || cfg.PageSize != 10 || cfg.ExpiryWarningDays != 7 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigRejectsMalformedEnv(t *testing.T) {
	t.Setenv("HERITAGE_ARCHIVE_PORTAL_PAGE_RADIUS", "wide")
	_, err := LoadConfig()
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "negative radius", mutate: func(c *Config) { c.PageRadius = -1 }, want: "page radius"},
		{name: "zero page size", mutate: func(c *Config) { c.PageSize = 0 }, want: "page size"},
		{name: "zero summary", mutate: func(c *Config) { c.SummaryLength = 0 }, want: "truncation"},
		{name: "future tables", mutate: func(c *Config) { c.BadgeTableConstraint = ">= 2.0" }, want: "badge tables"},
		{name: "bad constraint", mutate: func(c *Config) { c.BadgeTableConstraint = "not-a-version" }, want: "badge tables"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}
