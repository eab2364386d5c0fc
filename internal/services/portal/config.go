package portal

import (
	"errors"
	"fmt"

	"github.com/louisbranch/heritage.archive/internal/platform/config"
	"github.com/louisbranch/heritage.archive/internal/services/portal/viewmodel"
)

// Config holds presentation defaults shared by every portal page.
type Config struct {
	// Locale selects the message catalog (e.g., "en-US", "af-ZA").
	Locale string `env:"HERITAGE_ARCHIVE_PORTAL_LOCALE" envDefault:"en-US"`
	// PageRadius is how many page links flank the current page.
	PageRadius int `env:"HERITAGE_ARCHIVE_PORTAL_PAGE_RADIUS" envDefault:"2"`
	// PageSize is the default number of rows per table page.
	PageSize int `env:"HERITAGE_ARCHIVE_PORTAL_PAGE_SIZE" envDefault:"25"`
	// SummaryLength caps card summaries, in characters.
	SummaryLength int `env:"HERITAGE_ARCHIVE_PORTAL_SUMMARY_LENGTH" envDefault:"150"`
	// ExcerptLength caps privacy flag excerpts and embargo reasons.
	ExcerptLength int `env:"HERITAGE_ARCHIVE_PORTAL_EXCERPT_LENGTH" envDefault:"80"`
	// ExpiryWarningDays marks embargoes ending within this many days.
	ExpiryWarningDays int `env:"HERITAGE_ARCHIVE_PORTAL_EXPIRY_WARNING_DAYS" envDefault:"30"`
	// TrendingViews is the view count at which an item is trending.
	TrendingViews int `env:"HERITAGE_ARCHIVE_PORTAL_TRENDING_VIEWS" envDefault:"100"`
	// BadgeTableConstraint pins the badge tables to a compatible revision.
	BadgeTableConstraint string `env:"HERITAGE_ARCHIVE_PORTAL_BADGE_TABLES" envDefault:"^1.0"`
}

// DefaultConfig returns the documented defaults without reading the
// environment.
func DefaultConfig() Config {
	return Config{
		Locale:               "en-US",
		PageRadius:           viewmodel.DefaultPageRadius,
		PageSize:             25,
		SummaryLength:        150,
		ExcerptLength:        80,
		ExpiryWarningDays:    30,
		TrendingViews:        100,
		BadgeTableConstraint: "^1.0",
	}
}

// LoadConfig reads Config from the environment and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings that cannot render a page.
func (c Config) Validate() error {
	if c.PageRadius < 0 {
		return errors.New("page radius must be >= 0")
	}
	if c.PageSize < 1 {
		return errors.New("page size must be >= 1")
	}
	if c.SummaryLength < 1 || c.ExcerptLength < 1 {
		return errors.New("truncation lengths must be >= 1")
	}
	if err := viewmodel.CheckTableVersion(c.BadgeTableConstraint); err != nil {
		return fmt.Errorf("badge tables: %w", err)
	}
	return nil
}
