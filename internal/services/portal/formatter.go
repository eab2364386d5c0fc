// Package portal turns archive records into the view data rendered by the
// portal templates.
package portal

import (
	"strings"

	"github.com/louisbranch/heritage.archive/internal/platform/i18n/catalog"
	"github.com/louisbranch/heritage.archive/internal/services/portal/templates"
	"github.com/louisbranch/heritage.archive/internal/services/portal/viewmodel"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter builds template rows using one locale and one set of
// presentation defaults. It holds no mutable state after construction.
type Formatter struct {
	cfg Config
	loc templates.Localizer
}

// NewFormatter returns a Formatter printing in cfg.Locale. Unknown locales
// fall back to the catalog base locale.
func NewFormatter(cfg Config) *Formatter {
	return &Formatter{cfg: cfg, loc: newPrinter(cfg.Locale)}
}

// NewFormatterWithLocalizer returns a Formatter that translates through loc.
// A nil loc renders message keys' fallbacks.
func NewFormatterWithLocalizer(cfg Config, loc templates.Localizer) *Formatter {
	return &Formatter{cfg: cfg, loc: loc}
}

// Config returns the formatter's presentation defaults.
func (f *Formatter) Config() Config {
	return f.cfg
}

// Localizer returns the localizer used for labels.
func (f *Formatter) Localizer() templates.Localizer {
	return f.loc
}

func newPrinter(locale string) *message.Printer {
	tags := catalog.Default().Tags()
	requested, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return message.NewPrinter(tags[0])
	}
	_, index, _ := language.NewMatcher(tags).Match(requested)
	return message.NewPrinter(tags[index])
}

// translate returns the message for key, or fallback when the catalog has
// no entry. Keys built from record values can carry format verbs, so only
// keys the catalog defines reach the printer.
func (f *Formatter) translate(key string, fallback string, args ...any) string {
	if f.loc == nil {
		return fallback
	}
	if _, ok := catalog.Default().Message(catalog.BaseLocale, key); !ok {
		return fallback
	}
	value := f.loc.Sprintf(key, args...)
	if value == "" || value == key {
		return fallback
	}
	return value
}

func (f *Formatter) count(n int) string {
	if f.loc == nil {
		return message.NewPrinter(language.MustParse(catalog.BaseLocale)).Sprintf("%d", n)
	}
	return f.loc.Sprintf("%d", n)
}

// Badge formats status within domain for display.
func (f *Formatter) Badge(domain viewmodel.Domain, status string) templates.Badge {
	badge := viewmodel.BadgeFor(domain, status)
	label := badge.Label
	if badge.Status != "" {
		label = f.translate("badge."+string(domain)+"."+badge.Status, badge.Label)
	}
	return templates.Badge{
		Label:   label,
		Variant: badge.CSSVariant(),
		Color:   string(badge.Color),
	}
}

// Progress formats a processed/total pair as a progress bar.
func (f *Formatter) Progress(processed, total int) templates.Progress {
	info := viewmodel.ProgressOf(processed, total)
	variant := viewmodel.ColorBlue
	if info.Complete() {
		variant = viewmodel.ColorGreen
	}
	fallback := f.count(info.Processed) + " / " + f.count(info.Total)
	return templates.Progress{
		Percent: info.Percent,
		Caption: f.translate("progress.caption", fallback, info.Processed, info.Total),
		Variant: variant.CSSVariant(),
	}
}

// Pager builds page links for a table of count rows at the configured page
// size.
func (f *Formatter) Pager(current int, count int, baseURL string) templates.Pager {
	total := viewmodel.TotalPagesFor(count, f.cfg.PageSize)
	return templates.Pager{
		Window:  viewmodel.Paginate(current, total, f.cfg.PageRadius),
		BaseURL: baseURL,
	}
}

// Summary truncates text to the configured card summary length.
func (f *Formatter) Summary(text string) string {
	return viewmodel.Truncate(strings.TrimSpace(text), f.cfg.SummaryLength)
}

// Excerpt truncates text to the configured excerpt length.
func (f *Formatter) Excerpt(text string) string {
	return viewmodel.Truncate(strings.TrimSpace(text), f.cfg.ExcerptLength)
}
