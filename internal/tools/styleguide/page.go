package styleguide

import (
	"time"

	"github.com/louisbranch/heritage.archive/internal/platform/branding"
	"github.com/louisbranch/heritage.archive/internal/platform/icons"
	"github.com/louisbranch/heritage.archive/internal/services/portal"
	"github.com/louisbranch/heritage.archive/internal/services/portal/templates"
	"github.com/louisbranch/heritage.archive/internal/services/portal/viewmodel"
)

// Page is everything the styleguide renders, in render order.
type Page struct {
	AppName      string                       `json:"app_name"`
	Tagline      string                       `json:"tagline"`
	Locale       string                       `json:"locale"`
	TableVersion string                       `json:"table_version"`
	GeneratedFor string                       `json:"generated_for"`
	BadgeTables  []BadgeTable                 `json:"badge_tables"`
	Stats        templates.DashboardStats     `json:"stats"`
	Progress     []templates.Progress         `json:"progress"`
	Pagers       []templates.Pager            `json:"pagers"`
	Jobs         []templates.JobRow           `json:"jobs"`
	Embargoes    []templates.EmbargoRow       `json:"embargoes"`
	PrivacyFlags []templates.PrivacyFlagRow   `json:"privacy_flags"`
	Requests     []templates.AccessRequestRow `json:"access_requests"`
	Contributors []templates.ContributorCard  `json:"contributors"`
	Items        []templates.ItemCard         `json:"items"`
	Projects     []templates.ProjectRow       `json:"projects"`
	Entities     []templates.EntityChip       `json:"entities"`
	Icons        []IconSwatch                 `json:"icons"`
}

// BadgeTable lists every mapped status of one domain.
type BadgeTable struct {
	Domain string         `json:"domain"`
	Badges []StatusSwatch `json:"badges"`
}

// StatusSwatch is one mapped status and its formatted badge.
type StatusSwatch struct {
	Status string          `json:"status"`
	Badge  templates.Badge `json:"badge"`
}

// IconSwatch is one catalogued icon and its sprite symbol.
type IconSwatch struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	SymbolID    string `json:"symbol_id"`
	Placeholder bool   `json:"placeholder"`
}

// BuildPage formats fixtures with f as of now.
func BuildPage(f *portal.Formatter, fx Fixtures, now time.Time) Page {
	page := Page{
		AppName:      branding.AppName,
		Tagline:      branding.Tagline,
		Locale:       f.Config().Locale,
		TableVersion: viewmodel.TableVersion().String(),
		GeneratedFor: viewmodel.FormatDate(now),
		Stats:        f.DashboardStats(fx.Embargoes, fx.PrivacyFlags, fx.AccessRequests, fx.Jobs, now),
		Jobs:         f.JobRows(fx.Jobs),
		Embargoes:    f.EmbargoRows(fx.Embargoes, now),
		PrivacyFlags: f.PrivacyFlagRows(fx.PrivacyFlags),
		Requests:     f.AccessRequestRows(fx.AccessRequests),
		Contributors: f.ContributorCards(fx.Contributors),
		Items:        f.ItemCards(fx.Items, "/items"),
		Projects:     f.ProjectRows(fx.Projects),
		Entities:     f.EntityChips(fx.Entities),
	}
	for _, domain := range viewmodel.Domains() {
		table := BadgeTable{Domain: string(domain)}
		for _, status := range viewmodel.Statuses(domain) {
			table.Badges = append(table.Badges, StatusSwatch{Status: status, Badge: f.Badge(domain, status)})
		}
		page.BadgeTables = append(page.BadgeTables, table)
	}
	for _, sample := range fx.Progress {
		page.Progress = append(page.Progress, f.Progress(sample.Processed, sample.Total))
	}
	for _, sample := range fx.Pagers {
		page.Pagers = append(page.Pagers, f.Pager(sample.Current, sample.Count, sample.BaseURL))
	}
	for _, def := range icons.Catalog() {
		page.Icons = append(page.Icons, IconSwatch{
			Name:        def.Name,
			Label:       def.Label,
			SymbolID:    icons.LucideSymbolID(def.Name),
			Placeholder: def.Placeholder,
		})
	}
	return page
}
