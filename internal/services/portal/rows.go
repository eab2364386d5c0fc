package portal

import (
	"math"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/louisbranch/heritage.archive/internal/services/portal/records"
	"github.com/louisbranch/heritage.archive/internal/services/portal/templates"
	"github.com/louisbranch/heritage.archive/internal/services/portal/viewmodel"
)

// JobRows formats batch jobs for the jobs table.
func (f *Formatter) JobRows(jobs []records.BatchJob) []templates.JobRow {
	rows := make([]templates.JobRow, 0, len(jobs))
	for _, job := range jobs {
		rows = append(rows, templates.JobRow{
			ID:        job.ID,
			Name:      f.titleOrUntitled(job.Name),
			Status:    f.Badge(viewmodel.DomainJob, job.Status),
			Progress:  f.Progress(job.Processed, job.Total),
			Failed:    f.count(max(job.Failed, 0)),
			StartedAt: viewmodel.FormatDateTime(job.StartedAt),
		})
	}
	return rows
}

// EmbargoRows formats embargoes for the embargo dashboard as of now.
func (f *Formatter) EmbargoRows(embargoes []records.Embargo, now time.Time) []templates.EmbargoRow {
	rows := make([]templates.EmbargoRow, 0, len(embargoes))
	for _, embargo := range embargoes {
		state := viewmodel.EmbargoStateOf(embargo.EndDate, now, f.cfg.ExpiryWarningDays)
		row := templates.EmbargoRow{
			ID:           embargo.ID,
			ItemID:       embargo.ItemID,
			ItemTitle:    f.titleOrUntitled(embargo.ItemTitle),
			Type:         f.Badge(viewmodel.DomainEmbargo, embargo.Type),
			Reason:       f.Excerpt(embargo.Reason),
			StartDate:    viewmodel.FormatDate(embargo.StartDate),
			State:        f.embargoStateBadge(state),
			ExpiringSoon: state.ExpiringSoon,
		}
		if embargo.EndDate != nil {
			row.EndDate = viewmodel.FormatDate(*embargo.EndDate)
		}
		if state.Phase == viewmodel.EmbargoActive {
			row.Remaining = f.remaining(state.DaysRemaining)
		}
		rows = append(rows, row)
	}
	return rows
}

var embargoPhaseColors = map[viewmodel.EmbargoPhase]viewmodel.ColorToken{
	viewmodel.EmbargoActive:    viewmodel.ColorRed,
	viewmodel.EmbargoExpired:   viewmodel.ColorGreen,
	viewmodel.EmbargoPerpetual: viewmodel.ColorDark,
}

func (f *Formatter) embargoStateBadge(state viewmodel.EmbargoState) templates.Badge {
	color, ok := embargoPhaseColors[state.Phase]
	if !ok {
		color = viewmodel.FallbackColor
	}
	if state.ExpiringSoon {
		color = viewmodel.ColorYellow
	}
	phase := string(state.Phase)
	return templates.Badge{
		Label:   f.translate("embargo.phase."+phase, viewmodel.HumanizeStatus(phase)),
		Variant: color.CSSVariant(),
		Color:   string(color),
	}
}

func (f *Formatter) remaining(days int) string {
	if days == 0 {
		return f.translate("embargo.ends_today", "Ends today")
	}
	return f.translate("embargo.days_left", f.count(days)+" days left", days)
}

// PrivacyFlagRows formats POPIA flags for the privacy dashboard. Unreviewed
// flags come first, then by severity from critical to low; input order is
// kept otherwise.
func (f *Formatter) PrivacyFlagRows(flags []records.PrivacyFlag) []templates.PrivacyFlagRow {
	ordered := make([]records.PrivacyFlag, len(flags))
	copy(ordered, flags)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Reviewed != b.Reviewed {
			return !a.Reviewed
		}
		return severityRank(a.Severity) < severityRank(b.Severity)
	})

	rows := make([]templates.PrivacyFlagRow, 0, len(ordered))
	for _, flag := range ordered {
		rows = append(rows, templates.PrivacyFlagRow{
			ID:         flag.ID,
			ItemID:     flag.ItemID,
			ItemTitle:  f.titleOrUntitled(flag.ItemTitle),
			Category:   viewmodel.HumanizeStatus(flag.Category),
			Severity:   f.Badge(viewmodel.DomainPrivacySeverity, flag.Severity),
			Excerpt:    f.Excerpt(flag.Excerpt),
			Reviewed:   flag.Reviewed,
			DetectedAt: viewmodel.FormatDateTime(flag.DetectedAt),
		})
	}
	return rows
}

var severityOrder = map[string]int{"critical": 0, "high": 1, "medium": 2, "low": 3}

func severityRank(severity string) int {
	if rank, ok := severityOrder[viewmodel.NormalizeStatus(severity)]; ok {
		return rank
	}
	return len(severityOrder)
}

// AccessRequestRows formats access requests for the review queue.
func (f *Formatter) AccessRequestRows(requests []records.AccessRequest) []templates.AccessRequestRow {
	rows := make([]templates.AccessRequestRow, 0, len(requests))
	for _, request := range requests {
		rows = append(rows, templates.AccessRequestRow{
			ID:            request.ID,
			RequesterName: strings.TrimSpace(request.RequesterName),
			ItemTitle:     f.titleOrUntitled(request.ItemTitle),
			Status:        f.Badge(viewmodel.DomainAccessRequest, request.Status),
			Purpose:       f.Excerpt(request.Purpose),
			RequestedAt:   viewmodel.FormatDate(request.RequestedAt),
		})
	}
	return rows
}

// ContributorCards formats contributors for the community page.
func (f *Formatter) ContributorCards(contributors []records.Contributor) []templates.ContributorCard {
	cards := make([]templates.ContributorCard, 0, len(contributors))
	for _, contributor := range contributors {
		name := strings.TrimSpace(contributor.DisplayName)
		seed := contributor.ID
		if seed == "" {
			seed = name
		}
		cards = append(cards, templates.ContributorCard{
			ID:            contributor.ID,
			DisplayName:   name,
			TrustLevel:    f.Badge(viewmodel.DomainTrustLevel, contributor.TrustLevel),
			Contributions: f.count(max(contributor.Contributions, 0)),
			JoinedAt:      viewmodel.FormatDate(contributor.JoinedAt),
			Initials:      initials(name),
			AvatarColor:   viewmodel.PlaceholderColor(seed).CSSVariant(),
		})
	}
	return cards
}

// ItemCards formats items for hero sections and browse grids. Untitled items
// get a placeholder title, color and icon chosen from the item ID so they
// look the same on every page.
func (f *Formatter) ItemCards(items []records.Item, baseURL string) []templates.ItemCard {
	cards := make([]templates.ItemCard, 0, len(items))
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		seed := item.ID
		if seed == "" {
			seed = item.Slug
		}
		card := templates.ItemCard{
			ID:               item.ID,
			Title:            f.titleOrUntitled(title),
			Untitled:         title == "",
			Summary:          f.Summary(item.Summary),
			PlaceholderColor: viewmodel.PlaceholderColor(seed).CSSVariant(),
			PlaceholderIcon:  viewmodel.PlaceholderIcon(seed),
			Featured:         item.Featured,
			Trending:         f.cfg.TrendingViews > 0 && item.Views >= f.cfg.TrendingViews,
			CreatedDate:      viewmodel.FormatDate(item.CreatedAt),
		}
		if item.Slug != "" {
			card.URL = strings.TrimRight(baseURL, "/") + "/" + item.Slug
		}
		cards = append(cards, card)
	}
	return cards
}

// ProjectRows formats research projects.
func (f *Formatter) ProjectRows(projects []records.Project) []templates.ProjectRow {
	rows := make([]templates.ProjectRow, 0, len(projects))
	for _, project := range projects {
		rows = append(rows, templates.ProjectRow{
			ID:        project.ID,
			Title:     f.titleOrUntitled(project.Title),
			Status:    f.Badge(viewmodel.DomainProjectStatus, project.Status),
			ItemCount: f.count(max(project.ItemCount, 0)),
		})
	}
	return rows
}

// EntityChips formats extracted entities, highest confidence first. A NaN
// confidence sorts last.
func (f *Formatter) EntityChips(entities []records.Entity) []templates.EntityChip {
	ordered := make([]records.Entity, len(entities))
	copy(ordered, entities)
	sort.SliceStable(ordered, func(i, j int) bool {
		return confidenceRank(ordered[i].Confidence) > confidenceRank(ordered[j].Confidence)
	})

	chips := make([]templates.EntityChip, 0, len(ordered))
	for _, entity := range ordered {
		display := viewmodel.EntityDisplayFor(strings.TrimSpace(entity.Text), entity.Confidence)
		chips = append(chips, templates.EntityChip{
			Label:   display.Label,
			Type:    viewmodel.HumanizeStatus(entity.Type),
			Tier:    string(display.Tier),
			Variant: display.Color.CSSVariant(),
			Percent: display.Percent,
		})
	}
	return chips
}

func confidenceRank(score float64) float64 {
	if math.IsNaN(score) {
		return math.Inf(-1)
	}
	return score
}

// DashboardStats counts the open work shown on the admin dashboard.
func (f *Formatter) DashboardStats(
	embargoes []records.Embargo,
	flags []records.PrivacyFlag,
	requests []records.AccessRequest,
	jobs []records.BatchJob,
	now time.Time,
) templates.DashboardStats {
	var active, expiring, openFlags, pending, running int
	for _, embargo := range embargoes {
		state := viewmodel.EmbargoStateOf(embargo.EndDate, now, f.cfg.ExpiryWarningDays)
		if state.Phase == viewmodel.EmbargoExpired {
			continue
		}
		active++
		if state.ExpiringSoon {
			expiring++
		}
	}
	for _, flag := range flags {
		if !flag.Reviewed {
			openFlags++
		}
	}
	for _, request := range requests {
		if viewmodel.NormalizeStatus(request.Status) == "pending" {
			pending++
		}
	}
	for _, job := range jobs {
		if viewmodel.NormalizeStatus(job.Status) == "processing" {
			running++
		}
	}
	return templates.DashboardStats{
		ActiveEmbargoes:   f.count(active),
		ExpiringEmbargoes: f.count(expiring),
		OpenPrivacyFlags:  f.count(openFlags),
		PendingRequests:   f.count(pending),
		RunningJobs:       f.count(running),
	}
}

func (f *Formatter) titleOrUntitled(title string) string {
	title = strings.TrimSpace(title)
	if title != "" {
		return title
	}
	return f.translate("item.untitled", "Untitled")
}

// initials returns up to two uppercase initials from name.
func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				out = append(out, unicode.ToUpper(r))
				break
			}
		}
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
