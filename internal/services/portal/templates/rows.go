// File rows.go defines view data for the portal dashboard templates.
package templates

import "github.com/louisbranch/heritage.archive/internal/services/portal/viewmodel"

// Badge holds a formatted status badge.
type Badge struct {
	// Label is the localized status text.
	Label string
	// Variant is the CSS contextual suffix (e.g., "danger").
	Variant string
	// Color is the theme-neutral color token.
	Color string
}

// Progress holds a formatted progress bar.
type Progress struct {
	Percent int
	// Caption reads like "50 / 200".
	Caption string
	// Variant is the CSS contextual suffix for the bar.
	Variant string
}

// JobRow holds formatted batch job data for the jobs table.
type JobRow struct {
	// ID is the unique identifier for the job.
	ID string
	// Name is the display name of the job.
	Name string
	// Status is the job status badge.
	Status Badge
	// Progress is the completion bar.
	Progress Progress
	// Failed is the formatted failure count.
	Failed string
	// StartedAt is the formatted start timestamp.
	StartedAt string
}

// EmbargoRow holds formatted embargo data for the embargo dashboard.
type EmbargoRow struct {
	ID        string
	ItemID    string
	ItemTitle string
	// Type is the embargo type badge.
	Type Badge
	// Reason is the truncated reason text.
	Reason    string
	StartDate string
	// EndDate is empty for perpetual embargoes.
	EndDate string
	// State is the lifecycle badge (active, expired, perpetual).
	State Badge
	// Remaining reads like "12 days left"; empty unless active.
	Remaining string
	// ExpiringSoon highlights rows ending within the warning window.
	ExpiringSoon bool
}

// PrivacyFlagRow holds formatted POPIA flag data for the privacy dashboard.
type PrivacyFlagRow struct {
	ID        string
	ItemID    string
	ItemTitle string
	Category  string
	Severity  Badge
	// Excerpt is the truncated matched text.
	Excerpt    string
	Reviewed   bool
	DetectedAt string
}

// AccessRequestRow holds formatted access request data.
type AccessRequestRow struct {
	ID            string
	RequesterName string
	ItemTitle     string
	Status        Badge
	Purpose       string
	RequestedAt   string
}

// ContributorCard holds formatted contributor data for the community page.
type ContributorCard struct {
	ID            string
	DisplayName   string
	TrustLevel    Badge
	Contributions string
	JoinedAt      string
	// Initials is shown in the avatar circle.
	Initials string
	// AvatarColor is the CSS variant for the avatar background.
	AvatarColor string
}

// ItemCard holds formatted item data for hero sections and browse grids.
type ItemCard struct {
	ID    string
	Title string
	// Untitled is set when Title is a placeholder.
	Untitled bool
	Summary  string
	URL      string
	// PlaceholderColor is the CSS variant for the image-less card.
	PlaceholderColor string
	// PlaceholderIcon is the icon name for the image-less card.
	PlaceholderIcon string
	Featured        bool
	Trending        bool
	CreatedDate     string
}

// ProjectRow holds formatted research project data.
type ProjectRow struct {
	ID        string
	Title     string
	Status    Badge
	ItemCount string
}

// EntityChip holds a recognised entity for review screens.
type EntityChip struct {
	Label string
	Type  string
	// Tier is high, medium or low.
	Tier    string
	Variant string
	Percent int
}

// Pager holds page links for a paginated table.
type Pager struct {
	Window viewmodel.PaginationWindow
	// BaseURL receives the page query parameter.
	BaseURL string
	// Param is the query parameter name (default "page").
	Param string
}

// DashboardStats holds aggregate counts for the admin dashboard.
type DashboardStats struct {
	ActiveEmbargoes   string
	ExpiringEmbargoes string
	OpenPrivacyFlags  string
	PendingRequests   string
	RunningJobs       string
}
