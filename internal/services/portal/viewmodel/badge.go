package viewmodel

import (
	"sort"
	"strings"
)

// Domain names one status vocabulary.
type Domain string

const (
	DomainJob               Domain = "job"
	DomainEmbargo           Domain = "embargo"
	DomainPrivacySeverity   Domain = "privacy_severity"
	DomainAccessRequest     Domain = "access_request"
	DomainTrustLevel        Domain = "trust_level"
	DomainProjectStatus     Domain = "project_status"
	DomainConditionPriority Domain = "condition_priority"
)

// StatusBadge is a status value paired with the color it renders in.
type StatusBadge struct {
	// Domain is the vocabulary the status was looked up in.
	Domain Domain
	// Status is the normalized status value ("digital_only").
	Status string
	// Label is the human-readable status text ("Digital only").
	Label string
	// Color is the theme-neutral color token.
	Color ColorToken
}

// CSSVariant returns the Bootstrap class suffix for the badge color.
func (b StatusBadge) CSSVariant() string {
	return b.Color.CSSVariant()
}

// badgeTables is the single source of status colors for every template.
// Bump TableVersion when an entry changes.
var badgeTables = map[Domain]map[string]ColorToken{
	DomainJob: {
		"pending":    ColorGray,
		"processing": ColorBlue,
		"completed":  ColorGreen,
		"failed":     ColorRed,
		"cancelled":  ColorGray,
		"paused":     ColorYellow,
	},
	DomainEmbargo: {
		"full":            ColorRed,
		"digital_only":    ColorYellow,
		"metadata_hidden": ColorCyan,
	},
	DomainPrivacySeverity: {
		"critical": ColorRed,
		"high":     ColorYellow,
		"medium":   ColorCyan,
		"low":      ColorGray,
	},
	DomainAccessRequest: {
		"pending":   ColorYellow,
		"approved":  ColorGreen,
		"denied":    ColorRed,
		"expired":   ColorGray,
		"withdrawn": ColorGray,
	},
	DomainTrustLevel: {
		"new":           ColorGray,
		"contributor":   ColorBlue,
		"trusted":       ColorGreen,
		"moderator":     ColorCyan,
		"administrator": ColorRed,
	},
	DomainProjectStatus: {
		"planning":  ColorCyan,
		"active":    ColorGreen,
		"on_hold":   ColorYellow,
		"completed": ColorGray,
	},
	DomainConditionPriority: {
		"urgent": ColorRed,
		"high":   ColorYellow,
		"medium": ColorCyan,
		"low":    ColorGray,
	},
}

// BadgeFor returns the badge for status within domain. Unknown domains and
// unmapped statuses resolve to FallbackColor.
func BadgeFor(domain Domain, status string) StatusBadge {
	normalized := NormalizeStatus(status)
	badge := StatusBadge{
		Domain: domain,
		Status: normalized,
		Label:  HumanizeStatus(normalized),
		Color:  FallbackColor,
	}
	if color, ok := badgeTables[domain][normalized]; ok {
		badge.Color = color
	}
	return badge
}

// NormalizeStatus trims and lowercases a raw status value. Spaces and
// hyphens become underscores so "On Hold" and "on-hold" match "on_hold".
func NormalizeStatus(status string) string {
	status = strings.ToLower(strings.TrimSpace(status))
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return '_'
		}
		return r
	}, status)
}

// Domains returns every domain with a badge table, sorted by name.
func Domains() []Domain {
	out := make([]Domain, 0, len(badgeTables))
	for domain := range badgeTables {
		out = append(out, domain)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Statuses returns the mapped statuses for domain, sorted.
func Statuses(domain Domain) []string {
	table := badgeTables[domain]
	out := make([]string, 0, len(table))
	for status := range table {
		out = append(out, status)
	}
	sort.Strings(out)
	return out
}

// Table returns one badge per mapped status of domain, ordered by status.
func Table(domain Domain) []StatusBadge {
	statuses := Statuses(domain)
	out := make([]StatusBadge, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, BadgeFor(domain, status))
	}
	return out
}
