// Package records defines the typed archive records the portal formats.
//
// Controllers fill these from framework data. Every field is optional: the
// zero value is the documented default and formatting never fails on it.
package records

import "time"

// Item is a catalogued archival description.
type Item struct {
	// ID is the stable identifier, also used as the placeholder seed.
	ID string `json:"id" yaml:"id"`
	// Title may be empty for untitled items.
	Title string `json:"title" yaml:"title"`
	// Summary is the scope-and-content note shown in cards.
	Summary string `json:"summary" yaml:"summary"`
	// Slug is the URL segment for the item page.
	Slug string `json:"slug" yaml:"slug"`
	// Featured items get the featured badge on landing pages.
	Featured bool `json:"featured" yaml:"featured"`
	// Views counts page views in the trending window.
	Views int `json:"views" yaml:"views"`
	// CreatedAt is the zero time when unknown.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Embargo restricts access to an item until EndDate. A nil EndDate is
// perpetual.
type Embargo struct {
	ID     string `json:"id" yaml:"id"`
	ItemID string `json:"item_id" yaml:"item_id"`
	// ItemTitle is denormalized for dashboard rows.
	ItemTitle string `json:"item_title" yaml:"item_title"`
	// Type is one of full, digital_only or metadata_hidden.
	Type      string     `json:"type" yaml:"type"`
	Reason    string     `json:"reason" yaml:"reason"`
	StartDate time.Time  `json:"start_date" yaml:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty" yaml:"end_date,omitempty"`
}

// PrivacyFlag marks personal information found in a record that needs
// POPIA review.
type PrivacyFlag struct {
	ID        string `json:"id" yaml:"id"`
	ItemID    string `json:"item_id" yaml:"item_id"`
	ItemTitle string `json:"item_title" yaml:"item_title"`
	// Category names the kind of personal information (id_number, health).
	Category string `json:"category" yaml:"category"`
	// Severity is one of critical, high, medium or low.
	Severity string `json:"severity" yaml:"severity"`
	// Excerpt is the matched text, truncated for display.
	Excerpt    string    `json:"excerpt" yaml:"excerpt"`
	Reviewed   bool      `json:"reviewed" yaml:"reviewed"`
	DetectedAt time.Time `json:"detected_at" yaml:"detected_at"`
}

// BatchJob is a background processing job.
type BatchJob struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	// Status is one of pending, processing, completed, failed, cancelled
	// or paused.
	Status string `json:"status" yaml:"status"`
	// Processed and Total default to zero, which renders as 0%.
	Processed int       `json:"processed" yaml:"processed"`
	Total     int       `json:"total" yaml:"total"`
	Failed    int       `json:"failed" yaml:"failed"`
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
}

// Contributor is a community member who submits or corrects records.
type Contributor struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	// TrustLevel is one of new, contributor, trusted, moderator or
	// administrator.
	TrustLevel    string    `json:"trust_level" yaml:"trust_level"`
	Contributions int       `json:"contributions" yaml:"contributions"`
	JoinedAt      time.Time `json:"joined_at" yaml:"joined_at"`
}

// AccessRequest asks for access to embargoed or restricted material.
type AccessRequest struct {
	ID            string `json:"id" yaml:"id"`
	RequesterName string `json:"requester_name" yaml:"requester_name"`
	ItemTitle     string `json:"item_title" yaml:"item_title"`
	// Status is one of pending, approved, denied, expired or withdrawn.
	Status      string    `json:"status" yaml:"status"`
	Purpose     string    `json:"purpose" yaml:"purpose"`
	RequestedAt time.Time `json:"requested_at" yaml:"requested_at"`
}

// Entity is a named entity extracted from an item with a model confidence.
type Entity struct {
	Text string `json:"text" yaml:"text"`
	// Type is person, place, organization or date.
	Type string `json:"type" yaml:"type"`
	// Confidence is expected in [0,1]; values outside are clamped on display.
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// Project is a researcher's collection project.
type Project struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	// Status is one of planning, active, on_hold or completed.
	Status    string `json:"status" yaml:"status"`
	ItemCount int    `json:"item_count" yaml:"item_count"`
}
