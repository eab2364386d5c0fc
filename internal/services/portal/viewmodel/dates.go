package viewmodel

import "time"

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// FormatDate returns a YYYY-MM-DD string, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// FormatDateTime returns a YYYY-MM-DD HH:MM:SS string, or "" for the zero time.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateTimeLayout)
}

// EmbargoPhase is where an embargo sits in its lifecycle on a given day.
type EmbargoPhase string

const (
	EmbargoActive    EmbargoPhase = "active"
	EmbargoExpired   EmbargoPhase = "expired"
	EmbargoPerpetual EmbargoPhase = "perpetual"
)

// EmbargoState summarises an embargo's end date relative to today.
type EmbargoState struct {
	Phase EmbargoPhase
	// DaysRemaining counts whole days until the end date; zero when the
	// embargo ends today, is expired, or is perpetual.
	DaysRemaining int
	// ExpiringSoon is set for active embargoes ending within the warning
	// window.
	ExpiringSoon bool
}

// EmbargoStateOf classifies an embargo ending on endDate. A nil endDate is
// perpetual. The end date itself is still embargoed; the embargo expires
// the day after. Dates are compared as calendar days in now's location.
func EmbargoStateOf(endDate *time.Time, now time.Time, soonWithinDays int) EmbargoState {
	if endDate == nil || endDate.IsZero() {
		return EmbargoState{Phase: EmbargoPerpetual}
	}
	today := calendarDay(now, now.Location())
	end := calendarDay(*endDate, now.Location())
	if end.Before(today) {
		return EmbargoState{Phase: EmbargoExpired}
	}
	days := int(end.Sub(today).Hours() / 24)
	return EmbargoState{
		Phase:         EmbargoActive,
		DaysRemaining: days,
		ExpiringSoon:  days <= max(soonWithinDays, 0),
	}
}

func calendarDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
