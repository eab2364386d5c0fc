package styleguide

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/louisbranch/heritage.archive/internal/services/portal/templates"
)

// Output formats.
const (
	FormatHTML = "html"
	FormatJSON = "json"
)

// Render writes page to w in the given format.
func Render(ctx context.Context, w io.Writer, page Page, loc templates.Localizer, format string) error {
	switch format {
	case FormatHTML:
		return PageView(page, loc).Render(ctx, w)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(page); err != nil {
			return fmt.Errorf("encode page: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

type statItem struct {
	Label string
	Value string
}

func statItems(stats templates.DashboardStats, loc templates.Localizer) []statItem {
	return []statItem{
		{Label: templates.T(loc, "dashboard.active_embargoes"), Value: stats.ActiveEmbargoes},
		{Label: templates.T(loc, "dashboard.expiring_embargoes"), Value: stats.ExpiringEmbargoes},
		{Label: templates.T(loc, "dashboard.open_privacy_flags"), Value: stats.OpenPrivacyFlags},
		{Label: templates.T(loc, "dashboard.pending_requests"), Value: stats.PendingRequests},
		{Label: templates.T(loc, "dashboard.running_jobs"), Value: stats.RunningJobs},
	}
}

// columns translates table header keys. A blank key is an unlabelled column.
func columns(loc templates.Localizer, keys ...string) []string {
	headers := make([]string, len(keys))
	for i, key := range keys {
		if key != "" {
			headers[i] = templates.T(loc, key)
		}
	}
	return headers
}
