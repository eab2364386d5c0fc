package templates

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/heritage.archive/internal/services/portal/viewmodel"
)

// AppendQueryParam appends a single query parameter to a URL.
func AppendQueryParam(baseURL string, key string, value string) string {
	encodedKey := url.QueryEscape(key)
	encodedValue := url.QueryEscape(value)
	if strings.Contains(baseURL, "?") {
		return baseURL + "&" + encodedKey + "=" + encodedValue
	}
	return baseURL + "?" + encodedKey + "=" + encodedValue
}

func pageLink(p Pager, page int) string {
	param := strings.TrimSpace(p.Param)
	if param == "" {
		param = "page"
	}
	return AppendQueryParam(p.BaseURL, param, strconv.Itoa(page))
}

// hasLeadingGap reports whether pages sit between page 1 and the window.
func hasLeadingGap(w viewmodel.PaginationWindow) bool {
	return len(w.VisiblePages) > 0 && w.VisiblePages[0] > 2
}

// hasTrailingGap reports whether pages sit between the window and the last page.
func hasTrailingGap(w viewmodel.PaginationWindow) bool {
	return len(w.VisiblePages) > 0 && w.VisiblePages[len(w.VisiblePages)-1] < w.TotalPages-1
}

func percentLabel(percent int) string {
	return strconv.Itoa(percent) + "%"
}

func progressWidth(percent int) templ.Attributes {
	return templ.Attributes{"style": "width: " + percentLabel(percent)}
}

func variantOrDefault(variant string) string {
	variant = strings.TrimSpace(variant)
	if variant == "" {
		return "secondary"
	}
	return variant
}
