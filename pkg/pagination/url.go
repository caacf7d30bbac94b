package pagination

import (
	"regexp"
	"strings"
)

var pageParamPattern = regexp.MustCompile(`[?&]page=[^&]+`)

// BaseURL prepares url so a page number can be appended as "page=N". A
// separator is added ("&" when url already has a query, "?" otherwise), extra
// is appended as an additional query fragment, and any existing page
// parameter is stripped. An empty url and extra yield an empty base.
func BaseURL(url, extra string) string {
	if url != "" {
		if strings.Contains(url, "?") {
			url += "&"
		} else {
			url += "?"
		}
	}
	if extra != "" {
		if url == "" {
			url = "?"
		}
		url += extra + "&"
	}
	if url == "" {
		return ""
	}
	return pageParamPattern.ReplaceAllString(url, "")
}
