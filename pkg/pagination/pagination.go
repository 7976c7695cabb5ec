// Package pagination computes offset-based page metadata and navigation links
// shared by the list endpoints. No page-bounds clamping is performed: a page
// past the last yields an empty item collection with correct metadata.
package pagination

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Defaults applied when a query parameter is absent or non-numeric.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Params holds normalized pagination parameters (1-based page).
type Params struct {
	Page  int
	Limit int
}

// Parse normalizes the raw page/limit query parameters, falling back to the
// defaults for absent, non-numeric, or non-positive values.
func Parse(pageRaw, limitRaw string) Params {
	return Params{
		Page:  parsePositive(pageRaw, DefaultPage),
		Limit: parsePositive(limitRaw, DefaultLimit),
	}
}

func parsePositive(raw string, fallback int) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// Skip returns the number of records preceding the requested page.
func (p Params) Skip() int {
	return p.Limit * (p.Page - 1)
}

// Links holds the navigation URLs of a listing. An empty string means the
// corresponding page does not exist.
type Links struct {
	Prev string
	Next string
}

// BuildLinks computes prev/next navigation for a listing with total matching
// records. The previous page exists iff page > 1; the next page exists iff
// skip+limit < total. Each link reuses baseURL with page/limit substituted.
func BuildLinks(baseURL string, p Params, total int64) Links {
	var links Links
	if p.Page > 1 {
		links.Prev = withPage(baseURL, p.Page-1, p.Limit)
	}
	if int64(p.Skip()+p.Limit) < total {
		links.Next = withPage(baseURL, p.Page+1, p.Limit)
	}
	return links
}

// Header renders the links as an RFC 5988 Link header value, or "" when
// neither page exists.
func (l Links) Header() string {
	parts := make([]string, 0, 2)
	if l.Prev != "" {
		parts = append(parts, fmt.Sprintf("<%s>; rel=%q", l.Prev, "prev"))
	}
	if l.Next != "" {
		parts = append(parts, fmt.Sprintf("<%s>; rel=%q", l.Next, "next"))
	}
	return strings.Join(parts, ", ")
}

func withPage(baseURL string, page, limit int) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()
	return u.String()
}
