// Package geo turns heterogeneous customer location data — shared map
// links, legacy coordinate pairs, free-text addresses — into a single
// routable stop string.
package geo

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/btoksoz/tatli-panel/internal/model"
)

var (
	// @lat,lng path segment, optionally followed by a zoom suffix
	atSegmentRe = regexp.MustCompile(`@(-?\d+\.\d+),(-?\d+\.\d+)`)
	// strict decimal coordinate pair, as carried by q= parameters
	coordPairRe = regexp.MustCompile(`^-?\d+\.\d+,-?\d+\.\d+$`)
	// pinned-place encoding embedded in shared links
	pinnedPlaceRe = regexp.MustCompile(`!3d(-?\d+\.\d+)!4d(-?\d+\.\d+)`)
)

// matcher attempts to extract a stop from a parsed map link
type matcher func(u *url.URL) (string, bool)

// matchers run in priority order; the first match wins
var matchers = []matcher{
	matchAtSegment,
	matchQueryParam,
	matchPinnedPlace,
}

func matchAtSegment(u *url.URL) (string, bool) {
	m := atSegmentRe.FindStringSubmatch(u.Path)
	if m == nil {
		return "", false
	}
	return m[1] + "," + m[2], true
}

func matchQueryParam(u *url.URL) (string, bool) {
	q := u.Query().Get("q")
	if q == "" {
		return "", false
	}
	if coordPairRe.MatchString(q) {
		return q, true
	}
	// not a coordinate pair: a shared link whose query is a place name,
	// usable verbatim as a free-text stop
	return q, true
}

func matchPinnedPlace(u *url.URL) (string, bool) {
	m := pinnedPlaceRe.FindStringSubmatch(u.String())
	if m == nil {
		return "", false
	}
	return m[1] + "," + m[2], true
}

// ParseLocationURL extracts a stop from a shared map link. A malformed URL
// or an unrecognized link yields no match, never an error.
func ParseLocationURL(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	for _, m := range matchers {
		if stop, ok := m(u); ok {
			return stop, true
		}
	}
	return "", false
}

// ResolveStop derives a routable stop from a customer record. Resolution
// order: a parsable map link; with a map link that parses to nothing, the
// address and then the name; without a map link, a legacy coordinate pair,
// then address, then name. The name is the terminal fallback.
func ResolveStop(c *model.Customer) (string, bool) {
	if c == nil {
		return "", false
	}
	if c.MapURL != "" {
		if stop, ok := ParseLocationURL(c.MapURL); ok {
			return stop, true
		}
		if c.Address != "" {
			return c.Address, true
		}
		if c.Name != "" {
			return c.Name, true
		}
		return "", false
	}
	if c.Lat != 0 && c.Lng != 0 {
		return fmt.Sprintf("%v,%v", c.Lat, c.Lng), true
	}
	if c.Address != "" {
		return c.Address, true
	}
	if c.Name != "" {
		return c.Name, true
	}
	return "", false
}

// PointLookupURL builds a single-customer map link: the stored map link
// verbatim when present, otherwise a search query against the best
// available location representation.
func PointLookupURL(searchBaseURL string, c *model.Customer) (string, bool) {
	if c == nil {
		return "", false
	}
	if c.MapURL != "" {
		return c.MapURL, true
	}
	if c.Lat != 0 && c.Lng != 0 {
		return searchBaseURL + url.QueryEscape(fmt.Sprintf("%v,%v", c.Lat, c.Lng)), true
	}
	if c.Address != "" {
		return searchBaseURL + url.QueryEscape(c.Address), true
	}
	if c.Name != "" {
		return searchBaseURL + url.QueryEscape(c.Name), true
	}
	return "", false
}
