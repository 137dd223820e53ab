package delivery

import (
	"errors"
	"net/url"
	"strings"

	"github.com/btoksoz/tatli-panel/internal/geo"
	"github.com/btoksoz/tatli-panel/internal/model"
)

// ErrNoStops signals that the selection yielded no resolvable destination;
// no navigation should be performed.
var ErrNoStops = errors.New("no resolvable destination")

// Route is a built route request: the external URL and the ordered stops
// it visits.
type Route struct {
	URL   string   `json:"url"`
	Stops []string `json:"stops"`
}

// BuildRoute maps the selected order IDs to ordered stops and composes a
// directions URL against baseURL. Unknown orders, unknown customers and
// unresolvable locations are skipped; selection order is preserved. Stops
// are percent-encoded individually before insertion.
func BuildRoute(baseURL string, selected []string, orders map[string]model.Order, customers map[string]model.Customer) (*Route, error) {
	stops := make([]string, 0, len(selected))
	for _, id := range selected {
		o, ok := orders[id]
		if !ok {
			continue
		}
		c, ok := customers[o.CustomerID]
		if !ok {
			continue
		}
		stop, ok := geo.ResolveStop(&c)
		if !ok {
			continue
		}
		stops = append(stops, stop)
	}
	if len(stops) == 0 {
		return nil, ErrNoStops
	}

	encoded := make([]string, len(stops))
	for i, s := range stops {
		encoded[i] = url.PathEscape(s)
	}
	return &Route{
		URL:   baseURL + strings.Join(encoded, "/"),
		Stops: stops,
	}, nil
}
