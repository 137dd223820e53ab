// Package delivery selects the day's delivery worklist and turns a
// selection of orders into an external route request.
package delivery

import "github.com/btoksoz/tatli-panel/internal/model"

// StatusAny disables the status predicate
const StatusAny = "any"

// Filter applies the delivery-list predicates conjunctively: hideDelivered
// drops delivered orders outright, date requires exact string equality and
// status requires exact enum equality. A predicate is inactive when its
// parameter is empty (or "any" for status). The result preserves input
// order and the function is pure.
func Filter(orders []model.Order, date string, status string, hideDelivered bool) []model.Order {
	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if hideDelivered && o.Status == model.StatusDelivered {
			continue
		}
		if date != "" && o.Date != date {
			continue
		}
		if status != "" && status != StatusAny && string(o.Status) != status {
			continue
		}
		out = append(out, o)
	}
	return out
}
