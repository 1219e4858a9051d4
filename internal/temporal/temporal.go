package temporal

import (
	"sort"
	"time"

	"github.com/stalkmarket/stalkbot/internal/model"
)

// Clock resolves the current instant. Production code uses SystemClock;
// tests inject fixed clocks.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// DefaultWindow is the trailing interval for best-price queries.
const DefaultWindow = 12 * time.Hour

// Best is one ranked entry of a best-price query.
type Best struct {
	Author    string
	Price     int
	Timestamp time.Time
}

// Engine computes queries over price event sequences.
type Engine struct {
	clock Clock
}

// NewEngine creates an engine on the given clock, defaulting to the system
// clock when nil.
func NewEngine(clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Engine{clock: clock}
}

// Now returns the engine's current UTC instant.
func (e *Engine) Now() time.Time {
	return e.clock.Now().UTC()
}

// LastPrice returns the price of the author's most recent sell event.
// Buy events are ignored. ok is false when the author has no sells.
func (e *Engine) LastPrice(events []model.PriceEvent, author string) (price int, ok bool) {
	for _, ev := range FilterByUser(events, author) {
		if ev.Kind == model.KindSell {
			price = ev.Price
			ok = true
		}
	}
	return price, ok
}

// BestInWindow ranks users by their maximum price of the given kind within
// the trailing window ending now. The lower bound is inclusive: an event at
// exactly now-window qualifies. Ranking is price descending; equal prices
// rank the earlier timestamp first. Users with no qualifying events are
// absent.
func (e *Engine) BestInWindow(events []model.PriceEvent, kind model.Kind, window time.Duration) []Best {
	now := e.Now()
	from := now.Add(-window)

	qualifying := FilterByWindow(FilterByKind(events, kind), from, now)

	best := make(map[string]Best)
	var order []string
	for _, ev := range qualifying {
		cur, seen := best[ev.Author]
		if !seen {
			order = append(order, ev.Author)
		}
		if !seen || ev.Price > cur.Price {
			best[ev.Author] = Best{Author: ev.Author, Price: ev.Price, Timestamp: ev.Timestamp}
		}
	}

	ranked := make([]Best, 0, len(order))
	for _, author := range order {
		ranked = append(ranked, best[author])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Price != ranked[j].Price {
			return ranked[i].Price > ranked[j].Price
		}
		return ranked[i].Timestamp.Before(ranked[j].Timestamp)
	})
	return ranked
}

// History returns the author's events in chronological order with
// timestamps converted into loc for presentation.
func History(events []model.PriceEvent, author string, loc *time.Location) []model.PriceEvent {
	if loc == nil {
		loc = time.UTC
	}
	yours := FilterByUser(events, author)
	out := make([]model.PriceEvent, len(yours))
	for i, ev := range yours {
		ev.Timestamp = ev.Timestamp.In(loc)
		out[i] = ev
	}
	return out
}

// FilterByUser returns the events of one author, preserving order.
func FilterByUser(events []model.PriceEvent, author string) []model.PriceEvent {
	var out []model.PriceEvent
	for _, ev := range events {
		if ev.Author == author {
			out = append(out, ev)
		}
	}
	return out
}

// FilterByKind returns the events of one kind, preserving order.
func FilterByKind(events []model.PriceEvent, kind model.Kind) []model.PriceEvent {
	var out []model.PriceEvent
	for _, ev := range events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

// FilterByWindow returns the events with from <= timestamp <= to,
// preserving order.
func FilterByWindow(events []model.PriceEvent, from, to time.Time) []model.PriceEvent {
	var out []model.PriceEvent
	for _, ev := range events {
		if !ev.Timestamp.Before(from) && !ev.Timestamp.After(to) {
			out = append(out, ev)
		}
	}
	return out
}

// GroupByUser buckets events per author, preserving order within each
// bucket and returning authors in first-seen order.
func GroupByUser(events []model.PriceEvent) (map[string][]model.PriceEvent, []string) {
	groups := make(map[string][]model.PriceEvent)
	var order []string
	for _, ev := range events {
		if _, seen := groups[ev.Author]; !seen {
			order = append(order, ev.Author)
		}
		groups[ev.Author] = append(groups[ev.Author], ev)
	}
	return groups, order
}
