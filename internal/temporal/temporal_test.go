package temporal

import (
	"testing"
	"time"

	"github.com/stalkmarket/stalkbot/internal/model"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2020, 4, 12, 18, 0, 0, 0, time.UTC)

func ev(author string, kind model.Kind, price int, age time.Duration) model.PriceEvent {
	return model.PriceEvent{
		Author:    author,
		Kind:      kind,
		Price:     price,
		Timestamp: testNow.Add(-age),
	}
}

func TestLastPrice(t *testing.T) {
	e := NewEngine(fixedClock{testNow})

	tests := []struct {
		name      string
		events    []model.PriceEvent
		wantPrice int
		wantOK    bool
	}{
		{
			name:   "no events",
			events: nil,
			wantOK: false,
		},
		{
			name: "buys only",
			events: []model.PriceEvent{
				ev("u1", model.KindBuy, 100, 3*time.Hour),
				ev("u1", model.KindBuy, 110, 2*time.Hour),
			},
			wantOK: false,
		},
		{
			name: "latest sell wins over later buy",
			events: []model.PriceEvent{
				ev("u1", model.KindSell, 200, 4*time.Hour),
				ev("u1", model.KindSell, 600, 2*time.Hour),
				ev("u1", model.KindBuy, 90, time.Hour),
			},
			wantPrice: 600,
			wantOK:    true,
		},
		{
			name: "other users ignored",
			events: []model.PriceEvent{
				ev("u2", model.KindSell, 450, time.Hour),
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, ok := e.LastPrice(tt.events, "u1")
			if ok != tt.wantOK {
				t.Fatalf("LastPrice() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && price != tt.wantPrice {
				t.Errorf("LastPrice() = %d, want %d", price, tt.wantPrice)
			}
		})
	}
}

func TestBestInWindow_RanksByMaxPriceDescending(t *testing.T) {
	e := NewEngine(fixedClock{testNow})

	// Two buy/sell pairs for one user: the max sell (600) ranks, not the
	// latest. A second user sits in between.
	events := []model.PriceEvent{
		ev("u1", model.KindBuy, 100, 11*time.Hour),
		ev("u1", model.KindSell, 600, 10*time.Hour),
		ev("u2", model.KindSell, 400, 5*time.Hour),
		ev("u1", model.KindBuy, 95, 4*time.Hour),
		ev("u1", model.KindSell, 200, 3*time.Hour),
	}

	got := e.BestInWindow(events, model.KindSell, DefaultWindow)
	if len(got) != 2 {
		t.Fatalf("BestInWindow() returned %d entries, want 2", len(got))
	}
	if got[0].Author != "u1" || got[0].Price != 600 {
		t.Errorf("rank 0 = %+v, want u1 at 600", got[0])
	}
	if got[1].Author != "u2" || got[1].Price != 400 {
		t.Errorf("rank 1 = %+v, want u2 at 400", got[1])
	}
}

func TestBestInWindow_ExcludesStaleUsers(t *testing.T) {
	e := NewEngine(fixedClock{testNow})

	events := []model.PriceEvent{
		ev("old", model.KindSell, 900, 13*time.Hour),
		ev("fresh", model.KindSell, 100, time.Hour),
	}

	got := e.BestInWindow(events, model.KindSell, DefaultWindow)
	if len(got) != 1 || got[0].Author != "fresh" {
		t.Fatalf("BestInWindow() = %+v, want only fresh", got)
	}
}

func TestBestInWindow_BoundaryInclusive(t *testing.T) {
	e := NewEngine(fixedClock{testNow})

	events := []model.PriceEvent{
		ev("edge", model.KindSell, 500, DefaultWindow), // exactly now-12h
	}

	got := e.BestInWindow(events, model.KindSell, DefaultWindow)
	if len(got) != 1 {
		t.Fatalf("BestInWindow() excluded the boundary event")
	}
}

func TestBestInWindow_TieBreaksOnEarlierTimestamp(t *testing.T) {
	e := NewEngine(fixedClock{testNow})

	events := []model.PriceEvent{
		ev("late", model.KindSell, 300, time.Hour),
		ev("early", model.KindSell, 300, 5*time.Hour),
	}

	got := e.BestInWindow(events, model.KindSell, DefaultWindow)
	if len(got) != 2 {
		t.Fatalf("BestInWindow() returned %d entries, want 2", len(got))
	}
	if got[0].Author != "early" {
		t.Errorf("rank 0 = %q, want early (older timestamp wins ties)", got[0].Author)
	}
}

func TestBestInWindow_FiltersKind(t *testing.T) {
	e := NewEngine(fixedClock{testNow})

	events := []model.PriceEvent{
		ev("u1", model.KindSell, 800, time.Hour),
		ev("u2", model.KindBuy, 90, time.Hour),
	}

	got := e.BestInWindow(events, model.KindBuy, DefaultWindow)
	if len(got) != 1 || got[0].Author != "u2" {
		t.Fatalf("BestInWindow(buy) = %+v, want only u2", got)
	}
}

func TestHistory_ConvertsZoneAfterSelection(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	events := []model.PriceEvent{
		ev("u1", model.KindBuy, 100, 2*time.Hour),
		ev("u2", model.KindSell, 300, time.Hour),
		ev("u1", model.KindSell, 250, time.Hour),
	}

	got := History(events, "u1", loc)
	if len(got) != 2 {
		t.Fatalf("History() returned %d events, want 2", len(got))
	}
	for i, g := range got {
		if g.Timestamp.Location() != loc {
			t.Errorf("event %d in zone %v, want %v", i, g.Timestamp.Location(), loc)
		}
	}
	if !got[0].Timestamp.Before(got[1].Timestamp) {
		t.Error("History() not chronological")
	}
	// The instant itself is unchanged by presentation.
	if !got[1].Timestamp.Equal(testNow.Add(-time.Hour)) {
		t.Errorf("event instant moved during conversion: %v", got[1].Timestamp)
	}
}

func TestHistory_NilLocationDefaultsUTC(t *testing.T) {
	events := []model.PriceEvent{ev("u1", model.KindSell, 100, time.Hour)}

	got := History(events, "u1", nil)
	if got[0].Timestamp.Location() != time.UTC {
		t.Errorf("zone = %v, want UTC", got[0].Timestamp.Location())
	}
}

func TestGroupByUser(t *testing.T) {
	events := []model.PriceEvent{
		ev("b", model.KindSell, 1, 3*time.Hour),
		ev("a", model.KindSell, 2, 2*time.Hour),
		ev("b", model.KindBuy, 3, time.Hour),
	}

	groups, order := GroupByUser(events)
	if len(order) != 2 || order[0] != "b" || order[1] != "a" {
		t.Errorf("order = %v, want first-seen [b a]", order)
	}
	if len(groups["b"]) != 2 || len(groups["a"]) != 1 {
		t.Errorf("groups = %v, want b:2 a:1", groups)
	}
}
