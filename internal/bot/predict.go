package bot

import (
	"strconv"
	"strings"
	"time"

	"github.com/stalkmarket/stalkbot/internal/model"
	"github.com/stalkmarket/stalkbot/internal/temporal"
	"github.com/stalkmarket/stalkbot/internal/transport"
)

// predictSlots is the buy price plus twelve morning and afternoon sell
// slots across the week.
const predictSlots = 13

// cmdPredict builds a prediction-site link from the subject's prices since
// their most recent buy. Sell events fill half-day slots in the subject's
// timezone: the first sell of a day takes the morning slot, the second the
// afternoon slot, and further sells that day are ignored.
func (b *Bot) cmdPredict(msg transport.Message, args string) []transport.Reply {
	subject, ok := subjectUser(msg, args)
	if !ok {
		return text("Can not find the user named %s in this channel.", strings.TrimSpace(args))
	}

	events, err := b.prices.Load()
	if err != nil {
		return b.storageFault("predict", err)
	}
	yours := temporal.FilterByUser(events, subject.ID)

	var buy model.PriceEvent
	found := false
	for _, ev := range yours {
		if ev.Kind == model.KindBuy {
			buy = ev
			found = true
		}
	}
	if !found {
		return text("There is no recent buy price for %s.", subject.Name)
	}

	loc := b.locationFor(subject.ID)
	buyDay := midnight(buy.Timestamp.In(loc))

	slots := make([]string, predictSlots)
	slots[0] = strconv.Itoa(buy.Price)
	perDay := make(map[int]int)
	for _, ev := range yours {
		if ev.Kind != model.KindSell || ev.Timestamp.Before(buy.Timestamp) {
			continue
		}
		day := daysBetween(buyDay, midnight(ev.Timestamp.In(loc)))
		if day < 1 || day > 5 {
			continue
		}
		n := perDay[day]
		if n >= 2 {
			continue
		}
		slots[2*day+1+n] = strconv.Itoa(ev.Price)
		perDay[day] = n + 1
	}

	end := len(slots)
	for end > 1 && slots[end-1] == "" {
		end--
	}

	link := b.predictBase + strings.Join(slots[:end], ".")
	return text("%s's turnip prediction link: %s", subject.Name, link)
}

func midnight(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}

// daysBetween counts calendar days from a to b, both already truncated to
// midnight in the same location.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
