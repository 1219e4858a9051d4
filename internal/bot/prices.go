package bot

import (
	"strconv"
	"strings"
	"time"

	"github.com/stalkmarket/stalkbot/internal/model"
	"github.com/stalkmarket/stalkbot/internal/temporal"
	"github.com/stalkmarket/stalkbot/internal/transport"
)

// parsePrice validates the price argument of buy and sell. label is the
// capitalized verb used in replies ("Buying" or "Selling").
func parsePrice(args, label string) (int, []transport.Reply) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return 0, text("Please include %s price after command name.", strings.ToLower(label))
	}
	price, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, text("%s price must be a number.", label)
	}
	if price <= 0 {
		return 0, text("%s price must be greater than zero.", label)
	}
	return price, nil
}

func formatStamp(ts time.Time) string {
	return ts.Format("2006-01-02 15:04 MST")
}

func (b *Bot) cmdBuy(msg transport.Message, args string) []transport.Reply {
	price, bad := parsePrice(args, "Buying")
	if bad != nil {
		return bad
	}

	ev := model.PriceEvent{
		Author:    msg.Author.ID,
		Kind:      model.KindBuy,
		Price:     price,
		Timestamp: b.engine.Now(),
	}
	if err := b.prices.Append(ev); err != nil {
		return b.storageFault("buy", err)
	}
	return text("Logged buying price of %d for user %s.", price, msg.Author.Name)
}

func (b *Bot) cmdSell(msg transport.Message, args string) []transport.Reply {
	price, bad := parsePrice(args, "Selling")
	if bad != nil {
		return bad
	}

	events, err := b.prices.Load()
	if err != nil {
		return b.storageFault("sell", err)
	}
	last, hasLast := b.engine.LastPrice(events, msg.Author.ID)

	ev := model.PriceEvent{
		Author:    msg.Author.ID,
		Kind:      model.KindSell,
		Price:     price,
		Timestamp: b.engine.Now(),
	}
	if err := b.prices.Append(ev); err != nil {
		return b.storageFault("sell", err)
	}

	base := "Logged selling price of " + strconv.Itoa(price) + " for user " + msg.Author.Name + "."
	switch {
	case !hasLast:
		return text("%s", base)
	case price > last:
		return text("%s (Higher than last selling price of %d bells)", base, last)
	case price < last:
		return text("%s (Lower than last selling price of %d bells)", base, last)
	default:
		return text("%s (Same as last selling price)", base)
	}
}

func (b *Bot) cmdHistory(msg transport.Message, args string) []transport.Reply {
	subject, ok := subjectUser(msg, args)
	if !ok {
		return text("Can not find the user named %s in this channel.", strings.TrimSpace(args))
	}

	events, err := b.prices.Load()
	if err != nil {
		return b.storageFault("history", err)
	}

	lines := []string{"__**Historical info for " + subject.Name + "**__"}
	for _, ev := range temporal.History(events, subject.ID, b.locationFor(subject.ID)) {
		switch ev.Kind {
		case model.KindBuy:
			lines = append(lines, "> Can buy turnips from Daisy Mae for "+
				strconv.Itoa(ev.Price)+" bells at "+formatStamp(ev.Timestamp))
		case model.KindSell:
			lines = append(lines, "> Can sell turnips to Timmy & Tommy for "+
				strconv.Itoa(ev.Price)+" bells at "+formatStamp(ev.Timestamp))
		}
	}
	return text("%s", strings.Join(lines, "\n"))
}

func (b *Bot) cmdClear(msg transport.Message, args string) []transport.Reply {
	events, err := b.prices.Load()
	if err != nil {
		return b.storageFault("clear", err)
	}

	kept := make([]model.PriceEvent, 0, len(events))
	for _, ev := range events {
		if ev.Author != msg.Author.ID {
			kept = append(kept, ev)
		}
	}
	if err := b.prices.Overwrite(kept); err != nil {
		return b.storageFault("clear", err)
	}
	return text("**Cleared history for %s.**", msg.Author.Name)
}

func (b *Bot) cmdOops(msg transport.Message, args string) []transport.Reply {
	subject, ok := subjectUser(msg, args)
	if !ok {
		return text("Can not find the user named %s in this channel.", strings.TrimSpace(args))
	}

	events, err := b.prices.Load()
	if err != nil {
		return b.storageFault("oops", err)
	}

	last := -1
	for i, ev := range events {
		if ev.Author == subject.ID {
			last = i
		}
	}
	if last >= 0 {
		kept := append(append([]model.PriceEvent(nil), events[:last]...), events[last+1:]...)
		if err := b.prices.Overwrite(kept); err != nil {
			return b.storageFault("oops", err)
		}
	}
	return text("**Deleting last logged price for %s.**", subject.Name)
}

func (b *Bot) cmdBestBuy(msg transport.Message, args string) []transport.Reply {
	return b.best(msg, model.KindBuy, "Buying")
}

func (b *Bot) cmdBestSell(msg transport.Message, args string) []transport.Reply {
	return b.best(msg, model.KindSell, "Selling")
}

func (b *Bot) best(msg transport.Message, kind model.Kind, label string) []transport.Reply {
	events, err := b.prices.Load()
	if err != nil {
		return b.storageFault("best"+string(kind), err)
	}

	hours := int(b.window.Hours())
	lines := []string{"__**Best " + label + " Prices in the Last " + strconv.Itoa(hours) + " Hours**__"}
	for _, entry := range b.engine.BestInWindow(events, kind, b.window) {
		lines = append(lines, "> "+nameFor(msg.Channel, entry.Author)+": "+
			strconv.Itoa(entry.Price)+" bells at "+formatStamp(entry.Timestamp))
	}
	return text("%s", strings.Join(lines, "\n"))
}

// Pattern likelihood bands keyed off the Monday/Sunday price ratio.
func (b *Bot) cmdTurnipPattern(msg transport.Message, args string) []transport.Reply {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return text("Please provide Daisy Mae's price and your Monday morning price\neg. %sturnippattern <buy price> <Monday morning sell price>", b.marker)
	}

	buy, err1 := strconv.Atoi(fields[0])
	monday, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return text("Prices must be numbers.")
	}
	if buy <= 0 || monday <= 0 {
		return text("Prices must be greater than zero.")
	}

	ratio := float64(monday) / float64(buy)
	var patterns []int
	switch {
	case ratio >= 0.91:
		patterns = []int{1, 4}
	case ratio >= 0.85:
		patterns = []int{2, 3, 4}
	case ratio >= 0.80:
		patterns = []int{3, 4}
	case ratio >= 0.60:
		patterns = []int{1, 4}
	default:
		patterns = []int{4}
	}

	descriptions := map[int]string{
		1: "> **Random**: Prices are completely random. Sell when it goes over your buying price.",
		2: "> **Decreasing**: Prices will continuously fall.",
		3: "> **Small Spike**: Prices fall until a spike occurs. The price will go up three more times. Sell on the third increase for maximum profit. Spikes only occur from Monday to Thursday.",
		4: "> **Big Spike**: Prices fall until a small spike. Prices then decrease before shooting up twice. Sell the second time prices shoot up after the decrease for maximum profit. Spikes only occur from Monday to Thursday.",
	}

	lines := []string{"Based on your prices, you will see one of the following patterns this week:"}
	for _, p := range patterns {
		lines = append(lines, descriptions[p])
	}
	return text("%s", strings.Join(lines, "\n"))
}
