package bot

import (
	"errors"
	"os"
	"strings"

	"github.com/stalkmarket/stalkbot/internal/render"
	"github.com/stalkmarket/stalkbot/internal/rollover"
	"github.com/stalkmarket/stalkbot/internal/transport"
)

func (b *Bot) cmdGraph(msg transport.Message, args string) []transport.Reply {
	subjectID := ""
	title := "__**Historical Graph for All Users**__"
	if strings.TrimSpace(args) != "" {
		subject, ok := resolveUser(msg.Channel, args)
		if !ok {
			return text("Can not find the user named %s in this channel.", strings.TrimSpace(args))
		}
		subjectID = subject.ID
		title = "__**Historical Graph for " + subject.Name + "**__"
	}

	events, err := b.prices.Load()
	if err != nil {
		return b.storageFault("graph", err)
	}

	switch err := b.render.RenderPrices(events, subjectID, b.graphPath()); {
	case errors.Is(err, render.ErrNoData):
		return text("No selling prices have been logged yet.")
	case err != nil:
		b.logger.Error("graph rendering failed", "error", err)
		return text("Sorry, something went wrong generating the graph.")
	}

	return []transport.Reply{{Text: title, File: b.graphPath()}}
}

func (b *Bot) cmdLastWeek(msg transport.Message, args string) []transport.Reply {
	if _, err := os.Stat(b.lastWeekPath()); err != nil {
		return text("No graph from last week.")
	}
	return []transport.Reply{{
		Text: "__**Historical Graph from Last Week**__",
		File: b.lastWeekPath(),
	}}
}

func (b *Bot) cmdReset(msg transport.Message, args string) []transport.Reply {
	_, err := b.coord.Reset(msg.Author, b.engine.Now())
	switch {
	case errors.Is(err, rollover.ErrUnauthorized):
		return text("Sorry, only admins can reset the data.")
	case errors.Is(err, rollover.ErrResetInProgress):
		return text("A reset is already in progress, try again shortly.")
	case err != nil:
		return b.storageFault("reset", err)
	}
	return text("**Resetting data for a new week!**")
}
