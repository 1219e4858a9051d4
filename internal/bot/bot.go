package bot

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/stalkmarket/stalkbot/internal/catalog"
	"github.com/stalkmarket/stalkbot/internal/config"
	"github.com/stalkmarket/stalkbot/internal/ledger"
	"github.com/stalkmarket/stalkbot/internal/model"
	"github.com/stalkmarket/stalkbot/internal/paginate"
	"github.com/stalkmarket/stalkbot/internal/rollover"
	"github.com/stalkmarket/stalkbot/internal/router"
	"github.com/stalkmarket/stalkbot/internal/temporal"
	"github.com/stalkmarket/stalkbot/internal/transport"
)

// Graph artifact base names inside the data dir.
const (
	GraphFile    = "graph.svg"
	LastWeekFile = "lastweek.svg"
)

// Renderer draws price graphs. Implemented by render.SVGRenderer and by
// test fakes.
type Renderer interface {
	RenderPrices(rows []model.PriceEvent, subject string, outPath string) error
}

// Bot holds everything the command handlers need.
type Bot struct {
	logger  *slog.Logger
	gateway transport.Gateway
	router  *router.Router

	prices  *ledger.PriceLog
	fossils *ledger.FossilLog
	prefs   *ledger.PrefLog

	engine *temporal.Engine
	cat    *catalog.Catalog
	render Renderer
	coord  *rollover.Coordinator

	marker      string
	pageLimit   int
	window      time.Duration
	dataDir     string
	predictBase string
}

// New builds a bot from its collaborators. selfID is the gateway account
// id, known once the gateway is connected.
func New(
	cfg *config.BotConfig,
	gateway transport.Gateway,
	selfID string,
	clock temporal.Clock,
	renderer Renderer,
	logger *slog.Logger,
) *Bot {
	if logger == nil {
		logger = slog.Default()
	}

	dataDir := cfg.Storage.DataDir
	prices := ledger.NewPriceLog(dataDir)

	b := &Bot{
		logger:      logger,
		gateway:     gateway,
		prices:      prices,
		fossils:     ledger.NewFossilLog(dataDir),
		prefs:       ledger.NewPrefLog(dataDir),
		engine:      temporal.NewEngine(clock),
		cat:         catalog.New(),
		render:      renderer,
		coord:       rollover.New(prices, cfg.Commands.Admins, logger),
		marker:      cfg.Commands.Marker,
		pageLimit:   cfg.Commands.PageLimit,
		window:      cfg.Commands.BestWindow,
		dataDir:     dataDir,
		predictBase: cfg.Commands.PredictBase,
	}

	b.coord.Regenerate = func(before []model.PriceEvent) error {
		return b.render.RenderPrices(before, "", b.lastWeekPath())
	}

	b.router = router.New(router.Config{
		Marker:   cfg.Commands.Marker,
		Channels: cfg.Commands.Channels,
		SelfID:   selfID,
	}, b.commands(), logger)

	return b
}

// Run consumes gateway messages until the context ends or the gateway
// fails.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("bot running", "marker", b.marker, "data_dir", b.dataDir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-b.gateway.Errors():
			return fmt.Errorf("gateway: %w", err)
		case msg, ok := <-b.gateway.Messages():
			if !ok {
				b.logger.Info("gateway message stream closed")
				return nil
			}
			b.handle(msg)
		}
	}
}

// Dispatch resolves and runs one message synchronously, returning the
// unpaginated replies. Exposed for the bot loop and for tests.
func (b *Bot) Dispatch(msg transport.Message) []transport.Reply {
	return b.router.Dispatch(msg)
}

// handle dispatches msg and sends the paginated replies. The attachment,
// if any, rides on the final page of its reply.
func (b *Bot) handle(msg transport.Message) {
	for _, reply := range b.Dispatch(msg) {
		pages := paginate.Paginate(reply.Text, b.pageLimit)
		last := len(pages) - 1
		for i, page := range pages {
			out := transport.Reply{Text: page}
			if i == last {
				out.File = reply.File
			}
			if err := b.gateway.Send(msg.Channel.ID(), out); err != nil {
				b.logger.Error("send failed",
					"channel", msg.Channel.Name(),
					"error", err,
				)
				return
			}
		}
	}
}

// commands returns the vocabulary in its fixed registration order.
func (b *Bot) commands() []router.Command {
	return []router.Command{
		{Name: "help", Help: "Shows this help screen.", Handler: b.cmdHelp},
		{Name: "hello", Help: "Says hello to you.", Handler: b.cmdHello},
		{Name: "lookup", Usage: "<name>", Help: "Gets a user's id given a name.", Handler: b.cmdLookup},
		{Name: "buy", Usage: "<price>", Help: "Log the price you can buy turnips for on your island.", Handler: b.cmdBuy},
		{Name: "sell", Usage: "<price>", Help: "Log the price you can sell turnips for on your island.", Handler: b.cmdSell},
		{Name: "history", Usage: "[user]", Help: "Show historical turnip prices for a user.", Handler: b.cmdHistory},
		{Name: "clear", Help: "Clears all of your own historical turnip prices.", Handler: b.cmdClear},
		{Name: "oops", Usage: "[user]", Help: "Remove the last logged turnip price.", Handler: b.cmdOops},
		{Name: "bestbuy", Help: "Finds the best buying prices logged in the last 12 hours.", Handler: b.cmdBestBuy},
		{Name: "bestsell", Help: "Finds the best selling prices logged in the last 12 hours.", Handler: b.cmdBestSell},
		{Name: "turnippattern", Usage: "<sunday buy> <monday sell>", Help: "Predicts the price patterns you will see this week.", Handler: b.cmdTurnipPattern},
		{Name: "graph", Usage: "[user]", Help: "Generates a graph of turnip prices.", Handler: b.cmdGraph},
		{Name: "lastweek", Help: "Displays the final graph from before the last reset.", Handler: b.cmdLastWeek},
		{Name: "reset", Help: "Admins only: archives and resets all price data.", Handler: b.cmdReset},
		{Name: "predict", Usage: "[user]", Help: "Generates a price prediction link from this week's prices.", Handler: b.cmdPredict},
		{Name: "collect", Usage: "<fossils>", Help: "Mark fossils as donated to your museum.", Handler: b.cmdCollect},
		{Name: "uncollect", Usage: "<fossils>", Help: "Unmark fossils previously marked as donated.", Handler: b.cmdUncollect},
		{Name: "allfossils", Help: "Shows every fossil that can be donated.", Handler: b.cmdAllFossils},
		{Name: "listfossils", Usage: "[user]", Help: "Lists the fossils a user still needs.", Handler: b.cmdListFossils},
		{Name: "collectedfossils", Usage: "[user]", Help: "Lists the fossils a user has donated.", Handler: b.cmdCollectedFossils},
		{Name: "fossilsearch", Usage: "<fossils>", Help: "Searches for users who still need the listed fossils.", Handler: b.cmdFossilSearch},
		{Name: "fossilcount", Usage: "<users>", Help: "Counts the fossils remaining for the listed users.", Handler: b.cmdFossilCount},
		{Name: "hemisphere", Usage: "<northern|southern>", Help: "Registers your hemisphere.", Handler: b.cmdHemisphere},
		{Name: "timezone", Usage: "<zone>", Help: "Registers your timezone.", Handler: b.cmdTimezone},
		{Name: "fish", Usage: "[search]", Help: "Lists fish available now in your hemisphere.", Handler: b.cmdFish},
		{Name: "bugs", Usage: "[search]", Help: "Lists bugs available now in your hemisphere.", Handler: b.cmdBugs},
	}
}

// -----------------------------------------------------------------------------
// Shared handler helpers
// -----------------------------------------------------------------------------

func text(format string, args ...any) []transport.Reply {
	return []transport.Reply{{Text: fmt.Sprintf(format, args...)}}
}

// storageFault logs a ledger I/O failure and reports it to the channel.
// The triggering operation is aborted; prior state is unchanged.
func (b *Bot) storageFault(op string, err error) []transport.Reply {
	b.logger.Error("ledger operation failed", "op", op, "error", err)
	return text("Sorry, something went wrong reading or writing the ledger; nothing was changed.")
}

// resolveUser finds a channel member by exact id or case-insensitive name
// fragment.
func resolveUser(ch transport.Channel, query string) (transport.User, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return transport.User{}, false
	}
	needle := strings.ToLower(query)
	for _, member := range ch.Members() {
		if member.ID == query {
			return member, true
		}
	}
	for _, member := range ch.Members() {
		if strings.Contains(strings.ToLower(member.Name), needle) {
			return member, true
		}
	}
	return transport.User{}, false
}

// subjectUser resolves who a query is about: the invoking user when args
// is empty, otherwise the named channel member.
func subjectUser(msg transport.Message, args string) (transport.User, bool) {
	if strings.TrimSpace(args) == "" {
		return msg.Author, true
	}
	return resolveUser(msg.Channel, args)
}

// nameFor maps a ledger author id back to a display name through the
// channel directory, falling back to the raw id.
func nameFor(ch transport.Channel, authorID string) string {
	for _, member := range ch.Members() {
		if member.ID == authorID {
			return member.Name
		}
	}
	return authorID
}

// locationFor resolves a user's configured timezone, defaulting to UTC.
func (b *Bot) locationFor(userID string) *time.Location {
	pref, err := b.prefs.For(userID)
	if err != nil {
		b.logger.Warn("preference lookup failed", "user", userID, "error", err)
		return time.UTC
	}
	return pref.Location()
}

func (b *Bot) graphPath() string {
	return filepath.Join(b.dataDir, GraphFile)
}

func (b *Bot) lastWeekPath() string {
	return filepath.Join(b.dataDir, LastWeekFile)
}

// splitList parses a comma-separated argument list into a trimmed,
// lowercased, de-duplicated set.
func splitList(args string) []string {
	seen := make(map[string]bool)
	var items []string
	for _, part := range strings.Split(args, ",") {
		item := strings.ToLower(strings.TrimSpace(part))
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		items = append(items, item)
	}
	return items
}
