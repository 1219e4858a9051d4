package router

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/stalkmarket/stalkbot/internal/transport"
)

// Handler executes one command. Argument and state errors are reported as
// reply text, never as panics or Go errors escaping to the router.
type Handler func(msg transport.Message, args string) []transport.Reply

// Command is one entry of the fixed vocabulary.
type Command struct {
	Name    string // Vocabulary token, lowercase
	Usage   string // Argument hint shown by help, may be empty
	Help    string // One-line description shown by help
	Handler Handler
}

// Config holds router settings.
type Config struct {
	Marker   string   // Command marker, default "!"
	Channels []string // Channel-name allow-list
	SelfID   string   // The bot's own user id, never served
}

// Router owns the vocabulary and the dispatch rules.
type Router struct {
	marker   string
	selfID   string
	allowed  map[string]bool
	commands []Command
	byName   map[string]int
	logger   *slog.Logger
}

// New creates a router over the given ordered vocabulary.
func New(cfg Config, commands []Command, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	marker := cfg.Marker
	if marker == "" {
		marker = "!"
	}

	allowed := make(map[string]bool, len(cfg.Channels))
	for _, name := range cfg.Channels {
		allowed[name] = true
	}

	byName := make(map[string]int, len(commands))
	for i, cmd := range commands {
		byName[cmd.Name] = i
	}

	return &Router{
		marker:   marker,
		selfID:   cfg.SelfID,
		allowed:  allowed,
		commands: commands,
		byName:   byName,
		logger:   logger,
	}
}

// Commands returns the vocabulary in registration order.
func (r *Router) Commands() []Command {
	return r.commands
}

// Marker returns the configured command marker.
func (r *Router) Marker() string {
	return r.marker
}

// Dispatch resolves and runs the command in msg. A nil result means the
// message was ignored; otherwise the replies are ready to paginate and
// send.
func (r *Router) Dispatch(msg transport.Message) []transport.Reply {
	if r.ignored(msg) {
		return nil
	}

	body := strings.TrimPrefix(msg.Text, r.marker)
	if strings.TrimLeft(body, r.marker+" \t") == "" {
		return nil
	}

	token, args := splitCommand(body)

	cmd, candidates := r.resolve(token)
	switch {
	case cmd != nil:
		r.logger.Debug("dispatching command",
			"command", cmd.Name,
			"author", msg.Author.Name,
			"channel", msg.Channel.Name(),
		)
		return cmd.Handler(msg, args)

	case len(candidates) == 0:
		return []transport.Reply{{
			Text: fmt.Sprintf("Sorry, I don't understand %s%s.", r.marker, token),
		}}

	default:
		sort.Strings(candidates)
		for i, name := range candidates {
			candidates[i] = r.marker + name
		}
		return []transport.Reply{{
			Text: "Did you mean: " + strings.Join(candidates, ", ") + "?",
		}}
	}
}

// ignored applies the pre-parse silence rules.
func (r *Router) ignored(msg transport.Message) bool {
	if msg.Author.ID == r.selfID {
		return true
	}
	if msg.Channel == nil || msg.Channel.Kind() != "text" {
		return true
	}
	if !r.allowed[msg.Channel.Name()] {
		return true
	}
	return !strings.HasPrefix(msg.Text, r.marker)
}

// resolve matches a token against the vocabulary. Exactly one of the
// returns is meaningful: cmd when the match is exact or unambiguous,
// candidates otherwise.
func (r *Router) resolve(token string) (cmd *Command, candidates []string) {
	if i, ok := r.byName[token]; ok {
		return &r.commands[i], nil
	}
	for i := range r.commands {
		if strings.HasPrefix(r.commands[i].Name, token) {
			candidates = append(candidates, r.commands[i].Name)
		}
	}
	if len(candidates) == 1 {
		return &r.commands[r.byName[candidates[0]]], nil
	}
	return nil, candidates
}

// splitCommand separates the command token from the raw argument string on
// the first whitespace run.
func splitCommand(body string) (token, args string) {
	body = strings.TrimLeft(body, " \t")
	idx := strings.IndexAny(body, " \t")
	if idx < 0 {
		return strings.ToLower(body), ""
	}
	return strings.ToLower(body[:idx]), strings.TrimLeft(body[idx:], " \t")
}
