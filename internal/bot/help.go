package bot

import (
	"strings"

	"github.com/stalkmarket/stalkbot/internal/transport"
)

func (b *Bot) cmdHelp(msg transport.Message, args string) []transport.Reply {
	lines := []string{"__**Command Help**__"}
	for _, cmd := range b.router.Commands() {
		entry := "> **" + b.marker + cmd.Name + "**"
		if cmd.Usage != "" {
			entry += " `" + cmd.Usage + "`"
		}
		entry += " - " + cmd.Help
		lines = append(lines, entry)
	}
	return text("%s", strings.Join(lines, "\n"))
}

func (b *Bot) cmdHello(msg transport.Message, args string) []transport.Reply {
	return text("Hello, %s! Use %shelp to see what I can do.", msg.Author.Name, b.marker)
}

func (b *Bot) cmdLookup(msg transport.Message, args string) []transport.Reply {
	query := strings.TrimSpace(args)
	if query == "" {
		return text("Please provide a user name to look up.")
	}
	user, ok := resolveUser(msg.Channel, query)
	if !ok {
		return text("Can not find the user named %s in this channel.", query)
	}
	return text("The user id for %s is %s.", user.Name, user.ID)
}
