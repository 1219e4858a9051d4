package bot

import (
	"strings"
	"time"

	"github.com/stalkmarket/stalkbot/internal/model"
	"github.com/stalkmarket/stalkbot/internal/transport"
)

func (b *Bot) cmdHemisphere(msg transport.Message, args string) []transport.Reply {
	input := strings.ToLower(strings.TrimSpace(args))
	if input == "" {
		return text("Please provide your hemisphere, either northern or southern.")
	}

	h, ok := model.ParseHemisphere(input)
	if !ok {
		return text("Please provide either northern or southern as your hemisphere.")
	}
	if err := b.prefs.SetHemisphere(msg.Author.ID, h); err != nil {
		return b.storageFault("hemisphere", err)
	}
	return text("Hemisphere registered for %s.", msg.Author.Name)
}

func (b *Bot) cmdTimezone(msg transport.Message, args string) []transport.Reply {
	zone := strings.TrimSpace(args)
	if zone == "" {
		return text("Please provide a timezone, such as America/New_York.")
	}

	if _, err := time.LoadLocation(zone); err != nil {
		return text("Please provide a valid timezone, such as America/New_York.")
	}
	if err := b.prefs.SetTimezone(msg.Author.ID, zone); err != nil {
		return b.storageFault("timezone", err)
	}
	return text("Timezone registered for %s.", msg.Author.Name)
}
