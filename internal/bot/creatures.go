package bot

import (
	"strconv"
	"strings"

	"github.com/stalkmarket/stalkbot/internal/catalog"
	"github.com/stalkmarket/stalkbot/internal/model"
	"github.com/stalkmarket/stalkbot/internal/transport"
)

func (b *Bot) cmdFish(msg transport.Message, args string) []transport.Reply {
	return b.creatureList(msg, args, catalog.CreatureFish, "Fish", "fish")
}

func (b *Bot) cmdBugs(msg transport.Message, args string) []transport.Reply {
	return b.creatureList(msg, args, catalog.CreatureBug, "Bugs", "bugs")
}

func (b *Bot) creatureList(msg transport.Message, args string, kind catalog.CreatureKind, label, plural string) []transport.Reply {
	pref, err := b.prefs.For(msg.Author.ID)
	if err != nil {
		return b.storageFault(plural, err)
	}

	now := b.engine.Now().In(pref.Location())
	available := b.cat.AvailableCreatures(kind, pref.Hemisphere, now, args)

	if len(available) == 0 {
		if strings.TrimSpace(args) != "" {
			return text("No %s available now match your search.", plural)
		}
		return text("No %s are available now.", plural)
	}

	hemi := pref.Hemisphere
	if hemi == model.HemisphereUnset {
		hemi = model.HemisphereNorthern
	}
	lines := []string{"__**" + label + " available in " + now.Month().String() +
		" (" + string(hemi) + " hemisphere)**__"}
	for _, cr := range available {
		lines = append(lines, "> **"+cr.Name+"**: "+strconv.Itoa(cr.Price)+
			" bells, found at "+cr.Location)
	}
	return text("%s", strings.Join(lines, "\n"))
}
