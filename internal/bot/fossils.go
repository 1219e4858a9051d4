package bot

import (
	"sort"
	"strconv"
	"strings"

	"github.com/stalkmarket/stalkbot/internal/model"
	"github.com/stalkmarket/stalkbot/internal/transport"
)

// partitionFossils splits free-text item names into catalog members and
// unrecognized names, both sorted.
func (b *Bot) partitionFossils(items []string) (valid, invalid []string) {
	for _, item := range items {
		if b.cat.ValidFossil(item) {
			valid = append(valid, item)
		} else {
			invalid = append(invalid, item)
		}
	}
	sort.Strings(valid)
	sort.Strings(invalid)
	return valid, invalid
}

func (b *Bot) cmdCollect(msg transport.Message, args string) []transport.Reply {
	items := splitList(args)
	if len(items) == 0 {
		return text("Please provide the name of a fossil to mark as collected.")
	}
	valid, invalid := b.partitionFossils(items)

	have, err := b.fossils.Collected(msg.Author.ID)
	if err != nil {
		return b.storageFault("collect", err)
	}

	var added, dupes []string
	for _, name := range valid {
		if have[name] {
			dupes = append(dupes, name)
			continue
		}
		if err := b.fossils.Append(model.CollectionEvent{Author: msg.Author.ID, Name: name}); err != nil {
			return b.storageFault("collect", err)
		}
		added = append(added, name)
	}

	var lines []string
	if len(added) > 0 {
		lines = append(lines, "Marked the following fossils as collected:\n> "+strings.Join(added, ", "))
	}
	if len(dupes) > 0 {
		lines = append(lines, "The following fossils had already been collected:\n> "+strings.Join(dupes, ", "))
	}
	if len(invalid) > 0 {
		lines = append(lines, "Did not recognize the following fossils:\n> "+strings.Join(invalid, ", "))
	}
	return text("%s", strings.Join(lines, "\n"))
}

func (b *Bot) cmdUncollect(msg transport.Message, args string) []transport.Reply {
	items := splitList(args)
	if len(items) == 0 {
		return text("Please provide the name of a fossil to mark as uncollected.")
	}
	valid, invalid := b.partitionFossils(items)

	events, err := b.fossils.Load()
	if err != nil {
		return b.storageFault("uncollect", err)
	}

	drop := make(map[string]bool, len(valid))
	for _, name := range valid {
		drop[name] = true
	}

	var removed []string
	removedSet := make(map[string]bool)
	kept := make([]model.CollectionEvent, 0, len(events))
	for _, ev := range events {
		if ev.Author == msg.Author.ID && drop[ev.Name] {
			if !removedSet[ev.Name] {
				removedSet[ev.Name] = true
				removed = append(removed, ev.Name)
			}
			continue
		}
		kept = append(kept, ev)
	}

	if len(removed) > 0 {
		if err := b.fossils.Overwrite(kept); err != nil {
			return b.storageFault("uncollect", err)
		}
	}

	var didntHave []string
	for _, name := range valid {
		if !removedSet[name] {
			didntHave = append(didntHave, name)
		}
	}
	sort.Strings(removed)

	var lines []string
	if len(removed) > 0 {
		lines = append(lines, "Unmarked the following fossils as collected:\n> "+strings.Join(removed, ", "))
	}
	if len(didntHave) > 0 {
		lines = append(lines, "The following fossils were already marked as not collected:\n> "+strings.Join(didntHave, ", "))
	}
	if len(invalid) > 0 {
		lines = append(lines, "Did not recognize the following fossils:\n> "+strings.Join(invalid, ", "))
	}
	return text("%s", strings.Join(lines, "\n"))
}

func (b *Bot) cmdAllFossils(msg transport.Message, args string) []transport.Reply {
	return text("__**All Possible Fossils**__\n>>> %s", strings.Join(b.cat.Fossils(), ", "))
}

func (b *Bot) cmdListFossils(msg transport.Message, args string) []transport.Reply {
	subject, ok := subjectUser(msg, args)
	if !ok {
		return text("Can not find the user named %s in this channel.", strings.TrimSpace(args))
	}

	have, err := b.fossils.Collected(subject.ID)
	if err != nil {
		return b.storageFault("listfossils", err)
	}

	var remaining []string
	for _, name := range b.cat.Fossils() {
		if !have[name] {
			remaining = append(remaining, name)
		}
	}
	return text("__**%d Fossils remaining for %s**__\n>>> %s",
		len(remaining), subject.Name, strings.Join(remaining, ", "))
}

func (b *Bot) cmdCollectedFossils(msg transport.Message, args string) []transport.Reply {
	subject, ok := subjectUser(msg, args)
	if !ok {
		return text("Can not find the user named %s in this channel.", strings.TrimSpace(args))
	}

	have, err := b.fossils.Collected(subject.ID)
	if err != nil {
		return b.storageFault("collectedfossils", err)
	}

	collected := make([]string, 0, len(have))
	for name := range have {
		collected = append(collected, name)
	}
	sort.Strings(collected)
	return text("__**%d Fossils donated by %s**__\n>>> %s",
		len(collected), subject.Name, strings.Join(collected, ", "))
}

func (b *Bot) cmdFossilSearch(msg transport.Message, args string) []transport.Reply {
	items := splitList(args)
	if len(items) == 0 {
		return text("Please provide the name of a fossil to lookup users that don't have it.")
	}
	valid, invalid := b.partitionFossils(items)

	events, err := b.fossils.Load()
	if err != nil {
		return b.storageFault("fossilsearch", err)
	}

	// Only users that appear in the ledger participate; searching can not
	// discover users who never collected anything.
	var others []string
	seen := make(map[string]bool)
	haveBy := make(map[string]map[string]bool)
	for _, ev := range events {
		if ev.Author == msg.Author.ID {
			continue
		}
		if !seen[ev.Author] {
			seen[ev.Author] = true
			others = append(others, ev.Author)
		}
		if haveBy[ev.Author] == nil {
			haveBy[ev.Author] = make(map[string]bool)
		}
		haveBy[ev.Author][ev.Name] = true
	}

	needs := make(map[string][]string)
	var noNeed []string
	for _, fossil := range valid {
		anyone := false
		for _, author := range others {
			if !haveBy[author][fossil] {
				needs[author] = append(needs[author], fossil)
				anyone = true
			}
		}
		if !anyone {
			noNeed = append(noNeed, fossil)
		}
	}

	if len(needs) == 0 && len(invalid) == 0 && len(valid) > 0 {
		return text("No one currently needs this.")
	}

	type row struct {
		name    string
		fossils []string
	}
	rows := make([]row, 0, len(needs))
	for author, fossils := range needs {
		sort.Strings(fossils)
		rows = append(rows, row{name: nameFor(msg.Channel, author), fossils: fossils})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })

	lines := []string{"__**Fossil Search**__"}
	for _, r := range rows {
		lines = append(lines, "> "+r.name+" needs: "+strings.Join(r.fossils, ", "))
	}
	if len(noNeed) > 0 {
		lines = append(lines, "> No one needs: "+strings.Join(noNeed, ", "))
	}
	if len(invalid) > 0 {
		lines = append(lines, "Did not recognize the following fossils:\n> "+strings.Join(invalid, ", "))
	}
	return text("%s", strings.Join(lines, "\n"))
}

func (b *Bot) cmdFossilCount(msg transport.Message, args string) []transport.Reply {
	queries := splitList(args)
	if len(queries) == 0 {
		return text("Please provide at least one user name to search for a fossil count.")
	}

	var valid []transport.User
	var invalid []string
	for _, q := range queries {
		if user, ok := resolveUser(msg.Channel, q); ok {
			valid = append(valid, user)
		} else {
			invalid = append(invalid, q)
		}
	}
	sort.Slice(valid, func(i, j int) bool { return valid[i].Name < valid[j].Name })
	sort.Strings(invalid)

	var lines []string
	if len(valid) > 0 {
		lines = append(lines, "__**Fossil Count**__")
		for _, user := range valid {
			have, err := b.fossils.Collected(user.ID)
			if err != nil {
				return b.storageFault("fossilcount", err)
			}
			collected := 0
			for name := range have {
				if b.cat.ValidFossil(name) {
					collected++
				}
			}
			remaining := b.cat.FossilCount() - collected
			lines = append(lines, "> **"+user.Name+"** has "+strconv.Itoa(remaining)+" fossils remaining.")
		}
	}
	if len(invalid) > 0 {
		lines = append(lines, "__**Did not recognize the following names**__")
		for _, q := range invalid {
			lines = append(lines, "> "+q)
		}
	}
	return text("%s", strings.Join(lines, "\n"))
}
