package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/stalkmarket/stalkbot/internal/model"
)

// Catalog is the immutable reference data handed to command handlers.
type Catalog struct {
	fossils    map[string]bool
	fossilList []string
	creatures  []Creature
}

// New builds the catalog from the built-in tables.
func New() *Catalog {
	fossils := make(map[string]bool, len(fossilNames))
	for _, name := range fossilNames {
		fossils[name] = true
	}
	list := append([]string(nil), fossilNames...)
	sort.Strings(list)

	return &Catalog{
		fossils:    fossils,
		fossilList: list,
		creatures:  creatureTable,
	}
}

// ValidFossil reports whether name is a donatable fossil.
func (c *Catalog) ValidFossil(name string) bool {
	return c.fossils[name]
}

// Fossils returns every fossil name, sorted.
func (c *Catalog) Fossils() []string {
	return c.fossilList
}

// FossilCount returns the size of the full fossil set.
func (c *Catalog) FossilCount() int {
	return len(c.fossilList)
}

// AvailableCreatures returns the creatures of the given kind that can be
// found during the month of now in the given hemisphere, sorted by name.
// An empty search matches everything; otherwise names are filtered by
// case-insensitive substring.
func (c *Catalog) AvailableCreatures(kind CreatureKind, h model.Hemisphere, now time.Time, search string) []Creature {
	month := int(now.Month())
	needle := strings.ToLower(strings.TrimSpace(search))

	var out []Creature
	for _, cr := range c.creatures {
		if cr.Kind != kind {
			continue
		}
		if !cr.AvailableIn(h, month) {
			continue
		}
		if needle != "" && !strings.Contains(cr.Name, needle) {
			continue
		}
		out = append(out, cr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
