package catalog

import "github.com/stalkmarket/stalkbot/internal/model"

// CreatureKind separates the two creature calendars.
type CreatureKind string

const (
	CreatureFish CreatureKind = "fish"
	CreatureBug  CreatureKind = "bug"
)

// Creature is one row of the availability table. Months are northern
// hemisphere; the southern calendar is the same table shifted six months.
type Creature struct {
	Name     string
	Kind     CreatureKind
	Price    int    // Shop sale price in bells
	Location string // Where it can be found
	Months   [12]bool
}

// AvailableIn reports whether the creature can be found during month
// (1-12) in hemisphere h. An unset hemisphere uses the northern calendar.
func (c Creature) AvailableIn(h model.Hemisphere, month int) bool {
	idx := month - 1
	if h == model.HemisphereSouthern {
		idx = (idx + 6) % 12
	}
	return c.Months[idx]
}

// months builds the availability bitmap from 1-based month numbers.
func months(ms ...int) [12]bool {
	var out [12]bool
	for _, m := range ms {
		out[m-1] = true
	}
	return out
}

// allYear marks every month available.
var allYear = months(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)

var creatureTable = []Creature{
	// Fish
	{"anchovy", CreatureFish, 200, "sea", allYear},
	{"arapaima", CreatureFish, 10000, "river", months(6, 7, 8, 9)},
	{"barred knifejaw", CreatureFish, 5000, "sea", months(3, 4, 5, 6, 7, 8, 9, 10, 11)},
	{"barreleye", CreatureFish, 15000, "sea", allYear},
	{"bitterling", CreatureFish, 900, "river", months(1, 2, 3, 11, 12)},
	{"black bass", CreatureFish, 400, "river", allYear},
	{"blue marlin", CreatureFish, 10000, "pier", months(1, 2, 3, 4, 7, 8, 9, 11, 12)},
	{"carp", CreatureFish, 300, "pond", allYear},
	{"catfish", CreatureFish, 800, "pond", months(5, 6, 7, 8, 9, 10)},
	{"cherry salmon", CreatureFish, 1000, "clifftop river", months(3, 4, 5, 6, 9, 10, 11)},
	{"coelacanth", CreatureFish, 15000, "sea (rain)", allYear},
	{"crucian carp", CreatureFish, 160, "river", allYear},
	{"dorado", CreatureFish, 15000, "river", months(6, 7, 8, 9)},
	{"football fish", CreatureFish, 2500, "sea", months(1, 2, 3, 11, 12)},
	{"giant trevally", CreatureFish, 4500, "pier", months(5, 6, 7, 8, 9, 10)},
	{"goldfish", CreatureFish, 1300, "pond", allYear},
	{"great white shark", CreatureFish, 15000, "sea", months(6, 7, 8, 9)},
	{"koi", CreatureFish, 4000, "pond", allYear},
	{"oarfish", CreatureFish, 9000, "sea", months(1, 2, 3, 4, 5, 12)},
	{"pale chub", CreatureFish, 200, "river", allYear},
	{"ranchu goldfish", CreatureFish, 4500, "pond", allYear},
	{"sea bass", CreatureFish, 400, "sea", allYear},
	{"stringfish", CreatureFish, 15000, "clifftop river", months(1, 2, 3, 12)},
	{"sturgeon", CreatureFish, 10000, "river mouth", months(1, 2, 3, 9, 10, 11, 12)},
	{"tuna", CreatureFish, 7000, "pier", months(1, 2, 3, 4, 11, 12)},
	// Bugs
	{"agrias butterfly", CreatureBug, 3000, "flying", months(4, 5, 6, 7, 8, 9)},
	{"atlas moth", CreatureBug, 3000, "on trees", months(4, 5, 6, 7, 8, 9)},
	{"bagworm", CreatureBug, 600, "shaking trees", allYear},
	{"blue weevil beetle", CreatureBug, 800, "on palm trees", months(7, 8)},
	{"common butterfly", CreatureBug, 160, "flying", months(1, 2, 3, 4, 5, 6, 9, 10, 11, 12)},
	{"cricket", CreatureBug, 130, "on the ground", months(9, 10, 11)},
	{"damselfly", CreatureBug, 500, "flying", months(1, 2, 11, 12)},
	{"dung beetle", CreatureBug, 3000, "rolling snowballs", months(1, 2, 12)},
	{"emperor butterfly", CreatureBug, 4000, "flying", months(1, 2, 3, 6, 7, 8, 9, 12)},
	{"firefly", CreatureBug, 300, "flying", months(6)},
	{"golden stag", CreatureBug, 12000, "on palm trees", months(7, 8)},
	{"grasshopper", CreatureBug, 160, "on the ground", months(7, 8, 9)},
	{"hermit crab", CreatureBug, 1000, "beach", allYear},
	{"honeybee", CreatureBug, 200, "flying", months(3, 4, 5, 6, 7)},
	{"ladybug", CreatureBug, 200, "on flowers", months(3, 4, 5, 6, 10)},
	{"mantis", CreatureBug, 430, "on flowers", months(3, 4, 5, 6, 7, 8, 9, 10, 11)},
	{"mole cricket", CreatureBug, 500, "underground", months(1, 2, 3, 4, 5, 11, 12)},
	{"moth", CreatureBug, 130, "flying by light", allYear},
	{"orchid mantis", CreatureBug, 2400, "on white flowers", months(3, 4, 5, 6, 7, 8, 9, 10, 11)},
	{"paper kite butterfly", CreatureBug, 1000, "flying", allYear},
	{"scorpion", CreatureBug, 8000, "on the ground", months(5, 6, 7, 8, 9, 10)},
	{"snail", CreatureBug, 250, "on rocks (rain)", allYear},
	{"tarantula", CreatureBug, 8000, "on the ground", months(1, 2, 3, 4, 11, 12)},
	{"wasp", CreatureBug, 2500, "shaking trees", allYear},
	{"wharf roach", CreatureBug, 200, "beach rocks", allYear},
}
