package native

import "strings"

// Modifiers is the set of declaration flags attached to a node outside its
// typed fields.
type Modifiers uint32

// Modifier flags.
const (
	ModExport Modifiers = 1 << iota
	ModDefault
	ModDeclare
	ModStatic
	ModReadonly
	ModPublic
	ModPrivate
	ModProtected
	ModAsync
	ModAbstract
	ModOptional
	ModConst
	ModOverride
)

// ModNone is the empty set.
const ModNone Modifiers = 0

var modifierNames = []struct {
	name string
	flag Modifiers
}{
	{"export", ModExport},
	{"default", ModDefault},
	{"declare", ModDeclare},
	{"public", ModPublic},
	{"private", ModPrivate},
	{"protected", ModProtected},
	{"static", ModStatic},
	{"abstract", ModAbstract},
	{"override", ModOverride},
	{"readonly", ModReadonly},
	{"async", ModAsync},
	{"const", ModConst},
	{"optional", ModOptional},
}

// Has reports whether every flag in flags is set.
func (m Modifiers) Has(flags Modifiers) bool { return m&flags == flags }

// With returns m with flags added.
func (m Modifiers) With(flags Modifiers) Modifiers { return m | flags }

// Without returns m with flags cleared.
func (m Modifiers) Without(flags Modifiers) Modifiers { return m &^ flags }

// Keywords lists the set flags in source order.
func (m Modifiers) Keywords() []string {
	var out []string

	for _, entry := range modifierNames {
		if m.Has(entry.flag) {
			out = append(out, entry.name)
		}
	}

	return out
}

func (m Modifiers) String() string {
	if m == ModNone {
		return "none"
	}

	return strings.Join(m.Keywords(), "|")
}

// ParseModifier resolves a source keyword.
func ParseModifier(keyword string) (Modifiers, bool) {
	for _, entry := range modifierNames {
		if entry.name == keyword {
			return entry.flag, true
		}
	}

	return ModNone, false
}
