package cards

import (
	"fmt"
	"strings"
)

// Type identifies which catalog table a card id resolves against.
type Type string

const (
	TypeCharacter        Type = "character"
	TypePower            Type = "power"
	TypeSpecial          Type = "special"
	TypeMission          Type = "mission"
	TypeEvent            Type = "event"
	TypeAspect           Type = "aspect"
	TypeLocation         Type = "location"
	TypeTeamwork         Type = "teamwork"
	TypeAllyUniverse     Type = "ally-universe"
	TypeTraining         Type = "training"
	TypeBasicUniverse    Type = "basic-universe"
	TypeAdvancedUniverse Type = "advanced-universe"
)

// AllTypes lists every valid card type in catalog order.
var AllTypes = []Type{
	TypeCharacter,
	TypePower,
	TypeSpecial,
	TypeMission,
	TypeEvent,
	TypeAspect,
	TypeLocation,
	TypeTeamwork,
	TypeAllyUniverse,
	TypeTraining,
	TypeBasicUniverse,
	TypeAdvancedUniverse,
}

var validTypes = func() map[Type]struct{} {
	m := make(map[Type]struct{}, len(AllTypes))
	for _, t := range AllTypes {
		m[t] = struct{}{}
	}
	return m
}()

// ParseType normalizes and validates a card type tag.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := validTypes[t]; !ok {
		return "", &ValidationError{CardType: string(t), Reason: "unknown card type"}
	}
	return t, nil
}

func (t Type) Valid() bool {
	_, ok := validTypes[t]
	return ok
}

func (t Type) String() string {
	return string(t)
}

// Entry is one proposed or stored deck line: a typed card reference with a
// quantity and the optional exclude-from-draw flag.
type Entry struct {
	Type            Type   `json:"cardType"`
	CardID          string `json:"cardId"`
	Quantity        int    `json:"quantity"`
	ExcludeFromDraw bool   `json:"excludeFromDraw,omitempty"`
}

func (e Entry) Key() string {
	return fmt.Sprintf("%s/%s", e.Type, e.CardID)
}

// Consolidate merges duplicate (type, id) entries: quantities are summed and
// the last ExcludeFromDraw value seen in input order wins. First-seen order
// of distinct entries is preserved.
func Consolidate(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	index := make(map[string]int, len(entries))

	for _, e := range entries {
		key := e.Key()
		if i, ok := index[key]; ok {
			out[i].Quantity += e.Quantity
			out[i].ExcludeFromDraw = e.ExcludeFromDraw
			continue
		}
		index[key] = len(out)
		out = append(out, e)
	}
	return out
}

// nonDrawableTypes are never part of the draw pile.
var nonDrawableTypes = map[Type]struct{}{
	TypeMission:   {},
	TypeCharacter: {},
	TypeLocation:  {},
}

// TotalCount sums quantities across all entries.
func TotalCount(entries []Entry) int {
	var total int
	for _, e := range entries {
		total += e.Quantity
	}
	return total
}

// DrawableCount sums quantities of entries that count toward the draw pile,
// skipping missions, characters and locations.
func DrawableCount(entries []Entry) int {
	var total int
	for _, e := range entries {
		if _, skip := nonDrawableTypes[e.Type]; skip {
			continue
		}
		total += e.Quantity
	}
	return total
}

// CountByTypes sums quantities of entries whose type is in types.
func CountByTypes(entries []Entry, types ...Type) int {
	want := make(map[Type]struct{}, len(types))
	for _, t := range types {
		want[t] = struct{}{}
	}
	var total int
	for _, e := range entries {
		if _, ok := want[e.Type]; ok {
			total += e.Quantity
		}
	}
	return total
}
