package levels

import (
	"sort"
	"strings"

	"github.com/vovakirdan/slingshot/internal/sim"
)

// DefaultDeck is used when a level names an unknown deck.
const DefaultDeck = "balanced"

var decks = map[string][]sim.BirdType{
	"balanced":   {sim.BirdRed, sim.BirdRed, sim.BirdYellow, sim.BirdBlue, sim.BirdBlack},
	"speedrun":   {sim.BirdYellow, sim.BirdYellow, sim.BirdBlue, sim.BirdRed, sim.BirdWhite},
	"demolition": {sim.BirdBlack, sim.BirdRed, sim.BirdBlack, sim.BirdYellow, sim.BirdRed},
	"tactical":   {sim.BirdBlue, sim.BirdWhite, sim.BirdYellow, sim.BirdRed, sim.BirdBlack},
}

// Deck returns a copy of the named bird sequence. Unknown names resolve to
// the balanced deck and ok=false.
func Deck(name string) (birds []sim.BirdType, ok bool) {
	d, ok := decks[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		d = decks[DefaultDeck]
	}
	return append([]sim.BirdType(nil), d...), ok
}

// DeckNames returns all deck names in sorted order.
func DeckNames() []string {
	names := make([]string, 0, len(decks))
	for name := range decks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
