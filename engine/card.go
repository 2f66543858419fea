package engine

import "fmt"

// Color identifies one of the four card colors. Color-switching cards
// (wild, wild draw four) carry ColorNone until the player announces a
// color with a separate ChooseColor move.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
)

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "Red"
	case ColorGreen:
		return "Green"
	case ColorBlue:
		return "Blue"
	case ColorYellow:
		return "Yellow"
	}
	return "None"
}

// Rank constants. Values 0–9 are the number ranks; the remaining ranks
// are the action and color-switching cards.
type Rank uint8

const (
	RankZero Rank = iota
	RankOne
	RankTwo
	RankThree
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankSkip
	RankReverse
	RankDrawTwo
	RankWild
	RankWildDrawFour
)

// IsWild reports whether the rank switches the active color.
func (r Rank) IsWild() bool {
	return r == RankWild || r == RankWildDrawFour
}

func (r Rank) String() string {
	switch {
	case r <= RankNine:
		return fmt.Sprintf("%d", uint8(r))
	case r == RankSkip:
		return "Skip"
	case r == RankReverse:
		return "Reverse"
	case r == RankDrawTwo:
		return "Draw Two"
	case r == RankWild:
		return "Wild"
	case r == RankWildDrawFour:
		return "Wild Draw Four"
	}
	return fmt.Sprintf("Rank(%d)", uint8(r))
}

// Card is a value type; two cards are interchangeable when rank and
// color match. Wild ranks always carry ColorNone.
type Card struct {
	Rank  Rank  `json:"rank"`
	Color Color `json:"color,omitempty"`
}

func (c Card) String() string {
	if c.Rank.IsWild() {
		return c.Rank.String()
	}
	return fmt.Sprintf("%s %s", c.Color, c.Rank)
}

// Equal reports whether two cards have the same rank and color.
func (c Card) Equal(o Card) bool {
	return c.Rank == o.Rank && c.Color == o.Color
}

// newDeck builds the standard 108-card deck in composition order:
// per color one 0, two each of 1–9, two skips, two reverses, two draw
// twos; plus four wilds and four wild draw fours.
func newDeck() []Card {
	deck := make([]Card, 0, 108)
	for _, color := range []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow} {
		deck = append(deck, Card{Rank: RankZero, Color: color})
		for r := RankOne; r <= RankDrawTwo; r++ {
			deck = append(deck, Card{Rank: r, Color: color})
			deck = append(deck, Card{Rank: r, Color: color})
		}
	}
	for i := 0; i < 4; i++ {
		deck = append(deck, Card{Rank: RankWild})
		deck = append(deck, Card{Rank: RankWildDrawFour})
	}
	return deck
}
