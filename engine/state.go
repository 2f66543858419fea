package engine

const (
	MinPlayers = 2
	MaxPlayers = 10

	// InitialHandSize is how many cards a joining player is dealt.
	InitialHandSize = 7

	// colorHistorySize bounds ColorHistory; three entries cover the
	// wild-draw-four / color-choice / bluff-call look-back.
	colorHistorySize = 3
)

// ColorEntry is one color-defining event: a played card, or a color
// announced after a color-switching play. Exactly one field is set.
type ColorEntry struct {
	Card  *Card `json:"card,omitempty"`
	Color Color `json:"color,omitempty"`
}

// effectiveColor is the color the entry established. A color-switching
// play establishes none until the follow-up choice.
func (e ColorEntry) effectiveColor() Color {
	if e.Card != nil {
		return e.Card.Color
	}
	return e.Color
}

// GameState is the complete self-contained state of one game. Seed is
// the live RNG state (it advances with every random draw), so a
// snapshot resumes the exact shuffle sequence; InitialSeed is the value
// the game started from and is what replay rebuilds use.
type GameState struct {
	Players        []PlayerID          `json:"players"`
	Hands          map[PlayerID][]Card `json:"hands"`
	DrawPile       []Card              `json:"drawPile"`
	DiscardPile    []Card              `json:"discardPile"`
	TurnCounter    int                 `json:"turnCounter"`
	TurnDirection  int                 `json:"turnDirection"`
	Seed           int32               `json:"seed"`
	InitialSeed    int32               `json:"initialSeed"`
	StackedDrawTwo int                 `json:"stackedDrawTwoCount"`
	ColorHistory   []ColorEntry        `json:"colorHistory"`
	Ended          bool                `json:"ended"`
	StackDrawTwos  bool                `json:"stackDrawTwos"`
	History        EventLog            `json:"events"`
}

// activePlayer maps the turn counter onto the join-ordered player list.
// The counter runs negative under reversed direction; the magnitude mod
// player count picks the seat either way.
func (s *GameState) activePlayer() PlayerID {
	n := len(s.Players)
	if n == 0 {
		return ""
	}
	c := s.TurnCounter
	if c < 0 {
		c = -c
	}
	return s.Players[c%n]
}

// advanceTurn moves the counter one seat in the current direction,
// scaled by mult for skip-style effects.
func (s *GameState) advanceTurn(mult int) {
	s.TurnCounter += s.TurnDirection * mult
}

func (s *GameState) lastMoves(n int) []Move {
	return s.History.lastMoves(n)
}

// pushColor appends a color-defining entry, evicting the oldest beyond
// the history bound.
func (s *GameState) pushColor(e ColorEntry) {
	s.ColorHistory = append(s.ColorHistory, e)
	if len(s.ColorHistory) > colorHistorySize {
		s.ColorHistory = s.ColorHistory[len(s.ColorHistory)-colorHistorySize:]
	}
}

// loser returns the single player still holding cards once the game
// has ended.
func (s *GameState) loser() PlayerID {
	for _, id := range s.Players {
		if len(s.Hands[id]) > 0 {
			return id
		}
	}
	return ""
}

// playersHoldingCards counts joined players with non-empty hands.
func (s *GameState) playersHoldingCards() int {
	n := 0
	for _, id := range s.Players {
		if len(s.Hands[id]) > 0 {
			n++
		}
	}
	return n
}

// clone returns a deep, independent copy.
func (s *GameState) clone() *GameState {
	c := *s
	c.Players = append([]PlayerID(nil), s.Players...)
	c.DrawPile = append([]Card(nil), s.DrawPile...)
	c.DiscardPile = append([]Card(nil), s.DiscardPile...)
	c.Hands = make(map[PlayerID][]Card, len(s.Hands))
	for id, hand := range s.Hands {
		c.Hands[id] = append([]Card(nil), hand...)
	}
	c.ColorHistory = make([]ColorEntry, len(s.ColorHistory))
	for i, e := range s.ColorHistory {
		ce := e
		if e.Card != nil {
			card := *e.Card
			ce.Card = &card
		}
		c.ColorHistory[i] = ce
	}
	c.History = s.History.clone()
	return &c
}
