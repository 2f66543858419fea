package engine

import "fmt"

// Expectation is the rank/color constraint the next played card must
// satisfy. A nil axis carries no constraint and offers no match; when
// both axes are nil any card is playable.
type Expectation struct {
	Rank  *Rank  `json:"rank,omitempty"`
	Color *Color `json:"color,omitempty"`
}

func (e Expectation) String() string {
	switch {
	case e.Rank != nil && e.Color != nil:
		return fmt.Sprintf("%s or %s", *e.Color, *e.Rank)
	case e.Rank != nil:
		return e.Rank.String()
	case e.Color != nil:
		return e.Color.String()
	}
	return "any card"
}

// allows reports whether c may be played under this expectation.
// Color-switching cards are always eligible here; the finish
// restriction on them is enforced separately.
func (e Expectation) allows(c Card) bool {
	if c.Rank.IsWild() {
		return true
	}
	if e.Rank == nil && e.Color == nil {
		return true
	}
	if e.Rank != nil && c.Rank == *e.Rank {
		return true
	}
	if e.Color != nil && c.Color == *e.Color {
		return true
	}
	return false
}

// expectation derives the current play constraint. The rank comes from
// the top discard card unless that card is color-switching; the color
// comes from the color history: its most recent entry normally, or
// three entries back from a bluff site so the wild-draw-four and its
// color choice are stepped over and legality is judged as of just
// before that play.
func (s *GameState) expectation(bluffSite bool) Expectation {
	var e Expectation
	if n := len(s.DiscardPile); n > 0 {
		top := s.DiscardPile[n-1]
		if !top.Rank.IsWild() {
			r := top.Rank
			e.Rank = &r
		}
	}
	offset := 1
	if bluffSite {
		offset = colorHistorySize
	}
	if n := len(s.ColorHistory); n >= offset {
		if c := s.ColorHistory[n-offset].effectiveColor(); c != ColorNone {
			e.Color = &c
		}
	}
	return e
}

// validate runs the move through the rule chain in order, returning nil
// when the move is legal. bluffProbe marks the hypothetical replay of a
// challenged wild draw four: floor, turn-order and pending-window
// checks do not apply there, and the expectation shifts to the bluff
// site.
func (s *GameState) validate(m Move, bluffProbe bool) error {
	if !bluffProbe {
		if n := len(s.Players); n < MinPlayers {
			return &TooFewPlayersError{Count: n}
		}
		if _, ok := s.Hands[m.Player]; !ok {
			return &UnknownPlayerError{ID: m.Player}
		}
		if s.activePlayer() != m.Player {
			return &NotYourTurnError{ID: m.Player}
		}
	}
	if s.Ended {
		return &GameEndedError{Loser: s.loser()}
	}

	last := s.lastMoves(2)
	if !bluffProbe {
		// Pending color choice after a color-switching play.
		if len(last) > 0 && last[0].Kind == MovePlayCard && last[0].Card != nil && last[0].Card.Rank.IsWild() {
			if m.Kind != MoveChooseColor {
				return &MustChooseColorError{Attempted: m}
			}
		}
		// Pending draw-two penalty.
		if len(last) > 0 && last[0].Kind == MovePlayCard && last[0].Card != nil && last[0].Card.Rank == RankDrawTwo {
			if m.Kind != MoveDraw && !(m.Kind == MovePlayCard && m.Card != nil && m.Card.Rank == RankDrawTwo) {
				return &MustDrawOrStackError{Attempted: m}
			}
		}
		// Pending wild-draw-four penalty: the play sits two moves back,
		// behind its color choice.
		if len(last) > 1 && last[1].Kind == MovePlayCard && last[1].Card != nil && last[1].Card.Rank == RankWildDrawFour {
			if m.Kind != MoveDraw && m.Kind != MoveCallBluff {
				return &MustDrawOrCallBluffError{Attempted: m}
			}
		}
	}

	switch m.Kind {
	case MovePlayCard:
		if m.Card == nil {
			return fmt.Errorf("play move carries no card")
		}
		card := *m.Card
		hand := s.Hands[m.Player]
		if !handContains(hand, card) {
			return &CardNotInHandError{ID: m.Player, Card: card}
		}
		if card.Rank.IsWild() && len(hand) == 1 {
			return &LastCardWildError{Attempted: m}
		}
		exp := s.expectation(bluffProbe)
		if !exp.allows(card) {
			return &IllegalPlayError{Expected: exp, Found: card}
		}

	case MoveDraw:
		if len(last) > 0 && last[0].Kind == MoveDraw && last[0].Player == m.Player {
			return &DrawTwiceError{ID: m.Player}
		}

	case MovePass:
		if len(last) == 0 || last[0].Kind != MoveDraw || last[0].Player != m.Player {
			return &PassWithoutDrawError{ID: m.Player}
		}

	case MoveCallBluff:
		if len(last) < 2 || last[1].Kind != MovePlayCard || last[1].Card == nil || last[1].Card.Rank != RankWildDrawFour {
			return &CannotCallBluffError{ID: m.Player}
		}

	case MoveChooseColor:
		if len(last) == 0 || last[0].Kind != MovePlayCard || last[0].Card == nil ||
			!last[0].Card.Rank.IsWild() || last[0].Player != m.Player {
			return &CannotChooseColorError{ID: m.Player}
		}
		if m.Color == ColorNone {
			return fmt.Errorf("color choice carries no color")
		}

	default:
		return fmt.Errorf("unhandled move kind %d", uint8(m.Kind))
	}
	return nil
}

func handContains(hand []Card, c Card) bool {
	for _, h := range hand {
		if h.Equal(c) {
			return true
		}
	}
	return false
}
