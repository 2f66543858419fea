package engine

import "fmt"

// OutcomeKind classifies what a successful move did.
type OutcomeKind uint8

const (
	OutcomeCardPlayed OutcomeKind = iota + 1
	OutcomeCardsDrawn
	OutcomeTurnPassed
	OutcomeBluffSucceeded
	OutcomeBluffFailed
	OutcomeColorChanged
)

// Outcome describes the effect of one applied move. Winner is set when
// the move emptied a hand; Ended and Loser are set when that win left
// only one other player holding cards.
type Outcome struct {
	Kind    OutcomeKind `json:"kind"`
	Player  PlayerID    `json:"player"`
	Card    *Card       `json:"card,omitempty"`
	Drawn   []Card      `json:"drawn,omitempty"`
	Color   Color       `json:"color,omitempty"`
	Accused PlayerID    `json:"accused,omitempty"`
	Winner  PlayerID    `json:"winner,omitempty"`
	Loser   PlayerID    `json:"loser,omitempty"`
	Ended   bool        `json:"ended,omitempty"`
	Summary string      `json:"summary"`
}

// submit validates m, records it in the event log, then applies it.
// The caller snapshots around the call for atomicity.
func (s *GameState) submit(m Move) (Outcome, error) {
	if err := s.validate(m, false); err != nil {
		return Outcome{}, err
	}
	prior := s.lastMoves(2)
	s.History.recordMove(m)
	return s.apply(m, prior)
}

// apply mutates state for an already-validated move. prior holds the
// last retained moves as they stood before m was recorded, because the
// draw-count and bluff rules look behind the move being applied.
func (s *GameState) apply(m Move, prior []Move) (Outcome, error) {
	switch m.Kind {
	case MovePlayCard:
		return s.applyPlay(m)
	case MoveDraw:
		return s.applyDraw(m, prior)
	case MovePass:
		s.advanceTurn(1)
		return Outcome{
			Kind:    OutcomeTurnPassed,
			Player:  m.Player,
			Summary: fmt.Sprintf("%s passed", m.Player),
		}, nil
	case MoveCallBluff:
		return s.applyCallBluff(m, prior)
	case MoveChooseColor:
		s.pushColor(ColorEntry{Color: m.Color})
		s.advanceTurn(1)
		return Outcome{
			Kind:    OutcomeColorChanged,
			Player:  m.Player,
			Color:   m.Color,
			Summary: fmt.Sprintf("%s chose %s", m.Player, m.Color),
		}, nil
	}
	return Outcome{}, fmt.Errorf("unhandled move kind %d", uint8(m.Kind))
}

func (s *GameState) applyPlay(m Move) (Outcome, error) {
	card := *m.Card
	s.Hands[m.Player] = removeCard(s.Hands[m.Player], card)
	s.placeOnDiscard(card)

	switch card.Rank {
	case RankDrawTwo:
		s.StackedDrawTwo++
	case RankReverse:
		s.TurnDirection = -s.TurnDirection
	}

	// Color-switching plays hold the turn for the color choice.
	if !card.Rank.IsWild() {
		mult := 1
		if card.Rank == RankSkip {
			mult = 2
		}
		if card.Rank == RankReverse && len(s.Players) == 2 {
			// Two-handed reverse acts as a skip: the direction flip
			// plus a double advance lands back on the same player.
			mult = 2
		}
		s.advanceTurn(mult)
	}

	out := Outcome{
		Kind:    OutcomeCardPlayed,
		Player:  m.Player,
		Card:    &card,
		Summary: fmt.Sprintf("%s played %s", m.Player, card),
	}
	if len(s.Hands[m.Player]) == 0 {
		s.recordWin(m.Player, &out)
	}
	return out, nil
}

// recordWin notes an emptied hand. Play continues among the remaining
// players until exactly one of them still holds cards; that player is
// the loser and the game ends.
func (s *GameState) recordWin(winner PlayerID, out *Outcome) {
	out.Winner = winner
	s.History.recordAdmin(AdminEvent{Kind: AdminPlayerWon, Player: winner})
	if s.playersHoldingCards() == 1 {
		s.Ended = true
		loser := s.loser()
		out.Ended = true
		out.Loser = loser
		out.Summary += fmt.Sprintf("; game over, %s lost", loser)
		s.History.recordAdmin(AdminEvent{Kind: AdminGameEnded, Player: loser})
		return
	}
	out.Summary += " and emptied their hand"
}

func (s *GameState) applyDraw(m Move, prior []Move) (Outcome, error) {
	count := 1
	switch {
	case len(prior) > 0 && prior[0].Kind == MovePlayCard && prior[0].Card != nil && prior[0].Card.Rank == RankDrawTwo:
		if s.StackDrawTwos {
			count = 2 * s.StackedDrawTwo
		} else {
			count = 2
		}
	case len(prior) > 1 && prior[1].Kind == MovePlayCard && prior[1].Card != nil && prior[1].Card.Rank == RankWildDrawFour:
		count = 4
	}
	drawn, err := s.drawInto(m.Player, count)
	if err != nil {
		return Outcome{}, err
	}
	// Penalty draws forfeit the turn; a single voluntary draw keeps it
	// so the player may still play or pass.
	if count != 1 {
		s.advanceTurn(1)
	}
	s.StackedDrawTwo = 0

	noun := "cards"
	if count == 1 {
		noun = "card"
	}
	return Outcome{
		Kind:    OutcomeCardsDrawn,
		Player:  m.Player,
		Drawn:   drawn,
		Summary: fmt.Sprintf("%s drew %d %s", m.Player, count, noun),
	}, nil
}

func (s *GameState) applyCallBluff(m Move, prior []Move) (Outcome, error) {
	accused := prior[1].Player

	// Replay the challenged play hypothetically: the accused's hand at
	// that point was their current hand plus the wild draw four, so any
	// non-color-switching card they still hold that would have been
	// legal then proves the bluff.
	bluffed := false
	for _, c := range s.Hands[accused] {
		if c.Rank.IsWild() {
			continue
		}
		card := c
		probe := Move{Kind: MovePlayCard, Player: accused, Card: &card}
		if s.validate(probe, true) == nil {
			bluffed = true
			break
		}
	}

	out := Outcome{Player: m.Player, Accused: accused}
	if bluffed {
		drawn, err := s.drawInto(accused, 4)
		if err != nil {
			return Outcome{}, err
		}
		out.Kind = OutcomeBluffSucceeded
		out.Drawn = drawn
		out.Summary = fmt.Sprintf("%s caught %s bluffing; %s drew 4 cards", m.Player, accused, accused)
		s.History.recordAdmin(AdminEvent{Kind: AdminBluffSucceeded, Accuser: m.Player, Accused: accused})
	} else {
		drawn, err := s.drawInto(m.Player, 6)
		if err != nil {
			return Outcome{}, err
		}
		out.Kind = OutcomeBluffFailed
		out.Drawn = drawn
		out.Summary = fmt.Sprintf("%s called a clean wild draw four by %s and drew 6 cards", m.Player, accused)
		s.History.recordAdmin(AdminEvent{Kind: AdminBluffFailed, Accuser: m.Player, Accused: accused})
	}
	s.advanceTurn(1)
	return out, nil
}

// drawInto draws count cards into a player's hand, refusing up front if
// the supply cannot cover the whole draw.
func (s *GameState) drawInto(id PlayerID, count int) ([]Card, error) {
	if count > s.cardsAvailable() {
		return nil, ErrSupplyExhausted
	}
	drawn := make([]Card, 0, count)
	for i := 0; i < count; i++ {
		c, err := s.drawTop()
		if err != nil {
			return nil, err
		}
		drawn = append(drawn, c)
	}
	s.Hands[id] = append(s.Hands[id], drawn...)
	return drawn, nil
}

func removeCard(hand []Card, c Card) []Card {
	for i, h := range hand {
		if h.Equal(c) {
			return append(hand[:i], hand[i+1:]...)
		}
	}
	return hand
}
