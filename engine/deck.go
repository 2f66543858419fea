package engine

// shuffle runs a seeded Fisher-Yates pass over pile in place, swapping
// each position with a random earlier-or-equal one, and records the
// advanced seed so replays can verify the RNG trajectory.
func (s *GameState) shuffle(pile []Card) {
	for i := len(pile) - 1; i >= 1; i-- {
		j := int(s.nextFloat() * float64(i+1))
		pile[i], pile[j] = pile[j], pile[i]
	}
	s.History.recordAdmin(AdminEvent{Kind: AdminSeedChanged, Seed: s.Seed})
}

// drawTop pops the top of the draw pile. An empty draw pile recycles
// the entire discard pile as the new draw pile, reshuffled; the discard
// pile then holds only whatever is placed on it next. With both piles
// empty the draw fails with ErrSupplyExhausted.
func (s *GameState) drawTop() (Card, error) {
	if len(s.DrawPile) == 0 {
		if len(s.DiscardPile) == 0 {
			return Card{}, ErrSupplyExhausted
		}
		s.DrawPile = s.DiscardPile
		s.DiscardPile = nil
		s.shuffle(s.DrawPile)
		s.History.recordAdmin(AdminEvent{Kind: AdminPileRecycled})
	}
	c := s.DrawPile[0]
	s.DrawPile = s.DrawPile[1:]
	return c, nil
}

// cardsAvailable is the total number of drawable cards across both
// piles, used to refuse multi-card penalties that could not complete.
func (s *GameState) cardsAvailable() int {
	return len(s.DrawPile) + len(s.DiscardPile)
}

// flipOpeningCard scans the shuffled draw pile for the first card that
// is not color-switching, moves it to the discard pile and seeds the
// color history with it. The flip is logged as an engine-attributed
// play so replays reproduce it.
func (s *GameState) flipOpeningCard() {
	for i, c := range s.DrawPile {
		if c.Rank.IsWild() {
			continue
		}
		s.DrawPile = append(s.DrawPile[:i], s.DrawPile[i+1:]...)
		s.placeOnDiscard(c)
		s.History.recordAdmin(AdminEvent{Kind: AdminCardFlipped, Player: EnginePlayer, Card: &c})
		return
	}
}

// placeOnDiscard puts a card on top of the discard pile and appends it
// to the color history.
func (s *GameState) placeOnDiscard(c Card) {
	s.DiscardPile = append(s.DiscardPile, c)
	card := c
	s.pushColor(ColorEntry{Card: &card})
}

// returnToBottom slides a leaving player's cards under the draw pile so
// the 108-card supply is conserved.
func (s *GameState) returnToBottom(cards []Card) {
	s.DrawPile = append(s.DrawPile, cards...)
}
