package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// JumpToIndex rewinds the game to the state just after the event at
// index i, by rebuilding from the initial seed and replaying the
// retained history up to and including that event. Negative indices
// count from the end (-1 is the latest event). The discarded tail is
// returned so callers can inspect or re-apply what was undone.
//
// Rewind needs the complete history, so it is only available under
// full retention.
func (g *Game) JumpToIndex(i int) ([]Event, error) {
	s := g.state
	if s.History.Mode != RetentionFull {
		return nil, &RetentionModeError{Mode: s.History.Mode}
	}
	n := s.History.Len()
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return nil, &EventIndexError{Index: i, Length: n}
	}

	events := s.History.Events()
	tail := events[idx+1:]

	rebuilt, err := replayEvents(s, events[:idx+1])
	if err != nil {
		return nil, err
	}
	g.state = rebuilt
	g.log.WithFields(logrus.Fields{
		"index":     idx,
		"discarded": len(tail),
	}).Info("rewound by replay")
	return tail, nil
}

// replayEvents rebuilds a state from scratch: same initial seed and
// rules, fresh shuffle and opening flip, then each retained event
// re-applied in order. Shuffle, flip and outcome events are skipped
// because the replayed operations regenerate them; replay stops early
// at a game-ended marker since nothing can follow it.
func replayEvents(src *GameState, events []Event) (*GameState, error) {
	mode := src.History.Mode
	s := &GameState{
		Hands:         make(map[PlayerID][]Card),
		DrawPile:      newDeck(),
		TurnDirection: 1,
		Seed:          src.InitialSeed,
		InitialSeed:   src.InitialSeed,
		StackDrawTwos: src.StackDrawTwos,
		History:       newEventLog(mode),
	}
	s.shuffle(s.DrawPile)
	s.flipOpeningCard()

	for _, ev := range events {
		switch {
		case ev.Admin != nil:
			switch ev.Admin.Kind {
			case AdminPlayerJoined:
				if err := s.join(ev.Admin.Player); err != nil {
					return nil, fmt.Errorf("replay join %q: %w", ev.Admin.Player, err)
				}
			case AdminPlayerLeft:
				if err := s.leave(ev.Admin.Player); err != nil {
					return nil, fmt.Errorf("replay leave %q: %w", ev.Admin.Player, err)
				}
			case AdminGameEnded:
				return s, nil
			}
		case ev.Move != nil:
			if _, err := s.submit(*ev.Move); err != nil {
				return nil, fmt.Errorf("replay %s: %w", *ev.Move, err)
			}
			if s.Ended {
				return s, nil
			}
		}
	}
	return s, nil
}
