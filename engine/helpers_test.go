package engine

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// newTestGame builds a seeded, fully-retained game with the given
// players joined.
func newTestGame(t *testing.T, seed Seed, ids ...PlayerID) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = seed
	cfg.Logger = testLogger()
	g := NewGame(cfg)
	require.NoError(t, g.Join(ids...))
	return g
}

// forceTop pins the discard top and color history to a single known
// card so play expectations are predictable.
func forceTop(g *Game, c Card) {
	g.state.DiscardPile = []Card{c}
	card := c
	g.state.ColorHistory = []ColorEntry{{Card: &card}}
}

// giveHand replaces a player's hand outright.
func giveHand(g *Game, id PlayerID, cards ...Card) {
	g.state.Hands[id] = cards
}

// forceTurn points the turn counter at the given player's seat.
func forceTurn(t *testing.T, g *Game, id PlayerID) {
	t.Helper()
	for i, p := range g.state.Players {
		if p == id {
			g.state.TurnCounter = i
			g.state.TurnDirection = 1
			return
		}
	}
	t.Fatalf("player %q not seated", id)
}

// totalCards counts every card across hands and piles.
func totalCards(s GameState) int {
	n := len(s.DrawPile) + len(s.DiscardPile)
	for _, hand := range s.Hands {
		n += len(hand)
	}
	return n
}
