package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playWildDrawFour drives the wild-draw-four / color-choice pair from
// p1 with the table color red, leaving the rest of p1's hand as given.
func playWildDrawFour(t *testing.T, g *Game, rest ...Card) {
	t.Helper()
	forceTop(g, Card{Rank: RankFive, Color: ColorRed})
	forceTurn(t, g, "p1")
	giveHand(g, "p1", append([]Card{{Rank: RankWildDrawFour}}, rest...)...)

	_, err := g.Play("p1", Card{Rank: RankWildDrawFour})
	require.NoError(t, err)
	_, err = g.ChooseColor("p1", ColorBlue)
	require.NoError(t, err)
}

func TestBluffCallCatchesIllegalWildDrawFour(t *testing.T) {
	g := newTestGame(t, SeedFromInt(50), "p1", "p2")
	// p1 still holds a red card, so the wild draw four was a bluff.
	playWildDrawFour(t, g, Card{Rank: RankFive, Color: ColorRed})

	out, err := g.CallBluff("p2")
	require.NoError(t, err)
	assert.Equal(t, OutcomeBluffSucceeded, out.Kind)
	assert.Equal(t, PlayerID("p1"), out.Accused)
	assert.Len(t, out.Drawn, 4)

	st := g.State()
	assert.Len(t, st.Hands["p1"], 1+4, "the bluffer draws four")
	assert.Len(t, st.Hands["p2"], InitialHandSize, "the accuser draws nothing")
}

func TestBluffCallAgainstCleanPlayBackfires(t *testing.T) {
	g := newTestGame(t, SeedFromInt(51), "p1", "p2")
	// p1's remaining card matches neither red nor any rank, so the
	// wild draw four was clean.
	playWildDrawFour(t, g, Card{Rank: RankFive, Color: ColorGreen})

	out, err := g.CallBluff("p2")
	require.NoError(t, err)
	assert.Equal(t, OutcomeBluffFailed, out.Kind)
	assert.Len(t, out.Drawn, 6)

	st := g.State()
	assert.Len(t, st.Hands["p1"], 1, "the accused keeps their hand")
	assert.Len(t, st.Hands["p2"], InitialHandSize+6, "the failed accuser draws six")
}

func TestBluffProbeIgnoresWildCards(t *testing.T) {
	g := newTestGame(t, SeedFromInt(52), "p1", "p2")
	// A remaining wild would always have been playable, but it never
	// proves a bluff; only ordinary cards count.
	playWildDrawFour(t, g, Card{Rank: RankWild}, Card{Rank: RankFive, Color: ColorGreen})

	out, err := g.CallBluff("p2")
	require.NoError(t, err)
	assert.Equal(t, OutcomeBluffFailed, out.Kind)
}

func TestBluffSiteExpectationStepsOverTheTriad(t *testing.T) {
	g := newTestGame(t, SeedFromInt(53), "p1", "p2")
	playWildDrawFour(t, g, Card{Rank: RankNine, Color: ColorGreen})

	exp := g.ExpectedCard(true)
	assert.Nil(t, exp.Rank, "top discard is the wild draw four itself")
	require.NotNil(t, exp.Color)
	assert.Equal(t, ColorRed, *exp.Color, "legality is judged against the pre-play color")

	exp = g.ExpectedCard(false)
	require.NotNil(t, exp.Color)
	assert.Equal(t, ColorBlue, *exp.Color, "the live expectation follows the chosen color")
}

func TestBluffOutcomeAdvancesTheTurn(t *testing.T) {
	g := newTestGame(t, SeedFromInt(54), "p1", "p2")
	playWildDrawFour(t, g, Card{Rank: RankFive, Color: ColorRed})

	_, err := g.CallBluff("p2")
	require.NoError(t, err)
	assert.Equal(t, PlayerID("p1"), g.ActivePlayer())
}
