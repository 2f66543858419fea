package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJumpToIndexUndoesTrailingMoves(t *testing.T) {
	g := newTestGame(t, SeedFromString("rewind"), "p1", "p2")
	_, err := g.Draw("p1")
	require.NoError(t, err)
	_, err = g.Pass("p1")
	require.NoError(t, err)
	require.Equal(t, 6, len(g.Events()), "shuffle, flip, two joins, two moves")

	// -2 keeps everything through the draw and discards the pass.
	tail, err := g.JumpToIndex(-2)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	require.NotNil(t, tail[0].Move)
	assert.Equal(t, MovePass, tail[0].Move.Kind)

	assert.Equal(t, 5, len(g.Events()))
	assert.Equal(t, PlayerID("p1"), g.ActivePlayer(), "the rewound draw still holds the turn")

	// The rebuilt game is indistinguishable from one that organically
	// stopped after the draw.
	ref := newTestGame(t, SeedFromString("rewind"), "p1", "p2")
	_, err = ref.Draw("p1")
	require.NoError(t, err)
	require.Equal(t, ref.State(), g.State())

	// Play proceeds normally down the new branch.
	_, err = g.Pass("p1")
	require.NoError(t, err)
	assert.Equal(t, PlayerID("p2"), g.ActivePlayer())
}

func TestJumpToIndexPositiveIndex(t *testing.T) {
	g := newTestGame(t, SeedFromString("rewind-pos"), "p1", "p2")
	_, err := g.Draw("p1")
	require.NoError(t, err)

	// Index 3 is the second join: rewind to the pristine table.
	tail, err := g.JumpToIndex(3)
	require.NoError(t, err)
	require.Len(t, tail, 1)

	ref := newTestGame(t, SeedFromString("rewind-pos"), "p1", "p2")
	require.Equal(t, ref.State(), g.State())
}

func TestJumpToIndexReplaysJoinsAndLeaves(t *testing.T) {
	g := newTestGame(t, SeedFromString("rewind-roster"), "p1", "p2", "p3")
	require.NoError(t, g.Leave("p2"))
	_, err := g.Draw("p1")
	require.NoError(t, err)

	tail, err := g.JumpToIndex(-1)
	require.NoError(t, err)
	assert.Empty(t, tail, "rewinding to the latest event discards nothing")

	st := g.State()
	assert.Equal(t, []PlayerID{"p1", "p3"}, st.Players)
	assert.Equal(t, 108, totalCards(st))
}

func TestJumpToIndexRejectsOutOfRange(t *testing.T) {
	g := newTestGame(t, SeedFromInt(80), "p1", "p2")
	n := len(g.Events())

	var badIndex *EventIndexError
	_, err := g.JumpToIndex(n)
	require.ErrorAs(t, err, &badIndex)
	assert.Equal(t, n, badIndex.Index)
	_, err = g.JumpToIndex(-n - 1)
	require.ErrorAs(t, err, &badIndex)
}

func TestJumpToIndexRequiresFullRetention(t *testing.T) {
	g := newBoundedGame(t, SeedFromInt(81), "p1", "p2")
	_, err := g.Draw("p1")
	require.NoError(t, err)

	var badMode *RetentionModeError
	_, err = g.JumpToIndex(0)
	require.ErrorAs(t, err, &badMode)
	assert.Equal(t, RetentionBounded, badMode.Mode)
}

func TestReplayShortCircuitsAtGameEndMarker(t *testing.T) {
	g := newTestGame(t, SeedFromInt(82), "p1", "p2")
	events := g.Events()
	events = append(events, Event{Admin: &AdminEvent{Kind: AdminGameEnded, Player: "p1"}})
	// Anything after the end marker must never be replayed; this move
	// would fail loudly if it were.
	events = append(events, Event{Move: &Move{Kind: MoveDraw, Player: "ghost"}})

	s, err := replayEvents(g.state, events)
	require.NoError(t, err)
	assert.Len(t, s.Players, 2)
}
