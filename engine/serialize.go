package engine

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// snapshot is the wire form of a serialized game.
type snapshot struct {
	ID    uuid.UUID  `json:"id"`
	State *GameState `json:"state"`
}

// Serialize captures the complete game, including the live RNG state
// and retained event history, as JSON. A deserialized copy continues
// with bit-identical behavior, shuffles included.
func (g *Game) Serialize() ([]byte, error) {
	data, err := json.Marshal(snapshot{ID: g.ID, State: g.state})
	if err != nil {
		return nil, fmt.Errorf("serialize game %s: %w", g.ID, err)
	}
	return data, nil
}

// Deserialize reconstructs a game from Serialize output. The logger
// may be nil; the logrus standard logger is used then.
func Deserialize(data []byte, logger *logrus.Logger) (*Game, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("deserialize game: %w", err)
	}
	if snap.State == nil {
		return nil, fmt.Errorf("deserialize game: snapshot carries no state")
	}
	s := snap.State
	if s.Hands == nil {
		s.Hands = make(map[PlayerID][]Card)
	}
	if s.History.Mode == RetentionBounded && s.History.Window == nil {
		s.History.Window = make([]Move, HistoryWindow)
	}
	return newGameHandle(snap.ID, s, logger), nil
}

// Clone returns an independent copy of the game by round-tripping a
// snapshot. The copy keeps the source's ID and diverges from there.
func (g *Game) Clone() (*Game, error) {
	data, err := g.Serialize()
	if err != nil {
		return nil, err
	}
	return Deserialize(data, g.log.Logger)
}
