// Package engine implements a deterministic, replayable rules engine
// for an UNO-family card game.
//
// The engine is a plain in-process library: callers construct a Game,
// join players, and submit moves; every state transition is validated,
// applied atomically and recorded in an event log. Seeded games are
// fully reproducible, and snapshots resume mid-game with bit-identical
// shuffle behavior.
package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Config tunes a new game. The zero value is usable; DefaultConfig
// spells out the defaults.
type Config struct {
	// Seed fixes the shuffle RNG. The zero Seed draws a random one.
	Seed Seed
	// Retention selects full replayable history or a bounded window.
	Retention RetentionMode
	// StackDrawTwos lets consecutive draw twos accumulate their
	// penalty onto whichever player finally draws.
	StackDrawTwos bool
	// Logger receives structured game activity. Defaults to the
	// logrus standard logger.
	Logger *logrus.Logger
}

// DefaultConfig returns the standard ruleset: random seed, full event
// retention, draw-two stacking enabled.
func DefaultConfig() Config {
	return Config{Retention: RetentionFull, StackDrawTwos: true}
}

// Game is the public handle on one running game. It is not safe for
// concurrent use; callers serialize access.
type Game struct {
	// ID distinguishes game instances in logs and snapshots. Clones
	// keep the ID of their source.
	ID uuid.UUID

	state *GameState
	log   *logrus.Entry
}

// NewGame constructs a game with a shuffled deck and the opening card
// flipped onto the discard pile. Players join afterwards.
func NewGame(cfg Config) *Game {
	seed := cfg.Seed.resolve()
	s := &GameState{
		Hands:         make(map[PlayerID][]Card),
		DrawPile:      newDeck(),
		TurnDirection: 1,
		Seed:          seed,
		InitialSeed:   seed,
		StackDrawTwos: cfg.StackDrawTwos,
		History:       newEventLog(cfg.Retention),
	}
	s.shuffle(s.DrawPile)
	s.flipOpeningCard()

	g := newGameHandle(uuid.New(), s, cfg.Logger)
	g.log.WithFields(logrus.Fields{
		"seed":      seed,
		"retention": cfg.Retention,
	}).Info("game created")
	return g
}

func newGameHandle(id uuid.UUID, s *GameState, logger *logrus.Logger) *Game {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Game{
		ID:    id,
		state: s,
		log:   logger.WithField("game_id", id),
	}
}

// Join adds players in order and deals each a starting hand. Ids must
// be unique, non-empty and not the reserved engine id. Joining a
// finished game fails.
func (g *Game) Join(ids ...PlayerID) error {
	for _, id := range ids {
		saved := g.state.clone()
		if err := g.state.join(id); err != nil {
			g.state = saved
			return err
		}
		g.log.WithField("player", id).Info("player joined")
	}
	return nil
}

func (s *GameState) join(id PlayerID) error {
	if s.Ended {
		return &GameEndedError{Loser: s.loser()}
	}
	if id == "" || id == EnginePlayer {
		return &InvalidIDError{ID: id, Reason: "empty or reserved"}
	}
	if _, ok := s.Hands[id]; ok {
		return &InvalidIDError{ID: id, Reason: "already joined"}
	}
	if len(s.Players)+1 > MaxPlayers {
		return &TooManyPlayersError{Count: len(s.Players) + 1}
	}
	s.Players = append(s.Players, id)
	s.Hands[id] = nil
	s.History.recordAdmin(AdminEvent{Kind: AdminPlayerJoined, Player: id})
	if _, err := s.drawInto(id, InitialHandSize); err != nil {
		return err
	}
	return nil
}

// Leave removes players. Their cards go back under the draw pile so
// the deck stays complete; the seat arithmetic absorbs the shrunken
// player list on the next turn lookup.
func (g *Game) Leave(ids ...PlayerID) error {
	for _, id := range ids {
		if err := g.state.leave(id); err != nil {
			return err
		}
		g.log.WithField("player", id).Info("player left")
	}
	return nil
}

func (s *GameState) leave(id PlayerID) error {
	hand, ok := s.Hands[id]
	if !ok {
		return &UnknownPlayerError{ID: id}
	}
	s.returnToBottom(hand)
	delete(s.Hands, id)
	for i, p := range s.Players {
		if p == id {
			s.Players = append(s.Players[:i], s.Players[i+1:]...)
			break
		}
	}
	s.History.recordAdmin(AdminEvent{Kind: AdminPlayerLeft, Player: id})
	return nil
}

// Play submits a card play for the player.
func (g *Game) Play(id PlayerID, c Card) (Outcome, error) {
	return g.SubmitMove(Move{Kind: MovePlayCard, Player: id, Card: &c})
}

// Draw submits a draw. The count is derived from the pending penalty,
// if any; a plain draw takes one card and keeps the turn.
func (g *Game) Draw(id PlayerID) (Outcome, error) {
	return g.SubmitMove(Move{Kind: MoveDraw, Player: id})
}

// Pass submits a pass, legal only right after the player's own draw.
func (g *Game) Pass(id PlayerID) (Outcome, error) {
	return g.SubmitMove(Move{Kind: MovePass, Player: id})
}

// CallBluff challenges the wild draw four played two moves back.
func (g *Game) CallBluff(id PlayerID) (Outcome, error) {
	return g.SubmitMove(Move{Kind: MoveCallBluff, Player: id})
}

// ChooseColor announces the color for the player's own just-played
// color-switching card.
func (g *Game) ChooseColor(id PlayerID, c Color) (Outcome, error) {
	return g.SubmitMove(Move{Kind: MoveChooseColor, Player: id, Color: c})
}

// SubmitMove validates and applies one move atomically: a rejected or
// failed move leaves the game exactly as it was.
func (g *Game) SubmitMove(m Move) (Outcome, error) {
	saved := g.state.clone()
	out, err := g.state.submit(m)
	if err != nil {
		g.state = saved
		g.log.WithFields(logrus.Fields{
			"move":   m.String(),
			"reason": err.Error(),
		}).Debug("move rejected")
		return Outcome{}, err
	}

	g.log.WithField("move", m.String()).Debug(out.Summary)
	if out.Ended {
		g.log.WithFields(logrus.Fields{
			"winner": out.Winner,
			"loser":  out.Loser,
		}).Info("game ended")
	}
	return out, nil
}

// ValidMoves enumerates every move the player could legally submit
// right now: one play per held card that would pass validation, plus
// draw, pass, bluff call and color choice where applicable.
func (g *Game) ValidMoves(id PlayerID) ([]Move, error) {
	s := g.state
	if _, ok := s.Hands[id]; !ok {
		return nil, &UnknownPlayerError{ID: id}
	}
	var moves []Move
	for _, c := range s.Hands[id] {
		card := c
		m := Move{Kind: MovePlayCard, Player: id, Card: &card}
		if s.validate(m, false) == nil {
			moves = append(moves, m)
		}
	}
	for _, kind := range []MoveKind{MoveDraw, MovePass, MoveCallBluff} {
		m := Move{Kind: kind, Player: id}
		if s.validate(m, false) == nil {
			moves = append(moves, m)
		}
	}
	for _, color := range []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow} {
		m := Move{Kind: MoveChooseColor, Player: id, Color: color}
		if s.validate(m, false) == nil {
			moves = append(moves, m)
		}
	}
	return moves, nil
}

// ExpectedCard reports the rank/color constraint the next play must
// satisfy. With bluffSite set, the constraint is evaluated as of just
// before a challenged wild draw four.
func (g *Game) ExpectedCard(bluffSite bool) Expectation {
	return g.state.expectation(bluffSite)
}

// ActivePlayer returns whose turn it is.
func (g *Game) ActivePlayer() PlayerID {
	return g.state.activePlayer()
}

// HasEnded reports whether the game is over and, if so, who lost.
func (g *Game) HasEnded() (PlayerID, bool) {
	if !g.state.Ended {
		return "", false
	}
	return g.state.loser(), true
}

// State returns a deep copy of the full game state. Mutating it does
// not affect the game.
func (g *Game) State() GameState {
	return *g.state.clone()
}

// Hand returns a copy of one player's hand.
func (g *Game) Hand(id PlayerID) ([]Card, error) {
	hand, ok := g.state.Hands[id]
	if !ok {
		return nil, &UnknownPlayerError{ID: id}
	}
	return append([]Card(nil), hand...), nil
}

// Events returns a copy of the retained event history, oldest first.
func (g *Game) Events() []Event {
	return g.state.History.Events()
}

func (g *Game) String() string {
	return fmt.Sprintf("game %s: %d players, turn %s", g.ID, len(g.state.Players), g.state.activePlayer())
}
