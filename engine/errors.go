package engine

import (
	"errors"
	"fmt"
)

// ErrSupplyExhausted is returned when a draw is requested while both
// piles are empty. It is fatal to that draw only, not to the game.
var ErrSupplyExhausted = errors.New("draw and discard piles are both empty")

// TooFewPlayersError rejects moves while fewer than MinPlayers players
// are joined.
type TooFewPlayersError struct {
	Count int
}

func (e *TooFewPlayersError) Error() string {
	return fmt.Sprintf("game needs at least %d players, has %d", MinPlayers, e.Count)
}

// TooManyPlayersError rejects joins beyond MaxPlayers.
type TooManyPlayersError struct {
	Count int
}

func (e *TooManyPlayersError) Error() string {
	return fmt.Sprintf("game holds at most %d players, join would make %d", MaxPlayers, e.Count)
}

// InvalidIDError rejects reserved, empty or duplicate player ids.
type InvalidIDError struct {
	ID     PlayerID
	Reason string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid player id %q: %s", string(e.ID), e.Reason)
}

// UnknownPlayerError rejects operations naming a player who never
// joined or has already left.
type UnknownPlayerError struct {
	ID PlayerID
}

func (e *UnknownPlayerError) Error() string {
	return fmt.Sprintf("player %q is not in the game", string(e.ID))
}

// CardNotInHandError rejects playing a card the player does not hold.
type CardNotInHandError struct {
	ID   PlayerID
	Card Card
}

func (e *CardNotInHandError) Error() string {
	return fmt.Sprintf("player %q does not hold %s", string(e.ID), e.Card)
}

// NotYourTurnError rejects moves submitted out of turn.
type NotYourTurnError struct {
	ID PlayerID
}

func (e *NotYourTurnError) Error() string {
	return fmt.Sprintf("it is not player %q's turn", string(e.ID))
}

// MustChooseColorError rejects any move other than a color choice
// while a color-switching play awaits its announcement.
type MustChooseColorError struct {
	Attempted Move
}

func (e *MustChooseColorError) Error() string {
	return fmt.Sprintf("a color must be chosen before %s", e.Attempted)
}

// MustDrawOrStackError rejects any response to a draw two other than
// drawing the penalty or stacking another draw two.
type MustDrawOrStackError struct {
	Attempted Move
}

func (e *MustDrawOrStackError) Error() string {
	return fmt.Sprintf("must draw or play another draw two, not %s", e.Attempted)
}

// MustDrawOrCallBluffError rejects any response to a wild draw four
// other than drawing the penalty or calling the bluff.
type MustDrawOrCallBluffError struct {
	Attempted Move
}

func (e *MustDrawOrCallBluffError) Error() string {
	return fmt.Sprintf("must draw or call the bluff, not %s", e.Attempted)
}

// LastCardWildError rejects finishing on a color-switching card.
type LastCardWildError struct {
	Attempted Move
}

func (e *LastCardWildError) Error() string {
	return fmt.Sprintf("cannot play a color-switching card as the last card: %s", e.Attempted)
}

// IllegalPlayError rejects a card that matches neither the expected
// rank nor the expected color.
type IllegalPlayError struct {
	Expected Expectation
	Found    Card
}

func (e *IllegalPlayError) Error() string {
	return fmt.Sprintf("%s does not match the expected card (%s)", e.Found, e.Expected)
}

// DrawTwiceError rejects a second consecutive draw by the same player.
type DrawTwiceError struct {
	ID PlayerID
}

func (e *DrawTwiceError) Error() string {
	return fmt.Sprintf("player %q already drew this turn", string(e.ID))
}

// PassWithoutDrawError rejects passing before drawing.
type PassWithoutDrawError struct {
	ID PlayerID
}

func (e *PassWithoutDrawError) Error() string {
	return fmt.Sprintf("player %q must draw before passing", string(e.ID))
}

// CannotCallBluffError rejects a bluff call with no wild draw four two
// moves back.
type CannotCallBluffError struct {
	ID PlayerID
}

func (e *CannotCallBluffError) Error() string {
	return fmt.Sprintf("player %q has no wild draw four to challenge", string(e.ID))
}

// CannotChooseColorError rejects a color choice when the player's
// preceding move was not a color-switching play.
type CannotChooseColorError struct {
	ID PlayerID
}

func (e *CannotChooseColorError) Error() string {
	return fmt.Sprintf("player %q has no pending color choice", string(e.ID))
}

// GameEndedError rejects any move or join after the game has ended.
type GameEndedError struct {
	Loser PlayerID
}

func (e *GameEndedError) Error() string {
	return fmt.Sprintf("game has ended; %q lost", string(e.Loser))
}

// RetentionModeError rejects replay operations outside full retention.
type RetentionModeError struct {
	Mode RetentionMode
}

func (e *RetentionModeError) Error() string {
	return "rewind requires full event retention"
}

// EventIndexError rejects a rewind target outside the retained log.
type EventIndexError struct {
	Index  int
	Length int
}

func (e *EventIndexError) Error() string {
	return fmt.Sprintf("event index %d out of range (log holds %d events)", e.Index, e.Length)
}
