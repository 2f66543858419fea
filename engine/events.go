package engine

import "fmt"

// PlayerID is an opaque caller-supplied identifier. EnginePlayer is
// reserved for events the engine itself generates, such as the opening
// discard flip.
type PlayerID string

const EnginePlayer PlayerID = "@engine"

// MoveKind enumerates the five domain moves.
type MoveKind uint8

const (
	MovePlayCard MoveKind = iota + 1
	MoveDraw
	MovePass
	MoveCallBluff
	MoveChooseColor
)

func (k MoveKind) String() string {
	switch k {
	case MovePlayCard:
		return "play"
	case MoveDraw:
		return "draw"
	case MovePass:
		return "pass"
	case MoveCallBluff:
		return "callBluff"
	case MoveChooseColor:
		return "chooseColor"
	}
	return fmt.Sprintf("move(%d)", uint8(k))
}

// Move is one player-submitted action. Card is set for MovePlayCard,
// Color for MoveChooseColor.
type Move struct {
	Kind   MoveKind `json:"kind"`
	Player PlayerID `json:"player"`
	Card   *Card    `json:"card,omitempty"`
	Color  Color    `json:"color,omitempty"`
}

func (m Move) String() string {
	switch m.Kind {
	case MovePlayCard:
		if m.Card != nil {
			return fmt.Sprintf("%s plays %s", m.Player, *m.Card)
		}
		return fmt.Sprintf("%s plays", m.Player)
	case MoveChooseColor:
		return fmt.Sprintf("%s chooses %s", m.Player, m.Color)
	}
	return fmt.Sprintf("%s %ss", m.Player, m.Kind)
}

// AdminKind enumerates the administrative events the engine records
// around moves: lifecycle, shuffles and bluff outcomes.
type AdminKind uint8

const (
	AdminSeedChanged AdminKind = iota + 1
	AdminPileRecycled
	AdminCardFlipped
	AdminPlayerJoined
	AdminPlayerLeft
	AdminBluffSucceeded
	AdminBluffFailed
	AdminPlayerWon
	AdminGameEnded
)

func (k AdminKind) String() string {
	switch k {
	case AdminSeedChanged:
		return "seedChanged"
	case AdminPileRecycled:
		return "pileRecycled"
	case AdminCardFlipped:
		return "cardFlipped"
	case AdminPlayerJoined:
		return "playerJoined"
	case AdminPlayerLeft:
		return "playerLeft"
	case AdminBluffSucceeded:
		return "bluffSucceeded"
	case AdminBluffFailed:
		return "bluffFailed"
	case AdminPlayerWon:
		return "playerWon"
	case AdminGameEnded:
		return "gameEnded"
	}
	return fmt.Sprintf("admin(%d)", uint8(k))
}

// AdminEvent is an engine-generated record. Which fields are set
// depends on Kind: Seed for AdminSeedChanged, Card for AdminCardFlipped,
// Accuser/Accused for the bluff outcomes, Player for the rest.
type AdminEvent struct {
	Kind    AdminKind `json:"kind"`
	Player  PlayerID  `json:"player,omitempty"`
	Card    *Card     `json:"card,omitempty"`
	Seed    int32     `json:"seed,omitempty"`
	Accuser PlayerID  `json:"accuser,omitempty"`
	Accused PlayerID  `json:"accused,omitempty"`
}

// Event is one log entry: exactly one of Move or Admin is set.
type Event struct {
	Move  *Move       `json:"move,omitempty"`
	Admin *AdminEvent `json:"admin,omitempty"`
}

// RetentionMode selects how much history the event log keeps.
type RetentionMode uint8

const (
	// RetentionFull keeps every event since construction and enables
	// replay-based rewind via JumpToIndex.
	RetentionFull RetentionMode = iota
	// RetentionBounded keeps only the last HistoryWindow domain moves
	// and drops administrative events entirely.
	RetentionBounded
)

// HistoryWindow is the fixed capacity of the bounded event log. Five
// moves comfortably covers the deepest rule look-back (three moves).
const HistoryWindow = 5

// EventLog records what happened, under one of two retention modes.
// In bounded mode Window is a fixed-capacity FIFO ring over the last
// HistoryWindow moves; Start/Count index into it.
type EventLog struct {
	Mode    RetentionMode `json:"mode"`
	Entries []Event       `json:"entries,omitempty"`
	Window  []Move        `json:"window,omitempty"`
	Start   int           `json:"start,omitempty"`
	Count   int           `json:"count,omitempty"`
}

func newEventLog(mode RetentionMode) EventLog {
	l := EventLog{Mode: mode}
	if mode == RetentionBounded {
		l.Window = make([]Move, HistoryWindow)
	}
	return l
}

// recordMove appends a validated domain move. In bounded mode the
// oldest retained move is evicted once the window is full.
func (l *EventLog) recordMove(m Move) {
	if l.Mode == RetentionBounded {
		if l.Count < HistoryWindow {
			l.Window[(l.Start+l.Count)%HistoryWindow] = m
			l.Count++
			return
		}
		l.Window[l.Start] = m
		l.Start = (l.Start + 1) % HistoryWindow
		return
	}
	l.Entries = append(l.Entries, Event{Move: cloneMove(&m)})
}

// recordAdmin appends an administrative event. Bounded mode retains
// domain moves only, so this is a no-op there.
func (l *EventLog) recordAdmin(e AdminEvent) {
	if l.Mode == RetentionBounded {
		return
	}
	l.Entries = append(l.Entries, Event{Admin: cloneAdmin(&e)})
}

// lastMoves returns up to n retained domain moves, most recent first,
// skipping administrative events.
func (l *EventLog) lastMoves(n int) []Move {
	out := make([]Move, 0, n)
	if l.Mode == RetentionBounded {
		for i := l.Count - 1; i >= 0 && len(out) < n; i-- {
			out = append(out, l.Window[(l.Start+i)%HistoryWindow])
		}
		return out
	}
	for i := len(l.Entries) - 1; i >= 0 && len(out) < n; i-- {
		if l.Entries[i].Move != nil {
			out = append(out, *l.Entries[i].Move)
		}
	}
	return out
}

// Events returns a copy of the retained history, oldest first. Bounded
// mode yields the windowed moves wrapped as events.
func (l *EventLog) Events() []Event {
	if l.Mode == RetentionBounded {
		out := make([]Event, 0, l.Count)
		for i := 0; i < l.Count; i++ {
			m := l.Window[(l.Start+i)%HistoryWindow]
			out = append(out, Event{Move: cloneMove(&m)})
		}
		return out
	}
	out := make([]Event, len(l.Entries))
	for i, ev := range l.Entries {
		out[i] = Event{Move: cloneMove(ev.Move), Admin: cloneAdmin(ev.Admin)}
	}
	return out
}

// Len returns the number of retained events.
func (l *EventLog) Len() int {
	if l.Mode == RetentionBounded {
		return l.Count
	}
	return len(l.Entries)
}

func (l *EventLog) clone() EventLog {
	c := EventLog{Mode: l.Mode, Start: l.Start, Count: l.Count}
	if l.Window != nil {
		c.Window = make([]Move, len(l.Window))
		for i := range l.Window {
			c.Window[i] = *cloneMove(&l.Window[i])
		}
	}
	if l.Entries != nil {
		c.Entries = l.Events()
	}
	return c
}

func cloneMove(m *Move) *Move {
	if m == nil {
		return nil
	}
	c := *m
	if m.Card != nil {
		card := *m.Card
		c.Card = &card
	}
	return &c
}

func cloneAdmin(e *AdminEvent) *AdminEvent {
	if e == nil {
		return nil
	}
	c := *e
	if e.Card != nil {
		card := *e.Card
		c.Card = &card
	}
	return &c
}
