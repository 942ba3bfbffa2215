package game

import "strings"

// EventKind names a battle event. The values double as the command of the
// event's protocol line.
type EventKind string

const (
	EventPlayer      EventKind = "player"
	EventPoke        EventKind = "poke"
	EventStart       EventKind = "start"
	EventTurn        EventKind = "turn"
	EventSwitch      EventKind = "switch"
	EventMove        EventKind = "move"
	EventPrepare     EventKind = "-prepare"
	EventCant        EventKind = "cant"
	EventDamage      EventKind = "-damage"
	EventHeal        EventKind = "-heal"
	EventStatus      EventKind = "-status"
	EventCureStatus  EventKind = "-curestatus"
	EventBoost       EventKind = "-boost"
	EventUnboost     EventKind = "-unboost"
	EventClearBoosts EventKind = "-clearallboost"
	EventVolatile    EventKind = "-start"
	EventVolatileEnd EventKind = "-end"
	EventCrit        EventKind = "-crit"
	EventSuper       EventKind = "-supereffective"
	EventResisted    EventKind = "-resisted"
	EventImmune      EventKind = "-immune"
	EventMiss        EventKind = "-miss"
	EventFail        EventKind = "-fail"
	EventHitCount    EventKind = "-hitcount"
	EventActivate    EventKind = "-activate"
	EventTransform   EventKind = "-transform"
	EventMessage     EventKind = "-message"
	EventFaint       EventKind = "faint"
	EventWin         EventKind = "win"
	EventTie         EventKind = "tie"
)

// Event is one thing that happened in a battle. Text is the human-readable
// log line and may be empty for bookkeeping events such as EventPoke.
type Event struct {
	Kind EventKind
	Side Side
	Args []string
	Text string
}

// Protocol encodes the event as a pipe-delimited line, for example
// |move|p1a: Pikachu|Thunderbolt|p2a: Onix.
func (e Event) Protocol() string {
	var sb strings.Builder
	sb.WriteByte('|')
	sb.WriteString(string(e.Kind))
	for _, a := range e.Args {
		sb.WriteByte('|')
		sb.WriteString(a)
	}
	return sb.String()
}

// Sink receives every event of a battle in order.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Event)

func (f SinkFunc) Emit(e Event) { f(e) }

type discard struct{}

func (discard) Emit(Event) {}
