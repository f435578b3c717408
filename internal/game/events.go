package game

import (
	"fmt"
	"strings"
)

// Event categories and keys emitted by Session.
const (
	CatPickup  = "pickup"
	CatContact = "contact"
	CatState   = "state"
	CatPower   = "power"

	KeyPellet      = "pellet"
	KeyPowerPellet = "power_pellet"
	KeyGhostEaten  = "ghost_eaten"
	KeyLifeLost    = "life_lost"
	KeyLevelDone   = "level_complete"
	KeyGameOver    = "game_over"
	KeyRestart     = "restart"
	KeyPowerOn     = "on"
	KeyPowerOff    = "off"
)

// Event is one thing that happened during a frame.
type Event struct {
	Frame    int
	Actor    string  // "player", a ghost name, or "--" for session-wide events
	Category string  // pickup, contact, state, power
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // score delta, lives left, etc.
}

// String formats the event as a fixed-width log line.
//
//	[F=0042] player  pickup    pellet         (1,2) +10
func (e Event) String() string {
	return fmt.Sprintf("[F=%04d] %-7s %-9s %-14s %s",
		e.Frame, e.Actor, e.Category, e.Key, e.Value)
}

// Listener receives every event a session emits, in order.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// EventLog is an unbounded, machine-readable record of session events.
type EventLog struct {
	entries []Event
}

// NewEventLog creates an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// OnEvent records e.
func (el *EventLog) OnEvent(e Event) {
	el.entries = append(el.entries, e)
}

// Entries returns all recorded events.
func (el *EventLog) Entries() []Event {
	return el.entries
}

// Reset drops every entry.
func (el *EventLog) Reset() {
	el.entries = el.entries[:0]
}

// Filter returns events matching category and/or key. Empty matches anything.
func (el *EventLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range el.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterActor returns events for one actor.
func (el *EventLog) FilterActor(actor string) []Event {
	var out []Event
	for _, e := range el.entries {
		if e.Actor == actor {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many events match category and key.
func (el *EventLog) Count(category, key string) int {
	return len(el.Filter(category, key))
}

// LastOf returns the most recent event matching category+key, or false if none.
func (el *EventLog) LastOf(category, key string) (Event, bool) {
	es := el.Filter(category, key)
	if len(es) == 0 {
		return Event{}, false
	}
	return es[len(es)-1], true
}

// HasEntry returns true if some event matches category, key and value substring.
func (el *EventLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range el.entries {
		if e.Category == category && e.Key == key && strings.Contains(e.Value, valueSubstr) {
			return true
		}
	}
	return false
}

// Dump formats every entry, one per line.
func (el *EventLog) Dump() string {
	var b strings.Builder
	for _, e := range el.entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
