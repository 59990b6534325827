package sim

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Token is an opaque identity used to route an entity's private timer events.
// Tokens are unique within a run and never reused.
type Token uuid.UUID

// String returns the canonical textual form of the token.
func (t Token) String() string {
	return uuid.UUID(t).String()
}

// IsZero reports whether the token was never assigned.
func (t Token) IsZero() bool {
	return t == Token{}
}

// Well-known event tags. Input tags match core.Action names.
const (
	TagMoveUp      = "move-up"
	TagMoveDown    = "move-down"
	TagMoveLeft    = "move-left"
	TagMoveRight   = "move-right"
	TagShootUp     = "shoot-up"
	TagShootDown   = "shoot-down"
	TagShootLeft   = "shoot-left"
	TagShootRight  = "shoot-right"
	TagShootCool   = "shoot-cooldown"
	TagHurtCool    = "hurt-cooldown"
	TagRoomStart   = "room-start-cooldown"
	TagRapidFire   = "generic-rapid"
	TagRocketTick  = "rocket-tick"
	tagEntityTimer = "entity"
)

type eventKind uint8

const (
	kindTag eventKind = iota
	kindToken
)

// Event is either a named tag (input or well-known timer) or an entity token.
// Events are comparable and usable as map keys.
type Event struct {
	kind  eventKind
	tag   string
	token Token
}

// Named returns the event for a tag.
func Named(tag string) Event {
	return Event{kind: kindTag, tag: tag}
}

// EntityEvent returns the event routed to the owner of token.
func EntityEvent(t Token) Event {
	return Event{kind: kindToken, token: t}
}

// Tag returns the event's tag, if it is a named event.
func (e Event) Tag() (string, bool) {
	return e.tag, e.kind == kindTag
}

// Token returns the event's token, if it is an entity event.
func (e Event) Token() (Token, bool) {
	return e.token, e.kind == kindToken
}

// String formats the event for logs and tests.
func (e Event) String() string {
	if e.kind == kindToken {
		return fmt.Sprintf("%s:%s", tagEntityTimer, e.token)
	}
	return e.tag
}

// Frequently used named events.
var (
	EvMoveUp     = Named(TagMoveUp)
	EvMoveDown   = Named(TagMoveDown)
	EvMoveLeft   = Named(TagMoveLeft)
	EvMoveRight  = Named(TagMoveRight)
	EvShootUp    = Named(TagShootUp)
	EvShootDown  = Named(TagShootDown)
	EvShootLeft  = Named(TagShootLeft)
	EvShootRight = Named(TagShootRight)
	EvShootCool  = Named(TagShootCool)
	EvHurtCool   = Named(TagHurtCool)
	EvRoomStart  = Named(TagRoomStart)
	EvRapidFire  = Named(TagRapidFire)
	EvRocketTick = Named(TagRocketTick)
)

// EventSet is the set of events active during one step.
type EventSet map[Event]struct{}

// NewEventSet builds a set from the given events.
func NewEventSet(events ...Event) EventSet {
	s := make(EventSet, len(events))
	for _, e := range events {
		s[e] = struct{}{}
	}
	return s
}

// Add inserts e into the set.
func (s EventSet) Add(e Event) {
	s[e] = struct{}{}
}

// Has reports membership. A nil set has no members.
func (s EventSet) Has(e Event) bool {
	_, ok := s[e]
	return ok
}

// Union returns a new set containing the members of s and o.
func (s EventSet) Union(o EventSet) EventSet {
	out := make(EventSet, len(s)+len(o))
	for e := range s {
		out[e] = struct{}{}
	}
	for e := range o {
		out[e] = struct{}{}
	}
	return out
}

// Strings returns the sorted textual form of every member.
func (s EventSet) Strings() []string {
	out := make([]string, 0, len(s))
	for e := range s {
		out = append(out, e.String())
	}
	sort.Strings(out)
	return out
}

// TimerRequest asks the host to deliver Event once Delay seconds have elapsed.
type TimerRequest struct {
	Event Event
	Delay float64
}

func after(e Event, delay float64) TimerRequest {
	return TimerRequest{Event: e, Delay: delay}
}
