package event

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeRequestCreated   Type = "request_created"
	TypeRequestAssigned  Type = "request_assigned"
	TypeRequestWaiting   Type = "request_waiting"
	TypeRequestCompleted Type = "request_completed"
	TypeOperatorCreated  Type = "operator_created"
	TypeOperatorUpdated  Type = "operator_updated"
)

// Channel is a domain-scoped Postgres NOTIFY channel.
// All event types within a domain share one LISTEN connection.
type Channel string

const (
	ChannelRequest  Channel = "request"
	ChannelOperator Channel = "operator"
)

var typeToChannel = map[Type]Channel{
	TypeRequestCreated:   ChannelRequest,
	TypeRequestAssigned:  ChannelRequest,
	TypeRequestWaiting:   ChannelRequest,
	TypeRequestCompleted: ChannelRequest,
	TypeOperatorCreated:  ChannelOperator,
	TypeOperatorUpdated:  ChannelOperator,
}

// ChannelFor returns the domain channel for a given event type.
func ChannelFor(t Type) Channel { return typeToChannel[t] }

// Event carries identifiers only, not full state.
// Subscribers fetch fresh state from the appropriate repository.
type Event struct {
	Type      Type      `json:"type"`
	EntityID  uuid.UUID `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
}

func New(eventType Type, entityID uuid.UUID) Event {
	return Event{
		Type:      eventType,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
}
