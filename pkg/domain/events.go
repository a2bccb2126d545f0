package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventNodeCreated  EventType = "node_created"
	EventSpaceCreated EventType = "space_created"
	EventAttach       EventType = "attach"
	EventExpand       EventType = "expand"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// NewEventBase stamps an event of the given type with the current time.
func NewEventBase(t EventType) EventBase {
	return EventBase{Timestamp: time.Now(), Type: t}
}

// NodeEvent is emitted once per node, right after it joins the tree.
// ParentSpaceID is NoSpace for a root node.
type NodeEvent struct {
	EventBase
	NodeID        NodeID  `json:"node_id"`
	UUID          string  `json:"uuid"`
	ParentSpaceID SpaceID `json:"parent_space_id,omitempty"`
	OptionID      int     `json:"option_id,omitempty"`
}

// SpaceEvent is emitted once per space, right after it joins the tree.
type SpaceEvent struct {
	EventBase
	SpaceID SpaceID `json:"space_id"`
	Kind    Kind    `json:"kind"`
	Label   string  `json:"label"`
}

// AttachEvent is emitted when a node takes a space as its outgoing space.
type AttachEvent struct {
	EventBase
	NodeID        NodeID  `json:"node_id"`
	SpaceID       SpaceID `json:"space_id"`
	PreviousSpace SpaceID `json:"previous_space_id,omitempty"`
}

// ExpandEvent is emitted after a space has materialized its children.
type ExpandEvent struct {
	EventBase
	SpaceID SpaceID `json:"space_id"`
	Kind    Kind    `json:"kind"`
	Owners  int     `json:"owners"`
	Options int     `json:"options"`
	Created int     `json:"created"`
}

// LifecycleHooks defines callbacks for tree observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnNodeCreated  func(*NodeEvent)
	OnSpaceCreated func(*SpaceEvent)
	OnAttach       func(*AttachEvent)
	OnExpand       func(*ExpandEvent)
}
