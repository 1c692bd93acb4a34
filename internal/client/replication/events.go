package replication

import "time"

// State is the engine lifecycle state.
type State int32

const (
	StateIdle State = iota
	StateStarting
	StateActive
	StateRetrying
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateActive:
		return "active"
	case StateRetrying:
		return "retrying"
	case StateCancelled:
		return "cancelled"
	default:
		return "idle"
	}
}

// Health is the consumer-facing sync status for one collection.
type Health int

const (
	// HealthInitializing: first connection not yet established.
	HealthInitializing Health = iota
	// HealthSyncing: a pull/push cycle is in flight.
	HealthSyncing
	// HealthOffline: the last cycle failed before reaching the remote.
	HealthOffline
	// HealthError: the remote was reached and rejected or failed.
	HealthError
	// HealthSynced: no outstanding error and at least one successful cycle.
	HealthSynced
)

func (h Health) String() string {
	switch h {
	case HealthSyncing:
		return "syncing"
	case HealthOffline:
		return "offline"
	case HealthError:
		return "error"
	case HealthSynced:
		return "synced"
	default:
		return "initializing"
	}
}

// EventType classifies engine events.
type EventType int

const (
	// EventError: a pull or push cycle failed.
	EventError EventType = iota
	// EventRecovered: a cycle succeeded after one or more failures.
	EventRecovered
	// EventSynced: a full pull+push cycle completed.
	EventSynced
)

// Event is one engine state transition pushed to the coordinator.
type Event struct {
	Collection string
	Type       EventType
	Message    string
	// Offline distinguishes "remote unreachable" from "remote rejected".
	Offline   bool
	Timestamp time.Time
}
