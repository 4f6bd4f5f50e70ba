package sim

import "formwarp/internal/host"

// EventKind tags a PlayerEvent.
type EventKind int

const (
	// EventChat is a chat or system line to print.
	EventChat EventKind = iota
	// EventForm asks the client to display a form.
	EventForm
	// EventTeleport reports the player's new position.
	EventTeleport
	// EventDeath reports that the player died and respawned.
	EventDeath
)

// PlayerEvent is what a client front end receives on its player's event
// channel. Which members are set depends on Kind.
type PlayerEvent struct {
	Kind EventKind
	Text string
	Form host.Form
	Pos  host.Vec3
	Rot  host.Rotation
}
