package ui

import "formwarp/internal/sim"

// worldEventMsg wraps one event from the player's event channel.
type worldEventMsg struct {
	Event sim.PlayerEvent
}

// disconnectMsg arrives when the event channel closes (the player was
// removed from the world).
type disconnectMsg struct{}
