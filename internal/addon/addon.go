// Package addon implements the menu addon: an item trigger and a set of
// chat commands that open a small tree of server forms. The addon talks
// to the game exclusively through the host contracts, so the same code
// runs against the in-memory world and any other host.
package addon

import (
	"math/rand"
	"time"

	"formwarp/internal/host"
)

// Screen identifies one of the four menu screens.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenWarp
	ScreenConfirm
	ScreenModal
)

// command maps a chat token to the screen it opens and the
// acknowledgement sent before opening it.
type command struct {
	screen Screen
	ack    string
}

var commands = map[string]command{
	"menu":  {ScreenMain, "Opening menu"},
	"warp":  {ScreenWarp, "Opening form"},
	"form2": {ScreenConfirm, "Opening form"},
	"form3": {ScreenModal, "Opening form"},
}

// Addon wires the event bridge and menu controller to a host. It holds no
// per-player state: screens are rebuilt fresh for every display.
type Addon struct {
	cfg   Config
	world host.World
	rng   *rand.Rand
}

// New creates the addon for the given world.
func New(world host.World, cfg Config) *Addon {
	return &Addon{
		cfg:   cfg,
		world: world,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Register subscribes the addon's event handlers. Call once, during host
// initialization.
func (a *Addon) Register(events host.Events) {
	events.HandleItemUse(a.onItemUse)
	events.HandleChat(a.onChat)
}
