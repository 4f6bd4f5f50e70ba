// Package host defines the contracts a game runtime provides to addons:
// players, world access, event registration, the tick scheduler, and the
// form API. Addon code depends only on these interfaces so it can run
// against any host that implements them.
package host

// Vec3 is a position in the world.
type Vec3 struct {
	X, Y, Z float64
}

// Rotation is a facing direction, in degrees.
type Rotation struct {
	Yaw, Pitch float64
}

// Player is one connected player.
type Player interface {
	// Name returns the player's display name.
	Name() string
	// Message sends a chat line visible only to this player.
	Message(text string)
	// Teleport moves the player to pos, facing rot.
	Teleport(pos Vec3, rot Rotation)
	// Kill applies the host's kill effect to the player.
	Kill()
	// ShowForm requests that f be displayed to the player. It never
	// blocks: respond runs later on the host's script goroutine, exactly
	// once per request.
	ShowForm(f Form, respond func(Response))
}

// World gives addons access to world state and the tick scheduler.
type World interface {
	// Players returns a snapshot of every currently connected player,
	// taken at call time.
	Players() []Player
	// NextTick schedules fn to run on the next tick boundary, on the
	// host's script goroutine.
	NextTick(fn func())
}

// Events registers addon handlers. Registration happens once, during the
// host's initialization phase; handlers run on the script goroutine
// between simulation ticks.
type Events interface {
	HandleItemUse(fn func(p Player, item string))
	HandleChat(fn func(ev *ChatEvent))
}

// ChatEvent is delivered to chat handlers before the message reaches
// anyone else. A handler may suppress it, in which case the raw text is
// never broadcast.
type ChatEvent struct {
	Sender Player
	Text   string

	suppressed bool
}

// Suppress stops the message from being broadcast.
func (ev *ChatEvent) Suppress() { ev.suppressed = true }

// Suppressed reports whether any handler suppressed the message.
func (ev *ChatEvent) Suppressed() bool { return ev.suppressed }
