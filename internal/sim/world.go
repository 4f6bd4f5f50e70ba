// Package sim is an in-memory implementation of the host contracts: a
// shared world with a tick loop, chat, held items and forms. It backs
// both the SSH server and the addon's tests.
//
// Everything host-visible runs on a single script goroutine: event
// handlers, form responses and NextTick funcs all execute inside Tick.
// Code on other goroutines (SSH sessions, tests) never calls into addon
// territory directly; it enqueues work for the next tick instead.
package sim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"formwarp/internal/host"
)

// World owns the player set and the tick queue.
type World struct {
	logger *log.Logger
	spawn  host.Vec3

	// Handler registration happens during initialization, before the
	// tick loop starts; the slices are read-only afterwards.
	itemUseHandlers []func(p host.Player, item string)
	chatHandlers    []func(ev *host.ChatEvent)

	mu      sync.Mutex
	players []*Player
	queue   []func()
}

// New creates an empty world.
func New(logger *log.Logger) *World {
	return &World{
		logger: logger,
		spawn:  host.Vec3{X: 0, Y: 64, Z: 0},
	}
}

// Spawn returns the world spawn point, where new and killed players land.
func (w *World) Spawn() host.Vec3 {
	return w.spawn
}

// HandleItemUse registers an item-use handler.
func (w *World) HandleItemUse(fn func(p host.Player, item string)) {
	w.itemUseHandlers = append(w.itemUseHandlers, fn)
}

// HandleChat registers a chat handler.
func (w *World) HandleChat(fn func(ev *host.ChatEvent)) {
	w.chatHandlers = append(w.chatHandlers, fn)
}

// NextTick schedules fn to run on the next tick boundary. Safe to call
// from any goroutine, including from inside a tick: funcs queued while a
// tick runs wait for the following one.
func (w *World) NextTick(fn func()) {
	w.mu.Lock()
	w.queue = append(w.queue, fn)
	w.mu.Unlock()
}

// Tick runs everything queued for this tick boundary, in FIFO order.
// Tests drive the world with Tick directly; the server uses Run.
func (w *World) Tick() {
	w.mu.Lock()
	queue := w.queue
	w.queue = nil
	w.mu.Unlock()

	for _, fn := range queue {
		fn()
	}
}

// Run ticks the world at the given interval until ctx is done. The
// goroutine calling Run is the script goroutine.
func (w *World) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Tick()
		}
	}
}

// Players returns a snapshot of every connected player.
func (w *World) Players() []host.Player {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]host.Player, len(w.players))
	for i, p := range w.players {
		out[i] = p
	}
	return out
}

// Join creates a player and adds it to the world on the next tick. The
// player's event channel is live immediately, so front ends can start
// listening before the join lands.
func (w *World) Join(name string) *Player {
	p := newPlayer(w, name)
	w.NextTick(func() {
		w.mu.Lock()
		w.players = append(w.players, p)
		w.mu.Unlock()

		w.broadcast(PlayerEvent{Kind: EventChat, Text: p.name + " joined"})
		w.logger.Info("player joined", "name", p.name, "id", p.id)
	})
	return p
}

// Leave removes the player on the next tick. Any form still open for the
// player resolves as closed. Safe to call more than once.
func (w *World) Leave(p *Player) {
	w.NextTick(func() {
		w.mu.Lock()
		found := false
		for i, q := range w.players {
			if q == p {
				w.players = append(w.players[:i], w.players[i+1:]...)
				found = true
				break
			}
		}
		w.mu.Unlock()
		if !found {
			return
		}

		p.disconnect()
		w.broadcast(PlayerEvent{Kind: EventChat, Text: p.name + " left"})
		w.logger.Info("player left", "name", p.name, "id", p.id)
	})
}

// playerChat runs the chat pipeline on the script goroutine: handlers
// first, broadcast only if nobody suppressed the message.
func (w *World) playerChat(p *Player, text string) {
	ev := &host.ChatEvent{Sender: p, Text: text}
	for _, h := range w.chatHandlers {
		h(ev)
	}
	if ev.Suppressed() {
		return
	}
	w.broadcast(PlayerEvent{Kind: EventChat, Text: fmt.Sprintf("<%s> %s", p.name, text)})
}

func (w *World) broadcast(ev PlayerEvent) {
	for _, p := range w.snapshot() {
		p.push(ev)
	}
}

func (w *World) snapshot() []*Player {
	w.mu.Lock()
	defer w.mu.Unlock()
	players := make([]*Player, len(w.players))
	copy(players, w.players)
	return players
}
