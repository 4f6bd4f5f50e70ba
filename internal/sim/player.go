package sim

import (
	"sync"

	"github.com/google/uuid"

	"formwarp/internal/host"
)

// eventBuffer is the per-player event channel capacity. Events are
// dropped, not blocked on, when a client stalls.
const eventBuffer = 16

type pendingForm struct {
	respond func(host.Response)
}

// Player is one connected player. It implements host.Player; the
// remaining methods are the sim-side surface front ends drive.
type Player struct {
	id    string
	name  string
	world *World

	events chan PlayerEvent

	mu      sync.Mutex
	pos     host.Vec3
	rot     host.Rotation
	held    string
	pending *pendingForm
	gone    bool
}

func newPlayer(w *World, name string) *Player {
	return &Player{
		id:     uuid.New().String(),
		name:   name,
		world:  w,
		events: make(chan PlayerEvent, eventBuffer),
		pos:    w.spawn,
	}
}

// ID returns the player's unique session ID. Names can collide; IDs
// cannot.
func (p *Player) ID() string { return p.id }

// Name implements host.Player.
func (p *Player) Name() string { return p.name }

// Events is the channel front ends receive on. It closes when the player
// leaves the world.
func (p *Player) Events() <-chan PlayerEvent { return p.events }

// Position returns the player's current position and rotation.
func (p *Player) Position() (host.Vec3, host.Rotation) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pos, p.rot
}

// SetHeldItem puts an item identifier in the player's hand.
func (p *Player) SetHeldItem(item string) {
	p.mu.Lock()
	p.held = item
	p.mu.Unlock()
}

// HeldItem returns the held item identifier.
func (p *Player) HeldItem() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.held
}

// Message implements host.Player.
func (p *Player) Message(text string) {
	p.push(PlayerEvent{Kind: EventChat, Text: text})
}

// Teleport implements host.Player.
func (p *Player) Teleport(pos host.Vec3, rot host.Rotation) {
	p.mu.Lock()
	p.pos, p.rot = pos, rot
	p.mu.Unlock()
	p.push(PlayerEvent{Kind: EventTeleport, Pos: pos, Rot: rot})
}

// Kill implements host.Player. The player respawns at the world spawn.
func (p *Player) Kill() {
	spawn := p.world.spawn
	p.mu.Lock()
	p.pos, p.rot = spawn, host.Rotation{}
	p.mu.Unlock()
	p.push(PlayerEvent{Kind: EventDeath, Pos: spawn})
	p.world.broadcast(PlayerEvent{Kind: EventChat, Text: p.name + " died"})
}

// ShowForm implements host.Player. At most one form can be open per
// player: a second request while one is pending is answered busy on the
// next tick. A request for a player who already left resolves as closed,
// so retry loops terminate.
func (p *Player) ShowForm(f host.Form, respond func(host.Response)) {
	p.mu.Lock()
	if p.gone {
		p.mu.Unlock()
		p.world.NextTick(func() {
			respond(host.Response{Closed: true, Reason: host.ReasonClosed})
		})
		return
	}
	if p.pending != nil {
		p.mu.Unlock()
		p.world.NextTick(func() {
			respond(host.Response{Closed: true, Reason: host.ReasonBusy})
		})
		return
	}
	p.pending = &pendingForm{respond: respond}
	p.mu.Unlock()

	p.push(PlayerEvent{Kind: EventForm, Form: f})
}

// Chat submits a chat line from this player. It runs through the chat
// pipeline on the next tick.
func (p *Player) Chat(text string) {
	p.world.NextTick(func() { p.world.playerChat(p, text) })
}

// UseHeldItem fires the item-use handlers with the held item, on the
// next tick.
func (p *Player) UseHeldItem() {
	p.world.NextTick(func() {
		item := p.HeldItem()
		for _, h := range p.world.itemUseHandlers {
			h(p, item)
		}
	})
}

// SubmitButton resolves the open form with the given button index.
func (p *Player) SubmitButton(i int) {
	p.world.NextTick(func() {
		if pf := p.takePending(); pf != nil {
			pf.respond(host.Response{Button: i})
		}
	})
}

// SubmitFields resolves the open modal form with the given values, in
// field declaration order.
func (p *Player) SubmitFields(values []any) {
	p.world.NextTick(func() {
		if pf := p.takePending(); pf != nil {
			pf.respond(host.Response{Fields: values})
		}
	})
}

// CloseForm resolves the open form as dismissed.
func (p *Player) CloseForm() {
	p.world.NextTick(func() {
		if pf := p.takePending(); pf != nil {
			pf.respond(host.Response{Closed: true, Reason: host.ReasonClosed})
		}
	})
}

// Leave removes the player from its world.
func (p *Player) Leave() {
	p.world.Leave(p)
}

// takePending clears the pending form before its respond runs, so the
// response handler can immediately open another form.
func (p *Player) takePending() *pendingForm {
	p.mu.Lock()
	defer p.mu.Unlock()
	pf := p.pending
	p.pending = nil
	return pf
}

// disconnect runs on the script goroutine when the player is removed.
func (p *Player) disconnect() {
	p.mu.Lock()
	pf := p.pending
	p.pending = nil
	p.gone = true
	close(p.events)
	p.mu.Unlock()

	if pf != nil {
		pf.respond(host.Response{Closed: true, Reason: host.ReasonClosed})
	}
}

func (p *Player) push(ev PlayerEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gone {
		return
	}
	select {
	case p.events <- ev:
	default:
		// Drop rather than block the script goroutine on a stalled client.
	}
}
