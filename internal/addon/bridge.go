package addon

import (
	"strings"

	"formwarp/internal/host"
)

// Event bridge: converts qualifying host events into menu controller
// calls. Anything that doesn't qualify is ignored without side effects.

func (a *Addon) onItemUse(p host.Player, item string) {
	if item != a.cfg.TriggerItem {
		return
	}
	a.Open(ScreenMain, p)
}

func (a *Addon) onChat(ev *host.ChatEvent) {
	if !strings.HasPrefix(ev.Text, a.cfg.CommandPrefix) {
		return
	}
	// Prefixed messages never reach chat, recognized command or not.
	ev.Suppress()

	rest := strings.TrimPrefix(ev.Text, a.cfg.CommandPrefix)
	token := strings.Split(rest, a.cfg.CommandPrefix)[0]

	cmd, ok := commands[token]
	if !ok {
		return
	}

	p := ev.Sender
	p.Message(cmd.ack)
	// The host restricts opening forms from inside a chat handler, so the
	// open runs on the next tick.
	a.world.NextTick(func() { a.Open(cmd.screen, p) })
}
