package addon

import (
	"io"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"formwarp/internal/host"
	"formwarp/internal/sim"
)

// newTestWorld builds a world with the named players joined, ticked in,
// and their event channels drained of join noise.
func newTestWorld(t *testing.T, names ...string) (*sim.World, []*sim.Player) {
	t.Helper()
	w := sim.New(log.New(io.Discard))
	players := make([]*sim.Player, len(names))
	for i, name := range names {
		players[i] = w.Join(name)
	}
	w.Tick()
	for _, p := range players {
		drainEvents(p)
	}
	return w, players
}

func drainEvents(p *sim.Player) []sim.PlayerEvent {
	var out []sim.PlayerEvent
	for {
		select {
		case ev := <-p.Events():
			out = append(out, ev)
		default:
			return out
		}
	}
}

// nextForm pops events until a form display shows up.
func nextForm(t *testing.T, p *sim.Player) host.Form {
	t.Helper()
	for _, ev := range drainEvents(p) {
		if ev.Kind == sim.EventForm {
			return ev.Form
		}
	}
	t.Fatal("no form was displayed")
	return nil
}

func hasKind(events []sim.PlayerEvent, kind sim.EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func formTitle(f host.Form) string {
	switch f := f.(type) {
	case host.MenuForm:
		return f.Title
	case host.MessageForm:
		return f.Title
	case host.ModalForm:
		return f.Title
	}
	return ""
}

func TestOpenMainMenu(t *testing.T) {
	w, ps := newTestWorld(t, "alice")
	a := New(w, DefaultConfig())

	a.Open(ScreenMain, ps[0])

	f := nextForm(t, ps[0])
	menu, ok := f.(host.MenuForm)
	if !ok {
		t.Fatalf("expected MenuForm, got %T", f)
	}
	if !reflect.DeepEqual(menu, mainMenu()) {
		t.Errorf("displayed menu %+v, want %+v", menu, mainMenu())
	}
}

func TestMainMenuOpensWarpMenu(t *testing.T) {
	w, ps := newTestWorld(t, "alice")
	p := ps[0]
	a := New(w, DefaultConfig())

	a.Open(ScreenMain, p)
	nextForm(t, p)
	p.SubmitButton(0)
	w.Tick()

	f := nextForm(t, p)
	if got := formTitle(f); got != warpMenu().Title {
		t.Errorf("after option 0 got screen %q, want %q", got, warpMenu().Title)
	}
}

func TestMainMenuKillAll(t *testing.T) {
	t.Run("many", func(t *testing.T) {
		w, ps := newTestWorld(t, "alice", "bob", "carol")
		a := New(w, DefaultConfig())

		a.Open(ScreenMain, ps[0])
		nextForm(t, ps[0])
		ps[0].SubmitButton(1)
		w.Tick()

		for _, p := range ps {
			if !hasKind(drainEvents(p), sim.EventDeath) {
				t.Errorf("player %s was not killed", p.Name())
			}
			if pos, _ := p.Position(); pos != w.Spawn() {
				t.Errorf("player %s at %+v, want spawn %+v", p.Name(), pos, w.Spawn())
			}
		}
	})

	t.Run("one", func(t *testing.T) {
		w, ps := newTestWorld(t, "alice")
		a := New(w, DefaultConfig())

		a.Open(ScreenMain, ps[0])
		nextForm(t, ps[0])
		ps[0].SubmitButton(1)
		w.Tick()

		if !hasKind(drainEvents(ps[0]), sim.EventDeath) {
			t.Error("inviting player must be killed too")
		}
	})

	t.Run("zero", func(t *testing.T) {
		// The controller kills the players of its own world; pointing it
		// at an empty world exercises the zero-player iteration.
		empty := sim.New(log.New(io.Discard))
		w, ps := newTestWorld(t, "alice")
		a := New(empty, DefaultConfig())

		a.Open(ScreenMain, ps[0])
		nextForm(t, ps[0])
		ps[0].SubmitButton(1)
		w.Tick()

		if hasKind(drainEvents(ps[0]), sim.EventDeath) {
			t.Error("nobody should die when the world is empty")
		}
	})
}

func TestWarpFixed(t *testing.T) {
	w, ps := newTestWorld(t, "alice")
	p := ps[0]
	cfg := DefaultConfig()
	a := New(w, cfg)

	a.Open(ScreenWarp, p)
	nextForm(t, p)
	p.SubmitButton(0)
	w.Tick()

	pos, rot := p.Position()
	if pos != cfg.WarpPos {
		t.Errorf("teleported to %+v, want %+v", pos, cfg.WarpPos)
	}
	if rot != cfg.WarpRot {
		t.Errorf("facing %+v, want %+v", rot, cfg.WarpRot)
	}
	if !hasKind(drainEvents(p), sim.EventTeleport) {
		t.Error("no teleport was reported to the player")
	}
}

func TestWarpRandomInRange(t *testing.T) {
	w, ps := newTestWorld(t, "alice")
	p := ps[0]
	cfg := DefaultConfig()
	a := New(w, cfg)

	for i := 0; i < 25; i++ {
		a.Open(ScreenWarp, p)
		nextForm(t, p)
		p.SubmitButton(1)
		w.Tick()

		pos, _ := p.Position()
		for axis, v := range map[string]float64{"x": pos.X, "y": pos.Y, "z": pos.Z} {
			if v < 0 || v >= float64(cfg.RandomRange) {
				t.Fatalf("random warp %s=%v outside [0, %d)", axis, v, cfg.RandomRange)
			}
			if v != float64(int(v)) {
				t.Fatalf("random warp %s=%v is not an integer", axis, v)
			}
		}
	}
}

func TestWarpFallbackReturnsToMain(t *testing.T) {
	// The explicit Back button and an index the menu never offered take
	// the same path.
	for _, button := range []int{2, 7} {
		w, ps := newTestWorld(t, "alice")
		p := ps[0]
		a := New(w, DefaultConfig())

		a.Open(ScreenWarp, p)
		nextForm(t, p)
		p.SubmitButton(button)
		w.Tick()

		f := nextForm(t, p)
		if got := formTitle(f); got != mainMenu().Title {
			t.Errorf("button %d: got screen %q, want %q", button, got, mainMenu().Title)
		}
		if pos, _ := p.Position(); pos != w.Spawn() {
			t.Errorf("button %d: player moved to %+v", button, pos)
		}
	}
}

func TestConfirmChoices(t *testing.T) {
	t.Run("warp menu", func(t *testing.T) {
		w, ps := newTestWorld(t, "alice")
		p := ps[0]
		a := New(w, DefaultConfig())

		a.Open(ScreenConfirm, p)
		if _, ok := nextForm(t, p).(host.MessageForm); !ok {
			t.Fatal("confirm screen must be a message form")
		}
		p.SubmitButton(0)
		w.Tick()

		if got := formTitle(nextForm(t, p)); got != warpMenu().Title {
			t.Errorf("choice 0 opened %q, want %q", got, warpMenu().Title)
		}
	})

	t.Run("kill all", func(t *testing.T) {
		w, ps := newTestWorld(t, "alice", "bob")
		p := ps[0]
		a := New(w, DefaultConfig())

		a.Open(ScreenConfirm, p)
		nextForm(t, p)
		p.SubmitButton(1)
		w.Tick()

		for _, q := range ps {
			if !hasKind(drainEvents(q), sim.EventDeath) {
				t.Errorf("player %s survived", q.Name())
			}
		}
	})
}

func TestModalEcho(t *testing.T) {
	w, ps := newTestWorld(t, "alice")
	p := ps[0]
	a := New(w, DefaultConfig())

	a.Open(ScreenModal, p)
	if _, ok := nextForm(t, p).(host.ModalForm); !ok {
		t.Fatal("modal screen must be a modal form")
	}
	p.SubmitFields([]any{"Alice", 2, 7, false})
	w.Tick()

	want := "Form results: Alice, 2, 7, false"
	found := false
	for _, ev := range drainEvents(p) {
		if ev.Kind == sim.EventChat && ev.Text == want {
			found = true
		}
	}
	if !found {
		t.Errorf("player never received %q", want)
	}
}

func TestBusyRedisplay(t *testing.T) {
	w, ps := newTestWorld(t, "alice")
	p := ps[0]
	a := New(w, DefaultConfig())

	a.Open(ScreenWarp, p)
	first := nextForm(t, p)

	// Second display request while the first form is still open: the
	// host answers busy and the controller must keep retrying.
	a.Open(ScreenWarp, p)
	w.Tick() // busy response, retry queued
	w.Tick() // retry runs, busy again

	if evs := drainEvents(p); hasKind(evs, sim.EventForm) ||
		hasKind(evs, sim.EventTeleport) || hasKind(evs, sim.EventDeath) {
		t.Fatal("busy retries must not display forms or run side effects")
	}

	// Dismissing the first form frees the slot; the retry loop must then
	// re-display the identical screen.
	p.CloseForm()
	w.Tick()
	w.Tick()

	second := nextForm(t, p)
	if !reflect.DeepEqual(second, first) {
		t.Errorf("redisplayed %+v, want the identical screen %+v", second, first)
	}
}

func TestCloseIsTerminal(t *testing.T) {
	w, ps := newTestWorld(t, "alice")
	p := ps[0]
	a := New(w, DefaultConfig())

	a.Open(ScreenMain, p)
	nextForm(t, p)
	p.CloseForm()
	w.Tick()
	w.Tick()

	if evs := drainEvents(p); hasKind(evs, sim.EventForm) ||
		hasKind(evs, sim.EventTeleport) || hasKind(evs, sim.EventDeath) {
		t.Error("dismissing a form must end the cycle with no side effects")
	}
}
