package addon

import (
	"fmt"
	"strings"

	"formwarp/internal/host"
)

// Screen builders. Pure: every call returns a fresh description, nothing
// survives a display cycle.

func mainMenu() host.MenuForm {
	return host.MenuForm{
		Title:   "Main Menu",
		Body:    "Choose an option",
		Buttons: []string{"Warp menu", "Kill all players"},
	}
}

func warpMenu() host.MenuForm {
	return host.MenuForm{
		Title:   "Warp Menu",
		Body:    "Where to?",
		Buttons: []string{"Spawn plaza", "Random location", "Back"},
	}
}

func confirmForm() host.MessageForm {
	return host.MessageForm{
		Title: "Confirm",
		Body:  "Open the warp menu, or kill every player?",
		Yes:   "Warp menu",
		No:    "Kill everyone",
	}
}

func modalForm() host.ModalForm {
	return host.ModalForm{
		Title: "Survey",
		Fields: []host.Field{
			{Kind: host.FieldText, Label: "Name", Default: "Steve"},
			{Kind: host.FieldDropdown, Label: "Favorite color", Options: []string{"Red", "Green", "Blue", "Purple"}},
			{Kind: host.FieldSlider, Label: "Difficulty", Min: 0, Max: 10, Value: 5},
			{Kind: host.FieldToggle, Label: "Subscribe", On: true},
		},
		Submit: "Submit",
	}
}

// Open displays screen s to p. The outcome is handled whenever the host
// delivers it; a busy host re-queues the identical screen for the next
// tick, indefinitely, and any other cancellation ends the cycle with no
// side effects.
func (a *Addon) Open(s Screen, p host.Player) {
	p.ShowForm(a.build(s), func(r host.Response) {
		if r.Closed {
			if r.Reason == host.ReasonBusy {
				a.world.NextTick(func() { a.Open(s, p) })
			}
			return
		}
		a.dispatch(s, p, r)
	})
}

func (a *Addon) build(s Screen) host.Form {
	switch s {
	case ScreenWarp:
		return warpMenu()
	case ScreenConfirm:
		return confirmForm()
	case ScreenModal:
		return modalForm()
	default:
		return mainMenu()
	}
}

func (a *Addon) dispatch(s Screen, p host.Player, r host.Response) {
	switch s {
	case ScreenMain:
		switch r.Button {
		case 0:
			a.Open(ScreenWarp, p)
		case 1:
			a.killAll()
		}
	case ScreenWarp:
		switch r.Button {
		case 0:
			p.Teleport(a.cfg.WarpPos, a.cfg.WarpRot)
		case 1:
			p.Teleport(a.randomPos(), host.Rotation{})
		default:
			// Back, and any index the menu never offered, both land here.
			a.Open(ScreenMain, p)
		}
	case ScreenConfirm:
		switch r.Button {
		case 0:
			a.Open(ScreenWarp, p)
		case 1:
			a.killAll()
		}
	case ScreenModal:
		p.Message(formatModalResult(r.Fields))
	}
}

// killAll reads the player list fresh at the moment of use, inviting
// actor included.
func (a *Addon) killAll() {
	for _, p := range a.world.Players() {
		p.Kill()
	}
}

func (a *Addon) randomPos() host.Vec3 {
	n := a.cfg.RandomRange
	return host.Vec3{
		X: float64(a.rng.Intn(n)),
		Y: float64(a.rng.Intn(n)),
		Z: float64(a.rng.Intn(n)),
	}
}

func formatModalResult(fields []any) string {
	parts := make([]string, len(fields))
	for i, v := range fields {
		parts[i] = fmt.Sprint(v)
	}
	return "Form results: " + strings.Join(parts, ", ")
}
