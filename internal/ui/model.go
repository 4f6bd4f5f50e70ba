package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"formwarp/internal/sim"
)

// maxLogLines caps the chat scrollback kept per client.
const maxLogLines = 200

// Model is one connected client: a chat log with an input line, plus a
// form overlay whenever the world pushes one.
type Model struct {
	width  int
	height int

	player *sim.Player
	input  textinput.Model
	lines  []string
	form   *formModel

	renderer *lipgloss.Renderer
	styles   *Styles
}

// New creates the session model for a player already joined to a world.
func New(renderer *lipgloss.Renderer, player *sim.Player) *Model {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 60
	ti.Placeholder = "Chat, or a . command"
	ti.Focus()

	return &Model{
		player:   player,
		input:    ti,
		renderer: renderer,
		styles:   NewStyles(renderer),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listenForWorldEvents())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.width - 8
		return m, nil

	case worldEventMsg:
		m.handleWorldEvent(msg.Event)
		return m, m.listenForWorldEvents()

	case disconnectMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleWorldEvent(ev sim.PlayerEvent) {
	switch ev.Kind {
	case sim.EventChat:
		m.addLine(ev.Text)
	case sim.EventForm:
		m.form = newFormModel(ev.Form)
	case sim.EventTeleport:
		m.addLine(m.styles.accentStyle.Render(
			fmt.Sprintf("Teleported to (%.0f, %.0f, %.0f)", ev.Pos.X, ev.Pos.Y, ev.Pos.Z)))
	case sim.EventDeath:
		m.addLine(m.styles.deathStyle.Render("You died. Respawned at spawn."))
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		return m.handleFormKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "esc":
		m.player.Leave()
		return m, tea.Quit
	case "ctrl+t":
		m.player.UseHeldItem()
		return m, nil
	case "enter":
		text := m.input.Value()
		if text != "" {
			m.player.Chat(text)
			m.input.Reset()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fm := m.form
	outcome, cmd := fm.update(msg)
	switch outcome {
	case formClosed:
		m.form = nil
		m.player.CloseForm()
	case formSubmittedButton:
		m.form = nil
		m.player.SubmitButton(fm.cursor)
	case formSubmittedFields:
		m.form = nil
		m.player.SubmitFields(fm.values())
	}
	return m, cmd
}

func (m *Model) addLine(text string) {
	m.lines = append(m.lines, text)
	if len(m.lines) > maxLogLines {
		m.lines = m.lines[len(m.lines)-maxLogLines:]
	}
}

// listenForWorldEvents pumps the player's event channel into tea messages.
func (m *Model) listenForWorldEvents() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.player.Events()
		if !ok {
			return disconnectMsg{}
		}
		return worldEventMsg{Event: ev}
	}
}

func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.form != nil {
		return m.viewForm()
	}
	return m.viewChat()
}
