package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"formwarp/internal/host"
)

func (m *Model) viewChat() string {
	pos, _ := m.player.Position()
	header := m.styles.headerStyle.Width(m.width).Render(
		fmt.Sprintf("formwarp  •  %s  •  (%.0f, %.0f, %.0f)", m.player.Name(), pos.X, pos.Y, pos.Z),
	)

	logHeight := m.height - 5
	if logHeight < 1 {
		logHeight = 1
	}
	lines := m.lines
	if len(lines) > logHeight {
		lines = lines[len(lines)-logHeight:]
	}
	log := m.styles.textStyle.
		Width(m.width).
		Height(logHeight).
		Render(strings.Join(lines, "\n"))

	input := m.styles.inputBox.Width(m.width - 2).Render(m.input.View())
	help := m.styles.dimStyle.Render("enter send • ctrl+t use held item • esc quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, log, input, help)
}

func (m *Model) viewForm() string {
	fm := m.form
	var content string
	switch {
	case fm.menu != nil:
		content = m.renderButtons(fm.menu.Title, fm.menu.Body, fm.menu.Buttons, fm.cursor)
	case fm.message != nil:
		content = m.renderButtons(fm.message.Title, fm.message.Body,
			[]string{fm.message.Yes, fm.message.No}, fm.cursor)
	default:
		content = m.renderModal()
	}

	box := m.styles.formBoxStyle.Render(content)
	help := m.styles.helpStyle.Render("↑/↓ move • enter select • esc close")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, box, help))
}

func (m *Model) renderButtons(title, body string, buttons []string, cursor int) string {
	parts := []string{
		m.styles.titleStyle.Render(title),
		m.styles.textStyle.Render(body),
	}
	for i, label := range buttons {
		if i == cursor {
			parts = append(parts, m.styles.buttonActive.Render(label))
		} else {
			parts = append(parts, m.styles.buttonStyle.Render(label))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m *Model) renderModal() string {
	fm := m.form
	parts := []string{m.styles.titleStyle.Render(fm.modal.Title), ""}

	for i, fld := range fm.modal.Fields {
		st := fm.fields[i]
		var control string
		switch fld.Kind {
		case host.FieldText:
			control = st.text.View()
		case host.FieldDropdown:
			control = fmt.Sprintf("◂ %s ▸", fld.Options[st.index])
		case host.FieldSlider:
			control = fmt.Sprintf("◂ %d ▸  (%d–%d)", st.value, fld.Min, fld.Max)
		case host.FieldToggle:
			if st.on {
				control = "[on]"
			} else {
				control = "[off]"
			}
		}

		var label string
		if i == fm.cursor {
			label = m.styles.accentStyle.Render("▸ " + fld.Label + ": ")
		} else {
			label = m.styles.textStyle.Render("  " + fld.Label + ": ")
		}
		parts = append(parts, label+control)
	}

	submit := fm.modal.Submit
	if fm.cursor == len(fm.modal.Fields) {
		parts = append(parts, m.styles.buttonActive.Render(submit))
	} else {
		parts = append(parts, m.styles.buttonStyle.Render(submit))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
