package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"formwarp/internal/host"
)

// formModel is the client-side state of one displayed form. Exactly one
// of menu, message and modal is set.
type formModel struct {
	menu    *host.MenuForm
	message *host.MessageForm
	modal   *host.ModalForm

	cursor int
	fields []fieldState // parallel to modal.Fields
}

// fieldState holds the editable value of one modal field. Which member
// is live depends on the field's kind.
type fieldState struct {
	text  textinput.Model
	index int
	value int
	on    bool
}

func newFormModel(f host.Form) *formModel {
	fm := &formModel{}
	switch f := f.(type) {
	case host.MenuForm:
		fm.menu = &f
	case host.MessageForm:
		fm.message = &f
	case host.ModalForm:
		fm.modal = &f
		fm.fields = make([]fieldState, len(f.Fields))
		for i, fld := range f.Fields {
			st := fieldState{index: fld.Index, value: fld.Value, on: fld.On}
			if fld.Kind == host.FieldText {
				ti := textinput.New()
				ti.CharLimit = 100
				ti.Width = 30
				ti.SetValue(fld.Default)
				st.text = ti
			}
			fm.fields[i] = st
		}
		fm.setCursor(0)
	}
	return fm
}

// optionCount is how many positions the cursor can take: buttons for menu
// and message forms, fields plus the submit button for modal forms.
func (fm *formModel) optionCount() int {
	switch {
	case fm.menu != nil:
		return len(fm.menu.Buttons)
	case fm.message != nil:
		return 2
	default:
		return len(fm.modal.Fields) + 1
	}
}

func (fm *formModel) setCursor(c int) {
	fm.cursor = c
	if fm.modal == nil {
		return
	}
	for i := range fm.fields {
		if fm.modal.Fields[i].Kind != host.FieldText {
			continue
		}
		if i == c {
			fm.fields[i].text.Focus()
		} else {
			fm.fields[i].text.Blur()
		}
	}
}

// values collects the modal field values in declaration order: string
// for text, int for dropdown and slider, bool for toggle.
func (fm *formModel) values() []any {
	out := make([]any, len(fm.modal.Fields))
	for i, fld := range fm.modal.Fields {
		st := fm.fields[i]
		switch fld.Kind {
		case host.FieldText:
			out[i] = st.text.Value()
		case host.FieldDropdown:
			out[i] = st.index
		case host.FieldSlider:
			out[i] = st.value
		case host.FieldToggle:
			out[i] = st.on
		}
	}
	return out
}

// formOutcome is what a key did to the form: nothing yet, dismissed it,
// or submitted it (button forms report the cursor, modal forms their
// field values).
type formOutcome int

const (
	formOpen formOutcome = iota
	formClosed
	formSubmittedButton
	formSubmittedFields
)

func (fm *formModel) update(msg tea.KeyMsg) (formOutcome, tea.Cmd) {
	key := msg.String()

	if key == "esc" {
		return formClosed, nil
	}

	if fm.modal == nil {
		switch key {
		case "up", "k":
			if fm.cursor > 0 {
				fm.cursor--
			}
		case "down", "j":
			if fm.cursor < fm.optionCount()-1 {
				fm.cursor++
			}
		case "enter":
			return formSubmittedButton, nil
		}
		return formOpen, nil
	}

	submitIdx := len(fm.modal.Fields)
	switch key {
	case "up", "shift+tab":
		if fm.cursor > 0 {
			fm.setCursor(fm.cursor - 1)
		}
		return formOpen, nil
	case "down", "tab":
		if fm.cursor < submitIdx {
			fm.setCursor(fm.cursor + 1)
		}
		return formOpen, nil
	case "enter":
		if fm.cursor == submitIdx {
			return formSubmittedFields, nil
		}
		fm.setCursor(fm.cursor + 1)
		return formOpen, nil
	}

	if fm.cursor < submitIdx {
		fld := fm.modal.Fields[fm.cursor]
		st := &fm.fields[fm.cursor]
		switch fld.Kind {
		case host.FieldText:
			var cmd tea.Cmd
			st.text, cmd = st.text.Update(msg)
			return formOpen, cmd
		case host.FieldDropdown:
			switch key {
			case "left":
				if st.index > 0 {
					st.index--
				}
			case "right":
				if st.index < len(fld.Options)-1 {
					st.index++
				}
			}
		case host.FieldSlider:
			switch key {
			case "left":
				if st.value > fld.Min {
					st.value--
				}
			case "right":
				if st.value < fld.Max {
					st.value++
				}
			}
		case host.FieldToggle:
			switch key {
			case "left", "right", " ":
				st.on = !st.on
			}
		}
	}
	return formOpen, nil
}
