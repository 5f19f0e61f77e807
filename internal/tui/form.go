package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type fieldSpec struct {
	label       string
	placeholder string
	secret      bool
	limit       int
}

type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(specs ...fieldSpec) *form {
	f := &form{}
	for _, spec := range specs {
		input := textinput.New()
		input.Placeholder = spec.placeholder
		input.CharLimit = spec.limit
		input.Width = 40
		if spec.secret {
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '•'
		}
		f.labels = append(f.labels, spec.label)
		f.inputs = append(f.inputs, input)
	}
	return f
}

// reset clears every field and focuses the first one.
func (f *form) reset() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	return f.focusOn(0)
}

func (f *form) focusOn(index int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.focus = (index + len(f.inputs)) % len(f.inputs)
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == f.focus {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

func (f *form) value(index int) string {
	return f.inputs[index].Value()
}

func (f *form) set(index int, value string) {
	f.inputs[index].SetValue(value)
}

func (f *form) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return f.focusOn(f.focus + 1)
		case "shift+tab", "up":
			return f.focusOn(f.focus - 1)
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) View() string {
	var b strings.Builder
	for i := range f.inputs {
		b.WriteString(labelStyle.Render(f.labels[i]))
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	return b.String()
}
