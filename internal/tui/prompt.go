package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const secretCharLimit = 1024

// promptModel asks for one line of input. With secret set the typed
// characters are echoed as '*'.
type promptModel struct {
	prompt     string
	input      textinput.Model
	done       bool
	quitByUser bool
}

func newPromptModel(prompt string, secret bool) promptModel {
	in := textinput.New()
	in.Prompt = ""
	in.Width = 40
	in.CharLimit = secretCharLimit
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	in.Focus()

	return promptModel{prompt: prompt, input: in}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit), key.Matches(keyMsg, keys.esc):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View clears the prompt once it is answered so the secret mask does not
// stay on screen.
func (m promptModel) View() string {
	if m.done || m.quitByUser {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.prompt))
	b.WriteString(" ")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: confirm │ esc: cancel"))
	return b.String()
}
