package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	savePromptLabel = "Save changes? (y/n): "
	maxPromptAnswer = 15
)

// savePrompt is the save-on-quit question shown on the bottom line.
type savePrompt struct {
	active bool
	answer string
}

func (m Model) updatePrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.prompt = savePrompt{}
		m.message = ""
	case tea.KeyBackspace:
		if a := m.prompt.answer; a != "" {
			m.prompt.answer = a[:len(a)-1]
		}
	case tea.KeyEnter:
		return m.answerPrompt()
	case tea.KeyRunes, tea.KeySpace:
		for _, r := range msg.Runes {
			if r < 0x20 || r >= 0x7f || len(m.prompt.answer) >= maxPromptAnswer {
				continue
			}
			m.prompt.answer += string(r)
		}
	}
	return m, nil
}

// answerPrompt applies the typed answer: yes saves then quits, no quits
// without saving, anything else clears the answer and asks again.
func (m Model) answerPrompt() (Model, tea.Cmd) {
	switch strings.ToLower(m.prompt.answer) {
	case "y", "yes":
		m.prompt = savePrompt{}
		if err := m.save(); err != nil {
			m.report(err)
			return m, nil
		}
		return m, quit
	case "n", "no":
		m.prompt = savePrompt{}
		return m, quit
	default:
		m.prompt.answer = ""
		return m, nil
	}
}

func (m Model) renderPrompt() string {
	text := savePromptLabel + m.prompt.answer
	return m.cfg.Style.Prompt.Render(text) + m.cfg.Style.Cursor.Render(" ")
}
