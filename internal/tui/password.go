package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/phantomid/internal/store"
)

// passwordModel prompts for the master password that unlocks the store.
type passwordModel struct {
	input      textinput.Model
	firstRun   bool
	confirming bool
	firstPass  string
	errMsg     string
	attempts   int
}

// passwordSubmitMsg carries a password ready to open the store.
type passwordSubmitMsg struct {
	password string
}

// passwordErrMsg reports a failed unlock.
type passwordErrMsg struct {
	err error
}

func newPasswordModel(firstRun bool) passwordModel {
	ti := textinput.New()
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 40

	return passwordModel{
		input:    ti,
		firstRun: firstRun,
	}
}

func (m passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m passwordModel) Update(msg tea.Msg) (passwordModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m.handleSubmit()
		}

	case passwordErrMsg:
		m.attempts++
		m.errMsg = unlockError(msg.err)
		m.input.SetValue("")
		m.confirming = false
		m.firstPass = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func unlockError(err error) string {
	if errors.Is(err, store.ErrWrongPassword) {
		return "wrong password"
	}
	return err.Error()
}

func (m passwordModel) handleSubmit() (passwordModel, tea.Cmd) {
	val := m.input.Value()
	if val == "" {
		return m, nil
	}

	if m.firstRun && !m.confirming {
		m.firstPass = val
		m.confirming = true
		m.input.SetValue("")
		m.errMsg = ""
		return m, nil
	}

	if m.firstRun && val != m.firstPass {
		m.errMsg = "passwords do not match"
		m.confirming = false
		m.firstPass = ""
		m.input.SetValue("")
		return m, nil
	}

	m.errMsg = ""
	m.firstPass = ""
	return m, func() tea.Msg {
		return passwordSubmitMsg{password: val}
	}
}

func (m passwordModel) prompt() string {
	switch {
	case m.firstRun && m.confirming:
		return "confirm password:"
	case m.firstRun:
		return "create master password:"
	}
	return "master password:"
}

func (m passwordModel) View() string {
	indent := lipgloss.NewStyle().MarginLeft(2)
	logo := indent.Render(
		zstyle.StyledLogo(lipgloss.NewStyle().Foreground(zstyle.ZburnAccent)),
	)
	toolName := indent.Render(zstyle.MutedText.Render("phantomid"))

	s := fmt.Sprintf("\n%s\n%s\n\n  %s\n  %s\n", logo, toolName, m.prompt(), m.input.View())

	if m.errMsg != "" {
		msg := m.errMsg
		if m.attempts > 1 {
			msg = fmt.Sprintf("%s (attempt %d)", msg, m.attempts)
		}
		s += "\n  " + zstyle.StatusErr.Render(msg)
	}

	s += "\n"
	return s
}
