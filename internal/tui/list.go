package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/phantomid/internal/profile"
)

// listModel displays saved profiles, newest first.
type listModel struct {
	profiles []profile.Profile
	cursor   int
	flash    string
	// confirming is set after the first d press
	confirming bool
}

// deleteProfileMsg requests deletion of a saved profile.
type deleteProfileMsg struct {
	id string
}

// viewProfileMsg opens a profile in the detail view.
type viewProfileMsg struct {
	profile profile.Profile
}

func newListModel(ps []profile.Profile) listModel {
	return listModel{profiles: ps}
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m listModel) handleKey(msg tea.KeyMsg) (listModel, tea.Cmd) {
	if m.confirming {
		m.confirming = false
		if msg.String() == "y" {
			id := m.profiles[m.cursor].ID
			return m, func() tea.Msg { return deleteProfileMsg{id: id} }
		}
		m.flash = ""
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if len(m.profiles) == 0 {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.profiles)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		p := m.profiles[m.cursor]
		return m, func() tea.Msg { return viewProfileMsg{profile: p} }
	}

	if msg.String() == "d" {
		m.confirming = true
		m.flash = fmt.Sprintf("delete %s? y to confirm", m.profiles[m.cursor].ID)
		return m, nil
	}

	return m, nil
}

func (m listModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(zstyle.ZburnAccent).Bold(true)

	s := "\n"

	if len(m.profiles) == 0 {
		s += "  " + zstyle.MutedText.Render("no saved profiles") + "\n"
		s += "\n"
		if m.flash != "" {
			s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
		} else {
			s += "\n"
		}
		return s
	}

	for i, p := range m.profiles {
		line := fmt.Sprintf("%-8s %-20s %-30s %s",
			p.ID,
			truncate(p.Identity.FullName, 20),
			truncate(p.Identity.Email, 30),
			zstyle.MutedText.Render(string(p.Fingerprint.DeviceType)),
		)

		if i == m.cursor {
			s += "  " + accentStyle.Render("▸") + " " + line + "\n"
		} else {
			s += "    " + line + "\n"
		}
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	switch {
	case m.confirming:
		s += "  " + zstyle.StatusWarn.Render(m.flash) + "\n"
	case m.flash != "":
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	default:
		s += "\n"
	}

	return s
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
