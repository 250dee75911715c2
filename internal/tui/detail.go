package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/phantomid/internal/profile"
)

// detailModel displays all fields of a saved profile.
type detailModel struct {
	profile    profile.Profile
	fields     []profileField
	cursor     int
	flash      string
	confirming bool
}

func newDetailModel(p profile.Profile) detailModel {
	return detailModel{profile: p, fields: profileFields(p)}
}

func (m detailModel) Init() tea.Cmd {
	return nil
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m detailModel) handleKey(msg tea.KeyMsg) (detailModel, tea.Cmd) {
	if m.confirming {
		m.confirming = false
		m.flash = ""
		if msg.String() == "y" {
			id := m.profile.ID
			return m, func() tea.Msg { return deleteProfileMsg{id: id} }
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewList} }
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		m.flash = copyFlash(m.fields[m.cursor].value, "copied!")
		return m, clearFlashAfter()
	}

	switch msg.String() {
	case "c":
		m.flash = copyFlash(fieldsText(m.fields), "copied all!")
		return m, clearFlashAfter()

	case "d":
		m.confirming = true
		m.flash = "delete this profile? y to confirm"
		return m, nil
	}

	return m, nil
}

func (m detailModel) View() string {
	name := zstyle.Subtitle.Render(m.profile.Identity.FullName)
	created := zstyle.MutedText.Render("saved " + m.profile.CreatedAt.Format("2006-01-02 15:04"))
	s := fmt.Sprintf("\n  %s  %s\n\n", name, created)

	s += renderFields(m.fields, m.cursor)
	s += "\n"

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
