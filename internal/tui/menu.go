package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
)

type menuChoice int

const (
	menuGenerate menuChoice = iota
	menuBrowse
	menuSettings
	menuQuit
)

var menuItems = []string{
	"Generate profile",
	"Browse saved profiles",
	"Settings",
	"Quit",
}

type menuModel struct {
	cursor       int
	version      string
	profileCount int
	flash        string
}

// navigateMsg tells the root model to switch views.
type navigateMsg struct {
	view viewID
}

// flashMsg clears a view's flash line.
type flashMsg struct{}

func newMenuModel(version string) menuModel {
	return menuModel{version: version}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (menuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, zstyle.KeyQuit) {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyUp) {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyDown) {
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m, m.selectItem()
		}

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m menuModel) selectItem() tea.Cmd {
	switch menuChoice(m.cursor) {
	case menuGenerate:
		return func() tea.Msg { return navigateMsg{view: viewGenerate} }
	case menuBrowse:
		return func() tea.Msg { return navigateMsg{view: viewList} }
	case menuSettings:
		return func() tea.Msg { return navigateMsg{view: viewSettings} }
	case menuQuit:
		return tea.Quit
	}
	return nil
}

func (m menuModel) View() string {
	title := zstyle.Title.Render("phantomid")
	ver := zstyle.MutedText.Render(m.version)

	s := fmt.Sprintf("\n  %s %s\n\n", title, ver)

	for i, item := range menuItems {
		if menuChoice(i) == menuBrowse && m.profileCount > 0 {
			item += zstyle.MutedText.Render(fmt.Sprintf(" (%d)", m.profileCount))
		}
		if m.cursor == i {
			s += zstyle.Highlight.Render("  > "+item) + "\n"
		} else {
			s += "    " + item + "\n"
		}
	}

	s += "\n"
	if m.flash != "" {
		s += "  " + zstyle.StatusErr.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	s += "  " + zstyle.MutedText.Render("j/k navigate  enter select  q quit") + "\n\n"
	return s
}
