package tui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/phantomid/internal/registry"
	"github.com/zarlcorp/phantomid/internal/store"
)

type settingsChoice int

const (
	settingsLocale settingsChoice = iota
	settingsFinancial
	settingsProfessional
	settingsDocuments
	settingsLuhn
	settingsMinAge
	settingsMaxAge
	settingsBack
)

var settingsItems = []string{
	"locale",
	"financial",
	"professional",
	"documents",
	"luhn cards",
	"min age",
	"max age",
	"back",
}

const maxSettingsAge = 120

// saveSettingsMsg asks the root to apply and persist settings.
type saveSettingsMsg struct {
	settings store.Settings
}

// settingsModel edits the generation preferences.
type settingsModel struct {
	settings store.Settings
	cursor   int
	flash    string
}

func newSettingsModel(s store.Settings) settingsModel {
	return settingsModel{settings: s}
}

func (m settingsModel) Init() tea.Cmd {
	return nil
}

func (m settingsModel) Update(msg tea.Msg) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, zstyle.KeyQuit) {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyBack) {
			return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
		}

		if key.Matches(msg, zstyle.KeyUp) {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyDown) {
			if m.cursor < len(settingsItems)-1 {
				m.cursor++
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyEnter) || msg.String() == " " || msg.String() == "+" {
			return m.change(1)
		}

		if msg.String() == "-" {
			return m.change(-1)
		}

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

// change applies a step to the selected item. Booleans toggle whatever
// the direction.
func (m settingsModel) change(step int) (settingsModel, tea.Cmd) {
	s := m.settings

	switch settingsChoice(m.cursor) {
	case settingsLocale:
		s.Locale = cycleLocale(s.Locale, step)
	case settingsFinancial:
		s.Financial = !s.Financial
	case settingsProfessional:
		s.Professional = !s.Professional
	case settingsDocuments:
		s.Documents = !s.Documents
	case settingsLuhn:
		s.Luhn = !s.Luhn
	case settingsMinAge:
		s.MinAge = min(max(s.MinAge+step, 0), s.MaxAge)
	case settingsMaxAge:
		s.MaxAge = max(min(s.MaxAge+step, maxSettingsAge), s.MinAge)
	case settingsBack:
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if s == m.settings {
		return m, nil
	}
	return m, func() tea.Msg { return saveSettingsMsg{settings: s} }
}

func cycleLocale(current string, step int) string {
	locales := registry.Locales()
	i := slices.Index(locales, registry.NormalizeLocale(current))
	if i < 0 {
		return locales[0]
	}
	n := len(locales)
	return locales[((i+step)%n+n)%n]
}

func (m settingsModel) valueFor(choice settingsChoice) string {
	s := m.settings
	switch choice {
	case settingsLocale:
		return s.Locale
	case settingsFinancial:
		return onOff(s.Financial)
	case settingsProfessional:
		return onOff(s.Professional)
	case settingsDocuments:
		return onOff(s.Documents)
	case settingsLuhn:
		return onOff(s.Luhn)
	case settingsMinAge:
		return fmt.Sprint(s.MinAge)
	case settingsMaxAge:
		return fmt.Sprint(s.MaxAge)
	}
	return ""
}

func onOff(b bool) string {
	if b {
		return zstyle.StatusOK.Render("on")
	}
	return zstyle.MutedText.Render("off")
}

func (m settingsModel) View() string {
	s := "\n"

	for i, item := range settingsItems {
		mi := zstyle.MenuItem{
			Label:  fmt.Sprintf("%-13s", item),
			Active: m.cursor == i,
		}
		line := zstyle.RenderMenuItem(mi, zstyle.ZburnAccent)
		if v := m.valueFor(settingsChoice(i)); v != "" {
			line += " " + v
		}
		s += line + "\n"
	}

	s += "\n"
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}
	return s
}
