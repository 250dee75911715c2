// Package tui implements the root Bubble Tea model for phantomid.
package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/phantomid/internal/fingerprint"
	"github.com/zarlcorp/phantomid/internal/identity"
	"github.com/zarlcorp/phantomid/internal/profile"
	"github.com/zarlcorp/phantomid/internal/random"
	"github.com/zarlcorp/phantomid/internal/store"
)

type viewID int

const (
	viewPassword viewID = iota
	viewMenu
	viewGenerate
	viewList
	viewDetail
	viewSettings
)

// Model is the root TUI model.
type Model struct {
	version  string
	dataDir  string
	src      random.Source
	firstRun bool

	store    *store.Store
	settings store.Settings
	gen      *profile.Generator

	active   viewID
	password passwordModel
	menu     menuModel
	generate generateModel
	list     listModel
	detail   detailModel
	prefs    settingsModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model. A nil src draws from crypto/rand.
func New(version, dataDir string, src random.Source, firstRun bool) Model {
	if src == nil {
		src = random.Crypto()
	}
	m := Model{
		version:  version,
		dataDir:  dataDir,
		src:      src,
		firstRun: firstRun,
		settings: store.DefaultSettings(),
		active:   viewPassword,
		password: newPasswordModel(firstRun),
		menu:     newMenuModel(version),
	}
	// default settings always build
	_ = m.rebuildGenerator()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.password.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case passwordSubmitMsg:
		return m.openStore(msg.password)

	case navigateMsg:
		return m.navigate(msg.view)

	case saveProfileMsg:
		return m.handleSave(msg.profile)

	case deleteProfileMsg:
		return m.handleDelete(msg.id)

	case viewProfileMsg:
		m.detail = newDetailModel(msg.profile)
		m.active = viewDetail
		return m, nil

	case saveSettingsMsg:
		return m.handleSaveSettings(msg.settings)
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	// password and menu include the logo, render directly
	switch m.active {
	case viewPassword:
		return m.password.View()
	case viewMenu:
		return m.menu.View()
	}

	var content string
	switch m.active {
	case viewGenerate:
		content = m.generate.View()
	case viewList:
		content = m.list.View()
	case viewDetail:
		content = m.detail.View()
	case viewSettings:
		content = m.prefs.View()
	}

	header := zstyle.RenderHeader("phantomid", viewTitle(m.active), zstyle.ZburnAccent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

func viewTitle(id viewID) string {
	switch id {
	case viewGenerate:
		return "Generate Profile"
	case viewList:
		return "Saved Profiles"
	case viewDetail:
		return "Profile Details"
	case viewSettings:
		return "Settings"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewGenerate:
		return []zstyle.HelpPair{
			{Key: "s", Desc: "save"},
			{Key: "c", Desc: "copy all"},
			{Key: "enter", Desc: "copy field"},
			{Key: "n", Desc: "new"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewList:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "view"},
			{Key: "d", Desc: "delete"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewDetail:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy field"},
			{Key: "c", Desc: "copy all"},
			{Key: "d", Desc: "delete"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewSettings:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "change"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewPassword:
		m.password, cmd = m.password.Update(msg)
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewGenerate:
		m.generate, cmd = m.generate.Update(msg)
	case viewList:
		m.list, cmd = m.list.Update(msg)
	case viewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case viewSettings:
		m.prefs, cmd = m.prefs.Update(msg)
	}

	return m, cmd
}

func (m Model) openStore(password string) (tea.Model, tea.Cmd) {
	pass := []byte(password)
	defer zcrypto.Erase(pass)

	s, err := store.OpenDir(m.dataDir, pass)
	if err != nil {
		m.password, _ = m.password.Update(passwordErrMsg{err: err})
		return m, nil
	}

	m.store = s
	m.settings = s.Settings()
	if err := m.rebuildGenerator(); err != nil {
		slog.Warn("saved settings rejected, using defaults", "err", err)
		m.settings = store.DefaultSettings()
		_ = m.rebuildGenerator()
	}
	slog.Debug("store opened", "dir", m.dataDir)
	return m.navigate(viewMenu)
}

// rebuildGenerator builds the profile generator for the current settings.
func (m *Model) rebuildGenerator() error {
	ids, err := identity.New(m.settings.Locale, identity.WithSource(m.src), identity.WithLuhn(m.settings.Luhn))
	if err != nil {
		return err
	}
	fps := fingerprint.New(fingerprint.WithSource(m.src))
	m.gen = profile.NewGenerator(ids, fps, profile.WithSource(m.src))
	return nil
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewMenu:
		mm := newMenuModel(m.version)
		if m.store != nil {
			if ps, err := m.store.List(); err == nil {
				mm.profileCount = len(ps)
			}
		}
		m.menu = mm
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewGenerate:
		p, err := m.gen.Generate(profile.Options{Identity: m.settings.IdentityOptions()})
		if err != nil {
			m.menu.flash = "generate: " + err.Error()
			m.active = viewMenu
			return m, clearFlashAfter()
		}
		m.generate = newGenerateModel(p)
		m.active = viewGenerate
		return m, tea.ClearScreen

	case viewList:
		m, cmd := m.loadList()
		return m, tea.Batch(cmd, tea.ClearScreen)

	case viewDetail:
		m.active = viewDetail
		return m, tea.ClearScreen

	case viewSettings:
		m.prefs = newSettingsModel(m.settings)
		m.active = viewSettings
		return m, tea.ClearScreen
	}

	return m, nil
}

func (m Model) loadList() (tea.Model, tea.Cmd) {
	if m.store == nil {
		m.list = newListModel(nil)
		m.active = viewList
		return m, nil
	}

	ps, err := m.store.List()
	if err != nil {
		m.list = newListModel(nil)
		m.list.flash = "load: " + err.Error()
		m.active = viewList
		return m, clearFlashAfter()
	}

	m.list = newListModel(ps)
	m.active = viewList
	return m, nil
}

func (m Model) handleSave(p profile.Profile) (tea.Model, tea.Cmd) {
	if m.store == nil {
		m.generate.flash = "save: store not open"
		return m, clearFlashAfter()
	}

	if err := m.store.Save(p); err != nil {
		m.generate.flash = "save: " + err.Error()
		return m, clearFlashAfter()
	}

	slog.Info("profile saved", "id", p.ID)
	m.generate, _ = m.generate.Update(profileSavedMsg{})
	return m, clearFlashAfter()
}

func (m Model) handleDelete(id string) (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}

	if err := m.store.Delete(id); err != nil {
		if m.active == viewDetail {
			m.detail.flash = "delete: " + err.Error()
			return m, clearFlashAfter()
		}
		m.list.flash = "delete: " + err.Error()
		return m, clearFlashAfter()
	}

	slog.Info("profile deleted", "id", id)

	// detail returns to the list after a delete
	next, cmd := m.loadList()
	nm := next.(Model)
	nm.list.flash = "deleted"
	return nm, tea.Batch(cmd, clearFlashAfter())
}

func (m Model) handleSaveSettings(s store.Settings) (tea.Model, tea.Cmd) {
	prev := m.settings
	m.settings = s
	if err := m.rebuildGenerator(); err != nil {
		m.settings = prev
		m.prefs.flash = "settings: " + err.Error()
		return m, clearFlashAfter()
	}

	if m.store != nil {
		if err := m.store.SaveSettings(s); err != nil {
			m.prefs.flash = fmt.Sprintf("save: %v", err)
			return m, clearFlashAfter()
		}
	}

	m.prefs.settings = s
	m.prefs.flash = "saved"
	return m, clearFlashAfter()
}

// Close cleans up resources. Call after the program exits.
func (m Model) Close() {
	if m.store != nil {
		m.store.Close()
	}
}
