package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/phantomid/internal/fingerprint"
	"github.com/zarlcorp/phantomid/internal/identity"
	"github.com/zarlcorp/phantomid/internal/profile"
	"github.com/zarlcorp/phantomid/internal/random"
	"github.com/zarlcorp/phantomid/internal/registry"
	"github.com/zarlcorp/phantomid/internal/store"
)

// helpers

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func specialKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func escKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

// stubClipboard records clipboard writes for the test's duration.
func stubClipboard(t *testing.T) *[]string {
	t.Helper()
	var got []string
	prev := writeClipboard
	writeClipboard = func(s string) error {
		got = append(got, s)
		return nil
	}
	t.Cleanup(func() { writeClipboard = prev })
	return &got
}

func testProfile(t *testing.T, opts identity.Options) profile.Profile {
	t.Helper()
	src := random.NewSeeded(7)
	ids, err := identity.New("en_US", identity.WithSource(src))
	if err != nil {
		t.Fatal(err)
	}
	gen := profile.NewGenerator(ids, fingerprint.New(fingerprint.WithSource(src)),
		profile.WithSource(src),
		profile.WithClock(func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }),
	)
	p, err := gen.Generate(profile.Options{Identity: opts})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// unlocked returns a model past the password prompt with an open store.
func unlocked(t *testing.T, dir string) Model {
	t.Helper()
	m := New("1.0", dir, random.NewSeeded(1), store.IsFirstRun(dir))
	result, _ := m.Update(passwordSubmitMsg{password: "testpass"})
	rm := result.(Model)
	if rm.active != viewMenu {
		t.Fatalf("active = %d after unlock, want viewMenu (err %q)", rm.active, rm.password.errMsg)
	}
	t.Cleanup(rm.Close)
	return rm
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	result, cmd := m.Update(msg)
	return result.(Model), cmd
}

// root model

func TestRootStartsAtPassword(t *testing.T) {
	m := New("1.0", t.TempDir(), nil, true)
	if m.active != viewPassword {
		t.Errorf("active = %d, want viewPassword", m.active)
	}
	if m.gen == nil {
		t.Error("generator should be ready before unlock")
	}
}

func TestRootWrongPassword(t *testing.T) {
	dir := t.TempDir()
	m := unlocked(t, dir)
	m.Close()

	locked := New("1.0", dir, nil, false)
	rm, _ := update(t, locked, passwordSubmitMsg{password: "nope"})
	if rm.active != viewPassword {
		t.Fatalf("active = %d, want viewPassword", rm.active)
	}
	if rm.password.errMsg != "wrong password" {
		t.Errorf("errMsg = %q", rm.password.errMsg)
	}
}

func TestRootNavigateToGenerate(t *testing.T) {
	m := unlocked(t, t.TempDir())

	rm, _ := update(t, m, navigateMsg{view: viewGenerate})
	if rm.active != viewGenerate {
		t.Fatalf("active = %d, want viewGenerate", rm.active)
	}
	p := rm.generate.profile
	if p.ID == "" || p.Identity.FullName == "" || p.Fingerprint.Hash == "" {
		t.Errorf("incomplete profile: %+v", p)
	}
	if !p.Fingerprint.Verify() {
		t.Error("fingerprint hash does not verify")
	}
}

func TestRootSaveListDelete(t *testing.T) {
	m := unlocked(t, t.TempDir())

	m, _ = update(t, m, navigateMsg{view: viewGenerate})
	p := m.generate.profile

	m, _ = update(t, m, saveProfileMsg{profile: p})
	if m.generate.flash != "saved" {
		t.Errorf("flash = %q, want saved", m.generate.flash)
	}

	m, _ = update(t, m, navigateMsg{view: viewList})
	if m.active != viewList || len(m.list.profiles) != 1 || m.list.profiles[0].ID != p.ID {
		t.Fatalf("list = %+v", m.list.profiles)
	}

	m, _ = update(t, m, viewProfileMsg{profile: m.list.profiles[0]})
	if m.active != viewDetail {
		t.Fatalf("active = %d, want viewDetail", m.active)
	}

	m, _ = update(t, m, deleteProfileMsg{id: p.ID})
	if m.active != viewList {
		t.Errorf("active = %d after delete, want viewList", m.active)
	}
	if len(m.list.profiles) != 0 || m.list.flash != "deleted" {
		t.Errorf("list after delete = %d profiles, flash %q", len(m.list.profiles), m.list.flash)
	}
}

func TestRootDeleteMissing(t *testing.T) {
	m := unlocked(t, t.TempDir())
	m, _ = update(t, m, navigateMsg{view: viewList})

	m, _ = update(t, m, deleteProfileMsg{id: "missing"})
	if !strings.HasPrefix(m.list.flash, "delete:") {
		t.Errorf("flash = %q", m.list.flash)
	}
}

func TestRootMenuShowsCount(t *testing.T) {
	m := unlocked(t, t.TempDir())
	m, _ = update(t, m, saveProfileMsg{profile: testProfile(t, identity.Options{})})

	m, _ = update(t, m, navigateMsg{view: viewMenu})
	if m.menu.profileCount != 1 {
		t.Errorf("profileCount = %d, want 1", m.menu.profileCount)
	}
}

func TestRootSettingsPersist(t *testing.T) {
	dir := t.TempDir()
	m := unlocked(t, dir)

	want := store.DefaultSettings()
	want.Locale = "de_DE"
	want.Financial = true
	want.Luhn = true

	m, _ = update(t, m, navigateMsg{view: viewSettings})
	m, _ = update(t, m, saveSettingsMsg{settings: want})
	if m.prefs.flash != "saved" {
		t.Fatalf("flash = %q", m.prefs.flash)
	}

	m, _ = update(t, m, navigateMsg{view: viewGenerate})
	id := m.generate.profile.Identity
	if id.Locale != "de_DE" || id.Financial == nil || !identity.Luhn(id.Financial.CreditCard) {
		t.Errorf("settings not applied: locale %s financial %+v", id.Locale, id.Financial)
	}
	m.Close()

	again := unlocked(t, dir)
	if again.settings != want {
		t.Errorf("reloaded settings = %+v, want %+v", again.settings, want)
	}
}

func TestRootSettingsRejected(t *testing.T) {
	m := unlocked(t, t.TempDir())
	m, _ = update(t, m, navigateMsg{view: viewSettings})

	bad := store.DefaultSettings()
	bad.Locale = "xx_XX"
	m, _ = update(t, m, saveSettingsMsg{settings: bad})

	if m.settings.Locale != "en_US" {
		t.Errorf("locale = %q, want previous en_US", m.settings.Locale)
	}
	if !strings.HasPrefix(m.prefs.flash, "settings:") {
		t.Errorf("flash = %q", m.prefs.flash)
	}
}

func TestRootViewHeader(t *testing.T) {
	m := unlocked(t, t.TempDir())
	m, _ = update(t, m, navigateMsg{view: viewGenerate})

	view := m.View()
	if !strings.Contains(view, "phantomid") || !strings.Contains(view, "Generate Profile") {
		t.Errorf("view missing header:\n%s", view)
	}
}

func TestRootQuitFromMenu(t *testing.T) {
	m := unlocked(t, t.TempDir())

	_, cmd := m.Update(keyMsg('q'))
	if cmd == nil {
		t.Fatal("q should quit from menu")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce QuitMsg")
	}
}

// menu

func TestMenuNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want viewID
	}{
		{"generate", nil, viewGenerate},
		{"browse", []tea.KeyMsg{keyMsg('j')}, viewList},
		{"settings", []tea.KeyMsg{keyMsg('j'), keyMsg('j')}, viewSettings},
		{"clamped top", []tea.KeyMsg{keyMsg('k'), keyMsg('k')}, viewGenerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMenuModel("1.0")
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}
			_, cmd := m.Update(enterKey())
			if cmd == nil {
				t.Fatal("enter should emit a command")
			}
			nav, ok := cmd().(navigateMsg)
			if !ok || nav.view != tt.want {
				t.Errorf("navigate = %#v, want view %d", nav, tt.want)
			}
		})
	}
}

func TestMenuCursorClampMax(t *testing.T) {
	m := newMenuModel("1.0")
	for range len(menuItems) + 3 {
		m, _ = m.Update(keyMsg('j'))
	}
	if m.cursor != len(menuItems)-1 {
		t.Errorf("cursor = %d", m.cursor)
	}
	_, cmd := m.Update(enterKey())
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("last item should quit")
	}
}

func TestMenuView(t *testing.T) {
	m := newMenuModel("1.2.3")
	m.profileCount = 4
	view := m.View()
	for _, want := range []string{"phantomid", "1.2.3", "Generate profile", "(4)", "Settings"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

// generate

func TestProfileFieldsSections(t *testing.T) {
	tests := []struct {
		name  string
		opts  identity.Options
		label string
		want  bool
	}{
		{"no card by default", identity.Options{}, "card", false},
		{"card with financial", identity.Options{IncludeFinancial: true}, "card", true},
		{"company with professional", identity.Options{IncludeProfessional: true}, "company", true},
		{"passport with documents", identity.Options{IncludeDocuments: true}, "passport", true},
		{"hash always", identity.Options{}, "hash", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := profileFields(testProfile(t, tt.opts))
			found := false
			for _, f := range fields {
				if f.label == tt.label {
					found = true
				}
			}
			if found != tt.want {
				t.Errorf("field %q present = %v, want %v", tt.label, found, tt.want)
			}
		})
	}
}

func TestGenerateCopy(t *testing.T) {
	copied := stubClipboard(t)
	p := testProfile(t, identity.Options{})
	m := newGenerateModel(p)

	m, _ = m.Update(keyMsg('j'))
	m, _ = m.Update(enterKey())
	if m.flash != "copied!" {
		t.Errorf("flash = %q", m.flash)
	}
	if len(*copied) != 1 || (*copied)[0] != p.Identity.FullName {
		t.Errorf("copied = %q, want name", *copied)
	}

	m, _ = m.Update(keyMsg('c'))
	if m.flash != "copied all!" || !strings.Contains((*copied)[1], "email: "+p.Identity.Email) {
		t.Errorf("copy all = %q", (*copied)[1])
	}
}

func TestGenerateCopyError(t *testing.T) {
	prev := writeClipboard
	writeClipboard = func(string) error { return errors.New("no display") }
	t.Cleanup(func() { writeClipboard = prev })

	m := newGenerateModel(testProfile(t, identity.Options{}))
	m, _ = m.Update(enterKey())
	if !strings.Contains(m.flash, "no display") {
		t.Errorf("flash = %q", m.flash)
	}
}

func TestGenerateKeys(t *testing.T) {
	p := testProfile(t, identity.Options{})
	tests := []struct {
		name  string
		key   tea.KeyMsg
		check func(tea.Msg) bool
	}{
		{"save", keyMsg('s'), func(msg tea.Msg) bool {
			s, ok := msg.(saveProfileMsg)
			return ok && s.profile.ID == p.ID
		}},
		{"new", keyMsg('n'), func(msg tea.Msg) bool {
			n, ok := msg.(navigateMsg)
			return ok && n.view == viewGenerate
		}},
		{"back", escKey(), func(msg tea.Msg) bool {
			n, ok := msg.(navigateMsg)
			return ok && n.view == viewMenu
		}},
		{"quit", keyMsg('q'), func(msg tea.Msg) bool {
			_, ok := msg.(tea.QuitMsg)
			return ok
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd := newGenerateModel(p).Update(tt.key)
			if cmd == nil {
				t.Fatal("expected a command")
			}
			if msg := cmd(); !tt.check(msg) {
				t.Errorf("unexpected msg %#v", msg)
			}
		})
	}
}

func TestGenerateNavigationClamps(t *testing.T) {
	m := newGenerateModel(testProfile(t, identity.Options{}))
	m, _ = m.Update(keyMsg('k'))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	for range len(m.fields) + 2 {
		m, _ = m.Update(keyMsg('j'))
	}
	if m.cursor != len(m.fields)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(m.fields)-1)
	}
}

func TestGenerateFlashClears(t *testing.T) {
	m := newGenerateModel(testProfile(t, identity.Options{}))
	m, _ = m.Update(profileSavedMsg{})
	m, _ = m.Update(flashMsg{})
	if m.flash != "" {
		t.Errorf("flash = %q", m.flash)
	}
}

// list and detail

func TestListEmpty(t *testing.T) {
	m := newListModel(nil)
	if !strings.Contains(m.View(), "no saved profiles") {
		t.Error("empty list should say so")
	}
	if _, cmd := m.Update(enterKey()); cmd != nil {
		t.Error("enter on empty list should do nothing")
	}
}

func TestListDeleteConfirm(t *testing.T) {
	p := testProfile(t, identity.Options{})

	m := newListModel([]profile.Profile{p})
	m, cmd := m.Update(keyMsg('d'))
	if cmd != nil || !m.confirming {
		t.Fatal("first d should ask for confirmation")
	}
	if !strings.Contains(m.View(), p.ID) {
		t.Error("confirmation should name the profile")
	}

	_, cmd = m.Update(keyMsg('y'))
	if cmd == nil {
		t.Fatal("y should confirm")
	}
	if d, ok := cmd().(deleteProfileMsg); !ok || d.id != p.ID {
		t.Errorf("msg = %#v", d)
	}

	m = newListModel([]profile.Profile{p})
	m, _ = m.Update(keyMsg('d'))
	m, cmd = m.Update(keyMsg('n'))
	if cmd != nil || m.confirming {
		t.Error("any other key should cancel")
	}
}

func TestListSelect(t *testing.T) {
	a := testProfile(t, identity.Options{})
	b := testProfile(t, identity.Options{IncludeFinancial: true})
	b.ID = "bbbbbbbb"

	m := newListModel([]profile.Profile{a, b})
	m, _ = m.Update(keyMsg('j'))
	_, cmd := m.Update(enterKey())
	v, ok := cmd().(viewProfileMsg)
	if !ok || v.profile.ID != b.ID {
		t.Errorf("msg = %#v", v)
	}
}

func TestDetailView(t *testing.T) {
	p := testProfile(t, identity.Options{})
	view := newDetailModel(p).View()
	for _, want := range []string{p.Identity.FullName, "saved 2026-01-02", p.Fingerprint.Hash} {
		if !strings.Contains(view, want) {
			t.Errorf("detail view missing %q", want)
		}
	}
}

func TestDetailKeys(t *testing.T) {
	p := testProfile(t, identity.Options{})

	_, cmd := newDetailModel(p).Update(escKey())
	if n, ok := cmd().(navigateMsg); !ok || n.view != viewList {
		t.Errorf("esc = %#v, want list", n)
	}

	m, _ := newDetailModel(p).Update(keyMsg('d'))
	_, cmd = m.Update(keyMsg('y'))
	if d, ok := cmd().(deleteProfileMsg); !ok || d.id != p.ID {
		t.Errorf("delete = %#v", d)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"much longer text", 8, "much lo…"},
		{"Müller-Lüdenscheidt", 7, "Müller…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

// settings

func settingsAt(s store.Settings, choice settingsChoice) settingsModel {
	m := newSettingsModel(s)
	m.cursor = int(choice)
	return m
}

func TestSettingsChange(t *testing.T) {
	base := store.DefaultSettings()
	tests := []struct {
		name   string
		choice settingsChoice
		key    tea.KeyMsg
		check  func(store.Settings) bool
	}{
		{"financial toggles", settingsFinancial, enterKey(), func(s store.Settings) bool { return s.Financial }},
		{"professional toggles", settingsProfessional, keyMsg(' '), func(s store.Settings) bool { return s.Professional }},
		{"documents toggles", settingsDocuments, enterKey(), func(s store.Settings) bool { return s.Documents }},
		{"luhn toggles", settingsLuhn, enterKey(), func(s store.Settings) bool { return s.Luhn }},
		{"locale advances", settingsLocale, enterKey(), func(s store.Settings) bool { return s.Locale != base.Locale }},
		{"min age down", settingsMinAge, keyMsg('-'), func(s store.Settings) bool { return s.MinAge == base.MinAge-1 }},
		{"max age up", settingsMaxAge, keyMsg('+'), func(s store.Settings) bool { return s.MaxAge == base.MaxAge+1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd := settingsAt(base, tt.choice).Update(tt.key)
			if cmd == nil {
				t.Fatal("change should emit saveSettingsMsg")
			}
			msg, ok := cmd().(saveSettingsMsg)
			if !ok || !tt.check(msg.settings) {
				t.Errorf("settings = %+v", msg.settings)
			}
		})
	}
}

func TestSettingsAgeBounds(t *testing.T) {
	s := store.DefaultSettings()
	s.MinAge, s.MaxAge = 30, 30

	if _, cmd := settingsAt(s, settingsMinAge).Update(keyMsg('+')); cmd != nil {
		t.Error("min age should not pass max age")
	}
	if _, cmd := settingsAt(s, settingsMaxAge).Update(keyMsg('-')); cmd != nil {
		t.Error("max age should not drop below min age")
	}

	s.MaxAge = maxSettingsAge
	if _, cmd := settingsAt(s, settingsMaxAge).Update(keyMsg('+')); cmd != nil {
		t.Errorf("max age should stop at %d", maxSettingsAge)
	}
}

func TestSettingsBack(t *testing.T) {
	for _, k := range []tea.KeyMsg{escKey(), enterKey()} {
		_, cmd := settingsAt(store.DefaultSettings(), settingsBack).Update(k)
		if cmd == nil {
			t.Fatalf("%v should go back", k)
		}
		if n, ok := cmd().(navigateMsg); !ok || n.view != viewMenu {
			t.Errorf("%v = %#v, want menu", k, n)
		}
	}
}

func TestCycleLocale(t *testing.T) {
	locales := registry.Locales()
	first, last := locales[0], locales[len(locales)-1]

	tests := []struct {
		name    string
		current string
		step    int
		want    string
	}{
		{"forward", first, 1, locales[1]},
		{"wraps forward", last, 1, first},
		{"wraps back", first, -1, last},
		{"normalizes", "de-de", 0, "de_DE"},
		{"unknown resets", "xx_XX", 1, first},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cycleLocale(tt.current, tt.step); got != tt.want {
				t.Errorf("cycleLocale(%q, %d) = %q, want %q", tt.current, tt.step, got, tt.want)
			}
		})
	}
}

func TestSettingsView(t *testing.T) {
	s := store.DefaultSettings()
	s.Locale = "pt_BR"
	view := newSettingsModel(s).View()
	for _, want := range []string{"locale", "pt_BR", "luhn cards", "max age", "80"} {
		if !strings.Contains(view, want) {
			t.Errorf("settings view missing %q", want)
		}
	}
}
