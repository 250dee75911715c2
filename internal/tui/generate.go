package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/phantomid/internal/profile"
)

// profileField is a labeled value the cursor can select and copy.
type profileField struct {
	label string
	value string
	// section starts a new visual group
	section bool
}

// generateModel displays a freshly generated profile.
type generateModel struct {
	profile profile.Profile
	fields  []profileField
	cursor  int
	flash   string
}

// saveProfileMsg requests saving the current profile.
type saveProfileMsg struct {
	profile profile.Profile
}

// profileSavedMsg confirms a save.
type profileSavedMsg struct{}

func newGenerateModel(p profile.Profile) generateModel {
	return generateModel{profile: p, fields: profileFields(p)}
}

func profileFields(p profile.Profile) []profileField {
	id := p.Identity
	fp := p.Fingerprint

	fs := []profileField{
		{label: "id", value: p.ID},
		{label: "name", value: id.FullName},
		{label: "gender", value: string(id.Gender)},
		{label: "birthdate", value: fmt.Sprintf("%s (%d)", id.Birthdate.Format(time.DateOnly), id.Age)},
		{label: "username", value: id.Username},
		{label: "email", value: id.Email},
		{label: "phone", value: id.Phone},
		{label: "address", value: id.Address, section: true},
		{label: "city", value: id.City},
		{label: "postal", value: id.PostalCode},
		{label: "country", value: id.Country},
		{label: "national id", value: id.NationalID},
	}

	if d := id.Documents; d != nil {
		fs = append(fs,
			profileField{label: "passport", value: d.PassportNumber, section: true},
			profileField{label: "license", value: d.DriverLicense},
		)
	}
	if f := id.Financial; f != nil {
		fs = append(fs,
			profileField{label: "card", value: f.CreditCard, section: true},
			profileField{label: "expiry", value: f.CreditCardExpiry},
			profileField{label: "cvv", value: f.CreditCardCVV},
			profileField{label: "bank", value: f.BankAccount},
		)
	}
	if w := id.Professional; w != nil {
		fs = append(fs,
			profileField{label: "company", value: w.Company, section: true},
			profileField{label: "job", value: w.JobTitle},
			profileField{label: "website", value: w.Website},
		)
	}

	return append(fs,
		profileField{label: "user agent", value: fp.UserAgent, section: true},
		profileField{label: "browser", value: fp.BrowserName + " " + fp.BrowserVersion},
		profileField{label: "os", value: fp.OSName + " " + fp.OSVersion},
		profileField{label: "device", value: string(fp.DeviceType)},
		profileField{label: "screen", value: fmt.Sprintf("%s @%gx", fp.ScreenResolution, fp.PixelRatio)},
		profileField{label: "timezone", value: fp.Timezone},
		profileField{label: "languages", value: fp.Languages},
		profileField{label: "webgl", value: fp.WebGLRenderer},
		profileField{label: "ip", value: fp.IPAddress},
		profileField{label: "mac", value: fp.MACAddress},
		profileField{label: "hash", value: fp.Hash},
	)
}

func (m generateModel) Init() tea.Cmd {
	return nil
}

func (m generateModel) Update(msg tea.Msg) (generateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case profileSavedMsg:
		m.flash = "saved"
		return m, clearFlashAfter()

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m generateModel) handleKey(msg tea.KeyMsg) (generateModel, tea.Cmd) {
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
	case "s":
		p := m.profile
		return m, func() tea.Msg { return saveProfileMsg{profile: p} }

	case "c":
		m.flash = copyFlash(fieldsText(m.fields), "copied all!")
		return m, clearFlashAfter()

	case "n":
		return m, func() tea.Msg { return navigateMsg{view: viewGenerate} }
	}

	return m, nil
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

func fieldsText(fields []profileField) string {
	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
	}
	return b.String()
}

// renderFields draws the field list with the cursor row marked.
func renderFields(fields []profileField, cursor int) string {
	var s string
	for i, f := range fields {
		if f.section && i > 0 {
			s += "\n"
		}
		label := zstyle.MutedText.Render(fmt.Sprintf("%-11s", f.label))
		if i == cursor {
			s += zstyle.ActiveBorder.Render(fmt.Sprintf("  > %s %s", label, f.value)) + "\n"
		} else {
			s += fmt.Sprintf("    %s %s\n", label, f.value)
		}
	}
	return s
}

func (m generateModel) View() string {
	title := zstyle.Title.Render("generated profile")
	s := fmt.Sprintf("\n  %s\n\n", title)
	s += renderFields(m.fields, m.cursor)
	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}
	return s
}
