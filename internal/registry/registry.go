// Package registry holds the static reference tables the generators draw
// from: per-locale name and format data, device hardware ranges, and the
// browser/OS tables used to synthesize fingerprints.
//
// Tables are package-level data and never written after init, so lookups are
// safe from any goroutine. Adding a locale or device class is a data change.
package registry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedLocale is returned for locale codes outside Locales().
	ErrUnsupportedLocale = errors.New("unsupported locale")

	// ErrUnsupportedDeviceType is returned for unknown device classes.
	ErrUnsupportedDeviceType = errors.New("unsupported device type")

	// ErrUnsupportedBrowser is returned for unknown browser names.
	ErrUnsupportedBrowser = errors.New("unsupported browser")

	// ErrUnsupportedOS is returned for unknown operating system names.
	ErrUnsupportedOS = errors.New("unsupported os")
)

// LocaleTable is the reference data for one locale.
type LocaleTable struct {
	Code        string
	MaleNames   []string
	FemaleNames []string
	LastNames   []string
	Cities      []string
	Countries   []string
	Streets     []string

	// AddressFormat has {number} and {street} slots.
	AddressFormat string

	// digit templates, see random.Rand.Template
	PostalFormat        string
	PhoneFormat         string
	NationalIDFormat    string
	PassportFormat      string
	DriverLicenseFormat string
	BankAccountFormat   string

	CompanySuffixes []string
	TLD             string
}

// Lookup returns the table for a locale code. Codes are matched
// case-insensitively and "-" is accepted in place of "_".
func Lookup(locale string) (LocaleTable, error) {
	code := NormalizeLocale(locale)
	t, ok := localeIndex[code]
	if !ok {
		return LocaleTable{}, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	return t, nil
}

// Locales returns the supported locale codes in a fixed order.
func Locales() []string {
	out := make([]string, len(locales))
	for i, t := range locales {
		out[i] = t.Code
	}
	return out
}

// NormalizeLocale canonicalizes a code like "en-us" to "en_US". Input that
// does not look like a language_REGION pair is returned trimmed.
func NormalizeLocale(locale string) string {
	s := strings.TrimSpace(strings.ReplaceAll(locale, "-", "_"))
	lang, region, ok := strings.Cut(s, "_")
	if !ok {
		return s
	}
	return strings.ToLower(lang) + "_" + strings.ToUpper(region)
}

var localeIndex = func() map[string]LocaleTable {
	m := make(map[string]LocaleTable, len(locales))
	for _, t := range locales {
		m[t.Code] = t
	}
	return m
}()
