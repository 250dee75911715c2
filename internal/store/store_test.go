package store

import (
	"errors"
	"testing"
	"time"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/phantomid/internal/fingerprint"
	"github.com/zarlcorp/phantomid/internal/identity"
	"github.com/zarlcorp/phantomid/internal/profile"
)

func newTestProfile(t *testing.T, id string, createdAt time.Time) profile.Profile {
	t.Helper()
	ids, err := identity.New("en_GB")
	if err != nil {
		t.Fatal(err)
	}
	g := profile.NewGenerator(ids, fingerprint.New(), profile.WithClock(func() time.Time { return createdAt }))
	p, err := g.Generate(profile.Options{Identity: identity.Options{IncludeFinancial: true}})
	if err != nil {
		t.Fatal(err)
	}
	p.ID = id
	return p
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(zfilesystem.NewMemFS(), []byte("testpass"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestReopenWithCorrectPassword(t *testing.T) {
	fs := zfilesystem.NewMemFS()

	s1, err := Open(fs, []byte("testpass"))
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	s1.Close()

	s2, err := Open(fs, []byte("testpass"))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	s2.Close()
}

func TestWrongPasswordFails(t *testing.T) {
	fs := zfilesystem.NewMemFS()

	s, err := Open(fs, []byte("correct"))
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	s.Close()

	_, err = Open(fs, []byte("wrong"))
	if !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("err = %v, want ErrWrongPassword", err)
	}
}

func TestSaveAndGet(t *testing.T) {
	s := openTestStore(t)

	now := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	want := newTestProfile(t, "abc12345", now)

	if err := s.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Get("abc12345")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	assertProfileEqual(t, want, got)
}

func TestGetNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get("nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("get nonexistent: got %v, want ErrNotFound", err)
	}
}

func TestListSortedByCreatedAtDesc(t *testing.T) {
	s := openTestStore(t)

	for _, p := range []struct {
		id string
		at time.Time
	}{
		{"id-oldest", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"id-newest", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"id-middle", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	} {
		if err := s.Save(newTestProfile(t, p.id, p.at)); err != nil {
			t.Fatalf("save %s: %v", p.id, err)
		}
	}

	list, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("list length: got %d, want 3", len(list))
	}

	for i, want := range []string{"id-newest", "id-middle", "id-oldest"} {
		if list[i].ID != want {
			t.Errorf("list[%d].ID = %s, want %s", i, list[i].ID, want)
		}
	}
}

func TestListEmptyStore(t *testing.T) {
	s := openTestStore(t)

	list, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("list length: got %d, want 0", len(list))
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save(newTestProfile(t, "to-delete", time.Now())); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Delete("to-delete"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err := s.Get("to-delete")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("get after delete: got %v, want ErrNotFound", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	s := openTestStore(t)

	if err := s.Delete("nonexistent"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete nonexistent: got %v, want ErrNotFound", err)
	}
}

func TestSettingsDefaultAndSave(t *testing.T) {
	s := openTestStore(t)

	if got := s.Settings(); got != DefaultSettings() {
		t.Fatalf("Settings() = %+v, want defaults", got)
	}

	want := Settings{Locale: "ja_JP", Financial: true, Documents: true, MinAge: 21, MaxAge: 40, Luhn: true}
	if err := s.SaveSettings(want); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	if got := s.Settings(); got != want {
		t.Errorf("Settings() = %+v, want %+v", got, want)
	}
}

func TestSettingsIdentityOptions(t *testing.T) {
	opts := Settings{Locale: "it_IT", Professional: true, MinAge: 30, MaxAge: 31}.IdentityOptions()
	if opts.Locale != "it_IT" || !opts.IncludeProfessional || opts.IncludeFinancial {
		t.Errorf("options = %+v", opts)
	}
	if opts.Ages == nil || opts.Ages.Min != 30 || opts.Ages.Max != 31 {
		t.Errorf("ages = %+v", opts.Ages)
	}
}

func TestDataPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	if !IsFirstRun(dir) {
		t.Fatal("fresh dir should be first run")
	}

	s1, err := OpenDir(dir, []byte("testpass"))
	if err != nil {
		t.Fatalf("first open: %v", err)
	}

	want := newTestProfile(t, "persist1", time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC))
	if err := s1.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s1.SaveSettings(Settings{Locale: "pl_PL", MinAge: 18, MaxAge: 30}); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	s1.Close()

	if IsFirstRun(dir) {
		t.Fatal("initialized dir reported as first run")
	}

	s2, err := OpenDir(dir, []byte("testpass"))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	got, err := s2.Get("persist1")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	assertProfileEqual(t, want, got)

	if s2.Settings().Locale != "pl_PL" {
		t.Errorf("settings lost across reopen: %+v", s2.Settings())
	}
}

func assertProfileEqual(t *testing.T, want, got profile.Profile) {
	t.Helper()

	checks := []struct {
		field     string
		got, want any
	}{
		{"ID", got.ID, want.ID},
		{"CreatedAt", got.CreatedAt.UTC(), want.CreatedAt.UTC()},
		{"FullName", got.Identity.FullName, want.Identity.FullName},
		{"Email", got.Identity.Email, want.Identity.Email},
		{"Birthdate", got.Identity.Birthdate.UTC(), want.Identity.Birthdate.UTC()},
		{"CreditCard", got.Identity.Financial.CreditCard, want.Identity.Financial.CreditCard},
		{"Professional", got.Identity.Professional == nil, want.Identity.Professional == nil},
		{"UserAgent", got.Fingerprint.UserAgent, want.Fingerprint.UserAgent},
		{"Hash", got.Fingerprint.Hash, want.Fingerprint.Hash},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.field, c.got, c.want)
		}
	}

	if !got.Fingerprint.Verify() {
		t.Error("fingerprint hash no longer verifies after round trip")
	}
}

func TestCloseTwice(t *testing.T) {
	s, err := OpenDir(t.TempDir(), []byte("testpass"))
	if err != nil {
		t.Fatal(err)
	}
	first := s.Close()
	if err := s.Close(); err != first {
		t.Errorf("second Close = %v, want %v", err, first)
	}
}
