// Package store keeps saved profiles and TUI settings in an encrypted
// zstore over any zfilesystem.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/phantomid/internal/identity"
	"github.com/zarlcorp/phantomid/internal/profile"
)

const (
	profilesCollection = "profiles"
	configCollection   = "config"
	settingsKey        = "settings"
	saltFile           = "salt"
)

// ErrNotFound is returned when a profile does not exist.
var ErrNotFound = errors.New("profile not found")

// ErrWrongPassword is zstore.ErrWrongPassword.
var ErrWrongPassword = zstore.ErrWrongPassword

// configEnvelope wraps a JSON-encoded config value so heterogeneous config
// types share one collection.
type configEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// Settings are the generation preferences the TUI remembers.
type Settings struct {
	Locale       string `json:"locale"`
	Financial    bool   `json:"financial"`
	Professional bool   `json:"professional"`
	Documents    bool   `json:"documents"`
	MinAge       int    `json:"min_age"`
	MaxAge       int    `json:"max_age"`
	Luhn         bool   `json:"luhn"`
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() Settings {
	return Settings{
		Locale: "en_US",
		MinAge: identity.DefaultAges.Min,
		MaxAge: identity.DefaultAges.Max,
	}
}

// IdentityOptions converts settings to generator options.
func (s Settings) IdentityOptions() identity.Options {
	return identity.Options{
		IncludeFinancial:    s.Financial,
		IncludeProfessional: s.Professional,
		IncludeDocuments:    s.Documents,
		Ages:                &identity.AgeRange{Min: s.MinAge, Max: s.MaxAge},
		Locale:              s.Locale,
	}
}

// Store holds the open zstore and its collections.
type Store struct {
	zs       *zstore.Store
	profiles *zstore.Collection[profile.Profile]
	configs  *zstore.Collection[configEnvelope]

	closeOnce sync.Once
	closeErr  error
}

// Open opens or initializes a store on fsys. A wrong password returns
// ErrWrongPassword.
func Open(fsys zfilesystem.ReadWriteFileFS, password []byte) (*Store, error) {
	zs, err := zstore.Open(fsys, password)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	profiles, err := zstore.NewCollection[profile.Profile](zs, profilesCollection)
	if err != nil {
		zs.Close()
		return nil, fmt.Errorf("open store: %s collection: %w", profilesCollection, err)
	}

	configs, err := zstore.NewCollection[configEnvelope](zs, configCollection)
	if err != nil {
		zs.Close()
		return nil, fmt.Errorf("open store: %s collection: %w", configCollection, err)
	}

	return &Store{zs: zs, profiles: profiles, configs: configs}, nil
}

// OpenDir creates dir if needed and opens the store inside it.
func OpenDir(dir string, password []byte) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return Open(zfilesystem.NewOSFileSystem(dir), password)
}

// IsFirstRun reports whether no store has been initialized in dir.
func IsFirstRun(dir string) bool {
	_, err := os.Stat(dir + "/" + saltFile)
	return err != nil
}

// Save writes a profile, replacing any with the same ID.
func (s *Store) Save(p profile.Profile) error {
	if err := s.profiles.Put(p.ID, p); err != nil {
		return fmt.Errorf("save profile %s: %w", p.ID, err)
	}
	return nil
}

// Get returns a profile by ID.
func (s *Store) Get(id string) (profile.Profile, error) {
	p, err := s.profiles.Get(id)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("%w: %s: %v", ErrNotFound, id, err)
	}
	return p, nil
}

// List returns all profiles, newest first.
func (s *Store) List() ([]profile.Profile, error) {
	ps, err := s.profiles.List()
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	// zstore.List does not guarantee order
	sort.Slice(ps, func(i, j int) bool {
		return ps[i].CreatedAt.After(ps[j].CreatedAt)
	})
	return ps, nil
}

// Delete removes a profile by ID.
func (s *Store) Delete(id string) error {
	if _, err := s.profiles.Get(id); err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := s.profiles.Delete(id); err != nil {
		return fmt.Errorf("delete profile %s: %w", id, err)
	}
	return nil
}

// Settings returns the saved settings, or DefaultSettings when none are
// saved or the saved value cannot be decoded.
func (s *Store) Settings() Settings {
	def := DefaultSettings()
	env, err := s.configs.Get(settingsKey)
	if err != nil {
		return def
	}

	v := def
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return def
	}
	return v
}

// SaveSettings persists settings.
func (s *Store) SaveSettings(v Settings) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := s.configs.Put(settingsKey, configEnvelope{Data: data}); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Close closes the underlying zstore. Later calls return the first result.
func (s *Store) Close() error {
	s.closeOnce.Do(func() { s.closeErr = s.zs.Close() })
	return s.closeErr
}
