package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/zarlcorp/phantomid/internal/random"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	checks := []struct {
		field     string
		got, want any
	}{
		{"DataDir", cfg.DataDir, filepath.Join("/tmp/xdg", "phantomid")},
		{"Locale", cfg.Locale, "en_US"},
		{"Luhn", cfg.Luhn, false},
		{"Seed", cfg.Seed, uint64(0)},
		{"Workers", cfg.Workers, 4},
		{"LogLevel", cfg.LogLevel, slog.LevelWarn},
		{"LogFormat", cfg.LogFormat, "text"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.field, c.got, c.want)
		}
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PHANTOMID_DATA_DIR", "/srv/phantomid")
	t.Setenv("PHANTOMID_LOCALE", "de-de")
	t.Setenv("PHANTOMID_LUHN", "true")
	t.Setenv("PHANTOMID_SEED", "42")
	t.Setenv("PHANTOMID_WORKERS", "16")
	t.Setenv("PHANTOMID_LOG_LEVEL", "debug")
	t.Setenv("PHANTOMID_LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataDir != "/srv/phantomid" || cfg.Locale != "de_DE" || !cfg.Luhn ||
		cfg.Seed != 42 || cfg.Workers != 16 || cfg.LogLevel != slog.LevelDebug || cfg.LogFormat != "json" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name     string
		key, val string
		want     error
	}{
		{"locale", "PHANTOMID_LOCALE", "xx_XX", ErrInvalid},
		{"workers", "PHANTOMID_WORKERS", "0", ErrInvalid},
		{"format", "PHANTOMID_LOG_FORMAT", "xml", ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := Load(); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("PHANTOMID_WORKERS", "many")
	if _, err := Load(); err == nil {
		t.Error("expected parse error")
	}
}

func TestSource(t *testing.T) {
	a := random.New(Config{Seed: 5}.Source())
	b := random.New(Config{Seed: 5}.Source())
	if a.Hex(8) != b.Hex(8) {
		t.Error("seeded sources diverged")
	}
	if (Config{}).Source() == nil {
		t.Error("nil crypto source")
	}
}

func TestDefaultDataDirHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/home/tester")
	if got := DefaultDataDir(); got != filepath.Join("/home/tester", ".local", "share", "phantomid") {
		t.Errorf("DefaultDataDir() = %q", got)
	}
}

// unsetenv clears key for the rest of the test and restores it afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func writeEnvFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "phantomid.env")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEnvFile(t *testing.T) {
	unsetenv(t, "PHANTOMID_LOCALE")
	unsetenv(t, "PHANTOMID_WORKERS")
	t.Setenv("PHANTOMID_ENV_FILE", writeEnvFile(t, "PHANTOMID_LOCALE=fr_FR\nPHANTOMID_WORKERS=3\n"))

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Locale != "fr_FR" || cfg.Workers != 3 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadEnvFileEnvironmentWins(t *testing.T) {
	t.Setenv("PHANTOMID_LOCALE", "ja_JP")
	t.Setenv("PHANTOMID_ENV_FILE", writeEnvFile(t, "PHANTOMID_LOCALE=fr_FR\n"))

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Locale != "ja_JP" {
		t.Errorf("Locale = %q, want environment value ja_JP", cfg.Locale)
	}
}

func TestLoadEnvFileMissing(t *testing.T) {
	t.Setenv("PHANTOMID_ENV_FILE", filepath.Join(t.TempDir(), "nope.env"))
	if _, err := Load(); err == nil {
		t.Error("expected error for missing explicit env file")
	}
}
