// Package fingerprint synthesizes browser and device signatures whose
// fields agree with each other: the user agent is built from the chosen
// browser and OS, and hardware values come from the device class.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/zarlcorp/phantomid/internal/record"
	"github.com/zarlcorp/phantomid/internal/registry"
)

var (
	// ErrIncompatiblePlatform is returned when the requested device, browser
	// and OS cannot occur together.
	ErrIncompatiblePlatform = errors.New("incompatible platform")

	ErrUnsupportedDeviceType = registry.ErrUnsupportedDeviceType
	ErrUnsupportedBrowser    = registry.ErrUnsupportedBrowser
	ErrUnsupportedOS         = registry.ErrUnsupportedOS
)

// HashField is the name of the derived digest field.
const HashField = "fingerprint_hash"

// Columns is the canonical field order. It is also the hash input order.
var Columns = []string{
	"user_agent", "browser_name", "browser_version", "browser_engine",
	"platform", "os_name", "os_version", "device_type",
	"screen_resolution", "screen_width", "screen_height", "color_depth", "pixel_ratio",
	"language", "languages", "timezone", "timezone_offset",
	"cpu_cores", "device_memory", "max_touch_points",
	"webgl_vendor", "webgl_renderer", "canvas_hash", "audio_hash",
	"ip_address", "connection_type", "mac_address",
	"do_not_track", "cookies_enabled", "local_storage", "session_storage", "indexed_db",
	HashField,
}

// hashColumns is Columns without the digest itself.
var hashColumns = Columns[:len(Columns)-1]

// Fingerprint is one synthetic device/browser signature. Every field is
// always populated.
type Fingerprint struct {
	UserAgent        string              `json:"user_agent"`
	BrowserName      string              `json:"browser_name"`
	BrowserVersion   string              `json:"browser_version"`
	BrowserEngine    string              `json:"browser_engine"`
	Platform         string              `json:"platform"`
	OSName           string              `json:"os_name"`
	OSVersion        string              `json:"os_version"`
	DeviceType       registry.DeviceType `json:"device_type"`
	ScreenResolution string              `json:"screen_resolution"`
	ScreenWidth      int                 `json:"screen_width"`
	ScreenHeight     int                 `json:"screen_height"`
	ColorDepth       int                 `json:"color_depth"`
	PixelRatio       float64             `json:"pixel_ratio"`
	Language         string              `json:"language"`
	Languages        string              `json:"languages"`
	Timezone         string              `json:"timezone"`
	TimezoneOffset   int                 `json:"timezone_offset"`
	CPUCores         int                 `json:"cpu_cores"`
	DeviceMemory     int                 `json:"device_memory"`
	MaxTouchPoints   int                 `json:"max_touch_points"`
	WebGLVendor      string              `json:"webgl_vendor"`
	WebGLRenderer    string              `json:"webgl_renderer"`
	CanvasHash       string              `json:"canvas_hash"`
	AudioHash        string              `json:"audio_hash"`
	IPAddress        string              `json:"ip_address"`
	ConnectionType   string              `json:"connection_type"`
	MACAddress       string              `json:"mac_address"`
	DoNotTrack       string              `json:"do_not_track"`
	CookiesEnabled   bool                `json:"cookies_enabled"`
	LocalStorage     bool                `json:"local_storage"`
	SessionStorage   bool                `json:"session_storage"`
	IndexedDB        bool                `json:"indexed_db"`
	Hash             string              `json:"fingerprint_hash"`
}

// Record returns the fingerprint as an ordered mapping in Columns order.
func (f Fingerprint) Record() record.Record {
	return f.builder().Set(HashField, f.Hash).Build()
}

// Verify reports whether Hash matches the other fields.
func (f Fingerprint) Verify() bool {
	return f.Hash == Hash(f.Record())
}

func (f Fingerprint) builder() *record.Builder {
	return record.NewBuilder().
		Set("user_agent", f.UserAgent).
		Set("browser_name", f.BrowserName).
		Set("browser_version", f.BrowserVersion).
		Set("browser_engine", f.BrowserEngine).
		Set("platform", f.Platform).
		Set("os_name", f.OSName).
		Set("os_version", f.OSVersion).
		Set("device_type", string(f.DeviceType)).
		Set("screen_resolution", f.ScreenResolution).
		Set("screen_width", f.ScreenWidth).
		Set("screen_height", f.ScreenHeight).
		Set("color_depth", f.ColorDepth).
		Set("pixel_ratio", f.PixelRatio).
		Set("language", f.Language).
		Set("languages", f.Languages).
		Set("timezone", f.Timezone).
		Set("timezone_offset", f.TimezoneOffset).
		Set("cpu_cores", f.CPUCores).
		Set("device_memory", f.DeviceMemory).
		Set("max_touch_points", f.MaxTouchPoints).
		Set("webgl_vendor", f.WebGLVendor).
		Set("webgl_renderer", f.WebGLRenderer).
		Set("canvas_hash", f.CanvasHash).
		Set("audio_hash", f.AudioHash).
		Set("ip_address", f.IPAddress).
		Set("connection_type", f.ConnectionType).
		Set("mac_address", f.MACAddress).
		Set("do_not_track", f.DoNotTrack).
		Set("cookies_enabled", f.CookiesEnabled).
		Set("local_storage", f.LocalStorage).
		Set("session_storage", f.SessionStorage).
		Set("indexed_db", f.IndexedDB)
}

// Hash computes the hex SHA-256 digest of a fingerprint record: every field
// except fingerprint_hash, formatted with record.Format, joined with "|" in
// Columns order. Fields missing from r hash as empty strings.
func Hash(r record.Record) string {
	sum := sha256.Sum256([]byte(strings.Join(r.Row(hashColumns), "|")))
	return hex.EncodeToString(sum[:])
}
