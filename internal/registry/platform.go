package registry

import (
	"fmt"
	"slices"
	"strings"
)

// BrowserTable describes one browser family.
type BrowserTable struct {
	Key      string
	Name     string
	Engine   string
	Versions []string
}

// WebGL is an unmasked vendor/renderer pair.
type WebGL struct {
	Vendor   string
	Renderer string
}

// OSTable describes one operating system family.
type OSTable struct {
	Key      string
	Name     string
	Versions []string
	Devices  []DeviceType
	Browsers []string

	// Platforms holds navigator.platform candidates per device class.
	// {version} is replaced with the OS version.
	Platforms map[DeviceType][]string

	// UAToken is the parenthesized OS section of the user agent per device
	// class. {version} is the OS version, {uversion} the same with "_".
	UAToken map[DeviceType]string

	WebGL []WebGL
}

// Supports reports whether the OS runs on device class d.
func (o OSTable) Supports(d DeviceType) bool {
	return slices.Contains(o.Devices, d)
}

// SupportsBrowser reports whether browser key b has a grammar on this OS.
func (o OSTable) SupportsBrowser(b string) bool {
	return slices.Contains(o.Browsers, b)
}

// Grammar is a user agent template for one browser on one OS. Slots:
// {os} OS token, {osversion} raw OS version, {version} browser version,
// {mobile} " Mobile" on phones, {form} "Mobile" or "Tablet".
type Grammar struct {
	Template string
	Engine   string
}

var browsers = []BrowserTable{
	{Key: "chrome", Name: "Chrome", Engine: "Blink",
		Versions: []string{"120.0.0.0", "119.0.0.0", "118.0.0.0", "117.0.0.0", "116.0.0.0"}},
	{Key: "firefox", Name: "Firefox", Engine: "Gecko",
		Versions: []string{"121.0", "120.0", "119.0", "118.0", "117.0"}},
	{Key: "safari", Name: "Safari", Engine: "WebKit",
		Versions: []string{"17.2", "17.1", "17.0", "16.6", "16.5"}},
	{Key: "edge", Name: "Edge", Engine: "Blink",
		Versions: []string{"120.0.0.0", "119.0.0.0", "118.0.0.0"}},
}

var operatingSystems = []OSTable{
	{
		Key:      "windows",
		Name:     "Windows",
		Versions: []string{"10", "11"},
		Devices:  []DeviceType{Desktop, Laptop},
		Browsers: []string{"chrome", "firefox", "edge"},
		Platforms: map[DeviceType][]string{
			Desktop: {"Win32", "Win64"},
			Laptop:  {"Win32", "Win64"},
		},
		// Windows 11 still reports NT 10.0
		UAToken: map[DeviceType]string{
			Desktop: "Windows NT 10.0; Win64; x64",
			Laptop:  "Windows NT 10.0; Win64; x64",
		},
		WebGL: []WebGL{
			{"Google Inc. (NVIDIA)", "ANGLE (NVIDIA, NVIDIA GeForce RTX 3080 Direct3D11 vs_5_0 ps_5_0, D3D11)"},
			{"Google Inc. (NVIDIA)", "ANGLE (NVIDIA, NVIDIA GeForce RTX 4070 Direct3D11 vs_5_0 ps_5_0, D3D11)"},
			{"Google Inc. (AMD)", "ANGLE (AMD, AMD Radeon RX 6800 XT Direct3D11 vs_5_0 ps_5_0, D3D11)"},
			{"Google Inc. (Intel)", "ANGLE (Intel, Intel(R) UHD Graphics 630 Direct3D11 vs_5_0 ps_5_0, D3D11)"},
		},
	},
	{
		Key:      "macos",
		Name:     "macOS",
		Versions: []string{"14.2", "14.1", "14.0", "13.6", "13.5"},
		Devices:  []DeviceType{Desktop, Laptop},
		Browsers: []string{"chrome", "firefox", "safari", "edge"},
		Platforms: map[DeviceType][]string{
			Desktop: {"MacIntel"},
			Laptop:  {"MacIntel"},
		},
		UAToken: map[DeviceType]string{
			Desktop: "Macintosh; Intel Mac OS X {uversion}",
			Laptop:  "Macintosh; Intel Mac OS X {uversion}",
		},
		WebGL: []WebGL{
			{"Apple Inc.", "Apple M1"},
			{"Apple Inc.", "Apple M2"},
			{"Apple Inc.", "Apple M3"},
			{"Intel Inc.", "Intel(R) Iris(TM) Plus Graphics 655"},
		},
	},
	{
		Key:      "linux",
		Name:     "Linux",
		Versions: []string{"x86_64", "i686"},
		Devices:  []DeviceType{Desktop, Laptop},
		Browsers: []string{"chrome", "firefox", "edge"},
		Platforms: map[DeviceType][]string{
			Desktop: {"Linux {version}"},
			Laptop:  {"Linux {version}"},
		},
		UAToken: map[DeviceType]string{
			Desktop: "X11; Linux {version}",
			Laptop:  "X11; Linux {version}",
		},
		WebGL: []WebGL{
			{"Mesa/X.org", "Mesa Intel(R) UHD Graphics 620 (KBL GT2)"},
			{"Mesa/X.org", "AMD Radeon RX 6700 XT (navi22)"},
			{"NVIDIA Corporation", "NVIDIA GeForce GTX 1660/PCIe/SSE2"},
		},
	},
	{
		Key:      "android",
		Name:     "Android",
		Versions: []string{"14", "13", "12", "11", "10"},
		Devices:  []DeviceType{Mobile, Tablet},
		Browsers: []string{"chrome", "firefox", "edge"},
		Platforms: map[DeviceType][]string{
			Mobile: {"Linux armv8l", "Linux aarch64"},
			Tablet: {"Linux armv8l", "Linux aarch64"},
		},
		UAToken: map[DeviceType]string{
			Mobile: "Linux; Android {version}",
			Tablet: "Linux; Android {version}",
		},
		WebGL: []WebGL{
			{"Qualcomm", "Adreno (TM) 650"},
			{"Qualcomm", "Adreno (TM) 730"},
			{"ARM", "Mali-G78 MP14"},
			{"ARM", "Mali-G710 MC10"},
		},
	},
	{
		Key:      "ios",
		Name:     "iOS",
		Versions: []string{"17.2", "17.1", "17.0", "16.7", "16.6"},
		Devices:  []DeviceType{Mobile, Tablet},
		Browsers: []string{"safari", "chrome", "firefox", "edge"},
		Platforms: map[DeviceType][]string{
			Mobile: {"iPhone"},
			Tablet: {"iPad"},
		},
		UAToken: map[DeviceType]string{
			Mobile: "iPhone; CPU iPhone OS {uversion} like Mac OS X",
			Tablet: "iPad; CPU OS {uversion} like Mac OS X",
		},
		WebGL: []WebGL{
			{"Apple Inc.", "Apple GPU"},
		},
	},
}

const (
	chromeUA  = "Mozilla/5.0 ({os}) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/{version}{mobile} Safari/537.36"
	firefoxUA = "Mozilla/5.0 ({os}; rv:{version}) Gecko/20100101 Firefox/{version}"
	iosWebKit = "Mozilla/5.0 ({os}) AppleWebKit/605.1.15 (KHTML, like Gecko) "
)

type grammarKey struct {
	browser string
	os      string
}

var grammars = map[grammarKey]Grammar{
	{"chrome", "windows"}:  {chromeUA, "Blink"},
	{"chrome", "macos"}:    {chromeUA, "Blink"},
	{"chrome", "linux"}:    {chromeUA, "Blink"},
	{"chrome", "android"}:  {chromeUA, "Blink"},
	{"chrome", "ios"}:      {iosWebKit + "CriOS/{version} Mobile/15E148 Safari/604.1", "WebKit"},
	{"firefox", "windows"}: {firefoxUA, "Gecko"},
	{"firefox", "macos"}:   {firefoxUA, "Gecko"},
	{"firefox", "linux"}:   {firefoxUA, "Gecko"},
	{"firefox", "android"}: {"Mozilla/5.0 (Android {osversion}; {form}; rv:{version}) Gecko/{version} Firefox/{version}", "Gecko"},
	{"firefox", "ios"}:     {iosWebKit + "FxiOS/{version} Mobile/15E148 Safari/605.1.15", "WebKit"},
	{"safari", "macos"}:    {"Mozilla/5.0 ({os}) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/{version} Safari/605.1.15", "WebKit"},
	{"safari", "ios"}:      {iosWebKit + "Version/{version} Mobile/15E148 Safari/604.1", "WebKit"},
	{"edge", "windows"}:    {chromeUA + " Edg/{version}", "Blink"},
	{"edge", "macos"}:      {chromeUA + " Edg/{version}", "Blink"},
	{"edge", "linux"}:      {chromeUA + " Edg/{version}", "Blink"},
	{"edge", "android"}:    {chromeUA + " EdgA/{version}", "Blink"},
	{"edge", "ios"}:        {iosWebKit + "Version/17.0 EdgiOS/{version} Mobile/15E148 Safari/604.1", "WebKit"},
}

// BrowserKeys lists supported browser keys in a fixed order.
func BrowserKeys() []string {
	out := make([]string, len(browsers))
	for i, b := range browsers {
		out[i] = b.Key
	}
	return out
}

// OSKeys lists supported OS keys in a fixed order.
func OSKeys() []string {
	out := make([]string, len(operatingSystems))
	for i, o := range operatingSystems {
		out[i] = o.Key
	}
	return out
}

// Browser returns the table for a browser key, matched case-insensitively.
func Browser(name string) (BrowserTable, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, b := range browsers {
		if b.Key == key {
			return b, nil
		}
	}
	return BrowserTable{}, fmt.Errorf("%w: %q", ErrUnsupportedBrowser, name)
}

// OS returns the table for an OS key, matched case-insensitively.
func OS(name string) (OSTable, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, o := range operatingSystems {
		if o.Key == key {
			return o, nil
		}
	}
	return OSTable{}, fmt.Errorf("%w: %q", ErrUnsupportedOS, name)
}

// UserAgentGrammar returns the UA grammar for a browser on an OS. ok is false
// when the pair is not a real-world combination.
func UserAgentGrammar(browser, os string) (Grammar, bool) {
	g, ok := grammars[grammarKey{browser, os}]
	return g, ok
}
