package fingerprint

import (
	"fmt"
	"net"
	"net/netip"
	"slices"
	"strings"

	"github.com/zarlcorp/phantomid/internal/random"
	"github.com/zarlcorp/phantomid/internal/registry"
)

// Options constrain a Generate call. Empty fields are chosen at random
// among values compatible with the ones given.
type Options struct {
	DeviceType string
	Browser    string
	OS         string
}

// Generator produces fingerprints. It is safe for concurrent use when its
// source is.
type Generator struct {
	rnd *random.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source. The default is crypto/rand.
func WithSource(src random.Source) Option {
	return func(g *Generator) { g.rnd = random.New(src) }
}

// New creates a generator.
func New(opts ...Option) *Generator {
	g := &Generator{rnd: random.New(nil)}
	for _, o := range opts {
		o(g)
	}
	return g
}

// platform is one compatible device/OS/browser combination.
type platform struct {
	device  registry.DeviceType
	os      registry.OSTable
	browser registry.BrowserTable
}

// Generate produces one fingerprint with its hash filled in.
func (g *Generator) Generate(opts Options) (Fingerprint, error) {
	p, err := g.platform(opts)
	if err != nil {
		return Fingerprint{}, err
	}

	hw, err := registry.DeviceProfile(string(p.device))
	if err != nil {
		return Fingerprint{}, err
	}

	browserVersion := random.Pick(g.rnd, p.browser.Versions)
	osVersion := random.Pick(g.rnd, p.os.Versions)
	grammar, _ := registry.UserAgentGrammar(p.browser.Key, p.os.Key)

	res := random.Pick(g.rnd, hw.Resolutions)
	lang := random.Pick(g.rnd, registry.Languages)
	tz := random.Pick(g.rnd, registry.Timezones)
	gl := random.Pick(g.rnd, p.os.WebGL)

	f := Fingerprint{
		UserAgent:        userAgent(grammar, p, browserVersion, osVersion),
		BrowserName:      p.browser.Name,
		BrowserVersion:   browserVersion,
		BrowserEngine:    grammar.Engine,
		Platform:         strings.ReplaceAll(random.Pick(g.rnd, p.os.Platforms[p.device]), "{version}", osVersion),
		OSName:           p.os.Name,
		OSVersion:        osVersion,
		DeviceType:       p.device,
		ScreenResolution: res.String(),
		ScreenWidth:      res.Width,
		ScreenHeight:     res.Height,
		ColorDepth:       random.Pick(g.rnd, hw.ColorDepths),
		PixelRatio:       random.Pick(g.rnd, hw.PixelRatios),
		Language:         lang,
		Languages:        languages(lang),
		Timezone:         tz.Name,
		TimezoneOffset:   tz.OffsetMinutes,
		CPUCores:         random.Pick(g.rnd, hw.CPUCores),
		DeviceMemory:     random.Pick(g.rnd, hw.DeviceMemory),
		MaxTouchPoints:   random.Pick(g.rnd, hw.TouchPoints),
		WebGLVendor:      gl.Vendor,
		WebGLRenderer:    gl.Renderer,
		CanvasHash:       g.rnd.Hex(16),
		AudioHash:        g.rnd.Hex(16),
		IPAddress:        g.privateIP(),
		ConnectionType:   random.Pick(g.rnd, connectionTypes(p.device)),
		MACAddress:       g.mac(),
		DoNotTrack:       random.Pick(g.rnd, registry.DoNotTrack),
		CookiesEnabled:   g.rnd.IntN(20) != 0,
		LocalStorage:     g.rnd.IntN(20) != 0,
		SessionStorage:   g.rnd.IntN(20) != 0,
		IndexedDB:        g.rnd.IntN(20) != 0,
	}
	f.Hash = Hash(f.Record())
	return f, nil
}

// platform validates the requested values and picks one compatible
// combination among those matching them.
func (g *Generator) platform(opts Options) (platform, error) {
	var (
		device  registry.DeviceType
		os      *registry.OSTable
		browser *registry.BrowserTable
	)

	if opts.DeviceType != "" {
		d, err := registry.ParseDeviceType(opts.DeviceType)
		if err != nil {
			return platform{}, err
		}
		device = d
	}
	if opts.OS != "" {
		o, err := registry.OS(opts.OS)
		if err != nil {
			return platform{}, err
		}
		os = &o
	}
	if opts.Browser != "" {
		b, err := registry.Browser(opts.Browser)
		if err != nil {
			return platform{}, err
		}
		browser = &b
	}

	var candidates []platform
	for _, key := range registry.OSKeys() {
		o, _ := registry.OS(key)
		if os != nil && o.Key != os.Key {
			continue
		}
		for _, d := range o.Devices {
			if device != "" && d != device {
				continue
			}
			for _, bk := range o.Browsers {
				if browser != nil && bk != browser.Key {
					continue
				}
				b, _ := registry.Browser(bk)
				candidates = append(candidates, platform{device: d, os: o, browser: b})
			}
		}
	}

	if len(candidates) == 0 {
		return platform{}, fmt.Errorf("%w: device=%q browser=%q os=%q",
			ErrIncompatiblePlatform, opts.DeviceType, opts.Browser, opts.OS)
	}
	return random.Pick(g.rnd, candidates), nil
}

func userAgent(gr registry.Grammar, p platform, browserVersion, osVersion string) string {
	token := strings.NewReplacer(
		"{version}", osVersion,
		"{uversion}", strings.ReplaceAll(osVersion, ".", "_"),
	).Replace(p.os.UAToken[p.device])

	mobile := ""
	if p.device == registry.Mobile {
		mobile = " Mobile"
	}
	form := "Mobile"
	if p.device == registry.Tablet {
		form = "Tablet"
	}

	return strings.NewReplacer(
		"{os}", token,
		"{osversion}", osVersion,
		"{version}", browserVersion,
		"{mobile}", mobile,
		"{form}", form,
	).Replace(gr.Template)
}

// languages is the navigator.languages list for a primary tag, e.g.
// "fr-CA" gives "fr-CA,fr".
func languages(tag string) string {
	base, _, ok := strings.Cut(tag, "-")
	if !ok {
		return tag
	}
	return tag + "," + base
}

func connectionTypes(d registry.DeviceType) []string {
	return slices.DeleteFunc(slices.Clone(registry.ConnectionTypes), func(c string) bool {
		if d.Handheld() {
			return c == "ethernet"
		}
		return c == "4g" || c == "5g"
	})
}

// privateIP returns an address from one of the RFC 1918 ranges.
func (g *Generator) privateIP() string {
	var a [4]byte
	_, _ = g.rnd.Read(a[:])
	switch g.rnd.IntN(3) {
	case 0:
		a[0] = 10
	case 1:
		a[0], a[1] = 172, 16+a[1]%16
	default:
		a[0], a[1] = 192, 168
	}
	if a[3] == 0 || a[3] == 255 {
		a[3] = 1 + a[3]%254
	}
	return netip.AddrFrom4(a).String()
}

// mac returns a locally administered unicast address.
func (g *Generator) mac() string {
	b := make(net.HardwareAddr, 6)
	_, _ = g.rnd.Read(b)
	b[0] = (b[0] | 0x02) &^ 0x01
	return b.String()
}
