package identity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/gosimple/unidecode"
	"github.com/zarlcorp/phantomid/internal/random"
	"github.com/zarlcorp/phantomid/internal/registry"
)

// Generator produces identities for a default locale. It holds no mutable
// state beyond its random source and is safe for concurrent use when the
// source is.
type Generator struct {
	locale registry.LocaleTable
	rnd    *random.Rand
	now    func() time.Time
	luhn   bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source. The default is crypto/rand.
func WithSource(src random.Source) Option {
	return func(g *Generator) { g.rnd = random.New(src) }
}

// WithClock sets the time used for ages, birthdates and card expiry.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithLuhn makes credit card numbers pass the Luhn checksum.
func WithLuhn(on bool) Option {
	return func(g *Generator) { g.luhn = on }
}

// New creates a generator for the given default locale.
func New(locale string, opts ...Option) (*Generator, error) {
	tbl, err := registry.Lookup(locale)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		locale: tbl,
		rnd:    random.New(nil),
		now:    time.Now,
	}
	for _, o := range opts {
		o(g)
	}
	return g, nil
}

// Locale returns the default locale code.
func (g *Generator) Locale() string {
	return g.locale.Code
}

// Generate produces one identity. It fails on an invalid age range, an
// unknown locale override, or a gender other than male/female.
func (g *Generator) Generate(opts Options) (Identity, error) {
	ages := DefaultAges
	if opts.Ages != nil {
		ages = *opts.Ages
	}
	if err := ages.validate(); err != nil {
		return Identity{}, err
	}

	tbl := g.locale
	if opts.Locale != "" {
		t, err := registry.Lookup(opts.Locale)
		if err != nil {
			return Identity{}, err
		}
		tbl = t
	}

	gender, err := ParseGender(opts.Gender)
	if err != nil {
		return Identity{}, err
	}
	if gender == "" {
		gender = random.Pick(g.rnd, []Gender{Male, Female})
	}

	first, last := g.name(tbl, gender)
	today := civilDate(g.now())
	birth, age := g.birthdate(today, ages)
	username := g.username(first, last)

	id := Identity{
		FullName:   first + " " + last,
		FirstName:  first,
		LastName:   last,
		Gender:     gender,
		Birthdate:  birth,
		Age:        age,
		Username:   username,
		Email:      username + "@" + random.Pick(g.rnd, registry.EmailProviders),
		Phone:      g.rnd.Template(tbl.PhoneFormat),
		Address:    g.address(tbl),
		City:       random.Pick(g.rnd, tbl.Cities),
		PostalCode: g.rnd.Template(tbl.PostalFormat),
		Country:    random.Pick(g.rnd, tbl.Countries),
		NationalID: g.rnd.Template(tbl.NationalIDFormat),
		Locale:     tbl.Code,
	}

	if opts.IncludeDocuments {
		id.Documents = &Documents{
			PassportNumber: g.rnd.Template(tbl.PassportFormat),
			DriverLicense:  g.rnd.Template(tbl.DriverLicenseFormat),
		}
	}

	if opts.IncludeFinancial {
		id.Financial = g.financial(tbl, today)
	}

	if opts.IncludeProfessional {
		id.Professional = g.professional(tbl)
	}

	pic, err := g.avatar()
	if err != nil {
		return Identity{}, err
	}
	id.ProfilePicURL = pic

	return id, nil
}

func (g *Generator) name(tbl registry.LocaleTable, gender Gender) (first, last string) {
	names := tbl.MaleNames
	if gender == Female {
		names = tbl.FemaleNames
	}
	return random.Pick(g.rnd, names), random.Pick(g.rnd, tbl.LastNames)
}

// birthdate picks a civil date uniformly among the days on which a person
// born then is between ages.Min and ages.Max years old at today.
func (g *Generator) birthdate(today time.Time, ages AgeRange) (time.Time, int) {
	earliest := today.AddDate(-(ages.Max + 1), 0, 1)
	for ageAt(earliest, today) > ages.Max {
		earliest = earliest.AddDate(0, 0, 1)
	}
	for ageAt(earliest.AddDate(0, 0, -1), today) <= ages.Max {
		earliest = earliest.AddDate(0, 0, -1)
	}
	latest := today.AddDate(-ages.Min, 0, 0)
	for ageAt(latest, today) < ages.Min {
		latest = latest.AddDate(0, 0, -1)
	}

	days := int(latest.Sub(earliest).Hours() / 24)
	birth := earliest.AddDate(0, 0, g.rnd.Between(0, days))
	return birth, ageAt(birth, today)
}

// username is "<first>.<last><NN>" reduced to ASCII letters and digits.
func (g *Generator) username(first, last string) string {
	return asciiName(first) + "." + asciiName(last) + fmt.Sprintf("%02d", g.rnd.IntN(100))
}

func (g *Generator) address(tbl registry.LocaleTable) string {
	r := strings.NewReplacer(
		"{number}", strconv.Itoa(g.rnd.Between(1, 999)),
		"{street}", random.Pick(g.rnd, tbl.Streets),
	)
	return r.Replace(tbl.AddressFormat)
}

func (g *Generator) financial(tbl registry.LocaleTable, today time.Time) *Financial {
	number := g.cardNumber()
	cvvLen := 3
	if len(number) == 15 {
		cvvLen = 4
	}
	expiry := today.AddDate(0, g.rnd.Between(1, 60), 0)

	return &Financial{
		CreditCard:       number,
		CreditCardExpiry: fmt.Sprintf("%02d/%02d", int(expiry.Month()), expiry.Year()%100),
		CreditCardCVV:    g.rnd.Digits(cvvLen),
		BankAccount:      g.rnd.Template(tbl.BankAccountFormat),
	}
}

func (g *Generator) professional(tbl registry.LocaleTable) *Professional {
	company := random.Pick(g.rnd, tbl.LastNames) + " " + random.Pick(g.rnd, tbl.CompanySuffixes)
	host := slug.Make(company)
	if host == "" {
		host = "company"
	}
	return &Professional{
		Company:  company,
		JobTitle: random.Pick(g.rnd, registry.JobTitles),
		Website:  "https://www." + host + "." + tbl.TLD,
	}
}

func (g *Generator) avatar() (string, error) {
	seed, err := uuid.NewRandomFromReader(g.rnd)
	if err != nil {
		return "", fmt.Errorf("avatar seed: %w", err)
	}
	tpl := random.Pick(g.rnd, registry.AvatarServices)
	return strings.ReplaceAll(tpl, "{seed}", seed.String()), nil
}

// asciiName transliterates s and keeps only [a-z0-9].
func asciiName(s string) string {
	t := strings.ToLower(unidecode.Unidecode(s))
	var b strings.Builder
	for _, r := range t {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "user"
	}
	return b.String()
}

// civilDate truncates t to midnight UTC of its calendar date.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ageAt returns completed years between birth and on.
func ageAt(birth, on time.Time) int {
	age := on.Year() - birth.Year()
	if on.Month() < birth.Month() || (on.Month() == birth.Month() && on.Day() < birth.Day()) {
		age--
	}
	return age
}
