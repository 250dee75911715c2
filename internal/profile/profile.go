// Package profile pairs an identity with a fingerprint under a short ID.
package profile

import (
	"context"
	"time"

	"github.com/zarlcorp/phantomid/internal/batch"
	"github.com/zarlcorp/phantomid/internal/fingerprint"
	"github.com/zarlcorp/phantomid/internal/identity"
	"github.com/zarlcorp/phantomid/internal/random"
	"github.com/zarlcorp/phantomid/internal/record"
)

// Profile is a saved or generated identity/fingerprint pair.
type Profile struct {
	ID          string                  `json:"id"`
	Identity    identity.Identity       `json:"identity"`
	Fingerprint fingerprint.Fingerprint `json:"fingerprint"`
	CreatedAt   time.Time               `json:"created_at"`
}

// Options combine the per-generator options.
type Options struct {
	Identity    identity.Options
	Fingerprint fingerprint.Options
}

// Record nests the identity and fingerprint records under their names.
func (p Profile) Record() record.Record {
	return record.NewBuilder().
		Set("id", p.ID).
		Set("created_at", p.CreatedAt.UTC().Format(time.RFC3339)).
		Set("identity", p.Identity.Record()).
		Set("fingerprint", p.Fingerprint.Record()).
		Build()
}

// Flat returns Record with nested keys prefixed, e.g. "identity.email".
func (p Profile) Flat() record.Record {
	return p.Record().Flatten("")
}

// Columns returns the CSV header for flattened profiles.
func Columns() []string {
	cols := []string{"id", "created_at"}
	for _, c := range identity.Columns {
		cols = append(cols, "identity."+c)
	}
	for _, c := range fingerprint.Columns {
		cols = append(cols, "fingerprint."+c)
	}
	return cols
}

// Generator combines an identity and a fingerprint generator.
type Generator struct {
	ids *identity.Generator
	fps *fingerprint.Generator
	rnd *random.Rand
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the source used for profile IDs.
func WithSource(src random.Source) Option {
	return func(g *Generator) { g.rnd = random.New(src) }
}

// WithClock sets the CreatedAt clock.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator creates a profile generator.
func NewGenerator(ids *identity.Generator, fps *fingerprint.Generator, opts ...Option) *Generator {
	g := &Generator{
		ids: ids,
		fps: fps,
		rnd: random.New(nil),
		now: time.Now,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Generate produces one profile. Either half failing fails the whole.
func (g *Generator) Generate(opts Options) (Profile, error) {
	id, err := g.ids.Generate(opts.Identity)
	if err != nil {
		return Profile{}, err
	}
	fp, err := g.fps.Generate(opts.Fingerprint)
	if err != nil {
		return Profile{}, err
	}
	return Profile{
		ID:          g.rnd.Hex(4),
		Identity:    id,
		Fingerprint: fp,
		CreatedAt:   g.now(),
	}, nil
}

// GenerateBatch produces n profiles on up to workers goroutines.
func (g *Generator) GenerateBatch(ctx context.Context, n, workers int, opts Options) ([]Profile, error) {
	return batch.Run(ctx, n, workers, func(context.Context, int) (Profile, error) {
		return g.Generate(opts)
	})
}
