package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/zarlcorp/phantomid/internal/batch"
	"github.com/zarlcorp/phantomid/internal/export"
	"github.com/zarlcorp/phantomid/internal/fingerprint"
	"github.com/zarlcorp/phantomid/internal/identity"
	"github.com/zarlcorp/phantomid/internal/profile"
	"github.com/zarlcorp/phantomid/internal/record"
)

// ErrUnknownKind is returned for a batch kind other than identity,
// fingerprint or profile.
var ErrUnknownKind = errors.New("unknown record kind")

type identityFlags struct {
	locale       string
	gender       string
	minAge       int
	maxAge       int
	financial    bool
	professional bool
	documents    bool
	luhn         bool
}

func (f *identityFlags) register(cmd *cobra.Command, app *App) {
	fs := cmd.Flags()
	fs.StringVar(&f.locale, "locale", "", "locale code (default from PHANTOMID_LOCALE)")
	fs.StringVar(&f.gender, "gender", "", "force gender (male, female)")
	fs.IntVar(&f.minAge, "min-age", identity.DefaultAges.Min, "minimum age")
	fs.IntVar(&f.maxAge, "max-age", identity.DefaultAges.Max, "maximum age")
	fs.BoolVar(&f.financial, "financial", false, "include card and bank data")
	fs.BoolVar(&f.professional, "professional", false, "include company, job title and website")
	fs.BoolVar(&f.documents, "documents", false, "include passport and driver license numbers")
	fs.BoolVar(&f.luhn, "luhn", app.Config.Luhn, "make card numbers pass the Luhn check")
}

func (f identityFlags) options() identity.Options {
	return identity.Options{
		IncludeFinancial:    f.financial,
		IncludeProfessional: f.professional,
		IncludeDocuments:    f.documents,
		Ages:                &identity.AgeRange{Min: f.minAge, Max: f.maxAge},
		Locale:              f.locale,
		Gender:              f.gender,
	}
}

type fingerprintFlags struct {
	device  string
	browser string
	os      string
}

func (f *fingerprintFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.device, "device", "", "device type (Desktop, Laptop, Mobile, Tablet)")
	fs.StringVar(&f.browser, "browser", "", "browser (chrome, firefox, safari, edge)")
	fs.StringVar(&f.os, "os", "", "operating system (windows, macos, linux, android, ios)")
}

func (f fingerprintFlags) options() fingerprint.Options {
	return fingerprint.Options{DeviceType: f.device, Browser: f.browser, OS: f.os}
}

func newIdentityCommand(app *App) *cobra.Command {
	var (
		idf    identityFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Generate a synthetic identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gens, err := app.generators(idf.luhn)
			if err != nil {
				return err
			}
			id, err := gens.ids.Generate(idf.options())
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), id.Record(), asJSON)
		},
	}

	idf.register(cmd, app)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func newFingerprintCommand(app *App) *cobra.Command {
	var (
		fpf    fingerprintFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Generate a synthetic browser fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gens, err := app.generators(app.Config.Luhn)
			if err != nil {
				return err
			}
			fp, err := gens.fps.Generate(fpf.options())
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), fp.Record(), asJSON)
		},
	}

	fpf.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func newProfileCommand(app *App) *cobra.Command {
	var (
		idf    identityFlags
		fpf    fingerprintFlags
		asJSON bool
		save   bool
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Generate an identity with a matching fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gens, err := app.generators(idf.luhn)
			if err != nil {
				return err
			}
			p, err := gens.profiles.Generate(profile.Options{Identity: idf.options(), Fingerprint: fpf.options()})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if err := printJSON(out, p.Record()); err != nil {
					return err
				}
			} else if err := printRecord(out, p.Flat()); err != nil {
				return err
			}

			if !save {
				return nil
			}

			s, err := app.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Save(p); err != nil {
				return err
			}
			slog.Info("profile saved", "id", p.ID)
			fmt.Fprintf(cmd.ErrOrStderr(), "saved %s\n", p.ID)
			return nil
		},
	}

	idf.register(cmd, app)
	fpf.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "save to the encrypted store")
	return cmd
}

func newBatchCommand(app *App) *cobra.Command {
	var (
		idf     identityFlags
		fpf     fingerprintFlags
		count   int
		workers int
		kind    string
		format  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate many records and export them as JSON, YAML or CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("%w: --count must be at least 1", batch.ErrInvalidCount)
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			gens, err := app.generators(idf.luhn)
			if err != nil {
				return err
			}

			columns, recs, err := generateBatch(cmd, gens, kind, f, count, workers, idf, fpf)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if outPath != "" {
				file, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer file.Close()
				w = file
			}

			if err := export.Write(w, f, columns, recs); err != nil {
				return err
			}
			slog.Info("batch exported", "kind", kind, "count", len(recs), "format", f, "out", outPath)
			return nil
		},
	}

	idf.register(cmd, app)
	fpf.register(cmd)
	fs := cmd.Flags()
	fs.IntVar(&count, "count", 10, "number of records")
	fs.IntVar(&workers, "workers", app.Config.Workers, "concurrent generators")
	fs.StringVar(&kind, "kind", "profile", "record kind (identity, fingerprint, profile)")
	fs.StringVar(&format, "format", "json", "output format (json, yaml, csv)")
	fs.StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	return cmd
}

// generateBatch returns the CSV columns and the records for one batch.
// Profiles are flattened for CSV and nested for JSON.
func generateBatch(cmd *cobra.Command, gens generators, kind string, f export.Format, n, workers int, idf identityFlags, fpf fingerprintFlags) ([]string, []record.Record, error) {
	ctx := cmd.Context()

	switch kind {
	case "identity":
		opts := idf.options()
		recs, err := batch.Run(ctx, n, workers, func(context.Context, int) (record.Record, error) {
			id, err := gens.ids.Generate(opts)
			return id.Record(), err
		})
		return identity.Columns, recs, err

	case "fingerprint":
		opts := fpf.options()
		recs, err := batch.Run(ctx, n, workers, func(context.Context, int) (record.Record, error) {
			fp, err := gens.fps.Generate(opts)
			return fp.Record(), err
		})
		return fingerprint.Columns, recs, err

	case "profile":
		ps, err := gens.profiles.GenerateBatch(ctx, n, workers, profile.Options{Identity: idf.options(), Fingerprint: fpf.options()})
		if err != nil {
			return nil, nil, err
		}
		recs := make([]record.Record, len(ps))
		for i, p := range ps {
			if f == export.CSV {
				recs[i] = p.Flat()
			} else {
				recs[i] = p.Record()
			}
		}
		return profile.Columns(), recs, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

func output(w io.Writer, r record.Record, asJSON bool) error {
	if asJSON {
		return printJSON(w, r)
	}
	return printRecord(w, r)
}
