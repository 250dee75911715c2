// Package cli implements phantomid's command-line interface.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/phantomid/internal/config"
	"github.com/zarlcorp/phantomid/internal/fingerprint"
	"github.com/zarlcorp/phantomid/internal/identity"
	"github.com/zarlcorp/phantomid/internal/profile"
	"github.com/zarlcorp/phantomid/internal/record"
	"github.com/zarlcorp/phantomid/internal/store"
)

// App holds what the commands share.
type App struct {
	Config  config.Config
	Version string

	// Password returns the master password. firstRun asks for a new one.
	// The returned bytes are erased after the store is opened.
	Password func(firstRun bool) ([]byte, error)

	// RunTUI is started when phantomid runs without a subcommand.
	RunTUI func(ctx context.Context) error
}

// NewRootCommand creates the root cobra command.
func NewRootCommand(app *App) *cobra.Command {
	var (
		logLevel  = app.Config.LogLevel.String()
		logFormat = app.Config.LogFormat
	)

	root := &cobra.Command{
		Use:           "phantomid",
		Short:         "Generate synthetic identities and browser fingerprints",
		Long:          "phantomid generates synthetic identities and consistent browser/device fingerprints for testing.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			logger, err := SetupLogger(level, logFormat, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			slog.Debug("command started", "command", cmd.Name())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.RunTUI == nil {
				return cmd.Help()
			}
			return app.RunTUI(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", logFormat, "log format (text, json)")

	root.AddCommand(
		newIdentityCommand(app),
		newFingerprintCommand(app),
		newProfileCommand(app),
		newBatchCommand(app),
		newListCommand(app),
		newForgetCommand(app),
		newLocalesCommand(),
		newVersionCommand(app),
	)

	return root
}

// generators are built per command so flag overrides apply.
type generators struct {
	ids      *identity.Generator
	fps      *fingerprint.Generator
	profiles *profile.Generator
}

func (a *App) generators(luhn bool) (generators, error) {
	src := a.Config.Source()

	ids, err := identity.New(a.Config.Locale, identity.WithSource(src), identity.WithLuhn(luhn))
	if err != nil {
		return generators{}, err
	}
	fps := fingerprint.New(fingerprint.WithSource(src))

	return generators{
		ids:      ids,
		fps:      fps,
		profiles: profile.NewGenerator(ids, fps, profile.WithSource(src)),
	}, nil
}

// openStore asks for the master password and opens the store in the data
// directory. The password bytes are erased before returning.
func (a *App) openStore() (*store.Store, error) {
	if a.Password == nil {
		return nil, fmt.Errorf("no password prompt configured")
	}

	dir := a.Config.DataDir
	pass, err := a.Password(store.IsFirstRun(dir))
	if err != nil {
		return nil, err
	}
	defer zcrypto.Erase(pass)

	s, err := store.OpenDir(dir, pass)
	if err != nil {
		return nil, err
	}
	slog.Debug("store opened", "dir", dir)
	return s, nil
}

func printRecord(w io.Writer, r record.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range r.Fields() {
		fmt.Fprintf(tw, "  %s:\t%s\n", f.Name, record.Format(f.Value))
	}
	return tw.Flush()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
