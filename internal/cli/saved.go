package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zarlcorp/phantomid/internal/record"
	"github.com/zarlcorp/phantomid/internal/registry"
)

func newListCommand(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			ps, err := s.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				recs := make([]record.Record, len(ps))
				for i, p := range ps {
					recs[i] = p.Record()
				}
				return printJSON(out, recs)
			}

			if len(ps) == 0 {
				fmt.Fprintln(out, "no saved profiles")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tDEVICE\tCREATED")
			for _, p := range ps {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					p.ID,
					p.Identity.FullName,
					p.Identity.Email,
					p.Fingerprint.DeviceType,
					p.CreatedAt.Format("2006-01-02"),
				)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func newForgetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "forget ID",
		Short: "Delete a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			id := args[0]
			if err := s.Delete(id); err != nil {
				return fmt.Errorf("forget: %w", err)
			}
			slog.Info("profile deleted", "id", id)
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
			return nil
		},
	}
}

func newLocalesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List supported locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(registry.Locales(), "\n"))
			return err
		},
	}
}

func newVersionCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "phantomid %s\n", app.Version)
			return err
		},
	}
}
