// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tmdb-pick/internal/forward"
	"github.com/pdiddy/tmdb-pick/internal/pick"
	"github.com/pdiddy/tmdb-pick/internal/prompt"
	"github.com/pdiddy/tmdb-pick/internal/render"
	"github.com/pdiddy/tmdb-pick/internal/tmdb"
)

// isInteractive is swapped in tests.
var isInteractive = prompt.Interactive

var searchCmd = &cobra.Command{
	Use:   "search [title...]",
	Short: "Search TMDB and pick a movie or show",
	Long: `Search queries the TMDB multi-search endpoint for a title and lists the
movies and shows it finds; people are left out. Pick one from the menu, or
with --pick N, to print its TMDB identifier. With --forward (or
forward.enabled in the config) the identifier is also posted to the
forwarding API.

Without title arguments the title is read from an interactive prompt.
Use --json or --yaml to print the choices without picking.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("pick", 0, "pick the N-th result (1-based) without a menu")
	searchCmd.Flags().Bool("json", false, "print the choices as JSON and exit")
	searchCmd.Flags().Bool("yaml", false, "print the choices as YAML and exit")
	searchCmd.Flags().Bool("table", false, "print the choices as a table and exit")
	searchCmd.Flags().Bool("forward", false, "forward the picked identifier to the forwarding API")
	searchCmd.Flags().Bool("plain", false, "disable colors and styling")
	searchCmd.Flags().String("language", defaultLanguage, "language of titles and overviews")
	searchCmd.Flags().Bool("include-adult", false, "include adult results")
	searchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 10s)")

	searchCmd.MarkFlagsMutuallyExclusive("json", "yaml", "table")
	searchCmd.MarkFlagsMutuallyExclusive("pick", "json")
	searchCmd.MarkFlagsMutuallyExclusive("pick", "yaml")
	searchCmd.MarkFlagsMutuallyExclusive("pick", "table")

	rootCmd.AddCommand(searchCmd)
}

func listFormat(cmd *cobra.Command) (render.Format, bool) {
	for _, f := range []render.Format{render.FormatJSON, render.FormatYAML, render.FormatTable} {
		if on, _ := cmd.Flags().GetBool(string(f)); on {
			return f, true
		}
	}
	return "", false
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := resolveConfig(cmd)
	position, _ := cmd.Flags().GetInt("pick")
	plain, _ := cmd.Flags().GetBool("plain")
	format, listOnly := listFormat(cmd)
	interactive := isInteractive()

	if position < 0 {
		return fmt.Errorf("--pick must be 1 or greater")
	}

	printer := render.Printer{Out: cmd.OutOrStdout(), Styled: interactive && !plain}

	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		if !interactive {
			return fmt.Errorf("provide a title to search for: no terminal for the prompt")
		}
		q, err := prompt.ReadLine("Search for", cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		query = q
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	p := &pick.Pipeline{
		Searcher: tmdb.NewClient(cfg.Search),
		Printer:  printer,
		Logger:   slog.Default().With("command", "search"),
	}

	if listOnly {
		entries, err := p.Choices(ctx, query)
		if err != nil {
			return err
		}
		return printer.Choices(entries, format)
	}

	switch {
	case position > 0:
		p.Selector = prompt.IndexSelector{Position: position}
	case interactive:
		p.Selector = prompt.FuzzySelector{Prompt: "Pick a title: ", Header: "Results for " + query}
	default:
		return fmt.Errorf("no terminal for the selection menu: use --pick N, --json, or --yaml")
	}

	if cfg.Forward.Enabled {
		fwd, err := forward.NewClient(cfg.Forward)
		if err != nil {
			return err
		}
		p.Forwarder = fwd
	}

	_, err := p.Run(ctx, query)
	if errors.Is(err, prompt.ErrCancelled) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Selection cancelled.")
	}
	return err
}
