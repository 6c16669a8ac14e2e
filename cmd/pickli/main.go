package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/studiowebux/pickli/internal/cli"
	"github.com/studiowebux/pickli/internal/config"
	"github.com/studiowebux/pickli/internal/history"
	"github.com/studiowebux/pickli/internal/types"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, cli.ErrCancelled) {
			// Nothing on stdout, non-zero exit: scripts can tell a
			// cancellation from an empty confirmed selection
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pickli [file]",
	Short: "pickli - select items from a list in your terminal",
	Long: `pickli shows a modal selection dialog for a list of items: a live
filter box, a checkbox list, select-all/select-none shortcuts, and a
confirm action that prints the checked subset to stdout.

Items come from a file, stdin, or a structured document narrowed with a
JMESPath query. Plain text input treats each line as one item; JSON,
JSONC, and YAML input accepts arrays of strings or {id, name, checked}
objects.

Examples:
  ls | pickli                          # Pick files from stdin
  pickli views.json                    # Pick from a JSON item file
  pickli --mode single sheets.yaml     # Radio-style single selection
  pickli data.json -q 'users[].name'   # Extract candidates via JMESPath
  pickli todo.txt -o json              # Structured result on stdout
  cat hosts | pickli --preselect web1  # Seed initial checked state`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}

		opts := cli.RunOptions{
			Format:    flagFormat,
			Query:     flagQuery,
			Title:     flagTitle,
			Preselect: flagPreselect,
			Filter:    flagFilter,
			Sort:      settings.Sort,
			Fuzzy:     settings.Fuzzy,
			Output:    settings.Output,
			History:   settings.History,
		}
		if len(args) > 0 {
			opts.FilePath = args[0]
		}

		// Flags override settings only when explicitly set
		mode := settings.Mode
		if cmd.Flags().Changed("mode") {
			mode = flagMode
		}
		opts.Mode = types.SelectionMode(strings.ToLower(mode))
		if !opts.Mode.Valid() {
			return fmt.Errorf("invalid mode %q (expected single or multiple)", mode)
		}

		if cmd.Flags().Changed("sort") {
			opts.Sort = flagSort
		}
		if cmd.Flags().Changed("fuzzy") {
			opts.Fuzzy = flagFuzzy
		}
		if cmd.Flags().Changed("output") {
			opts.Output = flagOutput
		}
		if cmd.Flags().Changed("history") {
			opts.History = flagHistory
		}

		return cli.Run(opts)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past dialog invocations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		mgr, err := history.NewManager(config.DatabasePath)
		if err != nil {
			return err
		}
		defer mgr.Close()

		entries, err := mgr.Load()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No history entries")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s  %-9s  %-8s  %d/%d selected  %s (%s)\n",
				e.Timestamp, e.Outcome, e.Mode, e.SelectedCount, e.ItemCount, e.Title, e.Source)
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		mgr, err := history.NewManager(config.DatabasePath)
		if err != nil {
			return err
		}
		defer mgr.Close()

		if err := mgr.Clear(); err != nil {
			return err
		}
		fmt.Println("History cleared")
		return nil
	},
}

// Flags for the root command
var (
	flagMode      string
	flagTitle     string
	flagFormat    string
	flagQuery     string
	flagPreselect []string
	flagFilter    string
	flagSort      bool
	flagFuzzy     bool
	flagOutput    string
	flagHistory   bool
)

func init() {
	rootCmd.Flags().StringVarP(&flagMode, "mode", "m", "multiple", "selection mode: single or multiple")
	rootCmd.Flags().StringVarP(&flagTitle, "title", "t", "Select Items", "dialog title")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "item format: lines, json, jsonc, yaml (default: detect)")
	rootCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "JMESPath expression extracting items from structured input")
	rootCmd.Flags().StringArrayVarP(&flagPreselect, "preselect", "p", nil, "item id to check initially (repeatable)")
	rootCmd.Flags().StringVar(&flagFilter, "filter", "", "initial filter text")
	rootCmd.Flags().BoolVar(&flagSort, "sort", false, "sort items by name before showing the dialog")
	rootCmd.Flags().BoolVar(&flagFuzzy, "fuzzy", false, "fuzzy filter matching instead of substring")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "lines", "output format: lines, json, yaml")
	rootCmd.Flags().BoolVar(&flagHistory, "history", false, "log this invocation to the history database")

	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
