package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/studiowebux/pickli/internal/config"
	"github.com/studiowebux/pickli/internal/history"
	"github.com/studiowebux/pickli/internal/parser"
	"github.com/studiowebux/pickli/internal/selection"
	"github.com/studiowebux/pickli/internal/tui"
	"github.com/studiowebux/pickli/internal/types"
	"gopkg.in/yaml.v3"
)

// ErrCancelled is returned when the user cancels the dialog. The caller
// exits non-zero without printing anything, keeping cancellation
// distinct from an empty confirmed selection.
var ErrCancelled = errors.New("selection cancelled")

// RunOptions contains the resolved options for one dialog invocation
type RunOptions struct {
	FilePath  string   // item source file; "" or "-" means stdin
	Format    string   // lines, json, jsonc, yaml; "" = detect
	Query     string   // JMESPath expression applied to structured input
	Title     string
	Mode      types.SelectionMode
	Preselect []string // ids checked before the dialog opens
	Filter    string   // initial filter text
	Sort      bool     // sort items by name before showing
	Fuzzy     bool     // fuzzy filter matching instead of substring
	Output    string   // lines, json, yaml
	History   bool     // log the completed session
}

// Run loads the candidate items, drives the dialog, and prints the
// confirmed selection to stdout
func Run(opts RunOptions) error {
	items, source, fromStdin, err := loadItems(opts)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("no items to select from (source: %s)", source)
	}

	if opts.Sort {
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
		})
	}

	if err := applyPreselect(items, opts.Preselect); err != nil {
		return err
	}

	var sessOpts []selection.Option
	if opts.Fuzzy {
		sessOpts = append(sessOpts, selection.WithMatcher(selection.FuzzyMatcher{}))
	}
	sess, err := selection.New(items, opts.Mode, sessOpts...)
	if err != nil {
		return fmt.Errorf("failed to build selection session: %w", err)
	}

	runOpts := tui.RunOptions{InitialFilter: opts.Filter}
	if fromStdin || !stdoutIsTerminal() {
		// The terminal must stay usable for the dialog while stdout stays
		// clean for the result
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return fmt.Errorf("cannot open terminal for interactive dialog: %w", err)
		}
		defer tty.Close()
		if fromStdin {
			runOpts.Input = tty
		}
		runOpts.Output = os.Stderr
	}

	result, err := tui.Run(sess, opts.Title, runOpts)
	if err != nil {
		return fmt.Errorf("dialog failed: %w", err)
	}

	if opts.History {
		if err := saveHistory(opts, source, len(items), result); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save history: %v\n", err)
		}
	}

	if !result.Confirmed() {
		return ErrCancelled
	}

	return PrintResult(os.Stdout, result, opts.Output)
}

// loadItems reads and parses the item source
func loadItems(opts RunOptions) (items []types.Item, source string, fromStdin bool, err error) {
	var data []byte
	format := opts.Format

	if opts.FilePath == "" || opts.FilePath == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", false, fmt.Errorf("failed to read stdin: %w", err)
		}
		source = "stdin"
		fromStdin = true
		if format == "" {
			format = parser.FormatLines
		}
	} else {
		data, err = os.ReadFile(opts.FilePath)
		if err != nil {
			return nil, "", false, fmt.Errorf("failed to read file: %w", err)
		}
		source = opts.FilePath
		if format == "" {
			format = parser.DetectFormat(opts.FilePath)
		}
	}

	if opts.Query != "" {
		items, err = parser.ParseQuery(data, format, opts.Query)
	} else {
		items, err = parser.Parse(data, format)
	}
	if err != nil {
		return nil, "", false, err
	}
	return items, source, fromStdin, nil
}

// applyPreselect seeds the checked flag for the given ids
func applyPreselect(items []types.Item, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	index := make(map[string]int, len(items))
	for i, it := range items {
		index[it.ID] = i
	}
	for _, id := range ids {
		i, ok := index[id]
		if !ok {
			return fmt.Errorf("preselect id %q not in item set", id)
		}
		items[i].Checked = true
	}
	return nil
}

// PrintResult writes the confirmed selection in the requested format
func PrintResult(w io.Writer, result types.Result, format string) error {
	switch format {
	case "", "lines":
		for _, id := range result.SelectedIDs {
			fmt.Fprintln(w, id)
		}
		return nil
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprint(w, string(data))
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func saveHistory(opts RunOptions, source string, itemCount int, result types.Result) error {
	mgr, err := history.NewManager(config.DatabasePath)
	if err != nil {
		return err
	}
	defer mgr.Close()
	return mgr.Save(opts.Title, source, opts.Mode, itemCount, result)
}

// stdoutIsTerminal checks if stdout is a terminal (not piped)
func stdoutIsTerminal() bool {
	stat, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
