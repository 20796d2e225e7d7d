package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mvoggen/grove/pkg/forest"
	forestio "github.com/mvoggen/grove/pkg/io"
	"github.com/mvoggen/grove/pkg/render/dot"
)

// Output formats for the parse command.
const (
	formatText = "text"
	formatJSON = "json"
	formatDOT  = "dot"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	sort   bool   // sort alphabetically at every depth
	locale string // BCP 47 tag for sorting (overrides config)
	format string // text, json or dot
	output string // output file path (stdout if empty)
}

// parseCommand creates the parse command.
// The argument is auto-detected as a file path, "-" for stdin, or
// literal notation text.
func (c *CLI) parseCommand() *cobra.Command {
	opts := parseOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "parse <notation|file|->",
		Short: "Parse grove notation and print the forest",
		Long: `Parse grove notation into a forest and print it.

The argument is a literal notation string, a path to a file containing
notation, or "-" to read notation from stdin.

Examples:
  grove parse "a, b(c, d), e"
  grove parse fields.grove --sort
  cat fields.grove | grove parse - --format json
  grove parse "x(y(z))" --format dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.sort, "sort", "s", false, "sort alphabetically at every depth")
	cmd.Flags().StringVar(&opts.locale, "locale", "", "BCP 47 locale for sorting (overrides config)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json or dot")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func (c *CLI) runParse(cmd *cobra.Command, arg string, opts parseOpts) error {
	logger := loggerFromContext(cmd.Context())

	input, err := readInput(arg)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	items := forest.Parse(input)
	if opts.sort {
		if err := c.sortForest(items, opts.locale); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Parsed %d items", forest.CountAll(items)))

	out, cleanup, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer cleanup()

	switch opts.format {
	case formatText:
		forest.Fprint(out, items)
	case formatJSON:
		if err := forestio.WriteJSON(items, out); err != nil {
			return err
		}
	case formatDOT:
		if _, err := io.WriteString(out, dot.ToDOT(items)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format: %s (want text, json or dot)", opts.format)
	}

	if opts.output != "" {
		printSuccess("Wrote %s forest", opts.format)
		printFile(opts.output)
	}
	return nil
}

// sortForest sorts in place using the flag locale, the config locale,
// or the Unicode default collation, in that order of preference.
func (c *CLI) sortForest(items []*forest.Item, locale string) error {
	if locale == "" {
		locale = c.Config.Locale
	}
	if locale == "" {
		forest.Sort(items)
		return nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	forest.SortCollated(items, collate.New(tag))
	return nil
}

// readInput resolves the notation argument: stdin for "-", file
// contents for an existing path, the literal text otherwise.
func readInput(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	if looksLikeFile(arg) {
		data, err := os.ReadFile(arg)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", arg, err)
		}
		return string(data), nil
	}
	return arg, nil
}

// looksLikeFile reports whether the argument names an existing file
// rather than literal notation. Notation text contains commas or
// parentheses far more often than valid paths do, so an os.Stat probe
// is only taken for arguments that could plausibly be paths.
func looksLikeFile(arg string) bool {
	if strings.ContainsAny(arg, "(),") {
		return false
	}
	info, err := os.Stat(arg)
	return err == nil && !info.IsDir()
}

// openOutput returns stdout or a created file for path, with a cleanup
// function that closes only what openOutput opened.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
