// Package cli implements the inspect command-line interface.
//
// The command decodes JSON, YAML or TOML documents from files or standard
// input and renders each document with the inspect package, either as HTML
// markup or as plain terminal text. Logging uses charmbracelet/log and is
// switched to debug level by --verbose.
package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bjaus/inspect"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds the streams and logger shared by all commands.
type CLI struct {
	Logger *log.Logger
	Stdin  io.Reader
	Stdout io.Writer
}

// New creates a CLI reading stdin, writing documents to stdout and logs to
// stderr.
func New(stdin io.Reader, stdout, stderr io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(stderr, level),
		Stdin:  stdin,
		Stdout: stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

type options struct {
	from    string
	to      string
	quote   string
	space   string
	border  string
	color   string
	verbose bool
}

// RootCommand creates the inspect command.
func (c *CLI) RootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "inspect [file...]",
		Short: "Render documents as an inspect-style tree",
		Long: `Inspect decodes JSON, YAML or TOML documents and renders each one as an
indented tree with circular references annotated. Without file arguments the
document is read from standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, opts, args)
		},
	}

	names := make([]string, 0, 3)
	for _, f := range inspect.Formats() {
		names = append(names, f.String())
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.from, "from", "f", "", "input format: "+strings.Join(names, ", ")+" (default: by extension, else json)")
	flags.StringVarP(&opts.to, "to", "t", "html", "output style: html or text")
	flags.StringVar(&opts.quote, "quote", "single", "string quotes: single or double")
	flags.StringVar(&opts.space, "space", "literal", "html indentation: literal or entity")
	flags.StringVar(&opts.border, "border", "none", "text frame: none, rounded, ascii, heavy or double")
	flags.StringVar(&opts.color, "color", "auto", "text colour: auto, always or never")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	return cmd
}

func (c *CLI) run(cmd *cobra.Command, opts options, args []string) error {
	logger := loggerFromContext(cmd.Context())
	style, err := c.style(opts)
	if err != nil {
		return err
	}
	in := &inspect.Inspector{Style: style, Elements: inspect.NativeElements}
	logger.Debug("style selected", "to", opts.to, "style", fmt.Sprintf("%T", style))

	if len(args) == 0 {
		return c.render(cmd, in, "-", c.Stdin, opts.from)
	}
	for _, path := range args {
		if err := c.renderFile(cmd, in, path, opts.from); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLI) renderFile(cmd *cobra.Command, in *inspect.Inspector, path, from string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return c.render(cmd, in, path, f, from)
}

func (c *CLI) render(cmd *cobra.Command, in *inspect.Inspector, name string, r io.Reader, from string) error {
	logger := loggerFromContext(cmd.Context())
	format, err := sourceFormat(name, from)
	if err != nil {
		return err
	}
	docs, err := inspect.Decode(r, format)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	logger.Debug("decoded", "source", name, "format", format, "documents", len(docs))
	return in.WriteIter(c.Stdout, slices.Values(docs))
}

// sourceFormat picks the --from format, then the file extension, then JSON.
func sourceFormat(name, from string) (inspect.Format, error) {
	if from != "" {
		return inspect.ParseFormat(from)
	}
	if f, ok := inspect.FormatFor(name); ok {
		return f, nil
	}
	return inspect.JSON, nil
}

func (c *CLI) style(opts options) (inspect.Style, error) {
	quote, err := inspect.ParseQuote(opts.quote)
	if err != nil {
		return nil, err
	}
	switch opts.to {
	case "html":
		space, err := inspect.ParseSpace(opts.space)
		if err != nil {
			return nil, err
		}
		return inspect.HTML{QuoteMode: quote, SpaceMode: space}, nil
	case "text":
		border, err := inspect.ParseBorder(opts.border)
		if err != nil {
			return nil, err
		}
		colored, err := c.colored(opts.color)
		if err != nil {
			return nil, err
		}
		return inspect.Terminal{QuoteMode: quote, Color: colored, Border: border}, nil
	}
	return nil, fmt.Errorf("%w: output %q", inspect.ErrUnsupportedStyle, opts.to)
}

// colored resolves the --color flag. "auto" colours only a terminal stdout.
func (c *CLI) colored(mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := c.Stdout.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())), nil
	}
	return false, fmt.Errorf("%w: color %q", inspect.ErrUnsupportedStyle, mode)
}
