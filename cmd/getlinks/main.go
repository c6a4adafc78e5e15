package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/getlinks"
	"github.com/fwojciec/getlinks/format"
	"github.com/fwojciec/getlinks/fs"
	"github.com/fwojciec/getlinks/goquery"
	glregexp "github.com/fwojciec/getlinks/regexp"
	glslog "github.com/fwojciec/getlinks/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read for the document name "-". Set before calling Run().
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("getlinks"),
		kong.Description("Extract absolute https links from anchor tags in HTML documents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	filter, err := getlinks.NewURLFilter(cli.Include, cli.Exclude)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", getlinks.ErrorMessage(err))
		return err
	}

	formatter, err := format.New(cli.Format)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", getlinks.ErrorMessage(err))
		return err
	}

	extractor, err := newExtractor(cli.Parser, filter)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", getlinks.ErrorMessage(err))
		return err
	}

	if cli.Unique && (cli.FPRate <= 0 || cli.FPRate >= 1) {
		err := getlinks.Errorf(getlinks.EINVALID, "false positive rate must be between 0 and 1, got %v", cli.FPRate)
		fmt.Fprintf(stderr, "error: %s\n", getlinks.ErrorMessage(err))
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	// Wire dependencies
	reader := fs.NewDocumentReader(
		fs.WithStdin(m.Stdin),
		fs.WithMaxBytes(cli.MaxBytes),
	)
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Source:    glslog.NewLoggingSource(reader, logger),
		Extractor: glslog.NewLoggingExtractor(extractor, logger),
		Formatter: formatter,
	}

	cmd := &ExtractCmd{
		Names:       cli.Files,
		MaxLinks:    cli.Max,
		Unique:      cli.Unique,
		FPRate:      cli.FPRate,
		Concurrency: cli.Concurrency,
	}

	return cmd.Run(deps)
}

// newExtractor returns the link extractor for the named parser.
func newExtractor(parser string, filter *getlinks.URLFilter) (getlinks.LinkExtractor, error) {
	switch parser {
	case ParserRegexp, "":
		return glregexp.NewExtractor(glregexp.WithFilter(filter)), nil
	case ParserGoquery:
		return goquery.NewExtractor(goquery.WithFilter(filter)), nil
	default:
		return nil, getlinks.Errorf(getlinks.EINVALID, "unknown parser %q (want regexp or goquery)", parser)
	}
}

// newLogger returns a text logger on w when verbose, otherwise a logger
// that discards everything.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, nil))
}
