package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/locprof"
	"github.com/fwojciec/locprof/capture"
	"github.com/fwojciec/locprof/goquery"
	lochttp "github.com/fwojciec/locprof/http"
	"github.com/fwojciec/locprof/rod"
	locslog "github.com/fwojciec/locprof/slog"
	"github.com/fwojciec/locprof/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(). Overridden by --db.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CaptureService locprof.CaptureService
	Fetcher        locprof.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var err error
	if m.Fetcher != nil {
		err = m.Fetcher.Close()
	}
	if m.DB != nil {
		if cerr := m.DB.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("locprof"),
		kong.Description("Extract structured records from rendered profile pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'locprof --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	deps.Extractor = locslog.NewLoggingExtractor(goquery.NewExtractor(), logger)

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	if m.CaptureService == nil {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set LOCPROF_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		m.CaptureService = sqlite.NewCaptureService(m.DB)
	}
	defer m.Close()
	deps.Captures = locslog.NewLoggingCaptureService(m.CaptureService, logger)

	cmd := kongCtx.Selected().Name

	var opts *FetchOptions
	switch {
	case cmd == "extract" && isURL(cli.Extract.Source):
		opts = &cli.Extract.FetchOptions
	case cmd == "capture":
		opts = &cli.Capture.FetchOptions
	}

	if opts != nil {
		if m.Fetcher == nil {
			m.Fetcher, err = newFetcher(*opts)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or pass --control-url")
				return fmt.Errorf("failed to start browser: %w", err)
			}
		}
		deps.Fetcher = locslog.NewLoggingFetcher(m.Fetcher, logger)
	}

	if cmd == "capture" {
		deps.Capturer = &capture.Capturer{
			Fetcher:     deps.Fetcher,
			Extractor:   deps.Extractor,
			RateLimiter: capture.NewDomainLimiter(cli.Capture.RPS),
			Concurrency: cli.Capture.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// newFetcher returns a browser fetcher when a browser is requested and a
// plain HTTP fetcher otherwise.
func newFetcher(opts FetchOptions) (locprof.Fetcher, error) {
	if !opts.Browser && opts.ControlURL == "" {
		return lochttp.NewFetcher(lochttp.WithTimeout(opts.Timeout)), nil
	}

	var browserOpts []rod.ManagerOption
	if opts.ControlURL != "" {
		browserOpts = append(browserOpts, rod.WithControlURL(opts.ControlURL))
	}
	return rod.NewFetcher(
		rod.WithFetchTimeout(opts.Timeout),
		rod.WithSettleTime(opts.Settle),
		rod.WithBrowser(browserOpts...),
	)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "locprof.db"
	}
	dir := filepath.Join(home, ".locprof")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "locprof.db")
}
