package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/clickscribe"
	"github.com/fwojciec/clickscribe/chromedp"
	schttp "github.com/fwojciec/clickscribe/http"
	"github.com/fwojciec/clickscribe/rod"
	scslog "github.com/fwojciec/clickscribe/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Watcher used by the watch command. Set before calling Run() to
	// replace the browser-backed watcher.
	Watcher clickscribe.Watcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Watcher != nil {
		return m.Watcher.Close()
	}
	return nil
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
		kong.Name("clickscribe"),
		kong.Description("Capture on-screen labels with a ctrl/cmd-click and send them to a local service"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"endpoint": clickscribe.DefaultEndpoint},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'clickscribe --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire command-specific dependencies based on command
	switch strings.Fields(kongCtx.Command())[0] {
	case "watch":
		if m.Watcher == nil {
			w, err := newWatcher(&cli.Watch, deps.Logger)
			if err != nil {
				return err
			}
			m.Watcher = w
		}
		defer m.Close()
		deps.Watcher = rod.NewLoggingWatcher(m.Watcher, deps.Logger)

	case "label":
		if cli.Label.Send {
			deps.Opener = scslog.NewLoggingOpener(schttp.NewOpener(), deps.Logger)
		}
	}

	return kongCtx.Run(deps)
}

// newWatcher starts a browser with the selected driver and wires the
// interceptor so that labels open in new tabs of that browser.
func newWatcher(c *WatchCmd, logger *slog.Logger) (clickscribe.Watcher, error) {
	switch c.Driver {
	case "chromedp":
		var opts []chromedp.BrowserOption
		opts = append(opts, chromedp.WithHeadless(c.Headless))
		if c.ControlURL != "" {
			opts = append(opts, chromedp.WithRemoteURL(c.ControlURL))
		}
		browser, err := chromedp.NewBrowser(opts...)
		if err != nil {
			return nil, browserError(err)
		}

		handler, err := newHandler(chromedp.NewOpener(browser), c.Endpoint, logger)
		if err != nil {
			_ = browser.Close()
			return nil, err
		}
		return chromedp.NewWatcher(browser, handler, chromedp.WithLogger(logger)), nil

	default:
		opts := []rod.ManagerOption{rod.WithHeadless(c.Headless)}
		if c.ControlURL != "" {
			opts = append(opts, rod.WithControlURL(c.ControlURL))
		}
		manager, err := rod.NewBrowserManager(opts...)
		if err != nil {
			return nil, browserError(err)
		}

		handler, err := newHandler(rod.NewOpener(manager.Browser()), c.Endpoint, logger)
		if err != nil {
			_ = manager.Close()
			return nil, err
		}
		return rod.NewWatcher(manager, handler, rod.WithLogger(logger)), nil
	}
}

func newHandler(opener clickscribe.Opener, endpoint string, logger *slog.Logger) (clickscribe.ClickHandler, error) {
	interceptor, err := clickscribe.NewInterceptor(
		scslog.NewLoggingOpener(opener, logger),
		clickscribe.WithEndpoint(endpoint),
		clickscribe.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	return scslog.NewLoggingClickHandler(interceptor, logger), nil
}

func browserError(err error) error {
	return fmt.Errorf("failed to start browser: %w. Hint: Chrome or Chromium must be installed, or pass --control-url", err)
}
