package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/clickscribe"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Watcher clickscribe.Watcher
	Opener  clickscribe.Opener
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log every click at debug level"`

	Watch WatchCmd `cmd:"" help:"Open pages in a browser and capture ctrl/cmd-clicked labels"`
	Label LabelCmd `cmd:"" help:"Show the label a ctrl/cmd-click would capture in a saved HTML page"`
	URL   URLCmd   `cmd:"" name:"url" help:"Print the capture URL for a label"`
}

// EndpointFlag is shared by commands that build capture URLs.
type EndpointFlag struct {
	Endpoint string `short:"e" default:"${endpoint}" env:"CLICKSCRIBE_ENDPOINT" help:"Local service receiving labels"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	URLs       []string `arg:"" name:"url" help:"Pages to watch, one tab each"`
	Driver     string   `short:"d" enum:"rod,chromedp" default:"rod" help:"Browser automation driver (rod, chromedp)"`
	Headless   bool     `help:"Run the browser without a window"`
	ControlURL string   `name:"control-url" help:"Attach to a running browser (DevTools URL or port)"`
	EndpointFlag `embed:""`
}

// LabelCmd is the "label" subcommand.
type LabelCmd struct {
	File     string `arg:"" type:"existingfile" help:"Saved HTML page"`
	Selector string `short:"s" required:"" help:"CSS selector of the clicked element"`
	Modifier string `short:"m" enum:"ctrl,meta,none" default:"ctrl" help:"Modifier held during the click (ctrl, meta, none)"`
	Send     bool   `help:"Deliver the label to the endpoint"`
	EndpointFlag `embed:""`
}

// URLCmd is the "url" subcommand.
type URLCmd struct {
	Label string `arg:"" help:"Label text"`
	EndpointFlag `embed:""`
}
