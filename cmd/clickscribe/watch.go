package main

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Run executes the watch command. Each URL is watched in its own tab until
// the context is cancelled; a failing tab stops the others.
func (c *WatchCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Ctrl/Cmd-click a label to send it to %s. Press Ctrl-C to stop.\n", c.Endpoint)

	g, ctx := errgroup.WithContext(deps.Ctx)
	for _, url := range c.URLs {
		url := url
		g.Go(func() error {
			if err := deps.Watcher.Watch(ctx, url); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("watching %s: %w", url, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	return nil
}
