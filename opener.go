package clickscribe

import "context"

// Opener opens a URL in a new top-level browsing context.
// The current page is never replaced.
type Opener interface {
	// Open starts the navigation and returns without waiting for the new
	// context to load.
	Open(ctx context.Context, url string) error
}

// ClickHandler handles one click reported by a page.
type ClickHandler interface {
	HandleClick(ctx context.Context, ev *ClickEvent) Result
}

// Watcher installs the click hook into a browser page and feeds every
// reported click to a ClickHandler.
type Watcher interface {
	// Watch opens url in a new page with the hook installed and blocks
	// until ctx is done. It returns ctx.Err() on a normal stop.
	Watch(ctx context.Context, url string) error

	// Close releases browser resources.
	// Must be called when the Watcher is no longer needed.
	Close() error
}
