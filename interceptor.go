package clickscribe

import (
	"context"
	"io"
	"log/slog"
)

// Outcome is the terminal state of one handled click.
type Outcome int

const (
	// OutcomeRejected means the click was made without ctrl or meta held.
	// Nothing was read from the page.
	OutcomeRejected Outcome = iota

	// OutcomeNoLabel means neither the target nor its parent had text.
	// The click was left to the page.
	OutcomeNoLabel

	// OutcomeNavigated means a new browsing context was opened on URL and
	// the click was suppressed.
	OutcomeNavigated
)

// String returns the outcome name used in logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeNoLabel:
		return "no_label"
	case OutcomeNavigated:
		return "navigated"
	default:
		return "unknown"
	}
}

// Result describes how a click was handled.
type Result struct {
	Outcome Outcome
	Label   string
	URL     string
}

// Ensure Interceptor implements ClickHandler at compile time.
var _ ClickHandler = (*Interceptor)(nil)

// Interceptor gates a click, extracts its label and opens the label on the
// endpoint. It keeps no state between clicks and is safe for concurrent use.
type Interceptor struct {
	endpoint string
	opener   Opener
	logger   *slog.Logger
}

// InterceptorOption configures an Interceptor.
type InterceptorOption func(*Interceptor)

// WithEndpoint overrides DefaultEndpoint.
func WithEndpoint(endpoint string) InterceptorOption {
	return func(i *Interceptor) {
		i.endpoint = endpoint
	}
}

// WithLogger sets the logger used for diagnostic output.
func WithLogger(logger *slog.Logger) InterceptorOption {
	return func(i *Interceptor) {
		i.logger = logger
	}
}

// NewInterceptor returns an Interceptor that opens labels with opener.
//
// Returns EINVALID if the configured endpoint is not usable.
func NewInterceptor(opener Opener, opts ...InterceptorOption) (*Interceptor, error) {
	i := &Interceptor{
		endpoint: DefaultEndpoint,
		opener:   opener,
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.opener == nil {
		return nil, Errorf(EINVALID, "opener is required")
	}
	if err := ValidateEndpoint(i.endpoint); err != nil {
		return nil, err
	}
	if i.logger == nil {
		i.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return i, nil
}

// Endpoint returns the base URL labels are sent to.
func (i *Interceptor) Endpoint() string {
	return i.endpoint
}

// HandleClick runs the gate, extraction and navigation stages for one click.
// When a label is found the click's default action is prevented and its
// propagation stopped; in every other case the event is left untouched.
//
// The opener's error is not observed: navigation is fire-and-forget.
func (i *Interceptor) HandleClick(ctx context.Context, ev *ClickEvent) Result {
	if !Qualifies(ev) {
		return Result{Outcome: OutcomeRejected}
	}

	label, ok := ExtractLabel(ev.Target)
	if !ok {
		i.logger.Info("no text found in clicked element", "click", ev.ID)
		return Result{Outcome: OutcomeNoLabel}
	}
	i.logger.Info("detected label", "click", ev.ID, "label", label)

	// Endpoint was validated on construction.
	target := withTitle(i.endpoint, label)
	_ = i.opener.Open(ctx, target)

	ev.PreventDefault()
	ev.StopPropagation()

	return Result{Outcome: OutcomeNavigated, Label: label, URL: target}
}
