package clickscribe

// Element is a reference into a live (or captured) document.
type Element interface {
	// RenderedText returns the element's text as the user sees it,
	// not its raw markup.
	RenderedText() string

	// Parent returns the immediate parent element, or nil at the root.
	Parent() Element
}

// ClickEvent is a single click delivered to a document.
// The Target is not owned by the event and is only valid while the click
// is being handled.
type ClickEvent struct {
	// ID correlates log lines for one click. It carries no semantics.
	ID string

	CtrlKey bool
	MetaKey bool
	Target  Element

	defaultPrevented   bool
	propagationStopped bool
}

// PreventDefault cancels the click's default action.
func (e *ClickEvent) PreventDefault() { e.defaultPrevented = true }

// StopPropagation keeps the click from reaching further handlers.
func (e *ClickEvent) StopPropagation() { e.propagationStopped = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *ClickEvent) DefaultPrevented() bool { return e.defaultPrevented }

// PropagationStopped reports whether StopPropagation was called.
func (e *ClickEvent) PropagationStopped() bool { return e.propagationStopped }

// Qualifies reports whether the click was made with the control key or the
// platform command key held.
func Qualifies(e *ClickEvent) bool {
	return e != nil && (e.CtrlKey || e.MetaKey)
}

// Ensure Node implements Element at compile time.
var _ Element = (*Node)(nil)

// Node is an Element whose rendered text was read ahead of time,
// typically inside the page at dispatch time.
type Node struct {
	Text string
	Up   *Node
}

// RenderedText returns the captured text.
func (n *Node) RenderedText() string {
	if n == nil {
		return ""
	}
	return n.Text
}

// Parent returns the captured parent, or nil if none was captured.
func (n *Node) Parent() Element {
	if n == nil || n.Up == nil {
		return nil
	}
	return n.Up
}
