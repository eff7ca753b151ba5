// Package clickscribe captures an on-screen label with a single modified
// click. A capture-phase hook installed into a browser page reports every
// ctrl/meta click; the label is derived from the clicked element's rendered
// text (falling back to its immediate parent) and handed to a local service by
// opening a new browsing context on the service's URL.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, chromedp/, goquery/).
package clickscribe
