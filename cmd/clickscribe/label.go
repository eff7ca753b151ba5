package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/clickscribe"
	"github.com/fwojciec/clickscribe/goquery"
	"github.com/google/uuid"
)

// Run executes the label command.
func (c *LabelCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := goquery.NewDocument(f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clickscribe.ErrorMessage(err))
		return err
	}

	target, err := doc.Find(c.Selector)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clickscribe.ErrorMessage(err))
		return err
	}

	var opener clickscribe.Opener = nopOpener{}
	if c.Send {
		opener = deps.Opener
	}
	interceptor, err := clickscribe.NewInterceptor(opener,
		clickscribe.WithEndpoint(c.Endpoint),
		clickscribe.WithLogger(deps.Logger),
	)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clickscribe.ErrorMessage(err))
		return err
	}

	ev := &clickscribe.ClickEvent{
		ID:      uuid.NewString(),
		CtrlKey: c.Modifier == "ctrl",
		MetaKey: c.Modifier == "meta",
		Target:  target,
	}
	res := interceptor.HandleClick(deps.Ctx, ev)

	switch res.Outcome {
	case clickscribe.OutcomeRejected:
		fmt.Fprintln(deps.Stdout, "Click not captured: hold ctrl or cmd to capture a label.")
	case clickscribe.OutcomeNoLabel:
		fmt.Fprintln(deps.Stdout, "No text found in clicked element.")
	case clickscribe.OutcomeNavigated:
		fmt.Fprintf(deps.Stdout, "Label: %s\n", res.Label)
		fmt.Fprintf(deps.Stdout, "URL:   %s\n", res.URL)
	}
	return nil
}

// nopOpener stands in for a browser when the label is only displayed.
type nopOpener struct{}

func (nopOpener) Open(context.Context, string) error { return nil }
