package main

import (
	"fmt"

	"github.com/fwojciec/clickscribe"
)

// Run executes the url command.
func (c *URLCmd) Run(deps *Dependencies) error {
	label := clickscribe.NormalizeLabel(c.Label)
	u, err := clickscribe.TargetURL(c.Endpoint, label)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clickscribe.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, u)
	return nil
}
