package cli

import (
	"fmt"
)

// InitCmd creates the settings store and seeds a viewer identity.
type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	viewer, err := ctx.Store.GetViewer()
	if err != nil {
		return err
	}

	fmt.Printf("Initialized. You are %q (%s).\n", viewer.Name, viewer.ID)
	return nil
}
