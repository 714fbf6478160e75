package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/julianstephens/habits/internal/server"
)

// ServeCmd runs the bundled reference server on the configured
// host/port.
type ServeCmd struct{}

func (c *ServeCmd) Run(ctx *Context) error {
	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", ctx.Client.Host, ctx.Client.Port)
	return server.New().Run(runCtx, addr)
}
