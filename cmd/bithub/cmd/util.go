package cmd

import (
	"context"
	"github.com/kurumiimari/bithub/prompt"
	"github.com/spf13/cobra"
	"io"
)

type console struct {
	prompter *prompt.Prompter
	out      io.Writer
	trap     *prompt.Trap
}

type consoleFunc func(ctx context.Context, c *console) error

// withConsole runs fn inside the outermost interrupt scope. An interrupt that
// reaches this scope ends fn.
func withConsole(cmd *cobra.Command, fn consoleFunc) error {
	c := &console{
		prompter: prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()),
		out:      cmd.OutOrStdout(),
		trap:     prompt.NotifyTrap(),
	}
	defer c.prompter.Close()
	defer func() {
		if err := c.trap.Stop(); err != nil {
			cmdLogger.Warning("error stopping signal trap", "err", err)
		}
	}()

	ctx, release := c.trap.Scope(cmd.Context())
	defer release()
	return fn(ctx, c)
}

// mode runs fn in a nested scope so an interrupt ends fn and nothing else.
func (c *console) mode(ctx context.Context, fn consoleFunc) error {
	modeCtx, release := c.trap.Scope(ctx)
	defer release()
	return fn(modeCtx, c)
}
