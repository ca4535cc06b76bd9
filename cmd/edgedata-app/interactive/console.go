// Package interactive provides the interactive console of edgedata-app.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/siapp-sdk/edgedata-go/pkg/client"
)

// Console is a readline driven command loop over a client.
type Console struct {
	rl *readline.Instance
}

// New creates the console. Output meant for the terminal while the
// console runs should go through Stdout and Stderr.
func New() (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "edgedata> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Console{rl: rl}, nil
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("discover"),
	readline.PcItem("read"),
	readline.PcItem("write"),
	readline.PcItem("syncread"),
	readline.PcItem("syncwrite"),
	readline.PcItem("pending"),
	readline.PcItem("status"),
	readline.PcItem("connect"),
	readline.PcItem("disconnect"),
	readline.PcItem("help"),
	readline.PcItem("quit"),
)

// Stdout returns a writer that properly coordinates with the readline input.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Stderr returns a writer that properly coordinates with the readline input.
func (c *Console) Stderr() io.Writer {
	return c.rl.Stderr()
}

// Run starts the command loop. It returns when the user quits, input
// ends or ctx is cancelled.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc, cl *client.Client) {
	defer c.rl.Close()

	cmds := &Commands{Client: cl, Out: c.rl.Stdout(), Ctx: ctx}
	cmds.Help()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		if !cmds.Exec(strings.TrimSpace(line)) {
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}
	}
}
