package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/siapp-sdk/edgedata-go/pkg/client"
)

// Commands executes console commands against a client.
type Commands struct {
	Client *client.Client
	Out    io.Writer
	Ctx    context.Context
}

// Exec runs one command line. It returns false when the console should
// exit.
func (c *Commands) Exec(input string) bool {
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		c.Help()

	case "discover", "d":
		c.cmdDiscover()

	case "read", "r":
		c.cmdRead(args)

	case "write", "w":
		c.cmdWrite(args)

	case "syncread", "sr":
		c.report("sync read", c.Client.SyncRead())

	case "syncwrite", "sw":
		c.report("sync write", c.Client.SyncWrite())

	case "pending", "p":
		c.cmdPending()

	case "status", "s":
		c.cmdStatus()

	case "connect", "c":
		c.report("connect", c.Client.Connect(c.ctx()))

	case "disconnect":
		st := c.Client.Disconnect(c.ctx())
		fmt.Fprintf(c.Out, "disconnect: %s\n", st)

	case "quit", "exit", "q":
		return false

	default:
		fmt.Fprintf(c.Out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

// Help prints the command overview.
func (c *Commands) Help() {
	fmt.Fprintln(c.Out, `
Edge Data Commands:
  Connection:
    connect                 - Connect and discover
    disconnect              - Disconnect from the runtime
    status                  - Show connection state

  Data:
    discover                - List discovered topics
    read <topic>            - Read a topic snapshot
    write <topic> <value|-> [flags] [timestamp]
                            - Stage a write; flags are comma separated
                              (e.g. VALID_VALUE or FLAG_OVERFLOW,TEST)
    syncread                - Refresh all read snapshots
    syncwrite               - Commit all staged writes
    pending                 - List staged write handles

  General:
    help                    - Show this help
    quit                    - Exit`)
}

func (c *Commands) ctx() context.Context {
	if c.Ctx != nil {
		return c.Ctx
	}
	return context.Background()
}

func (c *Commands) report(op string, ok bool) {
	if ok {
		fmt.Fprintf(c.Out, "%s: ok\n", op)
	} else {
		fmt.Fprintf(c.Out, "%s: failed\n", op)
	}
}

func (c *Commands) cmdDiscover() {
	topics := c.Client.Discover()
	if topics == nil {
		fmt.Fprintln(c.Out, "Not discovered (connect first)")
		return
	}
	for _, t := range topics.Read {
		fmt.Fprintf(c.Out, "  READ   %s\n", t)
	}
	for _, t := range topics.Write {
		fmt.Fprintf(c.Out, "  WRITE  %s\n", t)
	}
}

func (c *Commands) cmdRead(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.Out, "Usage: read <topic>")
		return
	}
	p, err := c.Client.ReadErr(args[0])
	if err != nil {
		fmt.Fprintf(c.Out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(c.Out, p)
}

func (c *Commands) cmdWrite(args []string) {
	topic, req, err := ParseWrite(args)
	if err != nil {
		fmt.Fprintf(c.Out, "Error: %v\n", err)
		return
	}
	p, err := c.Client.WriteErr(topic, req)
	if err != nil {
		fmt.Fprintf(c.Out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.Out, "staged %s\n", p)
}

func (c *Commands) cmdPending() {
	pending := c.Client.Pending()
	if len(pending) == 0 {
		fmt.Fprintln(c.Out, "No pending writes")
		return
	}
	for _, h := range pending {
		fmt.Fprintf(c.Out, "  %d\n", h)
	}
}

func (c *Commands) cmdStatus() {
	fmt.Fprintf(c.Out, "State:   %s\n", c.Client.State())
	if id := c.Client.SessionID(); id != "" {
		fmt.Fprintf(c.Out, "Session: %s\n", id)
	}
	fmt.Fprintf(c.Out, "Pending: %d\n", len(c.Client.Pending()))
}

// ParseWrite parses "<topic> <value|-> [flags] [timestamp]". A value of
// "-" writes the quality only.
func ParseWrite(args []string) (string, client.WriteRequest, error) {
	var req client.WriteRequest
	if len(args) < 2 || len(args) > 4 {
		return "", req, errors.New("usage: write <topic> <value|-> [flags] [timestamp]")
	}

	if args[1] != "-" {
		v, err := ParseNumber(args[1])
		if err != nil {
			return "", req, err
		}
		req.Value = v
	}
	if len(args) > 2 && args[2] != "-" {
		req.Quality = strings.Split(args[2], ",")
	}
	if len(args) > 3 {
		ts, err := strconv.ParseInt(args[3], 10, 64)
		if err != nil {
			return "", req, fmt.Errorf("invalid timestamp %q", args[3])
		}
		req.Timestamp = &ts
	}
	return args[0], req, nil
}

// ParseNumber returns the narrowest Go number for s: int64, then uint64,
// then float64.
func ParseNumber(s string) (any, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	return nil, fmt.Errorf("invalid number %q", s)
}
