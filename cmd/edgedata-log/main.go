// Command edgedata-log is a tool for viewing and analyzing edge data
// capture files.
//
// Capture files are written by edgedata-app when started with the
// -capture flag.
//
// Usage:
//
//	edgedata-log <command> [flags] <file.elog>
//
// Commands:
//
//	view     View capture file in human-readable format
//	export   Export capture file to JSON, JSONL or CSV format
//	filter   Filter capture file and write to new file
//	stats    Show statistics about the capture file
//
// Examples:
//
//	# View all events
//	edgedata-log view run.elog
//
//	# View only data events of one topic
//	edgedata-log view -category data -topic Motor.Speed run.elog
//
//	# Export to CSV
//	edgedata-log export -format csv -o run.csv run.elog
//
//	# Keep one session
//	edgedata-log filter -session 3f2a9c1e-... -o session.elog run.elog
//
//	# Show statistics
//	edgedata-log stats run.elog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/siapp-sdk/edgedata-go/cmd/edgedata-log/commands"
)

const usage = `edgedata-log - Edge Data Capture Analyzer

Usage:
  edgedata-log <command> [flags] <file.elog>

Commands:
  view     View capture file in human-readable format
  export   Export capture file to JSON, JSONL or CSV format
  filter   Filter capture file and write to new file
  stats    Show statistics about the capture file

Use "edgedata-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func newFlagSet(name, synopsis, usageLine string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "edgedata-log %s - %s\n\nUsage:\n  %s\n\nFlags:\n", name, synopsis, usageLine)
		fs.PrintDefaults()
	}
	return fs
}

// filterFlags registers the shared filter flags on fs.
func filterFlags(fs *flag.FlagSet, opts *commands.FilterOptions) {
	fs.StringVar(&opts.SessionID, "session", "", "Filter by session ID")
	fs.StringVar(&opts.Topic, "topic", "", "Filter by topic")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	fs.StringVar(&opts.Direction, "direction", "", "Filter by direction (in, out)")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (state, data, sync, message, error)")
}

// parsePath parses args and returns the capture file argument.
func parsePath(fs *flag.FlagSet, args []string) string {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runView(args []string) {
	fs := newFlagSet("view", "View capture file in human-readable format", "edgedata-log view [flags] <file.elog>")
	var opts commands.FilterOptions
	filterFlags(fs, &opts)
	path := parsePath(fs, args)

	filter, err := opts.Filter()
	if err != nil {
		fail(err)
	}
	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := newFlagSet("export", "Export capture file to JSON, JSONL or CSV format", "edgedata-log export [flags] <file.elog>")
	format := fs.String("format", "jsonl", "Output format (json, jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	path := parsePath(fs, args)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := newFlagSet("filter", "Filter capture file and write to new file", "edgedata-log filter [flags] <file.elog>")
	var opts commands.FilterOptions
	fs.StringVar(&opts.Output, "o", "", "Output file (required)")
	filterFlags(fs, &opts)
	path := parsePath(fs, args)

	if opts.Output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}
	if err := commands.RunFilter(path, opts, os.Stdout); err != nil {
		fail(err)
	}
}

func runStats(args []string) {
	fs := newFlagSet("stats", "Show statistics about the capture file", "edgedata-log stats <file.elog>")
	path := parsePath(fs, args)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}
