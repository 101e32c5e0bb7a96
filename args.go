package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/blogofile/blogofile/logging"
)

// GlobalOpts holds the options shared by every sub-command.
type GlobalOpts struct {
	SrcDir      string `short:"s" long:"src-dir" default:"." description:"Your site's source directory"`
	Verbose     []bool `short:"v" long:"verbose" description:"Be verbose; repeat (-vv) for debug output"`
	VeryVerbose bool   `long:"veryverbose" description:"Be extra verbose"`
	Version     func() `short:"V" long:"version" description:"Print the program version and exit"`
}

// IsVerbose reports whether a single level of verbosity was requested.
func (o *GlobalOpts) IsVerbose() bool {
	return len(o.Verbose) == 1 && !o.VeryVerbose
}

// IsVeryVerbose reports whether debug verbosity was requested, either
// through --veryverbose or by repeating -v.
func (o *GlobalOpts) IsVeryVerbose() bool {
	return o.VeryVerbose || len(o.Verbose) > 1
}

// ArgsParser parses the command line and dispatches the selected sub-command.
type ArgsParser interface {
	Parse() error
	WriteHelp(w io.Writer)
}

type Args struct {
	opts GlobalOpts
}

var NewArgs = func() ArgsParser {
	return &Args{}
}

func (a *Args) Parse() error {
	parser := a.setupParser()
	if _, err := parser.ParseArgs(os.Args[1:]); err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return fmt.Errorf("could not parse command line arguments\n%s", err.Error())
	}
	return nil
}

// WriteHelp prints the top-level usage, including the list of sub-commands.
func (a *Args) WriteHelp(w io.Writer) {
	a.setupParser().WriteHelp(w)
}

func (a *Args) setupParser() *flags.Parser {
	a.opts.Version = showVersion
	parser := flags.NewParser(&a.opts, flags.Default)
	parser.CommandHandler = func(command flags.Commander, cmdArgs []string) error {
		if command == nil {
			return nil
		}
		setVerbosity(&a.opts)
		return command.Execute(cmdArgs)
	}
	setupHelpCommand(parser, &a.opts)
	setupInitCommand(parser, &a.opts)
	setupBuildCommand(parser, &a.opts)
	setupServeCommand(parser, &a.opts)
	setupInfoCommand(parser, &a.opts)
	setupPluginsCommands(parser, &a.opts)
	setupFiltersCommands(parser, &a.opts)
	return parser
}

// setVerbosity raises the process log level from the verbosity flags.
// --veryverbose wins when both are set; without either flag the level
// stays at its default.
var setVerbosity = func(opts *GlobalOpts) {
	if opts.IsVeryVerbose() {
		logging.SetLevel(slog.LevelDebug)
	} else if opts.IsVerbose() {
		logging.SetLevel(slog.LevelInfo)
	}
}
