package main

import (
	"fmt"

	"github.com/jessevdk/go-flags"
)

type helpCmd struct {
	parser *flags.Parser
	Args   struct {
		Command []string `positional-arg-name:"COMMAND" description:"Sub-commands to show help for"`
	} `positional-args:"yes"`
}

var helpCommand = helpCmd{}

func setupHelpCommand(parser *flags.Parser, opts *GlobalOpts) {
	helpCommand.parser = parser
	helpCommand.Args.Command = nil
	parser.AddCommand(
		"help",
		"Shows help for a command",
		"Shows the top-level help, or the help for each of the named sub-commands",
		&helpCommand,
	)
}

// doHelp receives the parser and the full sub-command set so it can print
// usage for an arbitrary named sub-command.
var doHelp = func(commands []string, parser *flags.Parser, subcommands []*flags.Command) error {
	if len(commands) == 0 {
		parser.WriteHelp(stdout)
		return nil
	}
	for _, name := range commands {
		var found *flags.Command
		for _, c := range subcommands {
			if c.Name == name {
				found = c
				break
			}
		}
		if found == nil {
			return fmt.Errorf("%s is not a blogofile command", name)
		}
		fmt.Fprintf(stdout, "%s: %s\n\n%s\n", found.Name, found.ShortDescription, found.LongDescription)
	}
	return nil
}

func (c *helpCmd) Execute(args []string) error {
	return doHelp(c.Args.Command, c.parser, c.parser.Commands())
}
