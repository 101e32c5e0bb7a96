package main

import (
	"github.com/jessevdk/go-flags"

	"github.com/blogofile/blogofile/filter"
)

type filtersCmd struct{}

type filtersListCmd struct {
	opts *GlobalOpts
}

var filtersListCommand = filtersListCmd{}

func setupFiltersCommands(parser *flags.Parser, opts *GlobalOpts) {
	filtersListCommand.opts = opts
	c, _ := parser.AddCommand(
		"filters",
		"Filter tools",
		"Tools for working with blogofile content filters",
		&filtersCmd{},
	)
	c.AddCommand(
		"list",
		"Lists the installed filters",
		"Lists the name and description of every installed content filter",
		&filtersListCommand,
	)
}

var doListFilters = func(opts *GlobalOpts) error {
	return filter.List(stdout)
}

func (c *filtersListCmd) Execute(args []string) error {
	return doListFilters(c.opts)
}
