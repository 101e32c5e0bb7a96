package main

import (
	"github.com/jessevdk/go-flags"

	"github.com/blogofile/blogofile/plugin"
)

type pluginsCmd struct{}

type pluginsListCmd struct {
	opts *GlobalOpts
}

var pluginsListCommand = pluginsListCmd{}

func setupPluginsCommands(parser *flags.Parser, opts *GlobalOpts) {
	pluginsListCommand.opts = opts
	c, _ := parser.AddCommand(
		"plugins",
		"Plugin tools",
		"Tools for working with blogofile plugins",
		&pluginsCmd{},
	)
	c.AddCommand(
		"list",
		"Lists the installed plugins",
		"Lists the name, version, and origin of every installed plugin",
		&pluginsListCommand,
	)
}

var doListPlugins = func(opts *GlobalOpts) error {
	return plugin.List(stdout)
}

func (c *pluginsListCmd) Execute(args []string) error {
	return doListPlugins(c.opts)
}
