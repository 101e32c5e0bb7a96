package main

import (
	"github.com/jessevdk/go-flags"

	"github.com/blogofile/blogofile/site"
)

type initCmd struct {
	opts *GlobalOpts
}

var initCommand = initCmd{}

func setupInitCommand(parser *flags.Parser, opts *GlobalOpts) {
	initCommand.opts = opts
	parser.AddCommand(
		"init",
		"Initializes a new site",
		"Creates a minimal site skeleton in the source directory",
		&initCommand,
	)
}

var doInit = func(opts *GlobalOpts) error {
	return site.Init(opts.SrcDir, stdout)
}

func (c *initCmd) Execute(args []string) error {
	return doInit(c.opts)
}
