package main

import (
	"github.com/jessevdk/go-flags"

	"github.com/blogofile/blogofile/site"
)

type buildCmd struct {
	opts *GlobalOpts
}

var buildCommand = buildCmd{}

func setupBuildCommand(parser *flags.Parser, opts *GlobalOpts) {
	buildCommand.opts = opts
	parser.AddCommand(
		"build",
		"Builds the site",
		"Builds the site from the source directory into the output directory",
		&buildCommand,
	)
}

var doBuild = func(opts *GlobalOpts) error {
	cfg, err := site.LoadConfig(opts.SrcDir)
	if err != nil {
		return err
	}
	return site.NewBuilder(cfg, opts.SrcDir).Build(stdout)
}

func (c *buildCmd) Execute(args []string) error {
	return doBuild(c.opts)
}
