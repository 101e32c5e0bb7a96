package main

import (
	"github.com/jessevdk/go-flags"

	"github.com/blogofile/blogofile/site"
)

type infoCmd struct {
	opts *GlobalOpts
}

var infoCommand = infoCmd{}

func setupInfoCommand(parser *flags.Parser, opts *GlobalOpts) {
	infoCommand.opts = opts
	parser.AddCommand(
		"info",
		"Shows site information",
		"Shows information about the program and the site in the source directory",
		&infoCommand,
	)
}

var doInfo = func(opts *GlobalOpts) error {
	cfg, err := site.LoadConfig(opts.SrcDir)
	if err != nil {
		return err
	}
	return site.Info(cfg, opts.SrcDir, Version, stdout)
}

func (c *infoCmd) Execute(args []string) error {
	return doInfo(c.opts)
}
