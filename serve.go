package main

import (
	"path/filepath"

	"github.com/jessevdk/go-flags"

	"github.com/blogofile/blogofile/server"
	"github.com/blogofile/blogofile/site"
)

type serveCmd struct {
	opts *GlobalOpts
	Args struct {
		Port   string `positional-arg-name:"PORT" description:"Port to serve the site on"`
		IPAddr string `positional-arg-name:"IP_ADDR" description:"IP address to serve the site on"`
	} `positional-args:"yes"`
}

var serveCommand = serveCmd{}

func setupServeCommand(parser *flags.Parser, opts *GlobalOpts) {
	serveCommand.opts = opts
	// go-flags does not apply defaults to positional arguments
	serveCommand.Args.Port = "8080"
	serveCommand.Args.IPAddr = "127.0.0.1"
	parser.AddCommand(
		"serve",
		"Serves the site",
		"Serves the built site on a local development server",
		&serveCommand,
	)
}

var doServe = func(opts *GlobalOpts, port, ipAddr string) error {
	cfg, err := site.LoadConfig(opts.SrcDir)
	if err != nil {
		return err
	}
	siteDir := filepath.Join(opts.SrcDir, cfg.OutputDir)
	return server.NewServer(ipAddr, port, siteDir).ListenAndServe()
}

func (c *serveCmd) Execute(args []string) error {
	return doServe(c.opts, c.Args.Port, c.Args.IPAddr)
}
