package main

import (
	"os"

	"github.com/blogofile/blogofile/logging"
)

func main() {
	logging.Setup(os.Stderr)
	a := NewArgs()
	if len(os.Args) < 2 {
		a.WriteHelp(stdout)
		osExit(1)
		return
	}
	if err := a.Parse(); err != nil {
		osExit(1)
	}
}
