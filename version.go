package main

import (
	"fmt"
	"runtime"
)

// Version is the blogofile release version.
const Version = "0.8.0"

// showVersion prints the version banner to the error stream and terminates
// the process without dispatching any sub-command.
var showVersion = func() {
	fmt.Fprintf(
		stderr,
		"Blogofile %s -- http://www.blogofile.com -- %s %s\n",
		Version,
		runtime.Compiler,
		runtime.Version(),
	)
	osExit(0)
}
