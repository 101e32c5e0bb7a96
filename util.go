package main

import (
	"io"
	"os"
)

var osExit = os.Exit
var stdout io.Writer = os.Stdout
var stderr io.Writer = os.Stderr
