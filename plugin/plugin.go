// Package plugin keeps the registry of installed blogofile plugins.
package plugin

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"text/tabwriter"
)

// Plugin describes an installed plugin.
type Plugin struct {
	Name    string
	Version string
	Author  string
	URL     string
}

type registry struct {
	mu      sync.Mutex
	plugins map[string]Plugin
}

var instance = &registry{plugins: map[string]Plugin{}}

// Register adds a plugin to the registry. A later registration with the
// same name replaces the earlier one.
func Register(p Plugin) {
	instance.mu.Lock()
	defer instance.mu.Unlock()
	instance.plugins[p.Name] = p
}

// List writes a table of the installed plugins, sorted by name.
var List = func(w io.Writer) error {
	instance.mu.Lock()
	defer instance.mu.Unlock()
	if len(instance.plugins) == 0 {
		fmt.Fprintln(w, "There are no plugins installed.")
		return nil
	}
	names := make([]string, 0, len(instance.plugins))
	for name := range instance.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVERSION\tAUTHOR\tURL")
	for _, name := range names {
		p := instance.plugins[name]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Name, p.Version, p.Author, p.URL)
	}
	return tw.Flush()
}
