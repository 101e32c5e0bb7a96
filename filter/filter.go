// Package filter keeps the registry of installed content filters.
package filter

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"text/tabwriter"
)

// Filter describes an installed content filter.
type Filter struct {
	Name        string
	Description string
}

type registry struct {
	mu      sync.Mutex
	filters map[string]Filter
}

var instance = &registry{filters: map[string]Filter{}}

// Register adds a filter to the registry. A later registration with the
// same name replaces the earlier one.
func Register(f Filter) {
	instance.mu.Lock()
	defer instance.mu.Unlock()
	instance.filters[f.Name] = f
}

// List writes a table of the installed filters, sorted by name.
var List = func(w io.Writer) error {
	instance.mu.Lock()
	defer instance.mu.Unlock()
	if len(instance.filters) == 0 {
		fmt.Fprintln(w, "There are no filters installed.")
		return nil
	}
	names := make([]string, 0, len(instance.filters))
	for name := range instance.filters {
		names = append(names, name)
	}
	sort.Strings(names)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION")
	for _, name := range names {
		f := instance.filters[name]
		fmt.Fprintf(tw, "%s\t%s\n", f.Name, f.Description)
	}
	return tw.Flush()
}
