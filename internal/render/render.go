// Package render turns a finished assignment collection into one of the
// supported report formats. Adapters do no fetching or sorting; they consume
// the records exactly as the report builder hands them over.
package render

import (
	"fmt"
	"io"
	"sort"

	"phonereport/internal/report"
)

// Renderer writes a report for the given records.
type Renderer interface {
	Render(w io.Writer, records []report.AssignmentRecord) error
}

var renderers = map[string]Renderer{
	"table": tableRenderer{},
	"csv":   csvRenderer{},
	"json":  jsonRenderer{},
	"xml":   xmlRenderer{},
	"yaml":  yamlRenderer{},
	"html":  htmlRenderer{},
}

// ForFormat resolves a format name to its renderer. An unknown format is a
// hard error: a report cannot be produced without its adapter.
func ForFormat(name string) (Renderer, error) {
	r, ok := renderers[name]
	if !ok {
		return nil, fmt.Errorf("no output adapter for format %q (available: %v)", name, Formats())
	}
	return r, nil
}

// Formats lists the supported format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
