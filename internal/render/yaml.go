package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"phonereport/internal/report"
)

type yamlRenderer struct{}

// Render goes through a JSON round-trip so the YAML keys match the JSON
// field names used by the other structured formats.
func (yamlRenderer) Render(w io.Writer, records []report.AssignmentRecord) error {
	if records == nil {
		records = []report.AssignmentRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	var generic []map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("failed to round-trip records: %w", err)
	}

	out, err := yaml.Marshal(generic)
	if err != nil {
		return fmt.Errorf("failed to encode yaml report: %w", err)
	}

	_, err = w.Write(out)
	return err
}
