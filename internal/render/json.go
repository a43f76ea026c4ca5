package render

import (
	"encoding/json"
	"io"

	"phonereport/internal/report"
)

type jsonRenderer struct{}

func (jsonRenderer) Render(w io.Writer, records []report.AssignmentRecord) error {
	if records == nil {
		records = []report.AssignmentRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
