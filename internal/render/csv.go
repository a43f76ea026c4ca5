package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"phonereport/internal/report"
)

type csvRenderer struct{}

func (csvRenderer) Render(w io.Writer, records []report.AssignmentRecord) error {
	cw := csv.NewWriter(w)

	header := []string{"UserPrincipalName", "LineURI", "DDI", "Ext", "DisplayName", "FirstName", "LastName", "Type"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.UserPrincipalName,
			rec.LineURI,
			rec.DDI,
			rec.Ext,
			rec.DisplayName,
			rec.FirstName,
			rec.LastName,
			string(rec.Type),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
