package render

import (
	"encoding/xml"
	"fmt"
	"io"

	"phonereport/internal/report"
)

type xmlRenderer struct{}

// xmlDocument wraps the collection in a single root element.
type xmlDocument struct {
	XMLName xml.Name                  `xml:"PhoneNumberAssignments"`
	Records []report.AssignmentRecord `xml:"Assignment"`
}

func (xmlRenderer) Render(w io.Writer, records []report.AssignmentRecord) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(xmlDocument{Records: records}); err != nil {
		return fmt.Errorf("failed to encode xml report: %w", err)
	}

	_, err := io.WriteString(w, "\n")
	return err
}
