package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"phonereport/internal/report"
)

type tableRenderer struct{}

func (tableRenderer) Render(w io.Writer, records []report.AssignmentRecord) error {
	headerStyle := lipgloss.NewStyle().Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers("LINE URI", "DDI", "EXT", "DISPLAY NAME", "TYPE", "UPN")

	for _, rec := range records {
		t.Row(rec.LineURI, rec.DDI, rec.Ext, rec.DisplayName, string(rec.Type), rec.UserPrincipalName)
	}

	_, err := fmt.Fprintln(w, t)
	return err
}
