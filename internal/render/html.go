package render

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"phonereport/internal/report"
)

type htmlRenderer struct{}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Phone Number Assignments</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
th { background: #f0f0f0; }
footer { margin-top: 1em; color: #666; font-size: 0.8em; }
</style>
</head>
<body>
<h1>Phone Number Assignments</h1>
<table>
<tr><th>Line URI</th><th>DDI</th><th>Ext</th><th>Display Name</th><th>First Name</th><th>Last Name</th><th>Type</th><th>User Principal Name</th></tr>
{{- range .Records }}
<tr><td>{{ .LineURI }}</td><td>{{ .DDI }}</td><td>{{ .Ext }}</td><td>{{ .DisplayName }}</td><td>{{ .FirstName }}</td><td>{{ .LastName }}</td><td>{{ .Type }}</td><td>{{ .UserPrincipalName }}</td></tr>
{{- end }}
</table>
<footer>Generated at {{ .GeneratedAt }}</footer>
</body>
</html>
`))

func (htmlRenderer) Render(w io.Writer, records []report.AssignmentRecord) error {
	data := struct {
		Records     []report.AssignmentRecord
		GeneratedAt string
	}{
		Records:     records,
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
	}
	if err := htmlTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render html report: %w", err)
	}
	return nil
}
