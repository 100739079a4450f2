package report

import (
	"html/template"
	"io"
	"strings"

	"github.com/daedaleanai/testspec/matrix"
	"github.com/pkg/errors"
)

type htmlData struct {
	Title string
	Table Table
}

// RenderHTML writes the table as a standalone HTML page. Cell contents are escaped except for the
// `<br>` line breaks.
func RenderHTML(w io.Writer, title string, table Table) error {
	return errors.Wrap(htmlTmpl.ExecuteTemplate(w, "PAGE", htmlData{Title: title, Table: table}), "render html")
}

// cellLines splits a cell at its line breaks.
func cellLines(cell string) []string {
	return strings.Split(cell, matrix.LineBreak)
}

var htmlFunctionMap = template.FuncMap{
	"cellLines": cellLines,
}

var htmlTmpl = template.Must(template.New("").Funcs(htmlFunctionMap).Parse(htmlTmplText))

var htmlTmplText = `
{{ define "HEADER" }}<!DOCTYPE html>
<html>
	<head>
		<meta charset="utf-8">
		<title>{{ .Title }}</title>
		<style>
			table {
				border-collapse: collapse;
				width: 100%;
				margin: 1em 0;
			}
			th, td {
				border: 1px solid #ccc;
				padding: 0.5em;
				vertical-align: top;
			}
			th {
				background: #f2f2f2;
			}
		</style>
	</head>
	<body>
{{ end }}

{{ define "FOOTER" }}
	</body>
</html>
{{ end }}

{{ define "CELL" }}{{ range $i, $line := cellLines . }}{{ if $i }}<br>{{ end }}{{ $line }}{{ end }}{{ end }}

{{ define "PAGE" }}
{{- template "HEADER" . }}
		<h1>{{ .Title }}</h1>
		<table>
			<thead>
				<tr>
				{{- range .Table.Header }}
					<th>{{ template "CELL" . }}</th>
				{{- end }}
				</tr>
			</thead>
			<tbody>
			{{- range .Table.Rows }}
				<tr>
				{{- range . }}
					<td>{{ template "CELL" . }}</td>
				{{- end }}
				</tr>
			{{- end }}
			</tbody>
		</table>
{{- template "FOOTER" . }}
{{ end }}
`
