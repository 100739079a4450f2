package matrix

import "strings"

// Row is one test case of a test specification.
type Row struct {
	Section      string
	Title        string
	Precondition string
	Notes        string
	Steps        string
	Expected     string
	Version      string
}

// Cells returns the row in column order: section, title, precondition, notes, steps, expected
// result, version.
func (r Row) Cells() []string {
	return []string{r.Section, r.Title, r.Precondition, r.Notes, r.Steps, r.Expected, r.Version}
}

// LineBreak separates numbered sub steps and sentences inside a cell.
const LineBreak = "<br>"

// combineText joins sentences into a single cell.
func combineText(parts ...string) string {
	return strings.Join(parts, LineBreak)
}
