/*
Package schema reads the tables of a Rails `schema.rb` file and documents their columns as a
Markdown table.

Only `create_table` blocks are understood. Inside a block every line of the form

	t.<type> "<column>", <option>: <value>, ...

declares a column. The options `null`, `default`, `limit`, `precision`, `scale` and `primary_key` are
recognized, anything else on the line is ignored.
*/
package schema

import (
	"bufio"
	"os"
	"regexp"
	"strings"

	"github.com/daedaleanai/testspec/diagnostics"
)

// Column is a column definition.
type Column struct {
	Name       string
	Type       string
	NotNull    bool
	PrimaryKey bool
	// Limit is the declared length, empty when not declared.
	Limit   string
	Default string
	// Precision and Scale of numeric and time columns, empty when not declared.
	Precision string
	Scale     string
}

// Table is a table definition with its columns in declaration order.
type Table struct {
	Name    string
	Columns []Column
}

var (
	reCreateTable = regexp.MustCompile(`^\s*create_table\s+"([^"]+)".*\bdo\s*\|\s*\w+\s*\|\s*$`)
	reColumn      = regexp.MustCompile(`^\s*\w+\.(\w+)\s+"([^"]+)"(.*)$`)
	reEnd         = regexp.MustCompile(`^\s*end\s*$`)

	reNull       = regexp.MustCompile(`\bnull:\s*(true|false)`)
	reDefault    = regexp.MustCompile(`\bdefault:\s*([^,]+)`)
	reLimit      = regexp.MustCompile(`\blimit:\s*([^,]+)`)
	rePrecision  = regexp.MustCompile(`\bprecision:\s*([^,]+)`)
	reScale      = regexp.MustCompile(`\bscale:\s*([^,]+)`)
	rePrimaryKey = regexp.MustCompile(`\bprimary_key:\s*(true|false)`)
)

// Load reads and parses a schema file.
func Load(path string) ([]Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diagnostics.ConfigNotFound(path, err)
	}
	return Parse(string(data), path)
}

// Parse returns the tables of a schema in file order. A `create_table` block without its closing
// `end` is malformed. Path is only used in error messages.
func Parse(src, path string) ([]Table, error) {
	var (
		tables  []Table
		current *Table
		start   int
	)
	scanner := bufio.NewScanner(strings.NewReader(src))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if current == nil {
			if m := reCreateTable.FindStringSubmatch(line); m != nil {
				current = &Table{Name: m[1]}
				start = lineNo
			}
			continue
		}
		if reEnd.MatchString(line) {
			tables = append(tables, *current)
			current = nil
			continue
		}
		if m := reColumn.FindStringSubmatch(line); m != nil {
			current.Columns = append(current.Columns, parseColumn(m[2], m[1], m[3]))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, diagnostics.ConfigMalformed(path, 0, "%s", err)
	}
	if current != nil {
		return nil, diagnostics.ConfigMalformed(path, start, "table `%s` is not closed", current.Name)
	}
	return tables, nil
}

func parseColumn(name, typ, options string) Column {
	column := Column{Name: name, Type: typ}
	if v := option(reNull, options); v != "" {
		column.NotNull = v == "false"
	}
	if v := option(rePrimaryKey, options); v != "" {
		column.PrimaryKey = v == "true"
	}
	column.Default = option(reDefault, options)
	column.Limit = option(reLimit, options)
	column.Precision = option(rePrecision, options)
	column.Scale = option(reScale, options)
	return column
}

func option(re *regexp.Regexp, options string) string {
	if m := re.FindStringSubmatch(options); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
