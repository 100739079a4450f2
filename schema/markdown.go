package schema

import (
	"strings"

	"github.com/daedaleanai/testspec/locale"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Markdown documents the columns of all tables, in order, as a single Markdown table. Logical
// names are looked up by physical column name.
func Markdown(tables []Table, logicalNames map[string]string, texts *locale.Texts) string {
	none := texts.T(locale.SchemaNone)
	yes := texts.T(locale.SchemaYes)
	mark := func(b bool) string {
		if b {
			return yes
		}
		return none
	}

	lines := []string{
		markdownLine(
			texts.T(locale.SchemaPhysicalName),
			texts.T(locale.SchemaLogicalName),
			texts.T(locale.SchemaType),
			texts.T(locale.SchemaLength),
			texts.T(locale.SchemaNotNull),
			texts.T(locale.SchemaPrimaryKey),
			texts.T(locale.SchemaRemarks),
		),
		markdownLine("---", "---", "---", "---", "---", "---", "---"),
	}
	for _, table := range tables {
		for _, c := range table.Columns {
			logical, ok := logicalNames[c.Name]
			if !ok {
				logical = none
			}
			length := none
			if isVarchar(c.Type) && c.Limit != "" {
				length = c.Limit
			}
			lines = append(lines, markdownLine(c.Name, logical, sqlType(c), length, mark(c.NotNull), mark(c.PrimaryKey), remarks(c)))
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func markdownLine(cells ...string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

func isVarchar(typ string) bool {
	return strings.EqualFold(typ, "string")
}

// sqlType maps a Rails column type to the SQL type shown in the documentation.
func sqlType(c Column) string {
	switch strings.ToLower(c.Type) {
	case "string":
		if c.Limit != "" {
			return "VARCHAR(" + c.Limit + ")"
		}
		return "VARCHAR"
	case "integer", "boolean":
		return "INT"
	case "datetime":
		return "DATETIME"
	}
	return cases.Upper(language.Und).String(c.Type)
}

// remarks lists the options not shown in other columns. The limit of VARCHAR columns is already
// part of the type.
func remarks(c Column) string {
	var parts []string
	if c.Default != "" {
		parts = append(parts, "default="+c.Default)
	}
	if c.Limit != "" && !isVarchar(c.Type) {
		parts = append(parts, "limit="+c.Limit)
	}
	if c.Precision != "" {
		parts = append(parts, "precision="+c.Precision)
	}
	if c.Scale != "" {
		parts = append(parts, "scale="+c.Scale)
	}
	return strings.Join(parts, ", ")
}
