package formitems

import (
	"fmt"
	"strings"
)

const clauseSeparators = ";,；，"

var clauseArrows = []string{"=>", "⇒"}

// ParseClauses splits a condition description such as
// "customer type is corporation => required; customer type is individual => optional"
// into its clauses, in order.
func ParseClauses(condition string) ([]Clause, error) {
	parts := strings.FieldsFunc(condition, func(r rune) bool {
		return strings.ContainsRune(clauseSeparators, r)
	})

	var clauses []Clause
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		arrowAt, arrowLen := -1, 0
		for _, arrow := range clauseArrows {
			if i := strings.LastIndex(part, arrow); i > arrowAt {
				arrowAt, arrowLen = i, len(arrow)
			}
		}
		if arrowAt < 0 {
			return nil, fmt.Errorf("condition clause `%s` has no `=>`", part)
		}
		cond := strings.TrimSpace(part[:arrowAt])
		if cond == "" {
			return nil, fmt.Errorf("condition clause `%s` has no condition", part)
		}
		required, err := parseClauseOutcome(part[arrowAt+arrowLen:])
		if err != nil {
			return nil, fmt.Errorf("condition clause `%s`: %s", part, err)
		}
		clauses = append(clauses, Clause{Condition: cond, Required: required})
	}
	if len(clauses) == 0 {
		return nil, fmt.Errorf("condition `%s` has no clauses", condition)
	}
	return clauses, nil
}

func parseClauseOutcome(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "required", "必須", "true":
		return true, nil
	case "optional", "任意", "false":
		return false, nil
	}
	return false, fmt.Errorf("expected required or optional, got `%s`", strings.TrimSpace(s))
}

// parseRequiredness reads the `required` value of a field. An empty value means optional.
func parseRequiredness(s string) (Requiredness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "optional", "false", "任意":
		return Optional, nil
	case "always", "required", "true", "必須":
		return Always, nil
	case "conditional", "条件付き":
		return Conditional, nil
	}
	return Optional, fmt.Errorf("unable to parse requiredness `%s`", s)
}
