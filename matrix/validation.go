package matrix

import (
	"github.com/daedaleanai/testspec/formitems"
	"github.com/daedaleanai/testspec/locale"
)

// validationRows leave every form field empty in turn and check whether the form is rejected.
func (b *rowBuilder) validationRows() []Row {
	var rows []Row
	for _, audience := range b.audiences {
		precondition := b.formPrecondition(audience.LoginUser)
		for _, field := range audience.Fields {
			for _, c := range b.fieldCases(field) {
				rows = append(rows, Row{
					Section:      b.t(locale.SectionValidation),
					Title:        c.title,
					Precondition: precondition,
					Steps:        combineText(c.steps...),
					Expected:     c.expected,
					Version:      b.req.Version,
				})
			}
		}
	}
	return rows
}

type validationCase struct {
	title    string
	steps    []string
	expected string
}

// fieldCases returns a case per outcome the field can have when left empty.
func (b *rowBuilder) fieldCases(field formitems.Field) []validationCase {
	switch field.Mode {
	case formitems.Always:
		return []validationCase{b.emptyFieldCase(field.Label, "", true)}
	case formitems.Conditional:
		clauses := field.Clauses
		if len(clauses) == 0 {
			return nil
		}
		if b.CollapseConditions {
			last := clauses[len(clauses)-1]
			c := b.emptyFieldCase(field.Label, last.Condition, last.Required)
			c.title = field.Label
			return []validationCase{c}
		}
		cases := make([]validationCase, 0, len(clauses))
		for _, clause := range clauses {
			cases = append(cases, b.emptyFieldCase(field.Label, clause.Condition, clause.Required))
		}
		return cases
	default:
		return []validationCase{b.emptyFieldCase(field.Label, "", false)}
	}
}

// emptyFieldCase submits the form with the field empty, after establishing a condition if any.
func (b *rowBuilder) emptyFieldCase(label, condition string, required bool) validationCase {
	c := validationCase{title: label}
	n := 1
	if condition != "" {
		c.title = b.t(locale.TitleCondition, label, condition)
		c.steps = append(c.steps, b.t(locale.StepSetCondition, n, condition))
		n++
	}
	c.steps = append(c.steps,
		b.t(locale.StepLeaveEmpty, n, label),
		b.t(locale.StepClickButton, n+1, b.submitButton()),
	)
	if required {
		c.expected = b.t(locale.ResultInputError, 1, label)
	} else {
		c.expected = b.t(locale.ResultSubmitSuccess, 1, b.function.Name)
	}
	return c
}
