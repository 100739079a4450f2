package formitems

import (
	"sort"
	"strconv"
	"strings"

	"github.com/daedaleanai/testspec/diagnostics"
	"gopkg.in/yaml.v3"
)

// Parse reads the `form_items` and `sub_users` sections of YAML data, keeping the declaration order
// of functions, groups, login users and fields. Path is only used in error messages.
func Parse(data []byte, path string) (*Store, error) {
	store := Empty()

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, diagnostics.ConfigMalformed(path, 0, "%s", err)
	}
	if len(doc.Content) == 0 {
		return store, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, diagnostics.ConfigMalformed(path, root.Line, "expected a mapping at the top level")
	}

	p := parser{path: path}

	if section := lookup(root, "form_items"); section != nil && !isNull(section) {
		if section.Kind != yaml.MappingNode {
			return nil, p.malformed(section, "`form_items` must map functions to fields")
		}
		for i := 0; i+1 < len(section.Content); i += 2 {
			function := section.Content[i].Value
			fields, err := p.parseFields(section.Content[i+1], function)
			if err != nil {
				return nil, err
			}
			store.direct[function] = fields
			store.order = append(store.order, function)
		}
	}

	if section := lookup(root, "sub_users"); section != nil && !isNull(section) {
		if section.Kind != yaml.MappingNode {
			return nil, p.malformed(section, "`sub_users` must map group keys to groups")
		}
		for i := 0; i+1 < len(section.Content); i += 2 {
			group, err := p.parseGroup(section.Content[i].Value, section.Content[i+1])
			if err != nil {
				return nil, err
			}
			store.groups = append(store.groups, group)
		}
	}

	return store, nil
}

type parser struct {
	path string
}

func (p *parser) malformed(node *yaml.Node, format string, args ...interface{}) error {
	return diagnostics.ConfigMalformed(p.path, node.Line, format, args...)
}

// parseGroup reads one sub user group.
func (p *parser) parseGroup(key string, node *yaml.Node) (Group, error) {
	group := Group{Key: key}
	if node.Kind != yaml.MappingNode {
		return Group{}, p.malformed(node, "sub user group `%s` must be a mapping", key)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name, value := node.Content[i], node.Content[i+1]
		switch name.Value {
		case "functions":
			if value.Kind != yaml.SequenceNode {
				return Group{}, p.malformed(value, "`functions` of group `%s` must be a list", key)
			}
			group.Functions = []string{}
			for _, item := range value.Content {
				if item.Kind != yaml.ScalarNode || item.Value == "" {
					return Group{}, p.malformed(item, "`functions` of group `%s` must list function identifiers", key)
				}
				group.Functions = append(group.Functions, item.Value)
			}
		case "users":
			if value.Kind != yaml.MappingNode {
				return Group{}, p.malformed(value, "`users` of group `%s` must map login users to fields", key)
			}
			for j := 0; j+1 < len(value.Content); j += 2 {
				loginUser := value.Content[j].Value
				if loginUser == "" {
					return Group{}, p.malformed(value.Content[j], "group `%s` has a login user without a name", key)
				}
				fields, err := p.parseFields(value.Content[j+1], key+"/"+loginUser)
				if err != nil {
					return Group{}, err
				}
				group.Audiences = append(group.Audiences, Audience{LoginUser: loginUser, Fields: fields})
			}
		default:
			return Group{}, p.malformed(name, "unknown key `%s` in group `%s`", name.Value, key)
		}
	}
	return group, nil
}

// parseFields reads an ordered mapping of field identifiers to field descriptions.
func (p *parser) parseFields(node *yaml.Node, owner string) ([]Field, error) {
	if isNull(node) {
		return []Field{}, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, p.malformed(node, "fields of `%s` must be a mapping", owner)
	}
	fields := make([]Field, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		field, err := p.parseField(node.Content[i].Value, node.Content[i+1], owner)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

type numberedValue struct {
	n     int
	value string
}

// parseField reads a single field description.
func (p *parser) parseField(id string, node *yaml.Node, owner string) (Field, error) {
	field := Field{ID: id}
	if node.Kind != yaml.MappingNode {
		return Field{}, p.malformed(node, "field `%s` of `%s` must be a mapping", id, owner)
	}

	var testData []numberedValue
	var requiredNode, conditionNode *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		name, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return Field{}, p.malformed(value, "`%s` of field `%s` must be a plain value", name.Value, id)
		}
		switch {
		case name.Value == "label":
			field.Label = value.Value
		case name.Value == "required":
			requiredNode = value
		case name.Value == "condition":
			conditionNode = value
			field.Condition = strings.TrimSpace(value.Value)
		case name.Value == "test_data":
			testData = append(testData, numberedValue{0, value.Value})
		case strings.HasPrefix(name.Value, "test_data_"):
			n, err := strconv.Atoi(strings.TrimPrefix(name.Value, "test_data_"))
			if err != nil || n < 1 {
				return Field{}, p.malformed(name, "invalid test data key `%s` in field `%s`", name.Value, id)
			}
			testData = append(testData, numberedValue{n, value.Value})
		default:
			return Field{}, p.malformed(name, "unknown key `%s` in field `%s` of `%s`", name.Value, id, owner)
		}
	}

	if strings.TrimSpace(field.Label) == "" {
		return Field{}, p.malformed(node, "field `%s` of `%s` has no label", id, owner)
	}

	if requiredNode != nil && !isNull(requiredNode) {
		mode, err := parseRequiredness(requiredNode.Value)
		if err != nil {
			return Field{}, p.malformed(requiredNode, "field `%s`: %s", id, err)
		}
		field.Mode = mode
	}

	switch {
	case field.Mode == Conditional && field.Condition == "":
		return Field{}, p.malformed(node, "conditional field `%s` of `%s` has no condition", id, owner)
	case field.Mode != Conditional && conditionNode != nil:
		return Field{}, p.malformed(conditionNode, "field `%s` of `%s` has a condition but is not conditional", id, owner)
	case field.Mode == Conditional:
		clauses, err := ParseClauses(field.Condition)
		if err != nil {
			return Field{}, p.malformed(conditionNode, "field `%s`: %s", id, err)
		}
		field.Clauses = clauses
	}

	sort.SliceStable(testData, func(i, j int) bool { return testData[i].n < testData[j].n })
	for _, v := range testData {
		field.TestData = append(field.TestData, v.value)
	}
	return field, nil
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}

// lookup returns the value node of a key in a mapping node.
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}
