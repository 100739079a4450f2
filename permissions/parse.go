package permissions

import (
	"github.com/daedaleanai/testspec/diagnostics"
	"gopkg.in/yaml.v3"
)

// Parse reads the `permissions` section of YAML data. Anything but a mapping of user types to a
// mapping of functions to token lists is malformed. Path is only used in error messages.
func Parse(data []byte, path string) (*Store, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, diagnostics.ConfigMalformed(path, 0, "%s", err)
	}
	if len(doc.Content) == 0 {
		return nil, diagnostics.ConfigMalformed(path, 0, "the file is empty")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, diagnostics.ConfigMalformed(path, root.Line, "expected a mapping at the top level")
	}

	section := lookup(root, "permissions")
	if section == nil {
		return nil, diagnostics.ConfigMalformed(path, root.Line, "no `permissions` section")
	}
	if section.Kind == yaml.ScalarNode && section.Tag == "!!null" {
		return New(nil)
	}
	if section.Kind != yaml.MappingNode {
		return nil, diagnostics.ConfigMalformed(path, section.Line, "`permissions` must map user types to functions")
	}

	tokens := make(map[string]map[string][]string)
	for i := 0; i+1 < len(section.Content); i += 2 {
		userType, functions := section.Content[i], section.Content[i+1]
		tokens[userType.Value] = make(map[string][]string)
		if functions.Kind == yaml.ScalarNode && functions.Tag == "!!null" {
			continue
		}
		if functions.Kind != yaml.MappingNode {
			return nil, diagnostics.ConfigMalformed(path, functions.Line, "user type `%s` must map functions to permission lists", userType.Value)
		}
		for j := 0; j+1 < len(functions.Content); j += 2 {
			function, list := functions.Content[j], functions.Content[j+1]
			var values []string
			switch {
			case list.Kind == yaml.ScalarNode && list.Tag == "!!null":
			case list.Kind == yaml.SequenceNode:
				for _, item := range list.Content {
					if item.Kind != yaml.ScalarNode {
						return nil, diagnostics.ConfigMalformed(path, item.Line, "permissions of `%s` for `%s` must be plain tokens", userType.Value, function.Value)
					}
					values = append(values, item.Value)
				}
			default:
				return nil, diagnostics.ConfigMalformed(path, list.Line, "permissions of `%s` for `%s` must be a list", userType.Value, function.Value)
			}
			tokens[userType.Value][function.Value] = values
		}
	}
	return New(tokens)
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
