package codec

import (
	"sort"

	"gopkg.in/yaml.v3"
)

type yamlCodec struct{}

func (yamlCodec) Name() string { return YAML }

// Encode double-quotes every key and value. Plain scalars would let "<<"
// turn into a merge key and control characters into block scalars that do
// not read back.
func (c yamlCodec) Encode(bindings map[string]string) ([]byte, error) {
	if err := checkUTF8(YAML, bindings); err != nil {
		return nil, err
	}

	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, action := range actions {
		doc.Content = append(doc.Content, quoted(action), quoted(bindings[action]))
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, encodeError(YAML, err)
	}
	if err := verify(c, bindings, data); err != nil {
		return nil, err
	}
	return data, nil
}

func quoted(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: s}
}

func (yamlCodec) Decode(data []byte) (map[string]string, error) {
	if isBlank(data) {
		return map[string]string{}, nil
	}

	var raw map[string]*string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, decodeError(YAML, err)
	}
	return flatten(YAML, raw)
}
