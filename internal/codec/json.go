package codec

import (
	"encoding/json"

	"github.com/tidwall/jsonc"
)

type jsonCodec struct{}

func (jsonCodec) Name() string { return JSON }

func (c jsonCodec) Encode(bindings map[string]string) ([]byte, error) {
	if err := checkUTF8(JSON, bindings); err != nil {
		return nil, err
	}
	if bindings == nil {
		bindings = map[string]string{}
	}
	data, err := json.MarshalIndent(bindings, "", "  ")
	if err != nil {
		return nil, encodeError(JSON, err)
	}
	data = append(data, '\n')
	if err := verify(c, bindings, data); err != nil {
		return nil, err
	}
	return data, nil
}

// Decode accepts comments and trailing commas, which hand-edited files tend
// to grow.
func (jsonCodec) Decode(data []byte) (map[string]string, error) {
	if isBlank(data) {
		return map[string]string{}, nil
	}

	var raw map[string]*string
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, decodeError(JSON, err)
	}
	return flatten(JSON, raw)
}
