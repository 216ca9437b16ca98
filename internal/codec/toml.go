package codec

import (
	"github.com/pelletier/go-toml/v2"
)

type tomlCodec struct{}

func (tomlCodec) Name() string { return TOML }

func (c tomlCodec) Encode(bindings map[string]string) ([]byte, error) {
	if err := checkUTF8(TOML, bindings); err != nil {
		return nil, err
	}
	if bindings == nil {
		bindings = map[string]string{}
	}
	data, err := toml.Marshal(bindings)
	if err != nil {
		return nil, encodeError(TOML, err)
	}
	if err := verify(c, bindings, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (tomlCodec) Decode(data []byte) (map[string]string, error) {
	if isBlank(data) {
		return map[string]string{}, nil
	}

	// TOML has no null, so plain strings are enough here.
	var out map[string]string
	if err := toml.Unmarshal(data, &out); err != nil {
		return nil, decodeError(TOML, err)
	}
	if out == nil {
		out = map[string]string{}
	}
	return out, nil
}
