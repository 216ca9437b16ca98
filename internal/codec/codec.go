// Package codec encodes and decodes flat action -> key combination mappings
// in the structured text formats the store can persist.
package codec

import (
	"bytes"
	"maps"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"keybindings/internal/errors"
)

// Format names.
const (
	YAML = "yaml"
	TOML = "toml"
	JSON = "json"
)

// Codec converts a bindings map to and from bytes.
type Codec interface {
	// Name returns the format name.
	Name() string
	// Encode serializes bindings.
	Encode(bindings map[string]string) ([]byte, error)
	// Decode parses data into a fresh map. Empty input yields an empty map.
	Decode(data []byte) (map[string]string, error)
}

var codecs = map[string]Codec{
	YAML: yamlCodec{},
	TOML: tomlCodec{},
	JSON: jsonCodec{},
}

var extensions = map[string]string{
	".yaml":  YAML,
	".yml":   YAML,
	".toml":  TOML,
	".json":  JSON,
	".jsonc": JSON,
}

// Lookup returns the codec registered under name.
func Lookup(name string) (Codec, error) {
	c, ok := codecs[strings.ToLower(name)]
	if !ok {
		return nil, errors.NewConfigError("unsupported format", name, errors.InvalidConfig, nil)
	}
	return c, nil
}

// ForPath picks a codec from the file extension, falling back to YAML.
func ForPath(path string) Codec {
	if name, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return codecs[name]
	}
	return codecs[YAML]
}

// Names lists the supported format names.
func Names() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isBlank(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0
}

func decodeError(format string, err error) error {
	return errors.NewCodecError("decode bindings", format, errors.DeserializationFailed, err)
}

func encodeError(format string, err error) error {
	return errors.NewCodecError("encode bindings", format, errors.SerializationFailed, err)
}

// flatten turns pointer values into plain strings. A nil pointer is a null
// in the document, which would stand for an absent binding.
func flatten(format string, raw map[string]*string) (map[string]string, error) {
	out := make(map[string]string, len(raw))
	for action, combo := range raw {
		if combo == nil {
			return nil, decodeError(format, errors.Newf("action %q has a null binding", action))
		}
		out[action] = *combo
	}
	return out, nil
}

// checkUTF8 rejects mappings no text format can hold. JSON would replace
// the bad bytes and TOML would write a file it cannot read back.
func checkUTF8(format string, bindings map[string]string) error {
	for action, combo := range bindings {
		if !utf8.ValidString(action) {
			return encodeError(format, errors.Newf("action %q is not valid UTF-8", action))
		}
		if !utf8.ValidString(combo) {
			return encodeError(format, errors.Newf("binding for %q is not valid UTF-8", action))
		}
	}
	return nil
}

// verify decodes freshly encoded data and fails unless it yields bindings
// again, so a file that was written can always be loaded.
func verify(c Codec, bindings map[string]string, data []byte) error {
	got, err := c.Decode(data)
	if err != nil {
		return encodeError(c.Name(), err)
	}
	if !maps.Equal(got, bindings) {
		return encodeError(c.Name(), errors.New("encoded bindings do not decode to the same mapping"))
	}
	return nil
}
