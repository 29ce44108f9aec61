package inspect

import (
	"fmt"
	"io"
	"math/big"
	"path/filepath"
	"strings"
)

// Format is a document format that can be decoded into values.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

var formats = []Format{JSON, YAML, TOML}

var extensions = map[string]Format{
	".json": JSON,
	".yaml": YAML,
	".yml":  YAML,
	".toml": TOML,
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported document formats.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	if s == "yml" {
		return YAML, nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFor guesses the format of a file from its extension.
func FormatFor(path string) (Format, bool) {
	f, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// Decode reads every document in r. JSON and YAML streams may hold several
// documents; TOML always yields one.
func Decode(r io.Reader, f Format) ([]Value, error) {
	switch f {
	case JSON:
		return decodeJSON(r)
	case YAML:
		return decodeYAML(r)
	case TOML:
		return decodeTOML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// maxSafeInt is the largest integer a Number holds exactly.
var maxSafeInt = big.NewInt(1<<53 - 1)

// integer returns n as a Number when it is exactly representable and as a
// BigInt otherwise.
func integer(n *big.Int) Value {
	if new(big.Int).Abs(n).Cmp(maxSafeInt) <= 0 {
		return Number(n.Int64())
	}
	return BigInt{Int: n}
}
