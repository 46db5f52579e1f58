// Package catalog reads the HD star catalog and the asterism catalog and
// writes filtered star catalogs back out.
package catalog

import (
	"encoding/json"
	"strconv"
)

// Star is one record of the HD catalog. Only "hd" and "mag" are interpreted;
// every other field is carried through untouched.
type Star map[string]any

// HD returns the star's catalog identifier.
func (s Star) HD() (Identifier, bool) {
	return identifierOf(s["hd"])
}

// Magnitude returns the apparent magnitude of the star. The second result is
// false when the record has no numeric "mag" field.
func (s Star) Magnitude() (float64, bool) {
	return floatOf(s["mag"])
}

// Asterism is one record of the asterism catalog. Stars is either a flat list
// of HD identifiers or a list of edges, each edge a pair of identifiers.
type Asterism struct {
	Stars []any `json:"stars"`
}

// Identifier is a normalised star identifier usable as a map key. Numeric
// identifiers compare by value, so 1 and 1.0 are the same star, while the
// string "1" is a different one.
type Identifier struct {
	num    float64
	text   string
	isText bool
}

// NumericID builds the identifier of a star with a numeric HD number.
func NumericID(n float64) Identifier {
	return Identifier{num: n}
}

func (id Identifier) String() string {
	if id.isText {
		return strconv.Quote(id.text)
	}
	return strconv.FormatFloat(id.num, 'f', -1, 64)
}

func identifierOf(v any) (Identifier, bool) {
	if s, ok := v.(string); ok {
		return Identifier{text: s, isText: true}, true
	}
	if f, ok := floatOf(v); ok {
		return Identifier{num: f}, true
	}
	return Identifier{}, false
}

// floatOf accepts the number types produced by a json.Decoder with
// UseNumber enabled as well as those of records built in Go.
func floatOf(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}
