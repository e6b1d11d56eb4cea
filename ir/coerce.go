package ir

import (
	"math"
	"strconv"
	"strings"
)

// Coerce converts a raw leaf token into a scalar node when the rendering
// carries no type label. Quote-stripping happens before the literal
// checks, so a rendered `"true"` coerces to a boolean. Coercion is total:
// any input yields exactly one node.
func Coerce(raw string) *Node {
	v := Unquote(raw)
	switch strings.ToLower(v) {
	case "null":
		return Null()
	case "true":
		return FromBool(true)
	case "false":
		return FromBool(false)
	}
	if v == "" {
		return FromString(v)
	}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return FromInt(i)
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return FromFloat(f)
	}
	return FromString(v)
}

// CoerceTyped converts a raw leaf token under an explicit type label. The
// label decides the strategy outright; labels outside the known scalar set
// (timestamps, references, geopoints, anything unrecognized) stay opaque
// trimmed strings since their display text is not machine-parseable.
//
// A number label over non-numeric text yields a NaN sentinel. Callers
// should treat that as an observable defect in the source rendering; the
// encoders render it as null so output stays valid JSON.
func CoerceTyped(label, raw string) *Node {
	switch label {
	case NullLabel:
		return Null()
	case BoolLabel:
		return FromBool(strings.TrimSpace(raw) == "true")
	case NumberLabel:
		v := strings.TrimSpace(raw)
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return FromInt(i)
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return FromFloat(f)
		}
		return FromFloat(math.NaN())
	case StringLabel:
		return FromString(Unquote(raw))
	default:
		return FromString(strings.TrimSpace(raw))
	}
}

// Unquote strips one layer of surrounding double quotes when both are
// present; otherwise the input is returned unchanged.
func Unquote(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}
