package encode

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/doclift/doclift/format"
	"github.com/doclift/doclift/ir"
)

type EncState struct {
	depth, indent int
	compact       bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes the node's canonical serialized form. The default is
// 2-space indented JSON with field order preserved; YAML output goes
// through the yaml encoder over an order-preserving representation.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w, es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(y *ir.Node, w io.Writer, es *EncState) error {
	switch y.Type {
	case ir.ObjectType:
		return encodeObject(y, w, es)
	case ir.ArrayType:
		return encodeArray(y, w, es)
	case ir.StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		return writeString(w, es.color(y.Type, ValueColor, string(d)))
	case ir.NumberType:
		return writeString(w, es.color(y.Type, ValueColor, ir.NumberString(y)))
	case ir.BoolType:
		return writeString(w, es.color(y.Type, ValueColor, strconv.FormatBool(y.Bool)))
	case ir.NullType:
		return writeString(w, es.color(y.Type, ValueColor, "null"))
	}
	return nil
}

func encodeObject(y *ir.Node, w io.Writer, es *EncState) error {
	if len(y.Fields) == 0 {
		return writeString(w, es.color(y.Type, SepColor, "{}"))
	}
	if err := writeString(w, es.color(y.Type, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i, field := range y.Fields {
		if i > 0 {
			if err := writeString(w, es.color(y.Type, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeBreak(w, es); err != nil {
			return err
		}
		d, err := json.Marshal(field.String)
		if err != nil {
			return err
		}
		if err := writeString(w, es.color(y.Type, FieldColor, string(d))); err != nil {
			return err
		}
		sep := ": "
		if es.compact {
			sep = ":"
		}
		if err := writeString(w, es.color(y.Type, SepColor, sep)); err != nil {
			return err
		}
		if err := encode(y.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeBreak(w, es); err != nil {
		return err
	}
	return writeString(w, es.color(y.Type, SepColor, "}"))
}

func encodeArray(y *ir.Node, w io.Writer, es *EncState) error {
	if len(y.Values) == 0 {
		return writeString(w, es.color(y.Type, SepColor, "[]"))
	}
	if err := writeString(w, es.color(y.Type, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, v := range y.Values {
		if i > 0 {
			if err := writeString(w, es.color(y.Type, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeBreak(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeBreak(w, es); err != nil {
		return err
	}
	return writeString(w, es.color(y.Type, SepColor, "]"))
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeBreak(w io.Writer, es *EncState) error {
	if es.compact {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.depth*es.indent))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
