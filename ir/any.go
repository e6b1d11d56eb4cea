package ir

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// ToAny converts a node into plain Go values (map[string]any, []any and
// scalars). Object field order is lost in the conversion; callers that
// need canonical ordering should marshal the node instead.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return nil
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// MarshalJSON writes the node's canonical value form: objects keep field
// order, arrays are dense, and non-finite numbers become null.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := marshalTo(y, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalTo(y *Node, buf *bytes.Buffer) error {
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case NumberType:
		buf.WriteString(NumberString(y))
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := marshalTo(v, buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(f.String)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := marshalTo(y.Values[i], buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// NumberString renders a number node as a JSON number token. Numbers a
// rendering could not actually convey (NaN, infinities, a number node
// with no value) degrade to null.
func NumberString(y *Node) string {
	if y.Int64 != nil {
		return strconv.FormatInt(*y.Int64, 10)
	}
	if y.Float64 != nil {
		f := *y.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "null"
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return "null"
}
