package encode

import (
	"io"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/doclift/doclift/ir"
)

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	enc := yaml.NewEncoder(w, yaml.Indent(es.indent))
	defer enc.Close()
	return enc.Encode(toYAMLAny(node))
}

// toYAMLAny mirrors ir.ToAny but keeps object field order by producing
// yaml.MapSlice values.
func toYAMLAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, len(node.Fields))
		for i, field := range node.Fields {
			res = append(res, yaml.MapItem{
				Key:   field.String,
				Value: toYAMLAny(node.Values[i]),
			})
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = toYAMLAny(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			f := *node.Float64
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return nil
			}
			return f
		}
		return nil
	case ir.BoolType:
		return node.Bool
	default:
		return nil
	}
}
