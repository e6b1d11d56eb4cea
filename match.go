package doclift

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/doclift/doclift/debug"
	"github.com/doclift/doclift/ir"
)

// Filter evaluates a boolean expression against an extracted document.
// The expression sees the identifier as `id` and the normalized fields as
// `fields` (plain maps and slices), e.g.
//
//	fields.age > 21 && id != "draft"
func Filter(doc *Document, expression string) (bool, error) {
	env := map[string]any{
		"id":     doc.ID,
		"fields": ir.ToAny(doc.Fields),
	}
	prg, err := expr.Compile(expression, expr.Env(env), expr.AsBool())
	if err != nil {
		return false, fmt.Errorf("could not compile filter %q: %w", expression, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return false, fmt.Errorf("could not run filter %q: %w", expression, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %T, not bool", expression, res)
	}
	if debug.Filter() {
		debug.Logf("filter %q on %q: %v\n", expression, doc.ID, b)
	}
	return b, nil
}
