// Package doclift extracts a structured record from a rendered view
// snapshot and normalizes it into a canonical JSON value, regardless of
// which of two structurally different renderings produced the view.
package doclift

import (
	"errors"
	"fmt"
	"strings"

	"github.com/doclift/doclift/debug"
	"github.com/doclift/doclift/dom"
	"github.com/doclift/doclift/encode"
	"github.com/doclift/doclift/extract"
	"github.com/doclift/doclift/ir"
)

// ErrNoSourceData is returned when no recognizable record rendering
// exists anywhere in the view. It is the only hard failure of an
// assemble call; everything below it degrades locally.
var ErrNoSourceData = errors.New("no source data found")

// PlaceholderID substitutes for a record identifier that could not be
// derived from the view.
const PlaceholderID = "document"

// Frontend identifies which rendering a document was extracted from.
type Frontend int

const (
	ProductionFrontend Frontend = iota
	EmulatorFrontend
)

func (f Frontend) String() string {
	switch f {
	case ProductionFrontend:
		return "production"
	case EmulatorFrontend:
		return "emulator"
	default:
		return "<unknown frontend>"
	}
}

// Document is one extracted record: its identifier and its normalized
// fields (an object node). The identifier is derived once per assemble
// call and never mutated afterward.
type Document struct {
	ID       string
	Frontend Frontend
	Fields   *ir.Node
}

// Node wraps the fields under the identifier: {id: fields}.
func (d *Document) Node() *ir.Node {
	return ir.Object().Set(d.ID, d.Fields)
}

// JSON returns the wrapper's 2-space indented serialization.
func (d *Document) JSON() string {
	return encode.MustString(d.Node())
}

type config struct {
	scope    *dom.Element
	location string
}

type Option func(*config)

// WithScope parses the given subtree instead of searching the view.
func WithScope(scope *dom.Element) Option {
	return func(c *config) { c.scope = scope }
}

// WithLocation supplies the view's hierarchical location (the page URL
// path), which the production rendering's identifier derives from.
func WithLocation(location string) Option {
	return func(c *config) { c.location = location }
}

// Assemble locates the record rendering in the view, walks it with the
// matching frontend's walker and wraps the result into a Document. It
// fails only when no usable rendering can be found at all.
//
// Known limitation: the production identifier comes from the supplied
// location rather than from the parsed scope, so when an explicit
// non-default scope is parsed the identifier may not correspond to the
// parsed content.
func Assemble(view *dom.Element, opts ...Option) (*Document, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	scope, frontend, err := selectFrontend(view, cfg.scope)
	if err != nil {
		return nil, err
	}
	if debug.Select() {
		debug.Logf("selected %s frontend\n", frontend.String())
	}
	switch frontend {
	case ProductionFrontend:
		return &Document{
			ID:       locationID(cfg.location),
			Frontend: frontend,
			Fields:   extract.FromProduction(scope),
		}, nil
	case EmulatorFrontend:
		id, ok := extract.EmulatorID(scope)
		if !ok {
			id = PlaceholderID
		}
		return &Document{
			ID:       id,
			Frontend: frontend,
			Fields:   extract.FromEmulator(scope),
		}, nil
	}
	return nil, fmt.Errorf("%w: unknown frontend %d", ErrNoSourceData, frontend)
}

// selectFrontend classifies the parse scope, once per call. An explicit
// scope is classified directly, then searched for a production root, then
// taken as an emulator scope outright. Without an explicit scope the
// whole view is searched, preferring a production root anywhere; among
// emulator panels the last one wins, since later panels are deeper
// drill-downs.
func selectFrontend(view, scope *dom.Element) (*dom.Element, Frontend, error) {
	if scope != nil {
		if root := extract.ProductionRoot(scope); root != nil {
			return root, ProductionFrontend, nil
		}
		return scope, EmulatorFrontend, nil
	}
	if root := extract.ProductionRoot(view); root != nil {
		return root, ProductionFrontend, nil
	}
	scopes := extract.EmulatorScopes(view)
	if len(scopes) > 0 {
		return scopes[len(scopes)-1], EmulatorFrontend, nil
	}
	return nil, 0, ErrNoSourceData
}

// locationID derives the identifier from the last non-empty segment of a
// hierarchical location string.
func locationID(location string) string {
	if i := strings.IndexAny(location, "?#"); i >= 0 {
		location = location[:i]
	}
	segs := strings.Split(location, "/")
	for i := len(segs) - 1; i >= 0; i-- {
		if s := strings.TrimSpace(segs[i]); s != "" {
			return s
		}
	}
	return PlaceholderID
}
