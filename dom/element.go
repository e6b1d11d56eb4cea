package dom

import (
	"slices"
	"strings"
)

// Element is one node of a rendered view snapshot: a labeled tree element
// with classification tags (classes), optional attributes, optional text
// and ordered children. Elements are read-only once loaded; the walkers
// never mutate them and retain no references beyond a single call.
type Element struct {
	Tag         string
	Classes     []string
	Attrs       map[string]string
	Parent      *Element
	ParentIndex int
	Children    []*Element

	text string
}

// A Pred selects elements in queries.
type Pred func(*Element) bool

// ByClass returns a predicate matching elements carrying the given
// classification tag.
func ByClass(class string) Pred {
	return func(el *Element) bool {
		return el.HasClass(class)
	}
}

func (el *Element) HasClass(class string) bool {
	return slices.Contains(el.Classes, class)
}

// Attr returns the named attribute and whether it is present.
func (el *Element) Attr(name string) (string, bool) {
	v, ok := el.Attrs[name]
	return v, ok
}

// Text returns the element's visible text: its own text plus that of all
// descendants in document order, with surrounding whitespace trimmed.
func (el *Element) Text() string {
	buf := &strings.Builder{}
	el.appendText(buf)
	return strings.TrimSpace(buf.String())
}

func (el *Element) appendText(buf *strings.Builder) {
	buf.WriteString(el.text)
	for _, c := range el.Children {
		c.appendText(buf)
	}
}

// Find returns the first descendant matching p in depth-first document
// order, or nil. The element itself is not considered.
func (el *Element) Find(p Pred) *Element {
	for _, c := range el.Children {
		if p(c) {
			return c
		}
		if m := c.Find(p); m != nil {
			return m
		}
	}
	return nil
}

// FindAll returns every descendant matching p in depth-first document
// order. Matching elements are not searched within, so nested matches
// under a match are not reported.
func (el *Element) FindAll(p Pred) []*Element {
	var res []*Element
	for _, c := range el.Children {
		if p(c) {
			res = append(res, c)
			continue
		}
		res = append(res, c.FindAll(p)...)
	}
	return res
}

// ChildrenWhere returns the direct children matching p in document order.
func (el *Element) ChildrenWhere(p Pred) []*Element {
	var res []*Element
	for _, c := range el.Children {
		if p(c) {
			res = append(res, c)
		}
	}
	return res
}

// ChildWhere returns the first direct child matching p, or nil.
func (el *Element) ChildWhere(p Pred) *Element {
	for _, c := range el.Children {
		if p(c) {
			return c
		}
	}
	return nil
}

// NextSibling returns the element immediately following this one among
// its parent's children, or nil.
func (el *Element) NextSibling() *Element {
	if el.Parent == nil {
		return nil
	}
	i := el.ParentIndex + 1
	if i >= len(el.Parent.Children) {
		return nil
	}
	return el.Parent.Children[i]
}

func (el *Element) appendChild(c *Element) {
	c.Parent = el
	c.ParentIndex = len(el.Children)
	el.Children = append(el.Children, c)
}
