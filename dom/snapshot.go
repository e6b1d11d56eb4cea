package dom

import (
	"fmt"

	"github.com/goccy/go-json"
)

// snapshotElement is the wire form of an element dump produced by a
// capture script running in the page.
type snapshotElement struct {
	Tag      string             `json:"tag"`
	Classes  []string           `json:"classes,omitempty"`
	Attrs    map[string]string  `json:"attrs,omitempty"`
	Text     string             `json:"text,omitempty"`
	Children []*snapshotElement `json:"children,omitempty"`
}

// FromSnapshot loads a snapshot from its JSON element dump form.
func FromSnapshot(data []byte) (*Element, error) {
	snap := &snapshotElement{}
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("could not decode snapshot: %w", err)
	}
	return fromSnapshotElement(snap), nil
}

func fromSnapshotElement(snap *snapshotElement) *Element {
	el := New(snap.Tag, snap.Classes...).WithText(snap.Text)
	el.Attrs = snap.Attrs
	for _, c := range snap.Children {
		el.appendChild(fromSnapshotElement(c))
	}
	return el
}

// Snapshot serializes the element tree to its JSON element dump form.
func (el *Element) Snapshot() ([]byte, error) {
	return json.Marshal(toSnapshotElement(el))
}

func toSnapshotElement(el *Element) *snapshotElement {
	snap := &snapshotElement{
		Tag:     el.Tag,
		Classes: el.Classes,
		Attrs:   el.Attrs,
		Text:    el.text,
	}
	for _, c := range el.Children {
		snap.Children = append(snap.Children, toSnapshotElement(c))
	}
	return snap
}
