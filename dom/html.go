package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// FromHTML loads a snapshot from serialized HTML (for example a page
// saved from the browser's devtools). The returned element is the
// document root; text nodes are folded into their parent element.
func FromHTML(r io.Reader) (*Element, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("could not parse html: %w", err)
	}
	root := New("#document")
	fromHTMLNode(root, doc)
	return root, nil
}

func fromHTMLNode(parent *Element, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			el := New(c.Data)
			for _, a := range c.Attr {
				if a.Key == "class" {
					el.Classes = strings.Fields(a.Val)
					continue
				}
				el.WithAttr(a.Key, a.Val)
			}
			parent.appendChild(el)
			fromHTMLNode(el, c)
		case html.TextNode:
			parent.text += c.Data
		default:
			// comments, doctypes and such carry no view content
		}
	}
}
