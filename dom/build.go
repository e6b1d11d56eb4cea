package dom

// New constructs an element. Builders exist for loaders and tests;
// elements should not be modified once handed to a walker.
func New(tag string, classes ...string) *Element {
	return &Element{
		Tag:     tag,
		Classes: classes,
	}
}

func (el *Element) WithText(text string) *Element {
	el.text = text
	return el
}

func (el *Element) WithAttr(name, value string) *Element {
	if el.Attrs == nil {
		el.Attrs = map[string]string{}
	}
	el.Attrs[name] = value
	return el
}

func (el *Element) Add(children ...*Element) *Element {
	for _, c := range children {
		el.appendChild(c)
	}
	return el
}
