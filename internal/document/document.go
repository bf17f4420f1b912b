package document

// Document groups the root element with the elements that can be queried.
type Document struct {
	root     *Root
	elements map[string]*Button
}

// New creates a document containing the given buttons.
func New(buttons ...*Button) *Document {
	d := &Document{
		root:     NewRoot(),
		elements: make(map[string]*Button, len(buttons)),
	}
	for _, b := range buttons {
		if b != nil {
			d.elements[b.Selector()] = b
		}
	}
	return d
}

// Root returns the document root element.
func (d *Document) Root() *Root {
	return d.root
}

// QuerySelector returns the element matched by selector, or nil.
func (d *Document) QuerySelector(selector string) *Button {
	return d.elements[selector]
}
