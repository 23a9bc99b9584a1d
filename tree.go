package xmldom

import (
	"bytes"

	pdebug "github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/xmldom/sax"
)

// TreeBuilder is a sax.Handler that materializes the event stream into
// the element tree of a Document. A builder serves a single parse and
// is discarded afterwards.
//
// Only the current parent pointer is retained instead of a full stack;
// popping navigates the parent links. Character data is accumulated
// across fragments and the element value is recomputed from the full
// buffer, trimmed of surrounding whitespace, on every fragment.
type TreeBuilder struct {
	doc     *Document
	parent  *Element
	current *Element
	text    []byte
	err     error
}

var _ sax.Handler = (*TreeBuilder)(nil)

func NewTreeBuilder(doc *Document) *TreeBuilder {
	return &TreeBuilder{
		doc:    doc,
		parent: &doc.Element,
	}
}

// Err returns the terminal parse error recorded via Error, if any.
func (t *TreeBuilder) Err() error {
	return t.err
}

func (t *TreeBuilder) StartDocument(_ sax.Context) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	t.parent = &t.doc.Element
	t.current = nil
	t.text = t.text[:0]
	t.err = nil
	return nil
}

func (t *TreeBuilder) EndDocument(_ sax.Context) error {
	return nil
}

func (t *TreeBuilder) StartElement(_ sax.Context, elem sax.ParsedElement) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	t.text = t.text[:0]

	e := t.parent.CreateChild(elem.Name())
	e.nsURI = elem.URI()
	for _, attr := range elem.Attributes() {
		e.SetAttribute(attr.Name(), attr.Value())
	}

	t.current = e
	t.parent = e
	return nil
}

func (t *TreeBuilder) EndElement(_ sax.Context, _ sax.ParsedElement) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	// note: t.current deliberately keeps pointing at the element that
	// last started, matching how character data arriving after a close
	// tag is attributed
	if p := t.parent.parent; p != nil {
		t.parent = p
	}
	return nil
}

func (t *TreeBuilder) Characters(_ sax.Context, data []byte) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	t.text = append(t.text, data...)
	if t.current == nil {
		return nil
	}

	trimmed := bytes.TrimSpace(t.text)
	if len(trimmed) == 0 {
		t.current.value = nil
	} else {
		t.current.SetValue(string(trimmed))
	}
	return nil
}

func (t *TreeBuilder) Error(_ sax.Context, err error) error {
	if t.err == nil {
		t.err = err
	}
	return nil
}
