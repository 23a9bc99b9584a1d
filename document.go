package xmldom

import (
	"bytes"
	"io"

	pdebug "github.com/lestrrat-go/pdebug/v3"
	xmlencoding "github.com/lestrrat-go/xmldom/encoding"
	"github.com/pkg/errors"
	"golang.org/x/text/transform"
)

// NewDocument creates a Document. Without options the document is
// empty, declared as version 1.0, encoded in utf-8, standalone "no",
// and namespace processing is disabled.
func NewDocument(options ...DocumentOption) *Document {
	doc := &Document{
		version:    1.0,
		encoding:   "utf-8",
		standalone: "no",
	}
	doc.Element = Element{
		name:  documentContainerName,
		attrs: newAttributeMap(),
	}
	for _, o := range options {
		switch o.Ident() {
		case identDocumentVersion{}:
			doc.version = o.Value().(float64)
		case identDocumentEncoding{}:
			doc.encoding = o.Value().(string)
		case identDocumentStandalone{}:
			doc.standalone = o.Value().(string)
		case identProcessNamespaces{}:
			doc.processNamespaces = o.Value().(bool)
		case identDocumentRoot{}:
			if root := o.Value().(*Element); root != nil {
				doc.AddChild(root)
			}
		}
	}
	return doc
}

func (d *Document) Version() float64 {
	return d.version
}

func (d *Document) Encoding() string {
	return d.encoding
}

func (d *Document) Standalone() string {
	return d.standalone
}

func (d *Document) ProcessNamespaces() bool {
	return d.processNamespaces
}

// Root returns the document's root element when the document has
// exactly one top level element. Otherwise it returns a sentinel
// element (see Element.Child) describing the missing root.
func (d *Document) Root() *Element {
	if len(d.children) == 1 {
		return d.children[0]
	}
	return newErrorElement("document must have a root element")
}

// ReadXMLData discards the document's current children and parses data
// into a fresh tree. The declaration metadata of the document is left
// untouched; when its encoding names a charset other than UTF-8 the
// input is transcoded before tokenization. On failure the first
// tokenizer error is returned and no usable tree is guaranteed.
func (d *Document) ReadXMLData(data []byte) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	d.RemoveAllChildren()

	if enc := xmlencoding.Load(d.encoding); enc != nil {
		decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), enc.NewDecoder()))
		if err != nil {
			return errors.Wrapf(err, `failed to decode input as %s`, d.encoding)
		}
		data = decoded
	}

	tb := NewTreeBuilder(d)
	p := NewParser(WithSAX(tb), WithProcessNamespaces(d.processNamespaces))
	if err := p.Parse(data); err != nil {
		return errors.Wrap(err, `failed to parse document`)
	}
	return nil
}

// ReadXML is a convenience around ReadXMLData for io.Reader inputs.
func (d *Document) ReadXML(in io.Reader) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, `failed to read input`)
	}
	return d.ReadXMLData(data)
}
