// Package xmldom provides a small in-memory XML document object model.
// A Document owns a tree of Elements which can be queried, mutated, and
// serialized back to XML text. Tokenization is delegated to an external
// tokenizer driven by the Parser, which feeds a sax.Handler; the
// TreeBuilder is the handler that materializes the tree.
//
// The serializer performs no escaping of special characters in text or
// attribute values. Callers that embed '<', '&' or '"' in values will
// produce output that does not parse back.
package xmldom

import "github.com/lestrrat-go/xmldom/internal/orderedmap"

const (
	// ErrorElementName is the name carried by sentinel elements returned
	// from failed lookups. It is reserved: user documents must not use it
	// as an element name.
	ErrorElementName = "xmldomError"

	// documentContainerName is the synthetic name of the element embedded
	// in a Document. It never matches user queries and does not count
	// towards serialization depth.
	documentContainerName = "xmldomDocument"
)

// Element is a single node in the document tree. Elements exclusively
// own their children; the parent link is navigational only.
type Element struct {
	name     string
	nsURI    string
	value    *string
	attrs    *orderedmap.Map[string, string]
	children []*Element
	parent   *Element
}

// Document is the top level container for an element tree. It embeds a
// container Element whose children are the document's top level nodes,
// and carries the XML declaration metadata.
type Document struct {
	Element
	version           float64
	encoding          string
	standalone        string
	processNamespaces bool
}
