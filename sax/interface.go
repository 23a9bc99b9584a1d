// Package sax defines the event interface between the tokenizer driver
// and consumers such as the tree builder. The driver delivers, for a
// well-formed document, a balanced sequence of StartElement,
// Characters, and EndElement events, and at most one Error event after
// which no further structural events follow.
package sax

// Context is an opaque value identifying the parse that generated an
// event. The driver passes itself; handlers normally ignore it.
type Context interface{}

// ParsedElement describes a start or end tag as reported by the
// tokenizer. Name returns the name a consumer should record: the local
// name when the driver resolved namespaces, the qualified name
// otherwise.
type ParsedElement interface {
	Prefix() string
	LocalName() string
	Name() string
	URI() string
	Attributes() []ParsedAttribute
}

// ParsedAttribute describes a single attribute captured at start-tag
// time. Values are plain strings with no type coercion.
type ParsedAttribute interface {
	Prefix() string
	LocalName() string
	Name() string
	Value() string
}

// Handler is the interface consumed by the tokenizer driver. The byte
// slice passed to Characters is only valid for the duration of the
// call; handlers that keep the data must copy it. Characters may fire
// multiple times for a single run of text.
type Handler interface {
	StartDocument(Context) error
	EndDocument(Context) error
	StartElement(Context, ParsedElement) error
	EndElement(Context, ParsedElement) error
	Characters(Context, []byte) error
	Error(Context, error) error
}

type StartDocumentFunc func(Context) error
type EndDocumentFunc func(Context) error
type StartElementFunc func(Context, ParsedElement) error
type EndElementFunc func(Context, ParsedElement) error
type CharactersFunc func(Context, []byte) error
type ErrorFunc func(Context, error) error

// Callbacks is a Handler built from optional function fields. Nil
// fields are treated as no-ops, so a zero Callbacks discards every
// event.
type Callbacks struct {
	StartDocumentHandler StartDocumentFunc
	EndDocumentHandler   EndDocumentFunc
	StartElementHandler  StartElementFunc
	EndElementHandler    EndElementFunc
	CharactersHandler    CharactersFunc
	ErrorHandler         ErrorFunc
}
