package xmldom

import (
	"github.com/lestrrat-go/option"
	"github.com/lestrrat-go/xmldom/sax"
)

type Option = option.Interface

type identValue struct{}
type identAttributes struct{}
type identDocumentVersion struct{}
type identDocumentEncoding struct{}
type identDocumentStandalone struct{}
type identDocumentRoot struct{}
type identProcessNamespaces struct{}
type identSAX struct{}

type ElementOption interface {
	Option
	elementOption()
}

type elementOption struct{ Option }

func (*elementOption) elementOption() {}

type DocumentOption interface {
	Option
	documentOption()
}

type documentOption struct{ Option }

func (*documentOption) documentOption() {}

type ParseOption interface {
	Option
	parseOption()
}

type parseOption struct{ Option }

func (*parseOption) parseOption() {}

// DocumentParseOption is an option that can be passed to both
// NewDocument and NewParser.
type DocumentParseOption interface {
	Option
	documentOption()
	parseOption()
}

type documentParseOption struct{ Option }

func (*documentParseOption) documentOption() {}
func (*documentParseOption) parseOption()    {}

// WithValue specifies the text value of a new Element. An element
// created without this option has no value at all, which is distinct
// from an empty string value.
func WithValue(v string) ElementOption {
	return &elementOption{option.New(identValue{}, v)}
}

// WithAttributes specifies the initial attributes of a new Element.
// Keys are applied in sorted order so that serialization of the
// resulting element is deterministic.
func WithAttributes(v map[string]string) ElementOption {
	return &elementOption{option.New(identAttributes{}, v)}
}

// WithVersion specifies the XML version of a document. Defaults to 1.0
func WithVersion(v float64) DocumentOption {
	return &documentOption{option.New(identDocumentVersion{}, v)}
}

// WithEncoding specifies the encoding of a document. Defaults to "utf-8"
func WithEncoding(v string) DocumentOption {
	return &documentOption{option.New(identDocumentEncoding{}, v)}
}

// WithStandalone specifies the standalone declaration of a document,
// either "yes" or "no". Defaults to "no"
func WithStandalone(v string) DocumentOption {
	return &documentOption{option.New(identDocumentStandalone{}, v)}
}

// WithRoot specifies the root element of a new document. The element
// is adopted as the document's sole child.
func WithRoot(v *Element) DocumentOption {
	return &documentOption{option.New(identDocumentRoot{}, v)}
}

// WithProcessNamespaces controls whether the tokenizer driver resolves
// namespace prefixes to URIs. Defaults to false
func WithProcessNamespaces(v bool) DocumentParseOption {
	return &documentParseOption{option.New(identProcessNamespaces{}, v)}
}

// WithSAX specifies the handler that receives the parse events.
func WithSAX(v sax.Handler) ParseOption {
	return &parseOption{option.New(identSAX{}, v)}
}
