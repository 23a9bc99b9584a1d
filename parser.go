package xmldom

import (
	"bytes"
	"io"
	"strings"

	pdebug "github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/xmldom/internal/nsstack"
	"github.com/lestrrat-go/xmldom/sax"
	"github.com/muktihari/xmltokenizer"
	"github.com/pkg/errors"
)

// Parser drives the external tokenizer over a byte buffer and adapts
// its tokens into sax.Handler events. It enforces the collaborator
// contract on the way through: tags must nest, and the first failure is
// delivered as a single terminal Error event before Parse returns.
type Parser struct {
	sax               sax.Handler
	processNamespaces bool
}

func NewParser(options ...ParseOption) *Parser {
	var p Parser
	for _, o := range options {
		switch o.Ident() {
		case identSAX{}:
			p.sax = o.Value().(sax.Handler)
		case identProcessNamespaces{}:
			p.processNamespaces = o.Value().(bool)
		}
	}
	return &p
}

type parsedAttribute struct {
	prefix string
	local  string
	value  string
}

var _ sax.ParsedAttribute = parsedAttribute{}

func (a parsedAttribute) Prefix() string {
	return a.prefix
}

func (a parsedAttribute) LocalName() string {
	return a.local
}

func (a parsedAttribute) Name() string {
	if a.prefix != "" {
		return a.prefix + ":" + a.local
	}
	return a.local
}

func (a parsedAttribute) Value() string {
	return a.value
}

type parsedElement struct {
	prefix string
	local  string
	name   string
	raw    string // tag name exactly as written, for balance checking
	uri    string
	attrs  []sax.ParsedAttribute
}

var _ sax.ParsedElement = (*parsedElement)(nil)

func (e *parsedElement) Prefix() string {
	return e.prefix
}

func (e *parsedElement) LocalName() string {
	return e.local
}

func (e *parsedElement) Name() string {
	return e.name
}

func (e *parsedElement) URI() string {
	return e.uri
}

func (e *parsedElement) Attributes() []sax.ParsedAttribute {
	return e.attrs
}

// Parse tokenizes data synchronously to completion, dispatching events
// to the registered handler in arrival order. It returns nil when the
// tokenizer reports success and the tag structure balanced, otherwise
// the first error encountered.
func (p *Parser) Parse(data []byte) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	h := p.sax
	if h == nil {
		h = &sax.Callbacks{}
	}
	ctx := sax.Context(p)

	if err := h.StartDocument(ctx); err != nil {
		return err
	}

	tok := xmltokenizer.New(bytes.NewReader(data))
	ns := nsstack.New()
	var open []*parsedElement

	for {
		token, err := tok.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return p.abort(ctx, h, errors.Wrap(err, `tokenizer failure`))
		}

		full := string(token.Name.Full)
		switch {
		case full == "":
			// nothing but character data, handled below
		case full[0] == '!':
			// comments and DOCTYPE carry no content for the tree; CDATA
			// delivers its payload as plain character data
			if !strings.HasPrefix(full, "![CDATA[") {
				continue
			}
		case full[0] == '?':
			// processing instructions carry no tree structure; trailing
			// character data still flows below
		case full[0] == '/':
			if len(open) == 0 {
				return p.abort(ctx, h, errors.Errorf(`unexpected closing tag </%s>`, full[1:]))
			}
			top := open[len(open)-1]
			if top.raw != full[1:] {
				return p.abort(ctx, h, errors.Errorf(`mismatched closing tag </%s>, expected </%s>`, full[1:], top.raw))
			}
			if err := h.EndElement(ctx, top); err != nil {
				return err
			}
			open = open[:len(open)-1]
			ns.PopScope()
		default:
			ns.PushScope()
			if p.processNamespaces {
				for _, attr := range token.Attrs {
					space := string(attr.Name.Space)
					local := string(attr.Name.Local)
					switch {
					case space == "" && local == "xmlns":
						ns.Bind("", string(attr.Value))
					case space == "xmlns":
						ns.Bind(local, string(attr.Value))
					}
				}
			}
			pe := p.newParsedElement(&token, ns)
			if err := h.StartElement(ctx, pe); err != nil {
				return err
			}
			if token.SelfClosing {
				if err := h.EndElement(ctx, pe); err != nil {
					return err
				}
				ns.PopScope()
			} else {
				open = append(open, pe)
			}
		}

		if len(token.Data) > 0 {
			if err := h.Characters(ctx, token.Data); err != nil {
				return err
			}
		}
	}

	if len(open) > 0 {
		return p.abort(ctx, h, errors.Errorf(`unexpected end of input: <%s> not closed`, open[len(open)-1].raw))
	}
	return h.EndDocument(ctx)
}

func (p *Parser) newParsedElement(token *xmltokenizer.Token, ns *nsstack.Stack) *parsedElement {
	pe := &parsedElement{
		prefix: string(token.Name.Space),
		local:  string(token.Name.Local),
		raw:    string(token.Name.Full),
	}
	if p.processNamespaces {
		pe.name = pe.local
		pe.uri, _ = ns.Lookup(pe.prefix)
	} else {
		pe.name = pe.raw
	}

	for _, attr := range token.Attrs {
		prefix := string(attr.Name.Space)
		local := string(attr.Name.Local)
		if p.processNamespaces && (prefix == "xmlns" || (prefix == "" && local == "xmlns")) {
			continue
		}
		pe.attrs = append(pe.attrs, parsedAttribute{
			prefix: prefix,
			local:  local,
			value:  string(attr.Value),
		})
	}
	return pe
}

// abort reports err as the terminal parse error and returns it.
func (p *Parser) abort(ctx sax.Context, h sax.Handler, err error) error {
	_ = h.Error(ctx, err)
	return err
}
