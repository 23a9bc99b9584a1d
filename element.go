package xmldom

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/lestrrat-go/xmldom/internal/orderedmap"
)

func newAttributeMap() *orderedmap.Map[string, string] {
	return orderedmap.New[string, string]()
}

// NewElement creates a new Element with the given name. Please note
// that an element created this way is an orphan node: it has no parent
// until it is adopted via AddChild. The name is taken as-is, no
// validation against XML naming rules is performed.
func NewElement(name string, options ...ElementOption) *Element {
	e := &Element{
		name:  name,
		attrs: newAttributeMap(),
	}
	for _, o := range options {
		switch o.Ident() {
		case identValue{}:
			v := o.Value().(string)
			e.value = &v
		case identAttributes{}:
			e.SetAttributes(o.Value().(map[string]string))
		}
	}
	return e
}

func newErrorElement(format string, args ...interface{}) *Element {
	return NewElement(ErrorElementName, WithValue(fmt.Sprintf(format, args...)))
}

func (e *Element) Name() string {
	return e.name
}

// IsError reports whether e is a lookup sentinel (see Child and
// Document.Root).
func (e *Element) IsError() bool {
	return e.name == ErrorElementName
}

func (e *Element) Parent() *Element {
	return e.parent
}

func (e *Element) Children() []*Element {
	return e.children
}

func (e *Element) NamespaceURI() string {
	return e.nsURI
}

func (e *Element) SetNamespaceURI(uri string) {
	e.nsURI = uri
}

// AddChild adopts child as the last child of e and returns it for
// chaining. If child already has a parent it is detached from it first,
// so the parent/child back-references stay consistent.
func (e *Element) AddChild(child *Element) *Element {
	if child == nil {
		return nil
	}
	if child.parent != nil {
		child.RemoveFromParent()
	}
	child.parent = e
	e.children = append(e.children, child)
	return child
}

// CreateChild creates a new Element and adds it as the last child of e.
func (e *Element) CreateChild(name string, options ...ElementOption) *Element {
	return e.AddChild(NewElement(name, options...))
}

// RemoveFromParent detaches e from its parent, if any. The element
// remains usable as the root of its own subtree.
func (e *Element) RemoveFromParent() {
	p := e.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == e {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// RemoveAllChildren detaches every child of e.
func (e *Element) RemoveAllChildren() {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
}

// SetAttribute sets the attribute with the given name. Setting a name
// that already exists overwrites its value, keeping its original
// position in the serialization order.
func (e *Element) SetAttribute(name, value string) {
	e.attrs.Set(name, value)
}

// SetAttributes upserts every entry of the given map. Keys are applied
// in sorted order so repeated calls yield a deterministic attribute
// order.
func (e *Element) SetAttributes(attrs map[string]string) {
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		e.attrs.Set(k, attrs[k])
	}
}

// Attribute returns the value of the named attribute.
func (e *Element) Attribute(name string) (string, bool) {
	return e.attrs.Get(name)
}

// Attributes iterates over the attributes in serialization order.
func (e *Element) Attributes() iter.Seq2[string, string] {
	return e.attrs.Range()
}

// AttributeCount returns the number of attributes on e.
func (e *Element) AttributeCount() int {
	return e.attrs.Len()
}

// depth is the number of ancestors of e, not counting a Document's
// container element. It is computed by walking the parent links so that
// any node can serialize itself in isolation.
func (e *Element) depth() int {
	n := 0
	for p := e.parent; p != nil; p = p.parent {
		if p.name == documentContainerName {
			break
		}
		n++
	}
	return n
}
