// Package nsstack tracks in-scope namespace bindings while walking a
// document. Each open element gets a scope; bindings shadow outer ones
// and disappear when their scope is popped.
package nsstack

type binding struct {
	prefix string
	uri    string
}

type Stack struct {
	bindings []binding
	marks    []int
}

func New() *Stack {
	return &Stack{}
}

// PushScope opens a scope for the element about to be processed.
func (s *Stack) PushScope() {
	s.marks = append(s.marks, len(s.bindings))
}

// PopScope discards every binding declared since the matching
// PushScope. Popping with no open scope is a no-op.
func (s *Stack) PopScope() {
	if len(s.marks) == 0 {
		return
	}
	mark := s.marks[len(s.marks)-1]
	s.marks = s.marks[:len(s.marks)-1]
	s.bindings = s.bindings[:mark]
}

// Bind declares prefix within the current scope. The empty prefix
// stands for the default namespace.
func (s *Stack) Bind(prefix, uri string) {
	s.bindings = append(s.bindings, binding{prefix: prefix, uri: uri})
}

// Lookup resolves prefix to the innermost URI bound to it.
func (s *Stack) Lookup(prefix string) (string, bool) {
	for i := len(s.bindings) - 1; i >= 0; i-- {
		if s.bindings[i].prefix == prefix {
			return s.bindings[i].uri, true
		}
	}
	return "", false
}
