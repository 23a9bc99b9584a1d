package xmldom

// Child returns the first child of e whose name equals key. When no
// child matches, it returns a sentinel element named ErrorElementName
// whose value describes the miss. Calling Child on a sentinel returns
// the sentinel itself, so lookup chains of arbitrary depth never need
// nil checks; callers detect a miss with IsError or by comparing the
// result's Name against ErrorElementName.
func (e *Element) Child(key string) *Element {
	if e.name == ErrorElementName {
		return e
	}
	for _, c := range e.children {
		if c.name == key {
			return c
		}
	}
	return newErrorElement("element <%s> not found", key)
}

// All returns every child of e's parent that shares e's name, in
// document order. It returns nil if e has no parent.
func (e *Element) All() []*Element {
	p := e.parent
	if p == nil {
		return nil
	}
	var all []*Element
	for _, c := range p.children {
		if c.name == e.name {
			all = append(all, c)
		}
	}
	return all
}

// First returns the first element of the sibling set, or nil if e has
// no parent.
func (e *Element) First() *Element {
	if all := e.All(); len(all) > 0 {
		return all[0]
	}
	return nil
}

// Last returns the last element of the sibling set, or nil if e has
// no parent.
func (e *Element) Last() *Element {
	if all := e.All(); len(all) > 0 {
		return all[len(all)-1]
	}
	return nil
}

// Count returns the size of the sibling set, 0 if e has no parent.
func (e *Element) Count() int {
	return len(e.All())
}

// AllWithAttributes returns the members of the sibling set whose own
// attributes contain every key/value pair of attrs. Attributes not
// named in attrs are ignored. It returns nil when nothing matches or
// when e has no parent.
func (e *Element) AllWithAttributes(attrs map[string]string) []*Element {
	var matches []*Element
	for _, sibling := range e.All() {
		ok := true
		for k, v := range attrs {
			if got, found := sibling.attrs.Get(k); !found || got != v {
				ok = false
				break
			}
		}
		if ok {
			matches = append(matches, sibling)
		}
	}
	return matches
}

// CountWithAttributes returns the size of the AllWithAttributes result.
func (e *Element) CountWithAttributes(attrs map[string]string) int {
	return len(e.AllWithAttributes(attrs))
}
