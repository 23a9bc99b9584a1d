package xmldom

import (
	"fmt"
	"io"
	"strings"
)

// Dumper serializes element trees to XML text. The pretty form places
// every element on its own line, indented with one tab per ancestor.
// No escaping of special characters is performed; see the package
// documentation.
type Dumper struct{}

func (d *Dumper) writeString(out io.Writer, content string) error {
	_, err := io.WriteString(out, content)
	return err
}

// DumpDoc writes the XML declaration followed by each child of the
// document on its own line.
func (d *Dumper) DumpDoc(out io.Writer, doc *Document) error {
	if err := d.writeString(out, doc.xmlDeclaration()); err != nil {
		return err
	}
	for _, e := range doc.Children() {
		if err := d.writeString(out, "\n"); err != nil {
			return err
		}
		if err := d.DumpNode(out, e); err != nil {
			return err
		}
	}
	return nil
}

// DumpNode writes e and its subtree. Indentation is derived from the
// node's own depth, so any node serializes correctly in isolation.
func (d *Dumper) DumpNode(out io.Writer, e *Element) error {
	indent := strings.Repeat("\t", e.depth())

	if err := d.writeString(out, indent+"<"+e.name); err != nil {
		return err
	}
	for k, v := range e.attrs.Range() {
		if err := d.writeString(out, ` `+k+`="`+v+`"`); err != nil {
			return err
		}
	}

	value, hasValue := e.Value()
	switch {
	case !hasValue && len(e.children) == 0:
		return d.writeString(out, " />")
	case len(e.children) > 0:
		// children win over any text value
		if err := d.writeString(out, ">\n"); err != nil {
			return err
		}
		for _, c := range e.children {
			if err := d.DumpNode(out, c); err != nil {
				return err
			}
			if err := d.writeString(out, "\n"); err != nil {
				return err
			}
		}
		return d.writeString(out, indent+"</"+e.name+">")
	default:
		return d.writeString(out, ">"+value+"</"+e.name+">")
	}
}

// XMLString returns the pretty, multi-line serialization of e.
func (e *Element) XMLString() string {
	var sb strings.Builder
	var d Dumper
	_ = d.DumpNode(&sb, e)
	return sb.String()
}

// XMLStringCompact returns the serialization of e with all newline and
// tab characters removed.
func (e *Element) XMLStringCompact() string {
	return compact(e.XMLString())
}

func compact(s string) string {
	return strings.NewReplacer("\n", "", "\t", "").Replace(s)
}

func (d *Document) xmlDeclaration() string {
	return fmt.Sprintf(`<?xml version="%.1f" encoding="%s" standalone="%s"?>`,
		d.version, d.encoding, d.standalone)
}

// XMLString returns the XML declaration followed by the pretty
// serialization of the document's children.
func (d *Document) XMLString() string {
	var sb strings.Builder
	var dumper Dumper
	_ = dumper.DumpDoc(&sb, d)
	return sb.String()
}

// XMLStringCompact returns the single-line form of XMLString.
func (d *Document) XMLStringCompact() string {
	return compact(d.XMLString())
}
