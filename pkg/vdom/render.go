package vdom

import (
	"bytes"
	"io"
	"strconv"
)

// HTML renders the node and its subtree to a string.
func (n *Node) HTML() string {
	var buf bytes.Buffer
	// bytes.Buffer writes never fail.
	_ = n.WriteHTML(&buf)
	return buf.String()
}

// ChildrenHTML renders only the children, in order. It is used for the
// document body, whose own tag belongs to the page shell.
func (n *Node) ChildrenHTML() string {
	var buf bytes.Buffer
	for _, child := range n.children {
		_ = child.WriteHTML(&buf)
	}
	return buf.String()
}

// WriteHTML streams the node and its subtree to w.
func (n *Node) WriteHTML(w io.Writer) error {
	if _, err := io.WriteString(w, "<"+n.tag); err != nil {
		return err
	}
	if err := n.writeOpeningAttrs(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if n.text != "" {
		if _, err := io.WriteString(w, escapeHTML(n.text)); err != nil {
			return err
		}
	}
	for _, child := range n.children {
		if err := child.WriteHTML(w); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</"+n.tag+">")
	return err
}

// writeOpeningAttrs writes data-id, attributes, class and style in that
// order, skipping empty fragments.
func (n *Node) writeOpeningAttrs(w io.Writer) error {
	if n.id > 0 {
		if _, err := io.WriteString(w, ` data-id="`+strconv.Itoa(n.id)+`"`); err != nil {
			return err
		}
	}

	for _, a := range n.attrs {
		frag := " " + a.Key
		if a.Value != "" {
			frag += `="` + escapeAttr(a.Value) + `"`
		}
		if _, err := io.WriteString(w, frag); err != nil {
			return err
		}
	}

	if cls := n.classes.String(); cls != "" {
		if _, err := io.WriteString(w, ` class="`+escapeAttr(cls)+`"`); err != nil {
			return err
		}
	}

	if len(n.style) > 0 {
		var buf bytes.Buffer
		for i, d := range n.style {
			if i > 0 {
				buf.WriteByte(';')
			}
			buf.WriteString(d.Property)
			buf.WriteByte(':')
			buf.WriteString(d.Value)
		}
		if _, err := io.WriteString(w, ` style="`+escapeAttr(buf.String())+`"`); err != nil {
			return err
		}
	}

	return nil
}
