package vdom

import (
	"strings"
	"testing"
)

func TestNodeRenderHTML(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Node
		want  string
	}{
		{
			name:  "bare element",
			build: func() *Node { return NewNode(1, "div") },
			want:  `<div data-id="1"></div>`,
		},
		{
			name:  "body has no data-id",
			build: func() *Node { return NewNode(0, "body") },
			want:  `<body></body>`,
		},
		{
			name: "attributes classes and style",
			build: func() *Node {
				n := NewNode(3, "img")
				n.SetAttribute("src", "a.png")
				n.SetAttribute("hidden", "")
				n.ClassList().Add("ft_row")
				n.ClassList().Add("w-1")
				n.SetStyle("color", "red")
				n.SetStyle("gap", "2px")
				return n
			},
			want: `<img data-id="3" src="a.png" hidden class="ft_row w-1" style="color:red;gap:2px"></img>`,
		},
		{
			name: "text is escaped",
			build: func() *Node {
				n := NewNode(2, "div")
				n.SetText(`<b>"hi"</b>`)
				return n
			},
			want: `<div data-id="2">&lt;b&gt;&#34;hi&#34;&lt;/b&gt;</div>`,
		},
		{
			name: "children after text",
			build: func() *Node {
				n := NewNode(1, "div")
				n.SetText("x")
				n.AppendChild(NewNode(2, "div"))
				n.AppendChild(NewComment(3))
				return n
			},
			want: `<div data-id="1">x<div data-id="2"></div><comment data-id="3"></comment></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build().HTML(); got != tt.want {
				t.Errorf("HTML() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestNodeTreeOperations(t *testing.T) {
	root := NewNode(0, "body")
	a, b, c := NewNode(1, "div"), NewNode(2, "div"), NewNode(3, "div")

	root.AppendChild(a)
	root.AppendChild(c)
	root.InsertBefore(b, c)

	if got := ids(root.Children()); got != "1,2,3" {
		t.Fatalf("children = %s, want 1,2,3", got)
	}
	if b.Parent() != root {
		t.Error("InsertBefore should set parent")
	}

	b.Remove()
	if got := ids(root.Children()); got != "1,3" {
		t.Errorf("children after Remove = %s, want 1,3", got)
	}
	if b.Parent() != nil {
		t.Error("Remove should clear parent")
	}

	// re-appending moves the node
	a.AppendChild(c)
	if got := ids(root.Children()); got != "1" {
		t.Errorf("root children after move = %s, want 1", got)
	}

	root.InsertBefore(b, nil)
	if got := ids(root.Children()); got != "1,2" {
		t.Errorf("InsertBefore(nil) should append, got %s", got)
	}
}

func TestNodeAttributesAndStyle(t *testing.T) {
	n := NewNode(1, "div")
	n.SetAttribute("id", "a")
	n.SetAttribute("id", "b")
	if v, ok := n.Attribute("id"); !ok || v != "b" {
		t.Errorf("Attribute(id) = %q, %v", v, ok)
	}
	n.RemoveAttribute("id")
	if _, ok := n.Attribute("id"); ok {
		t.Error("RemoveAttribute should delete")
	}

	n.SetStyle("width", "1px")
	n.SetStyle("width", "2px")
	if v, _ := n.Style("width"); v != "2px" || len(n.Styles()) != 1 {
		t.Errorf("Style(width) = %q, decls = %d", v, len(n.Styles()))
	}
	n.RemoveStyle("width")
	if len(n.Styles()) != 0 {
		t.Error("RemoveStyle should delete")
	}
}

func TestClassList(t *testing.T) {
	var c ClassList
	c.Add("a")
	c.Add("b")
	c.Add("a")
	if c.String() != "a b" || c.Len() != 2 {
		t.Errorf("String() = %q, Len() = %d", c.String(), c.Len())
	}
	c.Remove("a")
	c.Remove("missing")
	if c.String() != "b" || !c.Contains("b") || c.Contains("a") {
		t.Errorf("after Remove: %q", c.String())
	}
}

func TestChildrenHTML(t *testing.T) {
	root := NewNode(0, "body")
	a := NewNode(1, "div")
	root.AppendChild(a)
	a.AppendChild(NewNode(2, "div"))

	if got := root.ChildrenHTML(); !strings.HasPrefix(got, `<div data-id="1">`) {
		t.Errorf("ChildrenHTML() = %s", got)
	}
}

func ids(nodes []*Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = string(rune('0' + n.ID()))
	}
	return strings.Join(parts, ",")
}
