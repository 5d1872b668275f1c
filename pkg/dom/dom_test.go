package dom

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/FifthTry/ftd/internal/errors"
	"github.com/FifthTry/ftd/pkg/vdom"
)

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeLive, "live"},
		{ModeSSR, "ssr"},
		{ModeHydrate, "hydrate"},
		{Mode(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestSSRDocument(t *testing.T) {
	doc := NewSSR(vdom.NewCounter())

	if doc.CreateElement(TagBody) != doc.Body() {
		t.Error("CreateElement(body) should return the body")
	}
	if doc.Counter().Current() != 0 {
		t.Error("the body should not consume an ordinal")
	}

	div := doc.CreateElement("div")
	div.AddClass("ft_column")
	div.SetStyle("color", "red")
	div.SetText("hi")
	doc.Body().AppendChild(div)
	doc.Body().AppendChild(doc.CreateElement(TagComment))

	want := `<div data-id="1" class="ft_column" style="color:red">hi</div><comment data-id="2"></comment>`
	if got := doc.Root().ChildrenHTML(); got != want {
		t.Errorf("ChildrenHTML() =\n%s\nwant\n%s", got, want)
	}

	if _, ok := VNode(div); !ok {
		t.Error("VNode should unwrap SSR nodes")
	}
	div.SetEventHandler("click", func() { t.Error("SSR handlers must not run") })
	if div.Dispatch("click") {
		t.Error("SSR Dispatch should report false")
	}
}

func TestLiveDocument(t *testing.T) {
	doc := NewLive(vdom.NewCounter())

	row := doc.CreateElement("div")
	row.AddClass("ft_row")
	row.AddClass("ft_row")
	row.SetStyle("padding", "2px")
	row.SetStyle("padding", "4px")
	doc.Body().AppendChild(row)

	text := doc.CreateElement("div")
	text.SetText("hello")
	row.AppendChild(text)

	anchor := doc.CreateElement(TagComment)
	row.InsertBefore(anchor, text)

	if got := doc.Counter().Current(); got != 3 {
		t.Errorf("Counter().Current() = %d, want 3", got)
	}
	if got := strings.Join(row.Classes(), " "); got != "ft_row" {
		t.Errorf("Classes() = %q, want ft_row", got)
	}
	if v, _ := row.Style("padding"); v != "4px" {
		t.Errorf("Style(padding) = %q, want 4px", v)
	}

	want := `<div class="ft_row" style="padding:4px"><!--ftd--><div>hello</div></div>`
	if got := doc.BodyHTML(); got != want {
		t.Errorf("BodyHTML() =\n%s\nwant\n%s", got, want)
	}

	doc.AppendStyle(".w-0 { width: 10px; }")
	if !strings.Contains(doc.HTML(), `<style id="styles">.w-0 { width: 10px; }`) {
		t.Errorf("stylesheet missing from:\n%s", doc.HTML())
	}

	row.RemoveClass("ft_row")
	row.RemoveStyle("padding")
	if _, ok := row.Attribute("class"); ok {
		t.Error("empty class attribute should be removed")
	}
	if _, ok := row.Attribute("style"); ok {
		t.Error("empty style attribute should be removed")
	}
}

func TestLiveEvents(t *testing.T) {
	doc := NewLive(vdom.NewCounter())
	outer := doc.CreateElement("div")
	inner := doc.CreateElement("div")
	outer.AppendChild(inner)
	doc.Body().AppendChild(outer)

	clicks := 0
	inner.SetEventHandler("click", func() { clicks++ })
	if !inner.Dispatch("click") || clicks != 1 {
		t.Fatalf("Dispatch ran %d handlers, want 1", clicks)
	}

	outer.Remove()
	if inner.Dispatch("click") {
		t.Error("removing an ancestor should drop descendant handlers")
	}
}

func TestSetTextKeepsElementChildren(t *testing.T) {
	doc := NewLive(vdom.NewCounter())
	parent := doc.CreateElement("div")
	child := doc.CreateElement("span")
	parent.AppendChild(child)

	parent.SetText("a")
	parent.SetText("b")
	if got := parent.Text(); got != "b" {
		t.Errorf("Text() = %q, want b", got)
	}
	h, _ := HTMLNode(parent)
	if h.LastChild == nil || h.LastChild.Data != "span" {
		t.Error("element child should survive SetText")
	}
}

func TestHydrateDocument(t *testing.T) {
	ssr := NewSSR(vdom.NewCounter())
	col := ssr.CreateElement("div")
	col.AddClass("ft_column")
	ssr.Body().AppendChild(col)
	label := ssr.CreateElement("div")
	label.SetText("0")
	col.AppendChild(label)
	col.AppendChild(ssr.CreateElement(TagComment))

	page := "<html><body>" + ssr.Root().ChildrenHTML() + "</body></html>"
	doc, err := NewHydrate(vdom.NewCounter(), strings.NewReader(page))
	if err != nil {
		t.Fatalf("NewHydrate: %v", err)
	}
	if doc.Mode() != ModeHydrate {
		t.Fatalf("Mode() = %v, want hydrate", doc.Mode())
	}

	hcol := doc.CreateElement("div")
	hlabel := doc.CreateElement("div")
	hanchor := doc.CreateElement(TagComment)
	doc.Body().AppendChild(hcol)
	hcol.AppendChild(hlabel)
	hcol.AppendChild(hanchor)

	if hlabel.Text() != "0" {
		t.Errorf("hydrated text = %q, want 0", hlabel.Text())
	}
	if doc.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", doc.Pending())
	}
	n, _ := HTMLNode(hanchor)
	if n.Data != CommentText || n.Parent == nil {
		t.Error("comment placeholder should be replaced in place")
	}

	doc.Finish()
	if doc.Mode() != ModeLive {
		t.Error("Finish should switch to live mode")
	}
	fresh := doc.CreateElement("div")
	hcol.AppendChild(fresh)
	if !strings.Contains(doc.BodyHTML(), `<div data-id="2">0</div><!--ftd--><div></div>`) {
		t.Errorf("BodyHTML() = %s", doc.BodyHTML())
	}
}

func TestHydrateMismatchPanics(t *testing.T) {
	doc, err := NewHydrate(vdom.NewCounter(), strings.NewReader(`<body><div data-id="1"></div></body>`))
	if err != nil {
		t.Fatal(err)
	}
	doc.CreateElement("div")

	defer func() {
		r := recover()
		e, ok := r.(error)
		if !ok || !stderrors.Is(e, errors.New("E040")) {
			t.Errorf("recover() = %v, want E040", r)
		}
	}()
	doc.CreateElement("div")
}
