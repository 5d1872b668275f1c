package program

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/FifthTry/ftd/internal/errors"
	"github.com/FifthTry/ftd/pkg/dom"
	"github.com/FifthTry/ftd/pkg/element"
	"github.com/FifthTry/ftd/pkg/protocol"
	"github.com/FifthTry/ftd/pkg/vdom"
)

func runLive(t *testing.T, p *protocol.Program, st *State) (*element.Runtime, *dom.LiveDocument) {
	t.Helper()
	doc := dom.NewLive(vdom.NewCounter())
	rt := element.NewRuntime(doc)
	in, err := NewInterpreter(p)
	if err != nil {
		t.Fatal(err)
	}
	if err := in.Run(rt, st); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return rt, doc
}

func TestInterpreterSSR(t *testing.T) {
	p := mustCompile(t, counterYAML)
	doc := dom.NewSSR(vdom.NewCounter())
	rt := element.NewRuntime(doc)
	in, err := NewInterpreter(p)
	if err != nil {
		t.Fatal(err)
	}
	if err := in.Run(rt, NewState(p)); err != nil {
		t.Fatal(err)
	}

	html := doc.Root().ChildrenHTML()
	for _, want := range []string{`data-id="1"`, ">Closed</div>", ">milk</div>", ">eggs</div>", ">toggle</div>"} {
		if !strings.Contains(html, want) {
			t.Errorf("SSR output missing %q:\n%s", want, html)
		}
	}
	if strings.Contains(html, "Details") {
		t.Errorf("closed conditional rendered:\n%s", html)
	}
	sheet := rt.Stylesheet()
	if !strings.Contains(sheet, "padding: 8px;") || !strings.Contains(sheet, "body.dark") {
		t.Errorf("stylesheet = %s", sheet)
	}
}

func TestInterpreterLiveClicks(t *testing.T) {
	p := mustCompile(t, counterYAML)
	st := NewState(p)
	rt, doc := runLive(t, p, st)

	col := rt.Body().Children()[0]
	kids := col.Children()
	if len(kids) != 6 {
		t.Fatalf("column has %d children, want 6", len(kids))
	}
	counter, toggle, add := kids[0], kids[1], kids[5]

	if got := counter.Host().Text(); got != "0" {
		t.Errorf("counter text = %q", got)
	}
	if !counter.Host().Dispatch("click") || !counter.Host().Dispatch("click") {
		t.Fatal("counter has no click handler")
	}
	if got := counter.Host().Text(); got != "2" {
		t.Errorf("counter text after two clicks = %q, want 2", got)
	}

	toggle.Host().Dispatch("click")
	body := doc.BodyHTML()
	if !strings.Contains(body, "Details") || strings.Contains(body, "Closed") {
		t.Errorf("after toggle:\n%s", body)
	}
	toggle.Host().Dispatch("click")
	body = doc.BodyHTML()
	if strings.Contains(body, "Details") || !strings.Contains(body, "Closed") {
		t.Errorf("after second toggle:\n%s", body)
	}

	add.Host().Dispatch("click")
	loop := kids[4]
	if n := len(loop.Children()); n != 3 {
		t.Fatalf("loop has %d entries, want 3", n)
	}
	last := loop.Children()[2].Children()
	if last[0].Host().Text() != "2" || last[1].Host().Text() != "bread" {
		t.Errorf("pushed entry = %q %q", last[0].Host().Text(), last[1].Host().Text())
	}

	todos, _ := st.List("todos")
	todos.Remove(0)
	if got := loop.Children()[0].Children()[0].Host().Text(); got != "0" {
		t.Errorf("index after remove = %q, want 0", got)
	}
	if got := loop.Children()[0].Children()[1].Host().Text(); got != "eggs" {
		t.Errorf("item after remove = %q, want eggs", got)
	}
}

func TestInterpreterHydrate(t *testing.T) {
	p := mustCompile(t, counterYAML)
	st := NewState(p)
	if err := st.Apply(protocol.ActionToggle, "open", nil); err != nil {
		t.Fatal(err)
	}

	ssrDoc := dom.NewSSR(vdom.NewCounter())
	ssr := element.NewRuntime(ssrDoc)
	in, err := NewInterpreter(p)
	if err != nil {
		t.Fatal(err)
	}
	if err := in.Run(ssr, st); err != nil {
		t.Fatal(err)
	}
	snapshot, err := st.Encode()
	if err != nil {
		t.Fatal(err)
	}

	page := "<html><head>" + ssr.Stylesheet() + "</head><body>" + ssrDoc.Root().ChildrenHTML() + "</body></html>"
	hdoc, err := dom.NewHydrate(vdom.NewCounter(), strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	restored, err := DecodeState(p, snapshot)
	if err != nil {
		t.Fatal(err)
	}
	rt := element.NewRuntime(hdoc)
	if err := in.Run(rt, restored); err != nil {
		t.Fatal(err)
	}
	if hdoc.Pending() != 0 {
		t.Errorf("%d server nodes left unclaimed", hdoc.Pending())
	}
	if got, want := hdoc.Counter().Current(), ssrDoc.Counter().Current(); got != want {
		t.Errorf("hydration drew %d ordinals, SSR drew %d", got, want)
	}

	hdoc.Finish()
	rt.Body().Children()[0].Children()[1].Host().Dispatch("click")
	if strings.Contains(hdoc.BodyHTML(), "Details") {
		t.Error("toggle after hydration did not unmount the open branch")
	}
}

func TestInterpreterErrors(t *testing.T) {
	el := func(k element.ElementKind) protocol.Instruction {
		return protocol.Instruction{Op: protocol.OpElement, Arg: uint64(k)}
	}
	end := protocol.Instruction{Op: protocol.OpEnd}

	t.Run("unbalanced", func(t *testing.T) {
		for _, code := range [][]protocol.Instruction{{el(element.Text)}, {end}} {
			if _, err := NewInterpreter(&protocol.Program{Name: "x", Code: code}); errors.Code(err) != "E203" {
				t.Errorf("NewInterpreter(%v) err = %v, want E203", code, err)
			}
		}
	})

	tests := []struct {
		name string
		code []protocol.Instruction
		want string
	}{
		{"unknown property", []protocol.Instruction{el(element.Text), {Op: protocol.OpStatic, Arg: 200}, end}, "E101"},
		{"unknown element", []protocol.Instruction{el(99), end}, "E102"},
		{"property outside element", []protocol.Instruction{{Op: protocol.OpStatic}}, "E203"},
		{"item outside loop", []protocol.Instruction{el(element.Text), {Op: protocol.OpItem, Arg: uint64(element.PropStringValue)}, end}, "E203"},
		{"missing cell", []protocol.Instruction{el(element.Text), {Op: protocol.OpBind, Arg: uint64(element.PropStringValue), Ref: "ghost"}, end}, "E202"},
		{"missing list", []protocol.Instruction{{Op: protocol.OpFor, Ref: "ghost"}, end}, "E202"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &protocol.Program{Name: "x", Code: tt.code}
			in, err := NewInterpreter(p)
			if err != nil {
				t.Fatal(err)
			}
			rt := element.NewRuntime(dom.NewLive(vdom.NewCounter()))
			if err := in.Run(rt, NewState(p)); errors.Code(err) != tt.want {
				t.Errorf("Run err = %v, want %s", err, tt.want)
			}
		})
	}
}

func TestInterpreterClickFailureIsLogged(t *testing.T) {
	p := mustCompile(t, `
name: broken
cells:
  n: 1
body:
  - kind: integer
    props:
      integer-value: $n
    on_click: {action: increment, target: n}
`)
	st := NewState(p)
	if err := st.Override("n", "1"); err != nil {
		t.Fatal(err)
	}
	cell, _ := st.Cell("n")
	cell.Set("one")

	var buf bytes.Buffer
	doc := dom.NewLive(vdom.NewCounter())
	rt := element.NewRuntime(doc)
	in, err := NewInterpreter(p)
	if err != nil {
		t.Fatal(err)
	}
	in.WithLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	if err := in.Run(rt, st); err != nil {
		t.Fatal(err)
	}

	rt.Body().Children()[0].Host().Dispatch("click")
	if !strings.Contains(buf.String(), "click handler failed") || !strings.Contains(buf.String(), "E103") {
		t.Errorf("log = %q", buf.String())
	}
	if st.Get("n") != "one" {
		t.Errorf("n = %#v, want unchanged", st.Get("n"))
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		v    any
		want bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{int64(0), false},
		{int64(3), true},
		{0.0, false},
		{"", false},
		{"x", true},
		{element.Solid("red"), true},
	}
	for _, tt := range tests {
		if got := truthy(tt.v); got != tt.want {
			t.Errorf("truthy(%#v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
