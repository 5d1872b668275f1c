package program

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/FifthTry/ftd/internal/errors"
	"github.com/FifthTry/ftd/pkg/element"
	"github.com/FifthTry/ftd/pkg/protocol"
)

func TestCompileSimple(t *testing.T) {
	p := mustCompile(t, `
name: simple
cells:
  n: 1
body:
  - kind: text
    props:
      padding: 4px
      string-value: $n
      id: $$literal
`)
	want := []protocol.Instruction{
		{Op: protocol.OpElement, Arg: uint64(element.Text)},
		{Op: protocol.OpBind, Arg: uint64(element.PropStringValue), Ref: "n"},
		{Op: protocol.OpStatic, Arg: uint64(element.PropPadding), Value: protocol.StringValue("4px")},
		{Op: protocol.OpStatic, Arg: uint64(element.PropID), Value: protocol.StringValue("$literal")},
		{Op: protocol.OpEnd},
	}
	if !reflect.DeepEqual(p.Code, want) {
		t.Errorf("Code =\n%+v\nwant\n%+v", p.Code, want)
	}
	if len(p.Cells) != 1 || !reflect.DeepEqual(p.Cells[0].Initial, protocol.IntValue(1)) {
		t.Errorf("Cells = %+v", p.Cells)
	}
}

func TestCompileCounter(t *testing.T) {
	p := mustCompile(t, counterYAML)

	if p.Code[0].Op != protocol.OpElement || p.Code[0].Arg != uint64(element.Column) {
		t.Errorf("first instruction = %+v, want column", p.Code[0])
	}

	var names []string
	for _, c := range p.Cells {
		names = append(names, c.Name)
	}
	if !reflect.DeepEqual(names, []string{"accent", "count", "open"}) {
		t.Errorf("cells = %v, want sorted", names)
	}
	if p.Cells[0].Initial.Tag != protocol.TagColor || p.Cells[2].Initial.Tag != protocol.TagBool {
		t.Errorf("cell tags = %s, %s", p.Cells[0].Initial.Tag, p.Cells[2].Initial.Tag)
	}

	counts := map[protocol.Op]int{}
	negated := 0
	for _, in := range p.Code {
		counts[in.Op]++
		if in.Op == protocol.OpIf && in.Arg == 1 {
			negated++
		}
	}
	for op, want := range map[protocol.Op]int{
		protocol.OpIf:      2,
		protocol.OpFor:     1,
		protocol.OpItem:    1,
		protocol.OpIndex:   1,
		protocol.OpOnClick: 3,
	} {
		if counts[op] != want {
			t.Errorf("%s count = %d, want %d", op, counts[op], want)
		}
	}
	if negated != 1 {
		t.Errorf("negated ifs = %d, want 1", negated)
	}

	if _, err := NewInterpreter(p); err != nil {
		t.Errorf("compiled program does not balance: %v", err)
	}

	again := mustCompile(t, counterYAML)
	if !bytes.Equal(protocol.EncodeProgram(p), protocol.EncodeProgram(again)) {
		t.Error("compiling the same source twice produced different bytes")
	}

	decoded, err := protocol.DecodeProgram(protocol.EncodeProgram(p))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ops(decoded), ops(p)) {
		t.Error("program did not survive encoding")
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code string
	}{
		{"no name", "body: []", "E204"},
		{"unknown kind", "name: x\nbody:\n  - kind: video", "E204"},
		{"unknown property", "name: x\nbody:\n  - kind: text\n    props: {glow: 1}", "E204"},
		{"unsupported value", "name: x\nbody:\n  - kind: text\n    props: {width: [1, 2]}", "E204"},
		{"unknown cell", "name: x\nbody:\n  - kind: text\n    props: {string-value: $missing}", "E202"},
		{"item outside loop", "name: x\nbody:\n  - kind: text\n    props: {string-value: $item}", "E202"},
		{"if on unknown cell", "name: x\nbody:\n  - kind: text\n    if: ghost", "E202"},
		{"for over a cell", "name: x\ncells: {n: 1}\nbody:\n  - kind: text\n    for: n", "E202"},
		{"cell and list share a name", "name: x\ncells: {a: 1}\nlists: {a: []}\nbody: []", "E204"},
		{"unknown action", "name: x\ncells: {n: 1}\nbody:\n  - kind: text\n    on_click: {action: explode, target: n}", "E204"},
		{"toggle a number", "name: x\ncells: {n: 1}\nbody:\n  - kind: text\n    on_click: {action: toggle, target: n}", "E204"},
		{"increment a string", "name: x\ncells: {s: hi}\nbody:\n  - kind: text\n    on_click: {action: increment, target: s}", "E204"},
		{"push to a cell", "name: x\ncells: {n: 1}\nbody:\n  - kind: text\n    on_click: {action: push, target: n}", "E202"},
		{"bad typography key", "name: x\ncells: {t: {size: 1px, glow: on}}\nbody: []", "E204"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := ParseSource([]byte(tt.src), ExtYAML)
			if err != nil {
				t.Fatalf("ParseSource: %v", err)
			}
			_, err = Compile(src)
			if got := errors.Code(err); got != tt.code {
				t.Errorf("Compile err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestEncodeValue(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want protocol.Value
	}{
		{"nil", nil, protocol.Value{}},
		{"integral float", 3.0, protocol.IntValue(3)},
		{"fraction", 2.5, protocol.FloatValue(2.5)},
		{"int", 7, protocol.IntValue(7)},
		{"bool", true, protocol.BoolValue(true)},
		{"color", map[string]any{"light": "red"}, protocol.ColorValue("red", "")},
		{"color pair", map[string]any{"light": "red", "dark": "pink"}, protocol.ColorValue("red", "pink")},
		{
			"flat type",
			map[string]any{"size": "14px", "weight": 700},
			protocol.RoleValue([5]string{"14px", "", "", "700", ""}, [5]string{"14px", "", "", "700", ""}),
		},
		{
			"responsive type",
			map[string]any{"desktop": map[string]any{"size": "16px"}, "mobile": map[string]any{"size": "12px"}},
			protocol.RoleValue([5]string{"16px"}, [5]string{"12px"}),
		},
		{"runtime color", element.Color{Light: "a", Dark: "b"}, protocol.ColorValue("a", "b")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeValue(tt.raw)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("encodeValue(%v) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDecodeValue(t *testing.T) {
	role := decodeValue(protocol.RoleValue([5]string{"16px"}, [5]string{"12px"}))
	rt, ok := role.(element.ResponsiveType)
	if !ok || rt.Desktop.Size != "16px" || rt.Mobile.Size != "12px" {
		t.Errorf("decodeValue(role) = %#v", role)
	}
	if c := decodeValue(protocol.ColorValue("a", "b")); c != (element.Color{Light: "a", Dark: "b"}) {
		t.Errorf("decodeValue(color) = %#v", c)
	}
	if v := decodeValue(protocol.Value{}); v != nil {
		t.Errorf("decodeValue(nil) = %#v", v)
	}
}
