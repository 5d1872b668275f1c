package program

import (
	"testing"

	"github.com/FifthTry/ftd/pkg/protocol"
)

const counterYAML = `
name: counter
cells:
  count: 0
  open: false
  accent:
    light: "#000"
    dark: "#fff"
lists:
  todos: [milk, eggs]
body:
  - kind: column
    props:
      padding: 8px
      spacing: 4px
    children:
      - kind: integer
        props:
          integer-value: $count
          color: $accent
        on_click: {action: increment, target: count, value: 1}
      - kind: boolean
        props:
          string-value: toggle
        on_click: {action: toggle, target: open}
      - kind: text
        if: open
        props:
          string-value: Details
      - kind: text
        if: "!open"
        props:
          string-value: Closed
      - kind: row
        for: todos
        children:
          - kind: integer
            props:
              integer-value: $index
          - kind: text
            props:
              string-value: $item
      - kind: text
        props:
          string-value: add
        on_click: {action: push, target: todos, value: bread}
`

func mustCompile(t *testing.T, src string) *protocol.Program {
	t.Helper()
	s, err := ParseSource([]byte(src), ExtYAML)
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}
	p, err := Compile(s)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return p
}

func ops(p *protocol.Program) []protocol.Op {
	out := make([]protocol.Op, len(p.Code))
	for i, in := range p.Code {
		out[i] = in.Op
	}
	return out
}
