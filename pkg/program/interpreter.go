package program

import (
	"fmt"
	"log/slog"

	"github.com/FifthTry/ftd/internal/errors"
	"github.com/FifthTry/ftd/pkg/element"
	"github.com/FifthTry/ftd/pkg/protocol"
	"github.com/FifthTry/ftd/pkg/reactive"
)

// Interpreter replays a program through the element runtime.
type Interpreter struct {
	prog   *protocol.Program
	ends   []int
	logger *slog.Logger
}

// NewInterpreter checks that every block in p is closed and indexes the
// block ends.
func NewInterpreter(p *protocol.Program) (*Interpreter, error) {
	ends := make([]int, len(p.Code))
	var open []int
	for i, in := range p.Code {
		switch {
		case in.Op.Opens():
			open = append(open, i)
		case in.Op == protocol.OpEnd:
			if len(open) == 0 {
				return nil, errors.New("E203").WithDetailf("End at %d closes nothing", i)
			}
			ends[open[len(open)-1]] = i
			open = open[:len(open)-1]
		case in.Op < protocol.OpElement || in.Op > protocol.OpOnClick:
			return nil, errors.New("E204").WithDetailf("unknown op %s at %d", in.Op, i)
		}
	}
	if len(open) > 0 {
		return nil, errors.New("E203").WithDetailf("%d block(s) left open", len(open))
	}
	return &Interpreter{prog: p, ends: ends, logger: slog.Default()}, nil
}

// WithLogger sets the logger used for click handler failures.
func (in *Interpreter) WithLogger(l *slog.Logger) *Interpreter {
	if l != nil {
		in.logger = l
	}
	return in
}

// Program returns the program being interpreted.
func (in *Interpreter) Program() *protocol.Program { return in.prog }

// scope is the loop entry a block is built for.
type scope struct {
	item  any
	index *reactive.Cell[int]
}

// Run builds the program under the runtime's body, binding references to
// st. Runtime panics are returned as errors.
func (in *Interpreter) Run(rt *element.Runtime, st *State) (err error) {
	if err := in.checkRefs(st); err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r)
		}
	}()
	in.block(rt.Body(), nil, 0, len(in.prog.Code), nil, st)
	return nil
}

// Main adapts Run to a render entry point bound to st.
func (in *Interpreter) Main(st *State) func(*element.Runtime) error {
	return func(rt *element.Runtime) error {
		return in.Run(rt, st)
	}
}

func (in *Interpreter) checkRefs(st *State) error {
	for i, ins := range in.prog.Code {
		switch ins.Op {
		case protocol.OpBind, protocol.OpIf:
			if _, ok := st.Cell(ins.Ref); !ok {
				return errors.New("E202").WithDetailf("%s at %d: no cell %q", ins.Op, i, ins.Ref)
			}
		case protocol.OpFor:
			if _, ok := st.List(ins.Ref); !ok {
				return errors.New("E202").WithDetailf("For at %d: no list %q", i, ins.Ref)
			}
		}
	}
	return nil
}

// block builds instructions [from, to). Element blocks create nodes under
// parent; property and handler instructions apply to node.
func (in *Interpreter) block(parent element.Container, node *element.Node, from, to int, sc *scope, st *State) {
	for i := from; i < to; i++ {
		ins := in.prog.Code[i]
		switch ins.Op {
		case protocol.OpElement:
			n := element.New(parent, element.ElementKind(ins.Arg))
			end := in.ends[i]
			in.block(n, n, i+1, end, sc, st)
			i = end

		case protocol.OpIf:
			cell, _ := st.Cell(ins.Ref)
			negate := ins.Arg == 1
			start, end := i+1, in.ends[i]
			element.NewConditional(parent,
				[]element.Value{element.Reactive(cell)},
				func() bool { return truthy(cell.Get()) != negate },
				func(c element.Container) { in.block(c, nil, start, end, sc, st) },
			)
			i = end

		case protocol.OpFor:
			list, _ := st.List(ins.Ref)
			start, end := i+1, in.ends[i]
			element.NewForLoop(parent, list, func(c element.Container, item any, index *reactive.Cell[int]) {
				in.block(c, nil, start, end, &scope{item: item, index: index}, st)
			})
			i = end

		case protocol.OpStatic:
			in.mustNode(node, i).SetStaticProperty(element.PropertyKind(ins.Arg), decodeValue(ins.Value))

		case protocol.OpBind:
			cell, _ := st.Cell(ins.Ref)
			in.mustNode(node, i).SetProperty(element.PropertyKind(ins.Arg), element.Reactive(cell))

		case protocol.OpItem:
			in.mustNode(node, i).SetStaticProperty(element.PropertyKind(ins.Arg), in.mustScope(sc, i).item)

		case protocol.OpIndex:
			in.mustNode(node, i).SetProperty(element.PropertyKind(ins.Arg), element.Reactive(in.mustScope(sc, i).index))

		case protocol.OpOnClick:
			action := protocol.Action(ins.Arg)
			target := ins.Ref
			operand := decodeValue(ins.Value)
			in.mustNode(node, i).AddEventHandler(element.EventClick, func() {
				in.click(action, target, operand, st)
			})

		default:
			panic(errors.New("E203").WithDetailf("unexpected %s at %d", ins.Op, i))
		}
	}
}

func (in *Interpreter) click(action protocol.Action, target string, operand any, st *State) {
	defer func() {
		if r := recover(); r != nil {
			in.logger.Error("click handler panicked", "page", in.prog.Name, "target", target, "error", recovered(r))
		}
	}()
	if err := st.Apply(action, target, operand); err != nil {
		in.logger.Warn("click handler failed", "page", in.prog.Name, "action", action.String(), "target", target, "error", err)
	}
}

func (in *Interpreter) mustNode(n *element.Node, i int) *element.Node {
	if n == nil {
		panic(errors.New("E203").WithDetailf("%s at %d is outside an element", in.prog.Code[i].Op, i))
	}
	return n
}

func (in *Interpreter) mustScope(sc *scope, i int) *scope {
	if sc == nil {
		panic(errors.New("E203").WithDetailf("%s at %d is outside a for block", in.prog.Code[i].Op, i))
	}
	return sc
}

// truthy decides conditionals: false, nil, zero numbers and empty strings
// are false.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case int64:
		return x != 0
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}

// recovered turns a recovered panic value into an error.
func recovered(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("program: panic: %v", r)
}
