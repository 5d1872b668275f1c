package program

import (
	"sort"
	"strconv"
	"strings"

	"github.com/FifthTry/ftd/internal/errors"
	"github.com/FifthTry/ftd/pkg/element"
	"github.com/FifthTry/ftd/pkg/protocol"
)

// Reference prefixes inside prop values.
const (
	refPrefix = "$"
	refItem   = "$item"
	refIndex  = "$index"
	refEscape = "$$"
)

// ParseAction looks an action up by its source name.
func ParseAction(name string) (protocol.Action, bool) {
	for _, a := range []protocol.Action{
		protocol.ActionToggle,
		protocol.ActionSet,
		protocol.ActionIncrement,
		protocol.ActionPush,
	} {
		if a.String() == name {
			return a, true
		}
	}
	return 0, false
}

// Compile flattens src into an instruction stream. Cells and lists are
// emitted sorted by name and props sorted by property kind, so the same
// source always compiles to the same bytes.
func Compile(src *Source) (*protocol.Program, error) {
	if src == nil || src.Name == "" {
		return nil, errors.New("E204").WithDetail("page has no name")
	}

	c := &compiler{
		cells: make(map[string]protocol.Value, len(src.Cells)),
		lists: make(map[string]bool, len(src.Lists)),
		prog:  &protocol.Program{Name: src.Name},
	}

	for _, name := range sortedKeys(src.Cells) {
		v, err := encodeValue(src.Cells[name])
		if err != nil {
			return nil, withPath(err, "cells."+name)
		}
		c.cells[name] = v
		c.prog.Cells = append(c.prog.Cells, protocol.CellDecl{Name: name, Initial: v})
	}

	for _, name := range sortedKeys(src.Lists) {
		if _, dup := c.cells[name]; dup {
			return nil, errors.New("E204").WithDetailf("%q is declared as both a cell and a list", name)
		}
		decl := protocol.ListDecl{Name: name}
		for i, raw := range src.Lists[name] {
			v, err := encodeValue(raw)
			if err != nil {
				return nil, withPath(err, "lists."+name+"["+strconv.Itoa(i)+"]")
			}
			decl.Items = append(decl.Items, v)
		}
		c.lists[name] = true
		c.prog.Lists = append(c.prog.Lists, decl)
	}

	for i := range src.Body {
		if err := c.node(&src.Body[i], "body["+strconv.Itoa(i)+"]", 0); err != nil {
			return nil, err
		}
	}
	return c.prog, nil
}

type compiler struct {
	cells map[string]protocol.Value
	lists map[string]bool
	prog  *protocol.Program
}

func (c *compiler) emit(in protocol.Instruction) {
	c.prog.Code = append(c.prog.Code, in)
}

func (c *compiler) end() {
	c.emit(protocol.Instruction{Op: protocol.OpEnd})
}

// node compiles n. loops is the number of enclosing for blocks.
func (c *compiler) node(n *NodeSource, path string, loops int) error {
	if n.For != "" {
		if !c.lists[n.For] {
			return errors.New("E202").WithDetailf("%s: for %q is not a list", path, n.For)
		}
		c.emit(protocol.Instruction{Op: protocol.OpFor, Ref: n.For})
		inner := *n
		inner.For = ""
		if err := c.node(&inner, path, loops+1); err != nil {
			return err
		}
		c.end()
		return nil
	}

	if n.If != "" {
		name, negate := strings.CutPrefix(n.If, "!")
		if _, ok := c.cells[name]; !ok {
			return errors.New("E202").WithDetailf("%s: if %q is not a cell", path, n.If)
		}
		var arg uint64
		if negate {
			arg = 1
		}
		c.emit(protocol.Instruction{Op: protocol.OpIf, Arg: arg, Ref: name})
		inner := *n
		inner.If = ""
		if err := c.node(&inner, path, loops); err != nil {
			return err
		}
		c.end()
		return nil
	}

	kind, ok := element.ParseElementKind(n.Kind)
	if !ok {
		return errors.New("E204").WithDetailf("%s: unknown element kind %q", path, n.Kind)
	}
	c.emit(protocol.Instruction{Op: protocol.OpElement, Arg: uint64(kind)})

	if err := c.props(n.Props, path, loops); err != nil {
		return err
	}
	if n.OnClick != nil {
		if err := c.click(n.OnClick, path); err != nil {
			return err
		}
	}
	for i := range n.Children {
		if err := c.node(&n.Children[i], path+".children["+strconv.Itoa(i)+"]", loops); err != nil {
			return err
		}
	}
	c.end()
	return nil
}

func (c *compiler) props(props map[string]any, path string, loops int) error {
	type prop struct {
		kind element.PropertyKind
		raw  any
	}
	list := make([]prop, 0, len(props))
	for name, raw := range props {
		kind, ok := element.ParsePropertyKind(name)
		if !ok {
			return errors.New("E204").WithDetailf("%s: unknown property %q", path, name)
		}
		list = append(list, prop{kind, raw})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].kind < list[j].kind })

	for _, p := range list {
		arg := uint64(p.kind)
		s, isString := p.raw.(string)
		switch {
		case isString && strings.HasPrefix(s, refEscape):
			c.emit(protocol.Instruction{Op: protocol.OpStatic, Arg: arg, Value: protocol.StringValue(s[1:])})
		case isString && (s == refItem || s == refIndex):
			if loops == 0 {
				return errors.New("E202").WithDetailf("%s: %s outside a for block", path, s)
			}
			op := protocol.OpItem
			if s == refIndex {
				op = protocol.OpIndex
			}
			c.emit(protocol.Instruction{Op: op, Arg: arg})
		case isString && strings.HasPrefix(s, refPrefix):
			name := s[len(refPrefix):]
			if _, ok := c.cells[name]; !ok {
				return errors.New("E202").WithDetailf("%s.%s: %q is not a cell", path, p.kind, name)
			}
			c.emit(protocol.Instruction{Op: protocol.OpBind, Arg: arg, Ref: name})
		default:
			v, err := encodeValue(p.raw)
			if err != nil {
				return withPath(err, path+"."+p.kind.String())
			}
			c.emit(protocol.Instruction{Op: protocol.OpStatic, Arg: arg, Value: v})
		}
	}
	return nil
}

func (c *compiler) click(cs *ClickSource, path string) error {
	action, ok := ParseAction(cs.Action)
	if !ok {
		return errors.New("E204").WithDetailf("%s: unknown action %q", path, cs.Action)
	}

	if action == protocol.ActionPush {
		if !c.lists[cs.Target] {
			return errors.New("E202").WithDetailf("%s: push target %q is not a list", path, cs.Target)
		}
	} else {
		initial, ok := c.cells[cs.Target]
		if !ok {
			return errors.New("E202").WithDetailf("%s: %s target %q is not a cell", path, action, cs.Target)
		}
		switch {
		case action == protocol.ActionToggle && initial.Tag != protocol.TagBool:
			return errors.New("E204").WithDetailf("%s: toggle needs a bool cell, %q is %s", path, cs.Target, initial.Tag)
		case action == protocol.ActionIncrement && initial.Tag != protocol.TagInt && initial.Tag != protocol.TagFloat:
			return errors.New("E204").WithDetailf("%s: increment needs a number cell, %q is %s", path, cs.Target, initial.Tag)
		}
	}

	v, err := encodeValue(cs.Value)
	if err != nil {
		return withPath(err, path+".on_click")
	}
	c.emit(protocol.Instruction{Op: protocol.OpOnClick, Arg: uint64(action), Ref: cs.Target, Value: v})
	return nil
}

func withPath(err error, path string) error {
	if fe, ok := err.(*errors.FtdError); ok && fe.Detail != "" {
		fe.Detail = path + ": " + fe.Detail
		return fe
	}
	return err
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
