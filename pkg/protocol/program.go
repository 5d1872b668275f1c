package protocol

import (
	"errors"
	"fmt"
)

// Magic starts every compiled program.
const Magic = "FTDB"

// Version is the program format version written by EncodeProgram.
const Version uint8 = 1

// Header errors.
var (
	ErrBadMagic           = errors.New("protocol: not a compiled ftd program")
	ErrUnsupportedVersion = errors.New("protocol: unsupported program version")
)

// Op is an instruction opcode.
type Op uint8

const (
	OpElement Op = 0x01 // Arg: element kind; opens a block
	OpEnd     Op = 0x02 // closes the innermost block
	OpStatic  Op = 0x03 // Arg: property kind; Value: the value
	OpBind    Op = 0x04 // Arg: property kind; Ref: cell
	OpItem    Op = 0x05 // Arg: property kind; binds the loop item
	OpIndex   Op = 0x06 // Arg: property kind; binds the loop index
	OpIf      Op = 0x07 // Arg: 1 negates; Ref: cell; opens a block
	OpFor     Op = 0x08 // Ref: list; opens a block
	OpOnClick Op = 0x09 // Arg: action; Ref: target; Value: operand
)

// String returns the string representation of the op.
func (op Op) String() string {
	switch op {
	case OpElement:
		return "Element"
	case OpEnd:
		return "End"
	case OpStatic:
		return "Static"
	case OpBind:
		return "Bind"
	case OpItem:
		return "Item"
	case OpIndex:
		return "Index"
	case OpIf:
		return "If"
	case OpFor:
		return "For"
	case OpOnClick:
		return "OnClick"
	default:
		return fmt.Sprintf("Op(0x%02x)", uint8(op))
	}
}

// Opens reports whether op starts a block closed by OpEnd.
func (op Op) Opens() bool {
	return op == OpElement || op == OpIf || op == OpFor
}

// Action is what a click handler does to its target.
type Action uint8

const (
	ActionToggle    Action = 0x00 // flip a bool cell
	ActionSet       Action = 0x01 // assign Value to a cell
	ActionIncrement Action = 0x02 // add Value to an int cell
	ActionPush      Action = 0x03 // append Value to a list
)

// String returns the source name of the action.
func (a Action) String() string {
	switch a {
	case ActionToggle:
		return "toggle"
	case ActionSet:
		return "set"
	case ActionIncrement:
		return "increment"
	case ActionPush:
		return "push"
	default:
		return "unknown"
	}
}

// Instruction is one step of a program.
type Instruction struct {
	Op    Op
	Arg   uint64
	Ref   string
	Value Value
}

// CellDecl declares a named reactive cell.
type CellDecl struct {
	Name    string
	Initial Value
}

// ListDecl declares a named reactive list.
type ListDecl struct {
	Name  string
	Items []Value
}

// Program is a compiled page.
type Program struct {
	Name  string
	Cells []CellDecl
	Lists []ListDecl
	Code  []Instruction
}

// EncodeProgram serializes p with the current header.
func EncodeProgram(p *Program) []byte {
	e := NewEncoder()
	EncodeProgramTo(e, p)
	return e.Bytes()
}

// EncodeProgramTo appends p to e.
func EncodeProgramTo(e *Encoder, p *Program) {
	e.WriteBytes([]byte(Magic))
	e.WriteByte(Version)
	e.WriteString(p.Name)

	e.WriteUvarint(uint64(len(p.Cells)))
	for _, c := range p.Cells {
		e.WriteString(c.Name)
		EncodeValueTo(e, c.Initial)
	}

	e.WriteUvarint(uint64(len(p.Lists)))
	for _, l := range p.Lists {
		e.WriteString(l.Name)
		e.WriteUvarint(uint64(len(l.Items)))
		for _, v := range l.Items {
			EncodeValueTo(e, v)
		}
	}

	e.WriteUvarint(uint64(len(p.Code)))
	for _, in := range p.Code {
		e.WriteByte(byte(in.Op))
		e.WriteUvarint(in.Arg)
		e.WriteString(in.Ref)
		EncodeValueTo(e, in.Value)
	}
}

// DecodeProgram parses a compiled program and checks that its blocks
// balance.
func DecodeProgram(data []byte) (*Program, error) {
	d := NewDecoder(data)

	magic, err := d.ReadBytes(len(Magic))
	if err != nil || string(magic) != Magic {
		return nil, ErrBadMagic
	}
	version, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	if version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	p := &Program{}
	if p.Name, err = d.ReadString(); err != nil {
		return nil, err
	}
	if p.Cells, err = decodeCells(d); err != nil {
		return nil, err
	}
	if p.Lists, err = decodeLists(d); err != nil {
		return nil, err
	}
	if p.Code, err = decodeCode(d); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeCells(d *Decoder) ([]CellDecl, error) {
	n, err := d.ReadCount()
	if err != nil {
		return nil, err
	}
	cells := make([]CellDecl, n)
	for i := range cells {
		if cells[i].Name, err = d.ReadString(); err != nil {
			return nil, err
		}
		if cells[i].Initial, err = DecodeValueFrom(d); err != nil {
			return nil, err
		}
	}
	return cells, nil
}

func decodeLists(d *Decoder) ([]ListDecl, error) {
	n, err := d.ReadCount()
	if err != nil {
		return nil, err
	}
	lists := make([]ListDecl, n)
	for i := range lists {
		if lists[i].Name, err = d.ReadString(); err != nil {
			return nil, err
		}
		count, err := d.ReadCount()
		if err != nil {
			return nil, err
		}
		lists[i].Items = make([]Value, count)
		for j := range lists[i].Items {
			if lists[i].Items[j], err = DecodeValueFrom(d); err != nil {
				return nil, err
			}
		}
	}
	return lists, nil
}

func decodeCode(d *Decoder) ([]Instruction, error) {
	n, err := d.ReadCount()
	if err != nil {
		return nil, err
	}
	depth := newDepthContext(MaxBlockDepth)
	code := make([]Instruction, n)
	for i := range code {
		op, err := d.ReadByte()
		if err != nil {
			return nil, err
		}
		in := Instruction{Op: Op(op)}
		if in.Arg, err = d.ReadUvarint(); err != nil {
			return nil, err
		}
		if in.Ref, err = d.ReadString(); err != nil {
			return nil, err
		}
		if in.Value, err = DecodeValueFrom(d); err != nil {
			return nil, err
		}

		switch {
		case in.Op.Opens():
			err = depth.enter()
		case in.Op == OpEnd:
			err = depth.leave()
		case in.Op > OpOnClick || in.Op == 0:
			err = fmt.Errorf("protocol: unknown opcode 0x%02x at %d", op, i)
		}
		if err != nil {
			return nil, err
		}
		code[i] = in
	}
	if depth.current != 0 {
		return nil, ErrUnbalanced
	}
	return code, nil
}
