package protocol

import (
	"errors"
	"testing"
)

func counterProgram() *Program {
	return &Program{
		Name: "counter",
		Cells: []CellDecl{
			{Name: "count", Initial: IntValue(0)},
			{Name: "open", Initial: BoolValue(false)},
		},
		Lists: []ListDecl{
			{Name: "todos", Items: []Value{StringValue("a"), StringValue("b")}},
		},
		Code: []Instruction{
			{Op: OpElement, Arg: 1},
			{Op: OpStatic, Arg: 4, Value: StringValue("8px")},
			{Op: OpElement, Arg: 2},
			{Op: OpBind, Arg: 1, Ref: "count"},
			{Op: OpOnClick, Arg: uint64(ActionIncrement), Ref: "count", Value: IntValue(1)},
			{Op: OpEnd},
			{Op: OpIf, Ref: "open"},
			{Op: OpElement, Arg: 5},
			{Op: OpEnd},
			{Op: OpEnd},
			{Op: OpFor, Ref: "todos"},
			{Op: OpElement, Arg: 5},
			{Op: OpItem, Arg: 2},
			{Op: OpEnd},
			{Op: OpEnd},
			{Op: OpEnd},
		},
	}
}

func TestProgramRoundTrip(t *testing.T) {
	want := counterProgram()
	data := EncodeProgram(want)

	if string(data[:4]) != Magic || data[4] != Version {
		t.Fatalf("header = %q %d", data[:4], data[4])
	}

	got, err := DecodeProgram(data)
	if err != nil {
		t.Fatalf("DecodeProgram: %v", err)
	}
	if got.Name != want.Name || len(got.Cells) != 2 || len(got.Lists) != 1 {
		t.Fatalf("got %+v", got)
	}
	if got.Lists[0].Items[1].Str != "b" {
		t.Errorf("list item = %+v", got.Lists[0].Items[1])
	}
	if len(got.Code) != len(want.Code) {
		t.Fatalf("len(Code) = %d, want %d", len(got.Code), len(want.Code))
	}
	for i := range want.Code {
		w, g := want.Code[i], got.Code[i]
		if g.Op != w.Op || g.Arg != w.Arg || g.Ref != w.Ref || g.Value.Tag != w.Value.Tag {
			t.Errorf("Code[%d] = %+v, want %+v", i, g, w)
		}
	}
}

func TestDecodeProgramErrors(t *testing.T) {
	valid := EncodeProgram(counterProgram())

	t.Run("bad magic", func(t *testing.T) {
		if _, err := DecodeProgram([]byte("NOPE\x01")); !errors.Is(err, ErrBadMagic) {
			t.Errorf("err = %v, want ErrBadMagic", err)
		}
	})

	t.Run("future version", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[4] = Version + 1
		if _, err := DecodeProgram(data); !errors.Is(err, ErrUnsupportedVersion) {
			t.Errorf("err = %v, want ErrUnsupportedVersion", err)
		}
	})

	t.Run("unclosed block", func(t *testing.T) {
		p := counterProgram()
		p.Code = p.Code[:len(p.Code)-1]
		if _, err := DecodeProgram(EncodeProgram(p)); !errors.Is(err, ErrUnbalanced) {
			t.Errorf("err = %v, want ErrUnbalanced", err)
		}
	})

	t.Run("stray end", func(t *testing.T) {
		p := &Program{Code: []Instruction{{Op: OpEnd}}}
		if _, err := DecodeProgram(EncodeProgram(p)); !errors.Is(err, ErrUnbalanced) {
			t.Errorf("err = %v, want ErrUnbalanced", err)
		}
	})

	t.Run("too deep", func(t *testing.T) {
		p := &Program{}
		for i := 0; i <= MaxBlockDepth; i++ {
			p.Code = append(p.Code, Instruction{Op: OpElement, Arg: 8})
		}
		if _, err := DecodeProgram(EncodeProgram(p)); !errors.Is(err, ErrMaxDepthExceeded) {
			t.Errorf("err = %v, want ErrMaxDepthExceeded", err)
		}
	})

	t.Run("truncated", func(t *testing.T) {
		if _, err := DecodeProgram(valid[:len(valid)-3]); err == nil {
			t.Error("truncated program should fail")
		}
	})
}
