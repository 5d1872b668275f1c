package program

import (
	"encoding/base64"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/FifthTry/ftd/internal/errors"
	"github.com/FifthTry/ftd/pkg/element"
	"github.com/FifthTry/ftd/pkg/protocol"
	"github.com/FifthTry/ftd/pkg/reactive"
)

// State holds the live cells and lists of one page.
type State struct {
	page      string
	cellNames []string
	listNames []string
	cells     map[string]*reactive.Cell[any]
	lists     map[string]*reactive.List[any]
}

// NewState creates cells and lists with the program's initial values.
func NewState(p *protocol.Program) *State {
	s := &State{
		page:  p.Name,
		cells: make(map[string]*reactive.Cell[any], len(p.Cells)),
		lists: make(map[string]*reactive.List[any], len(p.Lists)),
	}
	for _, c := range p.Cells {
		s.cellNames = append(s.cellNames, c.Name)
		s.cells[c.Name] = reactive.NewCell(decodeValue(c.Initial))
	}
	for _, l := range p.Lists {
		items := make([]any, len(l.Items))
		for i, v := range l.Items {
			items[i] = decodeValue(v)
		}
		s.listNames = append(s.listNames, l.Name)
		s.lists[l.Name] = reactive.NewList(items...)
	}
	return s
}

// Page returns the name of the program the state was created for.
func (s *State) Page() string { return s.page }

// Cell returns the named cell.
func (s *State) Cell(name string) (*reactive.Cell[any], bool) {
	c, ok := s.cells[name]
	return c, ok
}

// List returns the named list.
func (s *State) List(name string) (*reactive.List[any], bool) {
	l, ok := s.lists[name]
	return l, ok
}

// Get returns the current value of the named cell, or nil.
func (s *State) Get(name string) any {
	if c, ok := s.cells[name]; ok {
		return c.Get()
	}
	return nil
}

// Override replaces a cell or list from its text form, as given in a query
// string. The text is parsed according to the cell's current type; lists
// take a YAML sequence.
func (s *State) Override(name, raw string) error {
	if l, ok := s.lists[name]; ok {
		var items []any
		if err := yaml.Unmarshal([]byte(raw), &items); err != nil {
			return errors.New("E204").WithDetailf("list %q", name).Wrap(err)
		}
		out := make([]any, len(items))
		for i, item := range items {
			v, err := encodeValue(item)
			if err != nil {
				return withPath(err, name)
			}
			out[i] = decodeValue(v)
		}
		l.Reset(out...)
		return nil
	}

	c, ok := s.cells[name]
	if !ok {
		return errors.New("E202").WithDetailf("no cell or list named %q", name)
	}
	v, err := parseAs(c.Get(), raw)
	if err != nil {
		return errors.New("E204").WithDetailf("cell %q", name).Wrap(err)
	}
	c.Set(v)
	return nil
}

func parseAs(current any, raw string) (any, error) {
	switch current.(type) {
	case bool:
		return strconv.ParseBool(raw)
	case int64:
		return strconv.ParseInt(raw, 10, 64)
	case float64:
		return strconv.ParseFloat(raw, 64)
	case string, nil:
		return raw, nil
	case element.Color:
		return element.Solid(raw), nil
	default:
		var generic any
		if err := yaml.Unmarshal([]byte(raw), &generic); err != nil {
			return nil, err
		}
		v, err := encodeValue(generic)
		if err != nil {
			return nil, err
		}
		return decodeValue(v), nil
	}
}

// Apply runs a click action against target.
func (s *State) Apply(action protocol.Action, target string, operand any) error {
	if action == protocol.ActionPush {
		l, ok := s.lists[target]
		if !ok {
			return errors.New("E202").WithDetailf("no list named %q", target)
		}
		l.Push(operand)
		return nil
	}

	c, ok := s.cells[target]
	if !ok {
		return errors.New("E202").WithDetailf("no cell named %q", target)
	}
	switch action {
	case protocol.ActionToggle:
		b, _ := c.Get().(bool)
		c.Set(!b)
	case protocol.ActionSet:
		c.Set(operand)
	case protocol.ActionIncrement:
		next, err := add(c.Get(), operand)
		if err != nil {
			return errors.New("E103").WithDetailf("increment %q", target).Wrap(err)
		}
		c.Set(next)
	default:
		return errors.New("E204").WithDetailf("unknown action %d", action)
	}
	return nil
}

// add sums two numbers. A nil step counts as 1.
func add(current, step any) (any, error) {
	if step == nil {
		step = int64(1)
	}
	switch cur := current.(type) {
	case int64:
		switch d := step.(type) {
		case int64:
			return cur + d, nil
		case float64:
			return float64(cur) + d, nil
		}
	case float64:
		switch d := step.(type) {
		case int64:
			return cur + float64(d), nil
		case float64:
			return cur + d, nil
		}
	}
	return nil, errors.Newf(errors.CategoryRuntime, "cannot add %T to %T", step, current)
}

type snapshot struct {
	Page  string                     `msgpack:"p"`
	Cells map[string]snapshotValue   `msgpack:"c,omitempty"`
	Lists map[string][]snapshotValue `msgpack:"l,omitempty"`
}

type snapshotValue struct {
	Tag   uint8    `msgpack:"t"`
	Str   string   `msgpack:"s,omitempty"`
	Int   int64    `msgpack:"i,omitempty"`
	Float float64  `msgpack:"f,omitempty"`
	Bool  bool     `msgpack:"b,omitempty"`
	Strs  []string `msgpack:"a,omitempty"`
}

func toSnapshotValue(raw any) (snapshotValue, error) {
	v, err := encodeValue(raw)
	if err != nil {
		return snapshotValue{}, err
	}
	return snapshotValue{Tag: uint8(v.Tag), Str: v.Str, Int: v.Int, Float: v.Float, Bool: v.Bool, Strs: v.Strs}, nil
}

func (sv snapshotValue) value() (any, error) {
	v := protocol.Value{Tag: protocol.ValueTag(sv.Tag), Str: sv.Str, Int: sv.Int, Float: sv.Float, Bool: sv.Bool, Strs: sv.Strs}
	switch v.Tag {
	case protocol.TagNil, protocol.TagString, protocol.TagInt, protocol.TagFloat, protocol.TagBool:
	case protocol.TagColor:
		if len(v.Strs) != 2 {
			return nil, errors.Newf(errors.CategoryHydration, "color needs 2 fields, got %d", len(v.Strs))
		}
	case protocol.TagRole:
		if len(v.Strs) != 2*protocol.RoleFields {
			return nil, errors.Newf(errors.CategoryHydration, "role needs %d fields, got %d", 2*protocol.RoleFields, len(v.Strs))
		}
	default:
		return nil, errors.Newf(errors.CategoryHydration, "unknown value tag %d", sv.Tag)
	}
	return decodeValue(v), nil
}

// Encode snapshots every cell and list as URL-safe base64 msgpack.
func (s *State) Encode() (string, error) {
	snap := snapshot{
		Page:  s.page,
		Cells: make(map[string]snapshotValue, len(s.cells)),
		Lists: make(map[string][]snapshotValue, len(s.lists)),
	}
	for _, name := range s.cellNames {
		sv, err := toSnapshotValue(s.cells[name].Get())
		if err != nil {
			return "", withPath(err, name)
		}
		snap.Cells[name] = sv
	}
	for _, name := range s.listNames {
		items := s.lists[name].Items()
		out := make([]snapshotValue, len(items))
		for i, item := range items {
			sv, err := toSnapshotValue(item)
			if err != nil {
				return "", withPath(err, name)
			}
			out[i] = sv
		}
		snap.Lists[name] = out
	}

	packed, err := msgpack.Marshal(&snap)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(packed), nil
}

// DecodeState creates the state for p and restores the values in encoded.
// A snapshot taken for another page, or naming cells p does not declare,
// is rejected with E041.
func DecodeState(p *protocol.Program, encoded string) (*State, error) {
	packed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.New("E041").Wrap(err)
	}
	var snap snapshot
	if err := msgpack.Unmarshal(packed, &snap); err != nil {
		return nil, errors.New("E041").Wrap(err)
	}
	if snap.Page != p.Name {
		return nil, errors.New("E041").WithDetailf("snapshot is for page %q, not %q", snap.Page, p.Name)
	}

	s := NewState(p)
	for name, sv := range snap.Cells {
		c, ok := s.cells[name]
		if !ok {
			return nil, errors.New("E041").WithDetailf("unknown cell %q", name)
		}
		v, err := sv.value()
		if err != nil {
			return nil, errors.New("E041").WithDetailf("cell %q", name).Wrap(err)
		}
		c.Set(v)
	}
	for name, svs := range snap.Lists {
		l, ok := s.lists[name]
		if !ok {
			return nil, errors.New("E041").WithDetailf("unknown list %q", name)
		}
		items := make([]any, len(svs))
		for i, sv := range svs {
			v, err := sv.value()
			if err != nil {
				return nil, errors.New("E041").WithDetailf("list %q", name).Wrap(err)
			}
			items[i] = v
		}
		l.Reset(items...)
	}
	return s, nil
}
