package protocol

import "fmt"

// ValueTag identifies the type of an encoded value.
type ValueTag uint8

const (
	TagNil    ValueTag = 0x00
	TagString ValueTag = 0x01
	TagInt    ValueTag = 0x02
	TagFloat  ValueTag = 0x03
	TagBool   ValueTag = 0x04
	TagColor  ValueTag = 0x05 // Strs: light, dark
	TagRole   ValueTag = 0x06 // Strs: RoleFields desktop then RoleFields mobile
)

// RoleFields is the number of typography fields per device class.
const RoleFields = 5

// String returns the string representation of the tag.
func (t ValueTag) String() string {
	switch t {
	case TagNil:
		return "Nil"
	case TagString:
		return "String"
	case TagInt:
		return "Int"
	case TagFloat:
		return "Float"
	case TagBool:
		return "Bool"
	case TagColor:
		return "Color"
	case TagRole:
		return "Role"
	default:
		return "Unknown"
	}
}

// Value is a tagged static value. Only the field selected by Tag is
// meaningful.
type Value struct {
	Tag   ValueTag
	Str   string
	Int   int64
	Float float64
	Bool  bool
	Strs  []string
}

func StringValue(s string) Value { return Value{Tag: TagString, Str: s} }
func IntValue(i int64) Value { return Value{Tag: TagInt, Int: i} }
func FloatValue(f float64) Value { return Value{Tag: TagFloat, Float: f} }
func BoolValue(b bool) Value { return Value{Tag: TagBool, Bool: b} }
func ColorValue(light, dark string) Value {
	return Value{Tag: TagColor, Strs: []string{light, dark}}
}

// RoleValue packs desktop and mobile typography fields.
func RoleValue(desktop, mobile [RoleFields]string) Value {
	strs := make([]string, 0, 2*RoleFields)
	strs = append(strs, desktop[:]...)
	strs = append(strs, mobile[:]...)
	return Value{Tag: TagRole, Strs: strs}
}

// EncodeValueTo appends v.
func EncodeValueTo(e *Encoder, v Value) {
	e.WriteByte(byte(v.Tag))
	switch v.Tag {
	case TagString:
		e.WriteString(v.Str)
	case TagInt:
		e.WriteSvarint(v.Int)
	case TagFloat:
		e.WriteFloat64(v.Float)
	case TagBool:
		e.WriteBool(v.Bool)
	case TagColor, TagRole:
		for _, s := range v.Strs {
			e.WriteString(s)
		}
	}
}

// DecodeValueFrom reads one value.
func DecodeValueFrom(d *Decoder) (Value, error) {
	b, err := d.ReadByte()
	if err != nil {
		return Value{}, err
	}
	v := Value{Tag: ValueTag(b)}
	switch v.Tag {
	case TagNil:
	case TagString:
		v.Str, err = d.ReadString()
	case TagInt:
		v.Int, err = d.ReadSvarint()
	case TagFloat:
		v.Float, err = d.ReadFloat64()
	case TagBool:
		v.Bool, err = d.ReadBool()
	case TagColor:
		v.Strs, err = readStrings(d, 2)
	case TagRole:
		v.Strs, err = readStrings(d, 2*RoleFields)
	default:
		return Value{}, fmt.Errorf("protocol: unknown value tag 0x%02x", b)
	}
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

func readStrings(d *Decoder, n int) ([]string, error) {
	out := make([]string, n)
	for i := range out {
		s, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
