package program

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/FifthTry/ftd/internal/errors"
	"github.com/FifthTry/ftd/pkg/element"
	"github.com/FifthTry/ftd/pkg/protocol"
)

// typeFields are the keys of a flat typography map, in protocol order.
var typeFields = [protocol.RoleFields]string{"size", "line-height", "letter-spacing", "weight", "font-family"}

// encodeValue converts a source or runtime value into its tagged form.
// Integral floats become ints; maps become colors or roles depending on
// their keys.
func encodeValue(raw any) (protocol.Value, error) {
	switch v := raw.(type) {
	case nil:
		return protocol.Value{}, nil
	case string:
		return protocol.StringValue(v), nil
	case bool:
		return protocol.BoolValue(v), nil
	case int:
		return protocol.IntValue(int64(v)), nil
	case int8:
		return protocol.IntValue(int64(v)), nil
	case int16:
		return protocol.IntValue(int64(v)), nil
	case int32:
		return protocol.IntValue(int64(v)), nil
	case int64:
		return protocol.IntValue(v), nil
	case uint:
		return protocol.IntValue(int64(v)), nil
	case uint8:
		return protocol.IntValue(int64(v)), nil
	case uint16:
		return protocol.IntValue(int64(v)), nil
	case uint32:
		return protocol.IntValue(int64(v)), nil
	case uint64:
		if v > math.MaxInt64 {
			return protocol.Value{}, errors.New("E204").WithDetailf("integer %d out of range", v)
		}
		return protocol.IntValue(int64(v)), nil
	case float32:
		return encodeFloat(float64(v)), nil
	case float64:
		return encodeFloat(v), nil
	case element.Color:
		return protocol.ColorValue(v.Light, v.Dark), nil
	case element.Type:
		f := typeArray(v)
		return protocol.RoleValue(f, f), nil
	case element.ResponsiveType:
		return protocol.RoleValue(typeArray(v.Desktop), typeArray(v.Mobile)), nil
	case map[string]any:
		return encodeMap(v)
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, x := range v {
			m[fmt.Sprint(k)] = x
		}
		return encodeMap(m)
	default:
		return protocol.Value{}, errors.New("E204").WithDetailf("unsupported value of type %T", raw)
	}
}

func encodeFloat(f float64) protocol.Value {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return protocol.IntValue(int64(f))
	}
	return protocol.FloatValue(f)
}

func encodeMap(m map[string]any) (protocol.Value, error) {
	if light, ok := m["light"]; ok {
		l, err := mapString("light", light)
		if err != nil {
			return protocol.Value{}, err
		}
		d := ""
		if dark, ok := m["dark"]; ok {
			if d, err = mapString("dark", dark); err != nil {
				return protocol.Value{}, err
			}
		}
		return protocol.ColorValue(l, d), nil
	}

	_, hasDesktop := m["desktop"]
	_, hasMobile := m["mobile"]
	if hasDesktop || hasMobile {
		desktop, err := typeFromMap(m["desktop"])
		if err != nil {
			return protocol.Value{}, err
		}
		mobile := desktop
		if hasMobile {
			if mobile, err = typeFromMap(m["mobile"]); err != nil {
				return protocol.Value{}, err
			}
		}
		return protocol.RoleValue(desktop, mobile), nil
	}

	t, err := typeFromMap(m)
	if err != nil {
		return protocol.Value{}, err
	}
	return protocol.RoleValue(t, t), nil
}

func typeFromMap(raw any) ([protocol.RoleFields]string, error) {
	var out [protocol.RoleFields]string
	if raw == nil {
		return out, nil
	}
	var m map[string]any
	switch v := raw.(type) {
	case map[string]any:
		m = v
	case map[any]any:
		m = make(map[string]any, len(v))
		for k, x := range v {
			m[fmt.Sprint(k)] = x
		}
	default:
		return out, errors.New("E204").WithDetailf("typography must be a map, got %T", raw)
	}

	known := make(map[string]bool, len(typeFields))
	for i, f := range typeFields {
		known[f] = true
		if x, ok := m[f]; ok {
			s, err := mapString(f, x)
			if err != nil {
				return out, err
			}
			out[i] = s
		}
	}
	var unknown []string
	for k := range m {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return out, errors.New("E204").WithDetailf("unknown value keys: %s", strings.Join(unknown, ", "))
	}
	return out, nil
}

func mapString(key string, v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int, int64, float64:
		return fmt.Sprint(x), nil
	default:
		return "", errors.New("E204").WithDetailf("%s must be a string, got %T", key, v)
	}
}

func typeArray(t element.Type) [protocol.RoleFields]string {
	return [protocol.RoleFields]string{t.Size, t.LineHeight, t.LetterSpacing, t.Weight, t.FontFamily}
}

func typeFromArray(f []string) element.Type {
	return element.Type{Size: f[0], LineHeight: f[1], LetterSpacing: f[2], Weight: f[3], FontFamily: f[4]}
}

// decodeValue converts a tagged value into the runtime form properties
// accept: string, int64, float64, bool, element.Color or
// element.ResponsiveType.
func decodeValue(v protocol.Value) any {
	switch v.Tag {
	case protocol.TagString:
		return v.Str
	case protocol.TagInt:
		return v.Int
	case protocol.TagFloat:
		return v.Float
	case protocol.TagBool:
		return v.Bool
	case protocol.TagColor:
		return element.Color{Light: v.Strs[0], Dark: v.Strs[1]}
	case protocol.TagRole:
		return element.ResponsiveType{
			Desktop: typeFromArray(v.Strs[:protocol.RoleFields]),
			Mobile:  typeFromArray(v.Strs[protocol.RoleFields:]),
		}
	default:
		return nil
	}
}
