package css

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Namer assigns class ordinals. The ordinal for a given short code and
// value is fixed on first use, so the same declaration always yields the
// same class name within a render pass.
type Namer struct {
	count int
	seen  map[string]int
}

// NewNamer creates an empty namer.
func NewNamer() *Namer {
	return &Namer{seen: make(map[string]int)}
}

// ClassName returns "{short}-{ordinal}" for property and value.
func (n *Namer) ClassName(property string, value any) string {
	short := ShortCode(property)
	key := short + "-" + hashValue(value)
	ord, ok := n.seen[key]
	if !ok {
		n.count++
		ord = n.count
		n.seen[key] = ord
	}
	return short + "-" + strconv.Itoa(ord)
}

// Len returns the number of ordinals handed out.
func (n *Namer) Len() int { return n.count }

// Reset forgets every ordinal.
func (n *Namer) Reset() {
	n.count = 0
	n.seen = make(map[string]int)
}

// hashValue renders value canonically. JSON sorts map keys, so bundles
// with equal contents hash equally.
func hashValue(value any) string {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%#v", value)
	}
	return string(b)
}
