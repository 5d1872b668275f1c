package protocol

import "errors"

// MaxBlockDepth bounds the nesting of open blocks (elements, conditionals
// and loops) in an instruction stream.
const MaxBlockDepth = 256

// Structural errors found while decoding an instruction stream.
var (
	ErrMaxDepthExceeded = errors.New("protocol: maximum block depth exceeded")
	ErrUnbalanced       = errors.New("protocol: unbalanced block")
)

// depthContext tracks open blocks while scanning a stream.
type depthContext struct {
	current int
	max     int
}

func newDepthContext(max int) *depthContext {
	return &depthContext{max: max}
}

// enter opens a block, failing when the limit would be exceeded.
func (dc *depthContext) enter() error {
	if dc.current >= dc.max {
		return ErrMaxDepthExceeded
	}
	dc.current++
	return nil
}

// leave closes a block, failing when none is open.
func (dc *depthContext) leave() error {
	if dc.current == 0 {
		return ErrUnbalanced
	}
	dc.current--
	return nil
}
