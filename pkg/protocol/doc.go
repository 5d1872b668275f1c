// Package protocol implements the binary formats of ftd.
//
// Two formats share one encoder and decoder:
//
//   - Compiled programs (.ftdb files): a header, the cell and list
//     declarations, and a flat instruction stream whose element and
//     property kinds are the numbered enums of package element.
//   - Dev channel frames: a small header plus payload sent over the live
//     reload WebSocket.
//
// # Encoding
//
//   - Varint: unsigned integers, protobuf-style
//   - ZigZag: signed integers encoded as unsigned varints
//   - Length-prefixed: strings as varint length plus bytes
//   - Big-endian: fixed-width integers and IEEE 754 floats
//
// # Program layout
//
//	[Magic "FTDB"][Version: 1 byte]
//	[Name: string]
//	[Cells: count][name, Value]...
//	[Lists: count][name, count, Value...]...
//	[Code: count][Instruction]...
//
// Each instruction is
//
//	[Op: 1 byte][Arg: varint][Ref: string][Value]
//
// Values carry a one-byte tag followed by tag-specific data.
package protocol
