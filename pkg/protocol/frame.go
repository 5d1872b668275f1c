package protocol

import (
	"errors"
	"io"
)

// Frame constants.
const (
	// FrameHeaderSize is the size of the frame header in bytes.
	FrameHeaderSize = 3

	// MaxPayloadSize is the maximum payload size (2^16 - 1 bytes).
	MaxPayloadSize = 65535
)

// FrameType identifies a dev channel message.
type FrameType uint8

const (
	FrameHello  FrameType = 0x00 // server greeting; payload: version
	FrameReload FrameType = 0x01 // a page changed; payload: page name
	FrameError  FrameType = 0x02 // a page failed; payload: ErrorMessage
	FramePing   FrameType = 0x03 // keepalive
)

// String returns the string representation of the frame type.
func (ft FrameType) String() string {
	switch ft {
	case FrameHello:
		return "Hello"
	case FrameReload:
		return "Reload"
	case FrameError:
		return "Error"
	case FramePing:
		return "Ping"
	default:
		return "Unknown"
	}
}

// ErrFrameTooLarge is returned for payloads over MaxPayloadSize.
var ErrFrameTooLarge = errors.New("protocol: frame payload too large")

// Frame is one dev channel message.
//
// Wire format (3 bytes header + variable payload):
//
//	┌─────────────┬───────────────────────────────┐
//	│ Frame Type  │ Payload Length                │
//	│ (1 byte)    │ (2 bytes, big-endian)         │
//	└─────────────┴───────────────────────────────┘
type Frame struct {
	Type    FrameType
	Payload []byte
}

// NewFrame creates a frame.
func NewFrame(ft FrameType, payload []byte) *Frame {
	return &Frame{Type: ft, Payload: payload}
}

// Encode encodes the frame including the header.
func (f *Frame) Encode() ([]byte, error) {
	if len(f.Payload) > MaxPayloadSize {
		return nil, ErrFrameTooLarge
	}
	e := NewEncoder()
	e.WriteByte(byte(f.Type))
	e.WriteUint16(uint16(len(f.Payload)))
	e.WriteBytes(f.Payload)
	return e.Bytes(), nil
}

// DecodeFrame decodes a frame. data must hold the header and the full
// payload.
func DecodeFrame(data []byte) (*Frame, error) {
	d := NewDecoder(data)
	ft, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	length, err := d.ReadUint16()
	if err != nil {
		return nil, err
	}
	payload, err := d.ReadBytes(int(length))
	if err != nil {
		return nil, err
	}
	return &Frame{Type: FrameType(ft), Payload: append([]byte(nil), payload...)}, nil
}

// WriteFrame writes a frame to w.
func WriteFrame(w io.Writer, f *Frame) error {
	data, err := f.Encode()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
