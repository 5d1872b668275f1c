package protocol

import (
	"bytes"
	"errors"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	for _, ft := range []FrameType{FrameHello, FrameReload, FrameError, FramePing} {
		t.Run(ft.String(), func(t *testing.T) {
			f := NewFrame(ft, []byte("index"))
			data, err := f.Encode()
			if err != nil {
				t.Fatal(err)
			}
			if len(data) != FrameHeaderSize+5 {
				t.Errorf("len = %d, want %d", len(data), FrameHeaderSize+5)
			}
			got, err := DecodeFrame(data)
			if err != nil {
				t.Fatal(err)
			}
			if got.Type != ft || string(got.Payload) != "index" {
				t.Errorf("got %+v", got)
			}
		})
	}
}

func TestFrameLimits(t *testing.T) {
	big := NewFrame(FrameReload, make([]byte, MaxPayloadSize+1))
	if _, err := big.Encode(); !errors.Is(err, ErrFrameTooLarge) {
		t.Errorf("Encode() err = %v, want ErrFrameTooLarge", err)
	}
	if err := WriteFrame(&bytes.Buffer{}, big); !errors.Is(err, ErrFrameTooLarge) {
		t.Errorf("WriteFrame() err = %v, want ErrFrameTooLarge", err)
	}
	if _, err := DecodeFrame([]byte{0x01, 0x00, 0x09, 'x'}); err == nil {
		t.Error("short payload should fail")
	}
}

func TestErrorMessage(t *testing.T) {
	em := &ErrorMessage{Code: "E040", Page: "index", Message: "Hydration mismatch"}
	got, err := DecodeErrorMessage(EncodeErrorMessage(em))
	if err != nil {
		t.Fatal(err)
	}
	if *got != *em {
		t.Errorf("got %+v, want %+v", got, em)
	}
	if got.Error() != "index: E040: Hydration mismatch" {
		t.Errorf("Error() = %q", got.Error())
	}
}
