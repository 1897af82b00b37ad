package common

import (
	"testing"
)

func TestRandomDigits_LengthAndAlphabet(t *testing.T) {
	s, err := RandomDigits(15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 15 {
		t.Fatalf("expected 15 digits, got %d", len(s))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			t.Fatalf("non-digit %q in %q", r, s)
		}
	}
}

func TestRandomDigits_Zero(t *testing.T) {
	s, err := RandomDigits(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "" {
		t.Fatalf("expected empty string, got %q", s)
	}
}

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}
