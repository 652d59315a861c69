package common

import (
	"bytes"
	"testing"
)

func TestGenerateRandByteArray_SizeAndEntropy(t *testing.T) {
	const n = 128
	a := GenerateRandByteArray(n)
	b := GenerateRandByteArray(n)

	if len(a) != n || len(b) != n {
		t.Fatalf("expected length %d, got %d and %d", n, len(a), len(b))
	}
	if bytes.Equal(a, b) {
		t.Fatalf("two random arrays of %d bytes are identical", n)
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
