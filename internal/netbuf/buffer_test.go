package netbuf

import (
	"bytes"
	"errors"
	"testing"
)

func TestShiftPreservesExistingContent(t *testing.T) {
	buf := New()

	inner, err := buf.Shift(4)
	if err != nil {
		t.Fatalf("Shift failed: %v", err)
	}
	copy(inner, []byte{0x01, 0x02, 0x03, 0x04})

	outer, err := buf.Shift(2)
	if err != nil {
		t.Fatalf("Shift failed: %v", err)
	}
	copy(outer, []byte{0xAA, 0xBB})

	want := []byte{0xAA, 0xBB, 0x01, 0x02, 0x03, 0x04}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("Buffer = %x, want %x", buf.Bytes(), want)
	}
	if buf.Len() != 6 {
		t.Errorf("Len = %d, want 6", buf.Len())
	}
}

func TestShiftReturnsZeroedRegion(t *testing.T) {
	buf := New()

	region, err := buf.Shift(8)
	if err != nil {
		t.Fatalf("Shift failed: %v", err)
	}
	for i, b := range region {
		if b != 0 {
			t.Errorf("Byte %d not zeroed: 0x%02x", i, b)
		}
	}
}

func TestShiftBeyondHeadroomReallocates(t *testing.T) {
	buf := New()

	first, err := buf.Shift(4)
	if err != nil {
		t.Fatalf("Shift failed: %v", err)
	}
	copy(first, []byte{0x0A, 0x0B, 0x0C, 0x0D})

	// Far larger than the initial headroom.
	big, err := buf.Shift(500)
	if err != nil {
		t.Fatalf("Shift failed: %v", err)
	}
	big[0] = 0xEE

	if buf.Len() != 504 {
		t.Fatalf("Len = %d, want 504", buf.Len())
	}
	if buf.Bytes()[0] != 0xEE {
		t.Errorf("Front byte = 0x%02x, want 0xEE", buf.Bytes()[0])
	}
	if !bytes.Equal(buf.Bytes()[500:], []byte{0x0A, 0x0B, 0x0C, 0x0D}) {
		t.Errorf("Tail displaced by reallocation: %x", buf.Bytes()[500:])
	}
}

func TestShiftLimit(t *testing.T) {
	buf := New(WithLimit(10))

	if _, err := buf.Shift(8); err != nil {
		t.Fatalf("Shift within limit failed: %v", err)
	}

	_, err := buf.Shift(3)
	if !errors.Is(err, ErrLimit) {
		t.Fatalf("Expected ErrLimit, got %v", err)
	}
	if buf.Len() != 8 {
		t.Errorf("Failed Shift changed the buffer: Len = %d", buf.Len())
	}
}

func TestConsume(t *testing.T) {
	buf := New()

	region, err := buf.Shift(6)
	if err != nil {
		t.Fatalf("Shift failed: %v", err)
	}
	copy(region, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})

	front, err := buf.Consume(2)
	if err != nil {
		t.Fatalf("Consume failed: %v", err)
	}
	if !bytes.Equal(front, []byte{0x01, 0x02}) {
		t.Errorf("Consumed %x, want 0102", front)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x03, 0x04, 0x05, 0x06}) {
		t.Errorf("Remainder = %x", buf.Bytes())
	}

	if _, err := buf.Consume(5); err == nil {
		t.Error("Expected error consuming past end of buffer")
	}
}
