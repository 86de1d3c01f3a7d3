package bitbuf

import "testing"

func TestCoordRoundTripOneByte(t *testing.T) {
	for v := -32; v <= 95; v++ {
		b := New()
		b.WriteCoord(float32(v))
		if b.Len() != 1 {
			t.Fatalf("WriteCoord(%d): want 1 byte, got %d", v, b.Len())
		}
		r := NewReader(b.Bytes())
		got, err := r.ReadCoord()
		if err != nil {
			t.Fatalf("WriteCoord(%d): ReadCoord error: %v", v, err)
		}
		if got != float32(v) {
			t.Errorf("WriteCoord(%d): round-trip got %v", v, got)
		}
	}
}

func TestCoordRoundTripTwoByte(t *testing.T) {
	for _, v := range []float32{-128, -100, -40, 96, 150, 192} {
		b := New()
		b.WriteCoord(v)
		if b.Len() != 2 {
			t.Fatalf("WriteCoord(%v): want 2 bytes, got %d", v, b.Len())
		}
		r := NewReader(b.Bytes())
		got, err := r.ReadCoord()
		if err != nil {
			t.Fatalf("WriteCoord(%v): ReadCoord error: %v", v, err)
		}
		if diff := got - v; diff > 1.0/102.0 || diff < -1.0/102.0 {
			t.Errorf("WriteCoord(%v): round-trip got %v, want within 1/102", v, got)
		}
	}
}

func TestCoordClamps(t *testing.T) {
	b := New()
	b.WriteCoord(1000)
	r := NewReader(b.Bytes())
	got, _ := r.ReadCoord()
	if got != 192 {
		t.Errorf("WriteCoord(1000) should clamp to 192, got %v", got)
	}
}

func TestFloat24ZeroIsAllZeroBytes(t *testing.T) {
	b := New()
	b.WriteFloat24(0)
	want := []byte{0, 0, 0}
	got := b.Bytes()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("WriteFloat24(0) = %v, want %v", got, want)
		}
	}
}

func TestFloat24RoundTrip(t *testing.T) {
	for _, v := range []float32{0.5, -0.5, 1.0, -1.0, 3.14159, 64, -64, 0.001} {
		b := New()
		b.WriteFloat24(v)
		if b.Len() != 3 {
			t.Fatalf("WriteFloat24(%v): want 3 bytes, got %d", v, b.Len())
		}
		r := NewReader(b.Bytes())
		got, err := r.ReadFloat24()
		if err != nil {
			t.Fatalf("ReadFloat24 error: %v", err)
		}
		// 17-bit mantissa loses precision relative to the 23-bit source.
		tol := float32(0.001)
		if diff := got - v; diff > tol || diff < -tol {
			t.Errorf("WriteFloat24(%v) round-trip got %v", v, got)
		}
	}
}

func TestFloat24OutOfRangeExponentEncodesZero(t *testing.T) {
	b := New()
	b.WriteFloat24(1e20) // exponent far outside [-32, 32)
	r := NewReader(b.Bytes())
	got, _ := r.ReadFloat24()
	if got != 0 {
		t.Errorf("out-of-range float24 should decode to 0, got %v", got)
	}
}

func TestReadTruncated(t *testing.T) {
	r := NewReader([]byte{0x01})
	if _, err := r.ReadU16(); err != ErrTruncated {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}

func TestSkipAndSubBuffer(t *testing.T) {
	w := New()
	w.WriteU8(1)
	w.WriteU8(2)
	w.WriteU8(3)

	r := NewReader(w.Bytes())
	sub, err := r.ReadBytes(2)
	if err != nil {
		t.Fatalf("ReadBytes error: %v", err)
	}
	v, _ := sub.ReadU8()
	if v != 1 {
		t.Errorf("sub buffer first byte = %d, want 1", v)
	}
	if r.Remaining() != 1 {
		t.Errorf("Remaining after ReadBytes(2) = %d, want 1", r.Remaining())
	}
}
