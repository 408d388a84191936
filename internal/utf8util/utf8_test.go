package utf8util

import "testing"

func TestByteLength(t *testing.T) {
	cases := []struct {
		b    byte
		want int
	}{
		{'h', 1},
		{0xC3, 2},
		{0xE4, 3},
		{0xF0, 4},
		{0xFF, 1},
	}
	for _, c := range cases {
		if got := ByteLength(c.b); got != c.want {
			t.Errorf("ByteLength(%#x) = %d, want %d", c.b, got, c.want)
		}
	}
}

func TestValidateRejectsOverlong(t *testing.T) {
	// 0xC0 0x80 is an overlong encoding of NUL.
	if n, ok := Validate([]byte{0xC0, 0x80}, 2); ok || n != 1 {
		t.Errorf("Validate(C0 80) = (%d, %v), want (1, false)", n, ok)
	}
	// 0xE0 0x80 0x80 is overlong (second byte must be >= 0xA0).
	if n, ok := Validate([]byte{0xE0, 0x80, 0x80}, 3); ok || n != 1 {
		t.Errorf("Validate(E0 80 80) = (%d, %v), want (1, false)", n, ok)
	}
	// 0xF0 0x80 ... is overlong (second byte must be >= 0x90).
	if n, ok := Validate([]byte{0xF0, 0x80, 0x80, 0x80}, 4); ok || n != 1 {
		t.Errorf("Validate(F0 80 80 80) = (%d, %v), want (1, false)", n, ok)
	}
}

func TestValidateRejectsSurrogates(t *testing.T) {
	// U+D800 encodes as ED A0 80; second byte > 0x9F is a surrogate.
	if n, ok := Validate([]byte{0xED, 0xA0, 0x80}, 3); ok || n != 1 {
		t.Errorf("Validate(ED A0 80) = (%d, %v), want (1, false)", n, ok)
	}
}

func TestValidateRejectsAboveMax(t *testing.T) {
	// U+110000 would need F4 90 80 80; second byte > 0x8F exceeds U+10FFFF.
	if n, ok := Validate([]byte{0xF4, 0x90, 0x80, 0x80}, 4); ok || n != 1 {
		t.Errorf("Validate(F4 90 80 80) = (%d, %v), want (1, false)", n, ok)
	}
}

func TestValidateAcceptsWellFormed(t *testing.T) {
	// é = C3 A9
	if n, ok := Validate([]byte{0xC3, 0xA9}, 2); !ok || n != 2 {
		t.Errorf("Validate(C3 A9) = (%d, %v), want (2, true)", n, ok)
	}
}

func TestDecode(t *testing.T) {
	r, n := Decode([]byte("héllo")[1:3])
	if r != 'é' || n != 2 {
		t.Errorf("Decode(é) = (%q, %d), want ('é', 2)", r, n)
	}

	r, n = Decode([]byte{0xFF})
	if r != RuneError || n != 1 {
		t.Errorf("Decode(invalid) = (%q, %d), want (RuneError, 1)", r, n)
	}
}

func TestWidthControlAndCombining(t *testing.T) {
	if w := Width(0x09); w != 0 {
		t.Errorf("Width(tab) = %d, want 0", w)
	}
	if w := Width(0x7F); w != 0 {
		t.Errorf("Width(DEL) = %d, want 0", w)
	}
	if w := Width(0x0301); w != 0 {
		t.Errorf("Width(combining acute) = %d, want 0", w)
	}
}

func TestWidthWideAndNarrow(t *testing.T) {
	if w := Width('A'); w != 1 {
		t.Errorf("Width('A') = %d, want 1", w)
	}
	if w := Width(0x4E2D); w != 2 { // 中
		t.Errorf("Width(中) = %d, want 2", w)
	}
}

func TestNextPrevRoundTrip(t *testing.T) {
	s := []byte("héllo") // h, C3 A9, l, l, o
	start := 0
	i := 1
	j := Next(s, i)
	if j != 3 {
		t.Fatalf("Next at é start = %d, want 3", j)
	}
	back := Prev(s, start, j)
	if back != i {
		t.Errorf("Prev(Next(s)) = %d, want %d", back, i)
	}
}

func TestNextStopsAtNUL(t *testing.T) {
	s := []byte{'a', 0, 'b'}
	if j := Next(s, 1); j != 1 {
		t.Errorf("Next at NUL = %d, want 1 (no advance)", j)
	}
}

func TestPrevNeverPassesStart(t *testing.T) {
	s := []byte{0xC3, 0xA9}
	if j := Prev(s, 0, 0); j != 0 {
		t.Errorf("Prev at start = %d, want 0", j)
	}
}
