package gapbuffer

import (
	"bytes"
	"strings"
	"testing"
)

func TestInsertAndLength(t *testing.T) {
	b := New(16)
	b.Insert(0, []byte("hello"))

	if got, want := b.Length(), 5; got != want {
		t.Errorf("Length() = %d, want %d", got, want)
	}
	if got, want := string(b.Bytes()), "hello"; got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestInsertInMiddle(t *testing.T) {
	b := New(16)
	b.Insert(0, []byte("helo"))
	b.Insert(3, []byte("l")) // "hel" + "l" + "o" -> "hello"

	if got, want := string(b.Bytes()), "hello"; got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestDeleteRange(t *testing.T) {
	b := New(16)
	b.Insert(0, []byte("hello world"))
	n := b.Delete(5, 6) // remove " world"

	if n != 6 {
		t.Errorf("Delete returned %d, want 6", n)
	}
	if got, want := string(b.Bytes()), "hello"; got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestDeleteClampsToAvailable(t *testing.T) {
	b := New(16)
	b.Insert(0, []byte("hi"))
	n := b.Delete(0, 100)

	if n != 2 {
		t.Errorf("Delete returned %d, want 2 (clamped)", n)
	}
	if got := b.Length(); got != 0 {
		t.Errorf("Length() = %d, want 0", got)
	}
}

func TestGrowBeyondInitialCapacity(t *testing.T) {
	b := New(4)
	var want bytes.Buffer
	for i := 0; i < 2000; i++ {
		b.Insert(b.Length(), []byte("x"))
		want.WriteByte('x')
	}
	if got := string(b.Bytes()); got != want.String() {
		t.Errorf("Bytes() mismatch after growth, len got=%d want=%d", len(got), want.Len())
	}
}

func TestSliceAcrossGapBoundary(t *testing.T) {
	b := New(16)
	b.Insert(0, []byte("abcdef"))
	b.Insert(3, []byte("XYZ")) // gap now sits after "abcXYZ"

	got := b.Slice(2, 5) // should read across the former gap position
	if want := "cXYZd"; string(got) != want {
		t.Errorf("Slice(2,5) = %q, want %q", got, want)
	}
}

func TestLoadAndModifiedFlag(t *testing.T) {
	b := New(0)
	b.Insert(0, []byte("stale"))

	if err := b.Load(strings.NewReader("A\nB\nC\n")); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got, want := string(b.Bytes()), "A\nB\nC\n"; got != want {
		t.Errorf("Bytes() after Load = %q, want %q", got, want)
	}
	if b.Modified() {
		t.Error("Modified() = true after Load, want false")
	}

	b.Insert(b.Length(), []byte("!"))
	if !b.Modified() {
		t.Error("Modified() = false after Insert, want true")
	}
}

func TestCharAt(t *testing.T) {
	b := New(8)
	b.Insert(0, []byte("abc"))
	if got := b.CharAt(1); got != 'b' {
		t.Errorf("CharAt(1) = %q, want 'b'", got)
	}
	if got := b.CharAt(99); got != 0 {
		t.Errorf("CharAt(out of range) = %d, want 0", got)
	}
}
