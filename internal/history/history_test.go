package history

import (
	"testing"

	"github.com/ovistrand/me/internal/gapbuffer"
)

func TestPushUndoRestoresPriorState(t *testing.T) {
	buf := gapbuffer.New(16)
	h := New(10)

	buf.Insert(0, []byte("hello"))
	h.Push(KindInsert, 0, []byte("hello"))

	if !h.Undo(buf) {
		t.Fatal("Undo() = false, want true")
	}
	if got := string(buf.Bytes()); got != "" {
		t.Errorf("buffer after undo = %q, want empty", got)
	}
}

func TestPushUndoRedoReturnsToPostPushState(t *testing.T) {
	buf := gapbuffer.New(16)
	h := New(10)

	buf.Insert(0, []byte("hi"))
	h.Push(KindInsert, 0, []byte("hi"))

	h.Undo(buf)
	if !h.Redo(buf) {
		t.Fatal("Redo() = false, want true")
	}
	if got := string(buf.Bytes()); got != "hi" {
		t.Errorf("buffer after redo = %q, want %q", got, "hi")
	}
}

func TestPushDiscardsRedoQueue(t *testing.T) {
	buf := gapbuffer.New(16)
	h := New(10)

	buf.Insert(0, []byte("a"))
	h.Push(KindInsert, 0, []byte("a"))
	buf.Insert(1, []byte("b"))
	h.Push(KindInsert, 1, []byte("b"))

	h.Undo(buf) // back to "a"
	h.Undo(buf) // back to ""

	// New edit while two records were undone: redo queue must vanish.
	buf.Insert(0, []byte("c"))
	h.Push(KindInsert, 0, []byte("c"))

	if h.CanRedo() {
		t.Error("CanRedo() = true after a new push, want false")
	}
	if got := string(buf.Bytes()); got != "c" {
		t.Errorf("buffer = %q, want %q", got, "c")
	}
}

func TestMaxUndoLevelsEviction(t *testing.T) {
	buf := gapbuffer.New(256)
	h := New(100)

	for i := 0; i < 101; i++ {
		buf.Insert(buf.Length(), []byte("x"))
		h.Push(KindInsert, buf.Length()-1, []byte("x"))
	}
	if h.Len() != 100 {
		t.Fatalf("Len() = %d, want 100 (bounded)", h.Len())
	}

	undoCount := 0
	for h.Undo(buf) {
		undoCount++
	}
	if undoCount != 100 {
		t.Errorf("performed %d undos, want 100 (oldest edit was evicted)", undoCount)
	}
	// The very first 'x' was evicted from history, so one character of
	// buffer state is unrecoverable by undo.
	if got := buf.Length(); got != 1 {
		t.Errorf("buffer length after exhausting undo = %d, want 1", got)
	}
	if h.Undo(buf) {
		t.Error("Undo() after exhaustion = true, want false")
	}
}

func TestModifiedFlagTracksCurrent(t *testing.T) {
	buf := gapbuffer.New(16)
	h := New(10)

	if h.Modified() {
		t.Error("Modified() on empty history = true, want false")
	}

	buf.Insert(0, []byte("x"))
	h.Push(KindInsert, 0, []byte("x"))
	if !h.Modified() {
		t.Error("Modified() after push = false, want true")
	}

	h.Undo(buf)
	if h.Modified() {
		t.Error("Modified() after undoing the only record = true, want false")
	}
}

func TestDeleteRecordInverse(t *testing.T) {
	buf := gapbuffer.New(16)
	h := New(10)
	buf.Insert(0, []byte("hello world"))
	h.Reset()

	removed := buf.Delete(5, 6) // " world"
	h.Push(KindDelete, 5, []byte(" world")[:removed])

	if !h.Undo(buf) {
		t.Fatal("Undo() = false, want true")
	}
	if got := string(buf.Bytes()); got != "hello world" {
		t.Errorf("buffer after undoing delete = %q, want %q", got, "hello world")
	}
}
