// Package history implements the editor's undo/redo stack: a bounded,
// doubly-linked list of reversible edit records with a "current"
// cursor, per spec §3/§4.3. No example repo in the retrieval pack
// implements undo/redo (the teacher, kigo, has none at all), so this is
// built from the spec's own invariants rather than adapted from a
// specific file, in the teacher's general style: small struct, explicit
// pointer fields, no generics.
package history

// Kind identifies what an edit record reverses.
type Kind int

const (
	KindInsert Kind = iota
	KindDelete
	KindReplace
)

// TextBuffer is the minimal surface history needs to apply or reverse an
// edit. *gapbuffer.Buffer satisfies it.
type TextBuffer interface {
	Insert(pos int, p []byte) bool
	Delete(pos, length int) int
}

// DefaultMaxLevels is the bound spec §3 names (MAX_UNDO_LEVELS).
const DefaultMaxLevels = 100

type record struct {
	kind       Kind
	pos        int
	text       []byte
	prev, next *record
}

// Stack is a bounded undo/redo history. The zero value is not usable;
// construct one with New.
type Stack struct {
	head, tail, current *record
	count                int
	maxLevels            int
}

// New returns an empty history bounded to maxLevels records. A
// non-positive maxLevels falls back to DefaultMaxLevels.
func New(maxLevels int) *Stack {
	if maxLevels <= 0 {
		maxLevels = DefaultMaxLevels
	}
	return &Stack{maxLevels: maxLevels}
}

// Len reports the current number of records retained (undo + redo).
func (s *Stack) Len() int { return s.count }

// Modified reports whether any record lies behind (at or before) current
// — i.e. whether the buffer differs from its state before the oldest
// still-applied edit. Spec §4.3: "the buffer's modified flag becomes
// true iff any record remains behind current" after an undo.
func (s *Stack) Modified() bool { return s.current != nil }

// CanUndo reports whether Undo would do anything.
func (s *Stack) CanUndo() bool { return s.current != nil }

// CanRedo reports whether Redo would do anything.
func (s *Stack) CanRedo() bool {
	if s.current == nil {
		return s.head != nil
	}
	return s.current.next != nil
}

// Push records a new edit. It first discards every record strictly
// after current (the redo queue, invalidated by any new edit), appends
// the new record, and makes it current. If that pushes the count over
// maxLevels, the oldest record is evicted.
func (s *Stack) Push(kind Kind, pos int, text []byte) {
	s.clearRedo()

	cp := make([]byte, len(text))
	copy(cp, text)
	rec := &record{kind: kind, pos: pos, text: cp, prev: s.current}

	if s.current != nil {
		s.current.next = rec
	} else {
		s.head = rec
	}
	s.tail = rec
	s.current = rec
	s.count++

	if s.count > s.maxLevels {
		s.evictHead()
	}
}

// clearRedo drops every record after current, the way a fresh Push must
// before it extends the list.
func (s *Stack) clearRedo() {
	if s.current == nil {
		s.head = nil
		s.tail = nil
		s.count = 0
		return
	}
	s.current.next = nil
	s.tail = s.current

	n := 0
	for r := s.head; r != nil; r = r.next {
		n++
	}
	s.count = n
}

// evictHead drops the oldest record. current is only ever evicted when
// it is itself the head, in which case it moves to the new head (spec
// §3: "current is never evicted unless it is the head").
func (s *Stack) evictHead() {
	old := s.head
	if old == nil {
		return
	}
	s.head = old.next
	if s.head != nil {
		s.head.prev = nil
	} else {
		s.tail = nil
	}
	if s.current == old {
		s.current = s.head
	}
	s.count--
}

func apply(buf TextBuffer, rec *record, forward bool) {
	switch rec.kind {
	case KindInsert:
		if forward {
			buf.Insert(rec.pos, rec.text)
		} else {
			buf.Delete(rec.pos, len(rec.text))
		}
	case KindDelete:
		if forward {
			buf.Delete(rec.pos, len(rec.text))
		} else {
			buf.Insert(rec.pos, rec.text)
		}
	case KindReplace:
		// Underspecified by design (spec §9): Replace is not emitted by
		// any edit operation. Both directions are delete-then-insert of
		// the record's own text, per spec §4.3.
		buf.Delete(rec.pos, len(rec.text))
		buf.Insert(rec.pos, rec.text)
	}
}

// Undo reverses the record at current, without pushing a new record,
// and moves current one step back. It reports false ("nothing to undo")
// if the history is already fully unwound.
func (s *Stack) Undo(buf TextBuffer) bool {
	if s.current == nil {
		return false
	}
	rec := s.current
	apply(buf, rec, false)
	s.current = rec.prev
	return true
}

// Redo re-applies the record immediately after current (or the head, if
// current is nil) and advances current to it. It reports false
// ("nothing to redo") if there is no such record.
func (s *Stack) Redo(buf TextBuffer) bool {
	var rec *record
	if s.current == nil {
		rec = s.head
	} else {
		rec = s.current.next
	}
	if rec == nil {
		return false
	}
	apply(buf, rec, true)
	s.current = rec
	return true
}

// Reset discards all history, as done when a new file is opened.
func (s *Stack) Reset() {
	s.head = nil
	s.tail = nil
	s.current = nil
	s.count = 0
}
