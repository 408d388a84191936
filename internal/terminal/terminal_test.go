package terminal

import (
	"os"
	"testing"
	"time"
)

// withStdin temporarily replaces os.Stdin with the read end of an
// in-memory pipe so ReadKey's decode table can be exercised without a
// real TTY, and writes data to the write end for the test to consume.
func withStdin(t *testing.T, data []byte, fn func()) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stdin
	os.Stdin = r
	defer func() {
		os.Stdin = orig
		r.Close()
	}()

	go func() {
		w.Write(data)
		w.Close()
	}()
	fn()
}

func TestReadKeyPlainByte(t *testing.T) {
	withStdin(t, []byte("a"), func() {
		key, ok, err := ReadKey(time.Second)
		if err != nil || !ok {
			t.Fatalf("ReadKey = %d, %v, %v", key, ok, err)
		}
		if key != 'a' {
			t.Errorf("key = %d, want 'a'", key)
		}
	})
}

func TestReadKeyArrowUp(t *testing.T) {
	withStdin(t, []byte("\x1b[A"), func() {
		key, ok, err := ReadKey(time.Second)
		if err != nil || !ok {
			t.Fatalf("ReadKey = %d, %v, %v", key, ok, err)
		}
		if key != ArrowUp {
			t.Errorf("key = %d, want ArrowUp", key)
		}
	})
}

func TestReadKeyDeleteTilde(t *testing.T) {
	withStdin(t, []byte("\x1b[3~"), func() {
		key, ok, err := ReadKey(time.Second)
		if err != nil || !ok {
			t.Fatalf("ReadKey = %d, %v, %v", key, ok, err)
		}
		if key != Delete {
			t.Errorf("key = %d, want Delete", key)
		}
	})
}

func TestReadKeySS3Home(t *testing.T) {
	withStdin(t, []byte("\x1bOH"), func() {
		key, ok, err := ReadKey(time.Second)
		if err != nil || !ok {
			t.Fatalf("ReadKey = %d, %v, %v", key, ok, err)
		}
		if key != Home {
			t.Errorf("key = %d, want Home", key)
		}
	})
}

func TestReadKeyTimeoutReportsNotOK(t *testing.T) {
	withStdin(t, nil, func() {
		_, ok, err := ReadKey(50 * time.Millisecond)
		if err != nil {
			t.Fatalf("ReadKey error = %v, want nil", err)
		}
		if ok {
			t.Error("ReadKey ok = true on an empty stream, want false (timeout)")
		}
	})
}
