// Released under an MIT license. See LICENSE.

package history

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	err := Load(path, func(r io.Reader) (int, error) {
		t.Fatal("read called for a missing file")

		return 0, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = Save(path, func(w io.Writer) (int, error) {
		return io.WriteString(w, "(+ 1 2)\n")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var b bytes.Buffer

	err = Load(path, func(r io.Reader) (int, error) {
		n, err := b.ReadFrom(r)

		return int(n), err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.String() != "(+ 1 2)\n" {
		t.Fatalf("unexpected history: %q", b.String())
	}
}

func TestDisabled(t *testing.T) {
	err := Save("", func(w io.Writer) (int, error) {
		t.Fatal("write called with no path")

		return 0, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
