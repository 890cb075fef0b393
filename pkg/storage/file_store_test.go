package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	ctx := context.Background()
	payload := []byte("om namah shivaya")

	if err := fs.Put(ctx, "assets/abc/om.txt", bytes.NewReader(payload), int64(len(payload)), "text/plain"); err != nil {
		t.Fatalf("put: %v", err)
	}
	rc, err := fs.Open(ctx, "assets/abc/om.txt")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	got, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload mismatch: %q", got)
	}

	if err := fs.Delete(ctx, "assets/abc/om.txt"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := fs.Open(ctx, "assets/abc/om.txt"); !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("open after delete: %v, want ErrObjectNotFound", err)
	}
	// Deleting again is not an error.
	if err := fs.Delete(ctx, "assets/abc/om.txt"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	if err := fs.Put(context.Background(), "../escape", strings.NewReader("x"), 1, ""); err == nil {
		t.Fatal("expected traversal rejection")
	}
}
