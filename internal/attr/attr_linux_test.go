//go:build linux

package attr

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadWriteIconAttributeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.txt")
	if err := os.WriteFile(path, []byte("placeholder"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	want := []byte{0x69, 0x63, 0x6e, 0x66, 1, 2, 3}
	if err := WriteIconAttribute(path, "", want); err != nil {
		t.Skipf("extended attributes unsupported on this filesystem: %v", err)
	}

	got, err := ReadIconAttribute(path, "")
	if err != nil {
		t.Fatalf("ReadIconAttribute: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReadIconAttributeMissingFile(t *testing.T) {
	if _, err := ReadIconAttribute("/nonexistent/path/for/attr/test", ""); err == nil {
		t.Error("expected error reading attribute of a nonexistent file")
	}
}

func TestWriteIconAttributeTooLarge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.txt")
	if err := os.WriteFile(path, []byte("placeholder"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	big := make([]byte, MaxAttrSize+1)
	if err := WriteIconAttribute(path, "", big); err != ErrAttrTooLarge {
		t.Errorf("err = %v, want ErrAttrTooLarge", err)
	}
}
