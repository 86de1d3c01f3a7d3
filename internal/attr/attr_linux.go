//go:build linux

package attr

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// ReadIconAttribute reads the named extended attribute off path (default
// DefaultIconAttr when name is empty) and returns its raw bytes, ready to
// hand to a flat-format or IMSG decoder. It rejects anything over
// MaxAttrSize before allocating the full buffer, per spec.md §6.
func ReadIconAttribute(path, name string) ([]byte, error) {
	if name == "" {
		name = DefaultIconAttr
	}

	sz, err := unix.Getxattr(path, name, nil)
	if err != nil {
		return nil, fmt.Errorf("attr: getxattr %s %s: %w", path, name, err)
	}
	if sz > MaxAttrSize {
		return nil, ErrAttrTooLarge
	}

	buf := make([]byte, sz)
	n, err := unix.Getxattr(path, name, buf)
	if err != nil {
		return nil, fmt.Errorf("attr: getxattr %s %s: %w", path, name, err)
	}
	return buf[:n], nil
}

// WriteIconAttribute stores data as the named extended attribute on path
// (default DefaultIconAttr when name is empty).
func WriteIconAttribute(path, name string, data []byte) error {
	if name == "" {
		name = DefaultIconAttr
	}
	if len(data) > MaxAttrSize {
		return ErrAttrTooLarge
	}
	if err := unix.Setxattr(path, name, data, 0); err != nil {
		return fmt.Errorf("attr: setxattr %s %s: %w", path, name, err)
	}
	return nil
}
