//go:build !linux

package attr

// ReadIconAttribute is unavailable outside Linux's getxattr; matches the
// teacher's platform-stub pattern (internal/platform's backend_x11.go
// returning an error for the backend it wasn't built with) rather than
// silently no-op'ing.
func ReadIconAttribute(path, name string) ([]byte, error) {
	return nil, ErrNotSupported
}

// WriteIconAttribute is unavailable outside Linux's setxattr.
func WriteIconAttribute(path, name string, data []byte) error {
	return ErrNotSupported
}
