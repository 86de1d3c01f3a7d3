// Package attr reads a vector icon stored as a filesystem extended
// attribute, per spec.md §6's per-node attribute API
// (get_vector_icon(node, attr_name, target_bitmap)).
package attr

import "errors"

// DefaultIconAttr and DefaultMetaAttr are the two attribute names
// spec.md §6 names for a stored icon: "BEOS:ICON" (type tag 'VICN') for
// the icon proper, "META:ICON" for MIME metadata.
const (
	DefaultIconAttr = "BEOS:ICON"
	DefaultMetaAttr = "META:ICON"
)

// MaxAttrSize is the largest attribute value ReadIconAttribute accepts,
// per spec.md §6's "maximum accepted attribute size 512 KiB".
const MaxAttrSize = 512 * 1024

// ErrAttrTooLarge is returned when the named attribute exceeds MaxAttrSize.
var ErrAttrTooLarge = errors.New("attr: attribute exceeds 512 KiB limit")

// ErrNotSupported is returned on platforms with no extended-attribute
// syscall wired (see attr_linux.go / attr_other.go).
var ErrNotSupported = errors.New("attr: extended attributes not supported on this platform")
