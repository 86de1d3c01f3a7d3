package flaticon

import "errors"

// Sentinel errors matching spec.md §6's "Error codes reported" list.
var (
	ErrInvalidMagic          = errors.New("flaticon: invalid magic")
	ErrTruncated             = errors.New("flaticon: truncated")
	ErrTooManyPaths          = errors.New("flaticon: too many paths")
	ErrPathTooManyPoints     = errors.New("flaticon: path has too many points")
	ErrTooManyShapes         = errors.New("flaticon: too many shapes")
	ErrShapeTooManyPaths     = errors.New("flaticon: shape references too many paths")
	ErrShapeTooManyTransformers = errors.New("flaticon: shape has too many transformers")
	ErrTooManyStyles         = errors.New("flaticon: too many styles")
	ErrUnknownTag            = errors.New("flaticon: unknown tag with invalid skip length")
	ErrInvalidArgument       = errors.New("flaticon: invalid argument")
)

// MaxCount is the hard per-section maximum (a u8 count byte with value
// 255 is itself the ceiling — spec.md §4.2: "Any count being 255 is the
// hard maximum; exceeding it while encoding is fatal.").
const MaxCount = 255
