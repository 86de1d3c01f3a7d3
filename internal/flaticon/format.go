package flaticon

// Magic is the four-byte little-endian file identifier 'ficn'.
const Magic uint32 = 0x6E636966

const (
	styleTypeSolidColor        = 1
	styleTypeGradient          = 2
	styleTypeSolidColorNoAlpha = 3
	styleTypeSolidGray         = 4
	styleTypeSolidGrayNoAlpha  = 5
)

const shapeTypePathSource = 10

const (
	transformerTypeAffine      = 20
	transformerTypeContour     = 21
	transformerTypePerspective = 22
	transformerTypeStroke      = 23
)

const (
	gradientFlagTransform = 1 << 1
	gradientFlagNoAlpha   = 1 << 2
	gradientFlagGrays     = 1 << 4
)

const (
	pathFlagClosed       = 1 << 1
	pathFlagUsesCommands = 1 << 2
	pathFlagNoCurves     = 1 << 3
)

const (
	pathCommandHLine = 0
	pathCommandVLine = 1
	pathCommandLine  = 2
	pathCommandCurve = 3
)

const (
	shapeFlagTransform      = 1 << 1
	shapeFlagHinting        = 1 << 2
	shapeFlagLODScale       = 1 << 3
	shapeFlagHasTransformers = 1 << 4
	shapeFlagTranslation    = 1 << 5
)

// lodScale is the fixed-point resolution LOD min/max scales are encoded
// at (1/63.75, per spec.md §4.2).
const lodScale = 63.75

// currentColorWireIndex is the in-band sentinel byte value standing for
// model.StyleCurrentColor on the wire (see DESIGN.md's CurrentColor entry).
const currentColorWireIndex = 0xff

