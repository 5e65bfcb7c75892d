package style

// LengthKind tags the interpretation of a Length value.
type LengthKind uint8

const (
	// LengthAuto defers the size to intrinsic content or container growth.
	// It is the zero value so an unset Length behaves like CSS "auto".
	LengthAuto LengthKind = iota
	LengthPx
	LengthPercent
)

// Length is a size or offset value. Percent lengths are meaningful only
// against an explicit reference dimension supplied at resolve time.
type Length struct {
	Kind  LengthKind
	Value float64
}

// Px creates a length in pixels.
func Px(v float64) Length {
	return Length{Kind: LengthPx, Value: v}
}

// Pc creates a length as a percentage (0-100) of a reference dimension.
func Pc(v float64) Length {
	return Length{Kind: LengthPercent, Value: v}
}

// Auto creates an automatic length.
func Auto() Length {
	return Length{}
}

// IsAuto reports whether the length defers sizing.
func (l Length) IsAuto() bool {
	return l.Kind == LengthAuto
}

// AsPx returns the literal pixel value. Percent and Auto resolve to 0;
// margins and padding use this, matching the box model's treatment of
// non-pixel edge sizes.
func (l Length) AsPx() float64 {
	if l.Kind == LengthPx {
		return l.Value
	}
	return 0
}

// Resolve converts the length to pixels against a reference dimension.
// Auto resolves to 0.
func (l Length) Resolve(ref float64) float64 {
	switch l.Kind {
	case LengthPx:
		return l.Value
	case LengthPercent:
		return l.Value / 100.0 * ref
	default:
		return 0
	}
}

// EdgeSizes holds the four edges of a margin or padding box.
type EdgeSizes struct {
	Top    Length
	Right  Length
	Bottom Length
	Left   Length
}

// Edges creates an EdgeSizes from four lengths in top/right/bottom/left order.
func Edges(top, right, bottom, left Length) EdgeSizes {
	return EdgeSizes{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Splat creates an EdgeSizes with the same length on every edge.
func Splat(l Length) EdgeSizes {
	return EdgeSizes{Top: l, Right: l, Bottom: l, Left: l}
}
