// Package style holds the passive data model describing a node's box and
// paint intent. It has no dependencies on the tree or the layout engine;
// values are taken at face value and validated nowhere in this package.
package style

// Direction selects the main axis along which a container places its
// flow children.
type Direction uint8

const (
	// Column stacks children vertically (the default).
	Column Direction = iota
	// Row places children horizontally.
	Row
)

// Align positions each child on the cross axis.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Distribute spreads free main-axis space among flow children.
type Distribute uint8

const (
	DistributeStart Distribute = iota
	DistributeCenter
	DistributeEnd
	DistributeBetween
	DistributeAround
	DistributeEvenly
)

// Position selects how a node is placed.
type Position uint8

const (
	// Relative nodes participate in flow layout (the default).
	Relative Position = iota
	// Absolute nodes anchor to their parent's content box via edge offsets.
	Absolute
	// Portal nodes anchor to the viewport and paint after the primary
	// tree, so they are always topmost.
	Portal
)

// Style describes one node's box and paint intent.
type Style struct {
	Width       Length
	Height      Length
	AspectRatio float64 // width / height; 0 means unset

	Direction  Direction
	Align      Align
	Distribute Distribute

	// GapX is the declared inter-child gap for Row containers, GapY for
	// Column containers. The declared gap is reserved before free space
	// is distributed; see the layout engine.
	GapX Length
	GapY Length

	Position Position
	// Edge offsets for Absolute and Portal nodes. Nil means unset,
	// which is distinct from an explicit zero.
	Top    *Length
	Right  *Length
	Bottom *Length
	Left   *Length

	Margin  EdgeSizes
	Padding EdgeSizes

	Background  Color
	TextColor   Color
	BorderColor Color
	BorderWidth float64
	CornerRadius float64
	Opacity     float64
	FontSize    float64 // 0 means the renderer default
}

// Default returns the style every node starts from: auto sizes, column
// direction, transparent background, black text, fully opaque.
func Default() Style {
	return Style{
		Background: Transparent,
		TextColor:  Black,
		Opacity:    1,
	}
}
