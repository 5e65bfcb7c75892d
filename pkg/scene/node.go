// Package scene owns the node tree. Nodes live in a single arena and
// reference each other through integer handles, never native pointers,
// so parent/child/sibling links cannot form ownership cycles. A tree is
// built once from a builder snapshot, laid out, painted, and discarded
// wholesale on the next state change.
package scene

import "facet/pkg/style"

// Kind identifies what a node holds.
type Kind uint8

const (
	// KindElement is a plain container with no intrinsic size.
	KindElement Kind = iota
	// KindText holds text content measured by the embedder's Measurer.
	KindText
	// KindTexture holds a raster asset with a natural size.
	KindTexture
	// KindSVG holds a vector asset with a natural size.
	KindSVG
)

// Asset is the engine's view of a texture or vector image: natural
// footprint only, contents opaque. Concrete types live in pkg/assets.
type Asset interface {
	Width() float64
	Height() float64
	AspectRatio() float64
}

// Layout is a node's computed placement in viewport pixels. It is
// written by the layout engine and read by the renderer and hit tester.
type Layout struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the point lies inside the rectangle.
// All four edges are inclusive.
func (l Layout) Contains(x, y float64) bool {
	return x >= l.X && x <= l.X+l.Width && y >= l.Y && y <= l.Y+l.Height
}

// Node is one tree element. Topology fields are managed by the Tree and
// must not be written by callers.
type Node struct {
	Kind    Kind
	Style   style.Style
	Content string // KindText only
	Asset   Asset  // KindTexture and KindSVG only
	Handler Handler

	Layout Layout

	// Intrusive topology. Parent is a non-owning back-reference and is
	// never used to decide destruction; the owning chain runs
	// FirstChild -> NextSibling. LastChild exists for O(1) append.
	Parent      NodeID
	FirstChild  NodeID
	LastChild   NodeID
	NextSibling NodeID
}

// Element creates a container node with the given style.
func Element(s style.Style) Node {
	return Node{Kind: KindElement, Style: s}
}

// Text creates a text node.
func Text(content string, s style.Style) Node {
	return Node{Kind: KindText, Style: s, Content: content}
}

// Texture creates a raster image node.
func Texture(asset Asset, s style.Style) Node {
	return Node{Kind: KindTexture, Style: s, Asset: asset}
}

// SVG creates a vector image node.
func SVG(asset Asset, s style.Style) Node {
	return Node{Kind: KindSVG, Style: s, Asset: asset}
}
