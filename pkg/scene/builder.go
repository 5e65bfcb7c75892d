package scene

import "facet/pkg/style"

// Builder is an immutable-once-built specification of a subtree: style,
// content, children in author order, and position mode. An external
// view function produces one Builder per state snapshot; Build consumes
// it into a fresh Tree with entirely new handles.
type Builder struct {
	kind     Kind
	style    style.Style
	content  string
	asset    Asset
	handler  Handler
	children []*Builder
}

// Div creates an element builder.
func Div() *Builder {
	return &Builder{kind: KindElement, style: style.Default()}
}

// Txt creates a text builder.
func Txt(content string) *Builder {
	return &Builder{kind: KindText, style: style.Default(), content: content}
}

// Img creates a texture builder.
func Img(asset Asset) *Builder {
	return &Builder{kind: KindTexture, style: style.Default(), asset: asset}
}

// Vector creates an SVG builder.
func Vector(asset Asset) *Builder {
	return &Builder{kind: KindSVG, style: style.Default(), asset: asset}
}

// PortalDiv creates an element positioned relative to the viewport and
// painted on top of all other content.
func PortalDiv() *Builder {
	b := Div()
	b.style.Position = style.Portal
	return b
}

// Row lays children out horizontally.
func (b *Builder) Row() *Builder {
	b.style.Direction = style.Row
	return b
}

// Col lays children out vertically.
func (b *Builder) Col() *Builder {
	b.style.Direction = style.Column
	return b
}

// W sets the width.
func (b *Builder) W(l style.Length) *Builder {
	b.style.Width = l
	return b
}

// H sets the height.
func (b *Builder) H(l style.Length) *Builder {
	b.style.Height = l
	return b
}

// Size sets width and height simultaneously.
func (b *Builder) Size(l style.Length) *Builder {
	b.style.Width = l
	b.style.Height = l
	return b
}

// AspectRatio fixes width/height; supply only one dimension.
func (b *Builder) AspectRatio(ratio float64) *Builder {
	b.style.AspectRatio = ratio
	return b
}

// Square fixes the aspect ratio to 1:1.
func (b *Builder) Square() *Builder {
	b.style.AspectRatio = 1
	return b
}

// P sets padding on all edges.
func (b *Builder) P(l style.Length) *Builder {
	b.style.Padding = style.Splat(l)
	return b
}

// M sets margin on all edges.
func (b *Builder) M(l style.Length) *Builder {
	b.style.Margin = style.Splat(l)
	return b
}

// Bg sets the background color.
func (b *Builder) Bg(c style.Color) *Builder {
	b.style.Background = c
	return b
}

// TextColor sets the text color.
func (b *Builder) TextColor(c style.Color) *Builder {
	b.style.TextColor = c
	return b
}

// Border sets border width and color.
func (b *Builder) Border(width float64, c style.Color) *Builder {
	b.style.BorderWidth = width
	b.style.BorderColor = c
	return b
}

// Rounded sets the corner radius.
func (b *Builder) Rounded(radius float64) *Builder {
	b.style.CornerRadius = radius
	return b
}

// Opacity sets the paint opacity.
func (b *Builder) Opacity(o float64) *Builder {
	b.style.Opacity = o
	return b
}

// FontSize sets the text size.
func (b *Builder) FontSize(size float64) *Builder {
	b.style.FontSize = size
	return b
}

// Align sets cross-axis alignment for flow children.
func (b *Builder) Align(a style.Align) *Builder {
	b.style.Align = a
	return b
}

// Distribute sets main-axis distribution for flow children.
func (b *Builder) Distribute(d style.Distribute) *Builder {
	b.style.Distribute = d
	return b
}

// Gap sets the declared inter-child gap for both axes.
func (b *Builder) Gap(l style.Length) *Builder {
	b.style.GapX = l
	b.style.GapY = l
	return b
}

// Absolute anchors this node to its parent's content box.
func (b *Builder) Absolute() *Builder {
	b.style.Position = style.Absolute
	return b
}

// Top sets the top edge offset.
func (b *Builder) Top(l style.Length) *Builder {
	b.style.Top = &l
	return b
}

// Right sets the right edge offset.
func (b *Builder) Right(l style.Length) *Builder {
	b.style.Right = &l
	return b
}

// Bottom sets the bottom edge offset.
func (b *Builder) Bottom(l style.Length) *Builder {
	b.style.Bottom = &l
	return b
}

// Left sets the left edge offset.
func (b *Builder) Left(l style.Length) *Builder {
	b.style.Left = &l
	return b
}

// Style replaces the whole style.
func (b *Builder) Style(s style.Style) *Builder {
	b.style = s
	return b
}

// OnEvent attaches the handler returned by hit testing.
func (b *Builder) OnEvent(h Handler) *Builder {
	b.handler = h
	return b
}

// OnClick attaches a handler as a plain function.
func (b *Builder) OnClick(f func(Event) EventResult) *Builder {
	b.handler = HandlerFunc(f)
	return b
}

// Child appends one child in author order.
func (b *Builder) Child(child *Builder) *Builder {
	b.children = append(b.children, child)
	return b
}

// Children appends several children in author order.
func (b *Builder) Children(children ...*Builder) *Builder {
	b.children = append(b.children, children...)
	return b
}

func (b *Builder) node() Node {
	n := Node{Kind: b.kind, Style: b.style, Content: b.content, Asset: b.asset}
	n.Handler = b.handler
	return n
}

// Build consumes the specification into a fresh tree. Every Build call
// allocates a new arena, so no handle from a previous build remains
// valid.
func (b *Builder) Build() *Tree {
	t := New(b.style)
	root := t.Node(t.Root())
	root.Kind = b.kind
	root.Content = b.content
	root.Asset = b.asset
	root.Handler = b.handler

	type frame struct {
		parent   NodeID
		children []*Builder
	}
	stack := []frame{{t.Root(), b.children}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range top.children {
			id := t.AddChild(top.parent, child.node())
			if len(child.children) > 0 {
				stack = append(stack, frame{id, child.children})
			}
		}
	}
	return t
}
