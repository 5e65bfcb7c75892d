// Package render paints a laid-out scene tree into an image. It is the
// reference implementation of the renderer collaborator: nodes paint in
// tree order and Portal subtrees are deferred to one final pass in
// discovery order, the same order the hit tester assumes.
package render

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/srwiley/rasterx"

	"facet/pkg/assets"
	"facet/pkg/scene"
	"facet/pkg/style"
	"facet/pkg/text"
)

const lineSpacing = 1.2

// Renderer rasterizes scene trees with a software canvas.
type Renderer struct {
	dc       *gg.Context
	width    int
	height   int
	fontPath string
}

// NewRenderer creates a renderer with the given pixel dimensions.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
	}
}

// SetFont sets the font file used for text nodes. Without a loadable
// font, text nodes paint nothing (their geometry still comes from the
// measurer).
func (r *Renderer) SetFont(path string) {
	r.fontPath = path
}

// Render paints the tree and returns the frame. The primary tree paints
// root-first in declaration order; portals paint afterwards in
// discovery order, nested portals after their hosts, so later portals
// end up frontmost.
func (r *Renderer) Render(t *scene.Tree) image.Image {
	r.dc.SetRGBA(1, 1, 1, 1)
	r.dc.Clear()

	var portals []scene.NodeID
	r.renderNode(t, t.Root(), &portals)
	for i := 0; i < len(portals); i++ {
		r.renderNode(t, portals[i], &portals)
	}
	return r.dc.Image()
}

func (r *Renderer) renderNode(t *scene.Tree, id scene.NodeID, portals *[]scene.NodeID) {
	r.paintNode(t, id)
	for child := range t.Children(id) {
		if t.Node(child).Style.Position == style.Portal {
			*portals = append(*portals, child)
			continue
		}
		r.renderNode(t, child, portals)
	}
}

func (r *Renderer) paintNode(t *scene.Tree, id scene.NodeID) {
	n := t.Node(id)
	st := n.Style
	l := n.Layout

	alpha := st.Opacity
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	if alpha == 0 || l.Width <= 0 || l.Height <= 0 {
		return
	}

	if st.Background.A > 0 {
		r.dc.SetRGBA(
			float64(st.Background.R),
			float64(st.Background.G),
			float64(st.Background.B),
			float64(st.Background.A)*alpha,
		)
		r.pathRect(l, st.CornerRadius)
		r.dc.Fill()
	}

	switch n.Kind {
	case scene.KindText:
		r.paintText(n, alpha)
	case scene.KindTexture:
		r.paintTexture(n)
	case scene.KindSVG:
		r.paintSVG(n, alpha)
	}

	if st.BorderWidth > 0 && st.BorderColor.A > 0 {
		r.dc.SetRGBA(
			float64(st.BorderColor.R),
			float64(st.BorderColor.G),
			float64(st.BorderColor.B),
			float64(st.BorderColor.A)*alpha,
		)
		r.dc.SetLineWidth(st.BorderWidth)
		r.pathRect(l, st.CornerRadius)
		r.dc.Stroke()
	}
}

func (r *Renderer) pathRect(l scene.Layout, radius float64) {
	if radius > 0 {
		r.dc.DrawRoundedRectangle(l.X, l.Y, l.Width, l.Height, radius)
	} else {
		r.dc.DrawRectangle(l.X, l.Y, l.Width, l.Height)
	}
}

func (r *Renderer) paintText(n *scene.Node, alpha float64) {
	if n.Content == "" || r.fontPath == "" {
		return
	}
	size := n.Style.FontSize
	if size <= 0 {
		size = text.DefaultFontSize
	}
	if err := r.dc.LoadFontFace(r.fontPath, size); err != nil {
		return
	}
	c := n.Style.TextColor
	r.dc.SetRGBA(float64(c.R), float64(c.G), float64(c.B), float64(c.A)*alpha)
	l := n.Layout
	if l.Width > 0 {
		r.dc.DrawStringWrapped(n.Content, l.X, l.Y, 0, 0, l.Width, lineSpacing, gg.AlignLeft)
	} else {
		r.dc.DrawString(n.Content, l.X, l.Y+size)
	}
}

func (r *Renderer) paintTexture(n *scene.Node) {
	tex, ok := n.Asset.(*assets.Texture)
	if !ok || tex.Width() == 0 || tex.Height() == 0 {
		return
	}
	l := n.Layout
	r.dc.Push()
	r.dc.Translate(l.X, l.Y)
	r.dc.Scale(l.Width/tex.Width(), l.Height/tex.Height())
	r.dc.DrawImage(tex.Image(), 0, 0)
	r.dc.Pop()
}

func (r *Renderer) paintSVG(n *scene.Node, alpha float64) {
	svg, ok := n.Asset.(*assets.SVG)
	if !ok {
		return
	}
	l := n.Layout
	w := int(math.Ceil(l.Width))
	h := int(math.Ceil(l.Height))
	if w <= 0 || h <= 0 {
		return
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon := svg.Icon()
	icon.SetTarget(0, 0, l.Width, l.Height)
	icon.Draw(raster, alpha)
	r.dc.DrawImage(img, int(l.X), int(l.Y))
}
