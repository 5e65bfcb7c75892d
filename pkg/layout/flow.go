package layout

import (
	"facet/pkg/scene"
	"facet/pkg/style"
)

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// intrinsicSize returns a node's natural footprint and intrinsic aspect
// ratio (0 if none). Plain elements have none; text asks the measurer
// with a max-width hint derived from the styled width; assets report
// their natural size.
func (e *Engine) intrinsicSize(t *scene.Tree, id scene.NodeID, refW float64) (w, h, aspect float64) {
	n := t.Node(id)
	switch n.Kind {
	case scene.KindText:
		var maxW float64
		switch n.Style.Width.Kind {
		case style.LengthAuto:
			maxW = refW
		case style.LengthPx:
			maxW = n.Style.Width.Value
		case style.LengthPercent:
			maxW = n.Style.Width.Value / 100.0 * refW
		}
		tw, th := e.measurer.Measure(n.Content, maxW)
		return tw, th, 0
	case scene.KindTexture, scene.KindSVG:
		if n.Asset == nil {
			return 0, 0, 0
		}
		return n.Asset.Width(), n.Asset.Height(), n.Asset.AspectRatio()
	default:
		return 0, 0, 0
	}
}

// resolveSize turns styled width/height into pixels against the
// incoming constraints and reconciles them with the effective aspect
// ratio. An explicit style ratio takes precedence over the intrinsic
// one, and explicit dimensions always take precedence over ratio-derived
// ones. Negative results clamp to zero.
func resolveSize(st *style.Style, c Constraints, iw, ih, iaspect float64) (w, h float64) {
	switch st.Width.Kind {
	case style.LengthPx:
		w = st.Width.Value
	case style.LengthPercent:
		w = st.Width.Value / 100.0 * c.MaxW
	default:
		w = iw
	}
	switch st.Height.Kind {
	case style.LengthPx:
		h = st.Height.Value
	case style.LengthPercent:
		h = st.Height.Value / 100.0 * c.MaxH
	default:
		h = ih
	}
	w, h = max0(w), max0(h)

	ratio := st.AspectRatio
	if ratio == 0 {
		ratio = iaspect
	}
	if ratio != 0 {
		widthAuto := st.Width.IsAuto()
		heightAuto := st.Height.IsAuto()
		switch {
		case widthAuto && !heightAuto && h > 0:
			w = h * ratio
		case heightAuto && !widthAuto && w > 0:
			h = w / ratio
		case w == 0 && h > 0:
			w = h * ratio
		case h == 0 && w > 0:
			h = w / ratio
		}
	}
	return w, h
}

// declaredGap resolves the authored inter-child gap for the container's
// main axis against the immediate incoming constraint. The declared gap
// is a floor: it is reserved as used main-axis space before free space
// is distributed, and the distribution-derived gap is added on top.
func declaredGap(st *style.Style, c Constraints) float64 {
	if st.Direction == style.Row {
		return max0(st.GapX.Resolve(c.MaxW))
	}
	return max0(st.GapY.Resolve(c.MaxH))
}

// childShift is the post-hoc translation applied to one flow child's
// subtree after all children have been placed at Start/Start.
type childShift struct {
	dx, dy float64
}

// distribute computes per-child translations for main-axis distribution
// and cross-axis alignment. sizes are outer (margin-inclusive) child
// sizes in declaration order; gap is the resolved declared gap.
func distribute(st *style.Style, sizes [][2]float64, contentW, contentH, gap float64) []childShift {
	n := len(sizes)
	if n == 0 {
		return nil
	}

	mainSize := contentW
	if st.Direction == style.Column {
		mainSize = contentH
	}
	var mainTotal float64
	for _, sz := range sizes {
		if st.Direction == style.Row {
			mainTotal += sz[0]
		} else {
			mainTotal += sz[1]
		}
	}
	mainTotal += gap * float64(n-1)
	free := max0(mainSize - mainTotal)

	var mainOffset, distGap float64
	switch st.Distribute {
	case style.DistributeEnd:
		mainOffset = free
	case style.DistributeCenter:
		mainOffset = free / 2
	case style.DistributeBetween:
		if n > 1 {
			distGap = free / float64(n-1)
		}
	case style.DistributeAround:
		distGap = free / float64(n)
		mainOffset = distGap / 2
	case style.DistributeEvenly:
		distGap = free / float64(n+1)
		mainOffset = distGap
	}

	shifts := make([]childShift, n)
	step := gap + distGap
	acc := 0.0
	for i, sz := range sizes {
		var cross float64
		if st.Direction == style.Row {
			switch st.Align {
			case style.AlignCenter:
				cross = (contentH - sz[1]) / 2
			case style.AlignEnd:
				cross = contentH - sz[1]
			}
			shifts[i] = childShift{dx: mainOffset + acc, dy: cross}
		} else {
			switch st.Align {
			case style.AlignCenter:
				cross = (contentW - sz[0]) / 2
			case style.AlignEnd:
				cross = contentW - sz[0]
			}
			shifts[i] = childShift{dx: cross, dy: mainOffset + acc}
		}
		acc += step
	}
	return shifts
}

// offsetSubtree translates a node and all its descendants once. Shifting
// instead of re-laying out keeps distribution and alignment a constant
// cost on top of the flow pass.
func offsetSubtree(t *scene.Tree, id scene.NodeID, dx, dy float64) {
	n := t.Node(id)
	n.Layout.X += dx
	n.Layout.Y += dy
	for child := range t.Children(id) {
		offsetSubtree(t, child, dx, dy)
	}
}

// flowNode lays out one flow node against its constraints with the
// cursor at the node's outer top-left, and returns the outer
// (margin-inclusive) size the caller advances its own cursor by.
func (e *Engine) flowNode(t *scene.Tree, id scene.NodeID, c Constraints, cursorX, cursorY float64) (float64, float64) {
	st := t.Node(id).Style

	iw, ih, iaspect := e.intrinsicSize(t, id, c.MaxW)
	w, h := resolveSize(&st, c, iw, ih, iaspect)

	mL := st.Margin.Left.AsPx()
	mR := st.Margin.Right.AsPx()
	mT := st.Margin.Top.AsPx()
	mB := st.Margin.Bottom.AsPx()
	pL := st.Padding.Left.AsPx()
	pR := st.Padding.Right.AsPx()
	pT := st.Padding.Top.AsPx()
	pB := st.Padding.Bottom.AsPx()

	contentX := cursorX + mL + pL
	contentY := cursorY + mT + pT

	// First pass: place flow children sequentially at Start/Start,
	// deferring Absolute children to this node's content box and
	// Portal children to the engine's global queue. Percent children
	// resolve against this node's content box, never an ancestor's.
	childC := Constraints{MaxW: max0(w - pL - pR), MaxH: max0(h - pT - pB)}
	var flowChildren []scene.NodeID
	var absChildren []scene.NodeID
	var sizes [][2]float64
	childX, childY := contentX, contentY
	for child := range t.Children(id) {
		switch t.Node(child).Style.Position {
		case style.Absolute:
			absChildren = append(absChildren, child)
			continue
		case style.Portal:
			e.portals = append(e.portals, child)
			continue
		}
		cw, ch := e.flowNode(t, child, childC, childX, childY)
		flowChildren = append(flowChildren, child)
		sizes = append(sizes, [2]float64{cw, ch})
		if st.Direction == style.Row {
			childX += cw
		} else {
			childY += ch
		}
	}

	gap := declaredGap(&st, c)
	gapTotal := 0.0
	if len(flowChildren) > 1 {
		gapTotal = gap * float64(len(flowChildren)-1)
	}

	var mainTotal, maxCross float64
	for _, sz := range sizes {
		if st.Direction == style.Row {
			mainTotal += sz[0]
			if sz[1] > maxCross {
				maxCross = sz[1]
			}
		} else {
			mainTotal += sz[1]
			if sz[0] > maxCross {
				maxCross = sz[0]
			}
		}
	}

	// Grow to fit when a dimension is still unresolved: children plus
	// declared gaps plus own padding. Zero children resolve to padding
	// alone.
	if st.Direction == style.Row {
		if w == 0 {
			w = mainTotal + gapTotal + pL + pR
		}
		if h == 0 {
			h = maxCross + pT + pB
		}
	} else {
		if w == 0 {
			w = maxCross + pL + pR
		}
		if h == 0 {
			h = mainTotal + gapTotal + pT + pB
		}
	}
	w, h = max0(w), max0(h)

	contentW := max0(w - pL - pR)
	contentH := max0(h - pT - pB)

	for i, shift := range distribute(&st, sizes, contentW, contentH, gap) {
		if shift.dx != 0 || shift.dy != 0 {
			offsetSubtree(t, flowChildren[i], shift.dx, shift.dy)
		}
	}

	x := cursorX + mL
	y := cursorY + mT
	t.Node(id).Layout = scene.Layout{X: x, Y: y, Width: w, Height: h}

	for _, child := range absChildren {
		e.positionedNode(t, child, x+pL, y+pT, contentW, contentH)
	}

	return w + mL + mR, h + mT + mB
}
