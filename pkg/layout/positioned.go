package layout

import (
	"facet/pkg/scene"
	"facet/pkg/style"
)

// positionedNode places an Absolute or Portal node against a reference
// rectangle using explicit edge offsets instead of flow order: the
// nearest flow ancestor's content box for Absolute, the viewport for
// Portal. Its children are then partitioned and laid out exactly like a
// flow container's, with this node's resolved rectangle as the new
// reference.
func (e *Engine) positionedNode(t *scene.Tree, id scene.NodeID, refX, refY, refW, refH float64) {
	st := t.Node(id).Style

	iw, ih, iaspect := e.intrinsicSize(t, id, refW)
	w, h := resolveSize(&st, Constraints{MaxW: refW, MaxH: refH}, iw, ih, iaspect)

	// Stretch rule: an unresolved dimension with both opposing edges
	// set spans the reference minus the offsets.
	if w == 0 && st.Left != nil && st.Right != nil {
		w = max0(refW - st.Left.Resolve(refW) - st.Right.Resolve(refW))
	}
	if h == 0 && st.Top != nil && st.Bottom != nil {
		h = max0(refH - st.Top.Resolve(refH) - st.Bottom.Resolve(refH))
	}

	pL := st.Padding.Left.AsPx()
	pR := st.Padding.Right.AsPx()
	pT := st.Padding.Top.AsPx()
	pB := st.Padding.Bottom.AsPx()

	// Flow children are placed at a provisional origin first so the
	// node can grow to fit them before its own position is resolved
	// (right/bottom anchoring needs the final size). One subtree shift
	// per child moves them into place afterwards.
	childC := Constraints{MaxW: max0(w - pL - pR), MaxH: max0(h - pT - pB)}
	var flowChildren []scene.NodeID
	var absChildren []scene.NodeID
	var sizes [][2]float64
	childX, childY := pL, pT
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

	c := Constraints{MaxW: refW, MaxH: refH}
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

	// Position rule: left wins over right, otherwise flush with the
	// reference's near edge. Symmetric vertically.
	x := refX
	if st.Left != nil {
		x = refX + st.Left.Resolve(refW)
	} else if st.Right != nil {
		x = refX + refW - w - st.Right.Resolve(refW)
	}
	y := refY
	if st.Top != nil {
		y = refY + st.Top.Resolve(refH)
	} else if st.Bottom != nil {
		y = refY + refH - h - st.Bottom.Resolve(refH)
	}

	shifts := distribute(&st, sizes, contentW, contentH, gap)
	for i, child := range flowChildren {
		offsetSubtree(t, child, x+shifts[i].dx, y+shifts[i].dy)
	}

	t.Node(id).Layout = scene.Layout{X: x, Y: y, Width: w, Height: h}

	for _, child := range absChildren {
		e.positionedNode(t, child, x+pL, y+pT, contentW, contentH)
	}
}
