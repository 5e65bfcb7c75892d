package layout

import (
	"facet/pkg/scene"
	"facet/pkg/style"
)

// HitTest resolves a point to the topmost handler, mirroring paint
// order: portals are painted after the primary tree, later-declared
// portals after earlier ones, and children after their parents. Returns
// nil when nothing under the point carries a handler.
func HitTest(t *scene.Tree, x, y float64) scene.Handler {
	portals := CollectPortals(t)

	// Later-discovered portals paint later, so they are frontmost.
	// A portal's own descendants are never deferred further: the walk
	// inside a portal is unrestricted.
	for i := len(portals) - 1; i >= 0; i-- {
		if h := hitNodeAll(t, portals[i], x, y); h != nil {
			return h
		}
	}

	portalSet := make(map[scene.NodeID]bool, len(portals))
	for _, id := range portals {
		portalSet[id] = true
	}
	return hitNode(t, t.Root(), x, y, portalSet)
}

// CollectPortals discovers every Portal node in the tree depth-first,
// descending into portal subtrees as well so portals nested inside
// portals are discovered too. The renderer paints portals in this order
// as its final pass.
func CollectPortals(t *scene.Tree) []scene.NodeID {
	var portals []scene.NodeID
	collectPortals(t, t.Root(), &portals)
	return portals
}

func collectPortals(t *scene.Tree, id scene.NodeID, portals *[]scene.NodeID) {
	for child := range t.Children(id) {
		if t.Node(child).Style.Position == style.Portal {
			*portals = append(*portals, child)
		}
		collectPortals(t, child, portals)
	}
}

// hitNode walks the primary tree: the point must lie inside a node's
// rectangle for the node or its descendants to match, portal children
// are skipped (handled separately), and children are tested before the
// node itself because they paint on top.
func hitNode(t *scene.Tree, id scene.NodeID, x, y float64, portals map[scene.NodeID]bool) scene.Handler {
	n := t.Node(id)
	if !n.Layout.Contains(x, y) {
		return nil
	}
	for child := range t.Children(id) {
		if portals[child] {
			continue
		}
		if h := hitNode(t, child, x, y, portals); h != nil {
			return h
		}
	}
	return n.Handler
}

// hitNodeAll tests a node and every descendant without deferring
// anything; used for portal subtrees.
func hitNodeAll(t *scene.Tree, id scene.NodeID, x, y float64) scene.Handler {
	n := t.Node(id)
	if !n.Layout.Contains(x, y) {
		return nil
	}
	for child := range t.Children(id) {
		if h := hitNodeAll(t, child, x, y); h != nil {
			return h
		}
	}
	return n.Handler
}
