// Package layout computes concrete rectangles for every node of a scene
// tree from root constraints. Layout is a pure, single-threaded function
// of (tree, constraints): it writes a scene.Layout into every node, and
// identical inputs produce identical output on every call. There is no
// incremental mode; the whole tree is recomputed on every rebuild and on
// viewport resize.
package layout

import "facet/pkg/scene"

// Constraints is the ephemeral input to one layout step. It is passed
// down the recursion and never stored on a node.
type Constraints struct {
	MaxW float64
	MaxH float64
}

// Measurer answers what a text run's natural footprint is. It must be
// synchronous and pure: identical inputs yield identical dimensions.
// maxWidth is the wrapping hint in pixels; values <= 0 mean unbounded.
type Measurer interface {
	Measure(text string, maxWidth float64) (width, height float64)
}

// NoopMeasurer reports zero dimensions for all text. It exists so the
// engine can run headless, in tests and tooling, without font files.
type NoopMeasurer struct{}

func (NoopMeasurer) Measure(string, float64) (float64, float64) {
	return 0, 0
}

// Engine lays out scene trees against a viewport.
type Engine struct {
	viewport struct {
		width  float64
		height float64
	}
	measurer Measurer

	// portals is the single global queue of viewport-anchored nodes,
	// drained only after the whole flow pass. Portals discovered while
	// laying out a portal re-enter the same queue and resolve in a
	// later round.
	portals []scene.NodeID
}

// NewEngine creates an engine for the given viewport. Text measures as
// zero until a real Measurer is supplied.
func NewEngine(viewportWidth, viewportHeight float64) *Engine {
	e := &Engine{measurer: NoopMeasurer{}}
	e.viewport.width = viewportWidth
	e.viewport.height = viewportHeight
	return e
}

// SetMeasurer installs the content measurer. The embedder must always
// supply one; NoopMeasurer is the headless form.
func (e *Engine) SetMeasurer(m Measurer) {
	e.measurer = m
}

// Resize updates the viewport. The caller re-runs Layout afterwards.
func (e *Engine) Resize(width, height float64) {
	e.viewport.width = width
	e.viewport.height = height
}

// Viewport returns the current viewport size.
func (e *Engine) Viewport() (width, height float64) {
	return e.viewport.width, e.viewport.height
}

// Layout computes a rectangle for every node in the tree. The primary
// tree flows from the root constraints; Portal nodes are queued during
// the flow pass and then anchored to the viewport in discovery order.
func (e *Engine) Layout(t *scene.Tree) {
	e.portals = e.portals[:0]
	c := Constraints{MaxW: e.viewport.width, MaxH: e.viewport.height}
	e.flowNode(t, t.Root(), c, 0, 0)

	// Plain index loop: positionedNode may append newly discovered
	// portals while we drain.
	for i := 0; i < len(e.portals); i++ {
		e.positionedNode(t, e.portals[i], 0, 0, e.viewport.width, e.viewport.height)
	}
}
