package layout

import (
	"math"
	"testing"

	"facet/pkg/scene"
	"facet/pkg/style"
)

// stubAsset reports a fixed natural size.
type stubAsset struct {
	w, h float64
}

func (a stubAsset) Width() float64  { return a.w }
func (a stubAsset) Height() float64 { return a.h }
func (a stubAsset) AspectRatio() float64 {
	if a.h == 0 {
		return 0
	}
	return a.w / a.h
}

// charMeasurer is a deterministic measurer: 10px per byte, 20px tall,
// no wrapping.
type charMeasurer struct{}

func (charMeasurer) Measure(text string, maxWidth float64) (float64, float64) {
	if text == "" {
		return 0, 0
	}
	return float64(len(text)) * 10, 20
}

func layoutOf(t *scene.Tree, id scene.NodeID) scene.Layout {
	return t.Node(id).Layout
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEngine_ExplicitSize(t *testing.T) {
	tree := scene.Div().W(style.Px(200)).H(style.Px(100)).Build()
	NewEngine(800, 600).Layout(tree)

	l := layoutOf(tree, tree.Root())
	if l.Width != 200 || l.Height != 100 {
		t.Errorf("expected 200x100, got %fx%f", l.Width, l.Height)
	}
}

func TestEngine_VerticalStacking(t *testing.T) {
	tree := scene.Div().Children(
		scene.Div().W(style.Px(100)).H(style.Px(50)),
		scene.Div().W(style.Px(100)).H(style.Px(50)),
		scene.Div().W(style.Px(100)).H(style.Px(50)),
	).Build()
	NewEngine(800, 600).Layout(tree)

	var ys []float64
	for id := range tree.Children(tree.Root()) {
		ys = append(ys, layoutOf(tree, id).Y)
	}
	if len(ys) != 3 || ys[0] != 0 || ys[1] != 50 || ys[2] != 100 {
		t.Errorf("children not stacking: got %v", ys)
	}

	root := layoutOf(tree, tree.Root())
	if root.Width != 100 || root.Height != 150 {
		t.Errorf("root growth: expected 100x150, got %fx%f", root.Width, root.Height)
	}
}

func TestEngine_RowGrowth(t *testing.T) {
	tree := scene.Div().Row().Children(
		scene.Div().W(style.Px(50)).H(style.Px(30)),
		scene.Div().W(style.Px(70)).H(style.Px(40)),
	).Build()
	NewEngine(800, 600).Layout(tree)

	root := layoutOf(tree, tree.Root())
	if root.Width != 120 || root.Height != 40 {
		t.Errorf("expected 120x40, got %fx%f", root.Width, root.Height)
	}
}

func TestEngine_PercentResolvesAgainstParentContentBox(t *testing.T) {
	tree := scene.Div().
		W(style.Px(400)).H(style.Px(300)).P(style.Px(50)).
		Child(scene.Div().W(style.Pc(50)).H(style.Pc(50))).
		Build()
	NewEngine(800, 600).Layout(tree)

	var child scene.NodeID
	for id := range tree.Children(tree.Root()) {
		child = id
	}
	l := layoutOf(tree, child)
	// Content box is 300x200; 50% of it, placed inside the padding.
	if l.Width != 150 || l.Height != 100 {
		t.Errorf("expected 150x100, got %fx%f", l.Width, l.Height)
	}
	if l.X != 50 || l.Y != 50 {
		t.Errorf("expected origin (50,50), got (%f,%f)", l.X, l.Y)
	}
}

func TestEngine_MarginOffsetsAndAdvances(t *testing.T) {
	tree := scene.Div().Children(
		scene.Div().W(style.Px(60)).H(style.Px(50)).M(style.Px(10)),
		scene.Div().W(style.Px(60)).H(style.Px(50)),
	).Build()
	NewEngine(800, 600).Layout(tree)

	var kids []scene.NodeID
	for id := range tree.Children(tree.Root()) {
		kids = append(kids, id)
	}
	first := layoutOf(tree, kids[0])
	second := layoutOf(tree, kids[1])
	if first.X != 10 || first.Y != 10 {
		t.Errorf("margined child: expected (10,10), got (%f,%f)", first.X, first.Y)
	}
	// First child's outer height is 70.
	if second.Y != 70 {
		t.Errorf("second child: expected Y=70, got %f", second.Y)
	}
}

func rowOfThree(d style.Distribute) *scene.Tree {
	return scene.Div().
		Row().W(style.Px(300)).H(style.Px(100)).Distribute(d).
		Children(
			scene.Div().W(style.Px(50)).H(style.Px(50)),
			scene.Div().W(style.Px(50)).H(style.Px(50)),
			scene.Div().W(style.Px(50)).H(style.Px(50)),
		).
		Build()
}

func childXs(tree *scene.Tree) []float64 {
	var xs []float64
	for id := range tree.Children(tree.Root()) {
		xs = append(xs, tree.Node(id).Layout.X)
	}
	return xs
}

func TestEngine_Distribute(t *testing.T) {
	cases := []struct {
		name string
		d    style.Distribute
		want []float64
	}{
		{"start", style.DistributeStart, []float64{0, 50, 100}},
		{"end", style.DistributeEnd, []float64{150, 200, 250}},
		{"center", style.DistributeCenter, []float64{75, 125, 175}},
		{"between", style.DistributeBetween, []float64{0, 125, 250}},
		{"around", style.DistributeAround, []float64{25, 125, 225}},
		{"evenly", style.DistributeEvenly, []float64{37.5, 125, 212.5}},
	}
	for _, tc := range cases {
		tree := rowOfThree(tc.d)
		NewEngine(800, 600).Layout(tree)
		got := childXs(tree)
		for i := range tc.want {
			if !approx(got[i], tc.want[i]) {
				t.Errorf("%s: child %d expected X=%f, got %f", tc.name, i, tc.want[i], got[i])
			}
		}
	}
}

func TestEngine_DistributeShiftsWholeSubtree(t *testing.T) {
	tree := scene.Div().
		Row().W(style.Px(300)).H(style.Px(100)).Distribute(style.DistributeEnd).
		Child(scene.Div().W(style.Px(50)).H(style.Px(50)).
			Child(scene.Div().W(style.Px(20)).H(style.Px(20)))).
		Build()
	NewEngine(800, 600).Layout(tree)

	var child, grand scene.NodeID
	for id := range tree.Children(tree.Root()) {
		child = id
	}
	for id := range tree.Children(child) {
		grand = id
	}
	if x := layoutOf(tree, child).X; x != 250 {
		t.Errorf("child: expected X=250, got %f", x)
	}
	if x := layoutOf(tree, grand).X; x != 250 {
		t.Errorf("grandchild must move with its parent: expected X=250, got %f", x)
	}
}

func TestEngine_AlignCross(t *testing.T) {
	for _, tc := range []struct {
		a    style.Align
		want float64
	}{
		{style.AlignStart, 0},
		{style.AlignCenter, 25},
		{style.AlignEnd, 50},
	} {
		tree := scene.Div().
			Row().W(style.Px(300)).H(style.Px(100)).Align(tc.a).
			Child(scene.Div().W(style.Px(50)).H(style.Px(50))).
			Build()
		NewEngine(800, 600).Layout(tree)
		var child scene.NodeID
		for id := range tree.Children(tree.Root()) {
			child = id
		}
		if y := layoutOf(tree, child).Y; y != tc.want {
			t.Errorf("align %v: expected Y=%f, got %f", tc.a, tc.want, y)
		}
	}
}

func TestEngine_DeclaredGap(t *testing.T) {
	tree := scene.Div().
		Row().W(style.Px(300)).H(style.Px(100)).Gap(style.Px(10)).
		Children(
			scene.Div().W(style.Px(50)).H(style.Px(50)),
			scene.Div().W(style.Px(50)).H(style.Px(50)),
			scene.Div().W(style.Px(50)).H(style.Px(50)),
		).
		Build()
	NewEngine(800, 600).Layout(tree)

	got := childXs(tree)
	want := []float64{0, 60, 120}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("child %d: expected X=%f, got %f", i, want[i], got[i])
		}
	}
}

func TestEngine_DeclaredGapCountsInGrowth(t *testing.T) {
	tree := scene.Div().
		Row().Gap(style.Px(10)).
		Children(
			scene.Div().W(style.Px(50)).H(style.Px(50)),
			scene.Div().W(style.Px(50)).H(style.Px(50)),
			scene.Div().W(style.Px(50)).H(style.Px(50)),
		).
		Build()
	NewEngine(800, 600).Layout(tree)

	if w := layoutOf(tree, tree.Root()).Width; w != 170 {
		t.Errorf("expected grown width 170 (children plus gaps), got %f", w)
	}
}

func TestEngine_DeclaredGapIsAFloorUnderDistribution(t *testing.T) {
	// 3x50 children plus 2x10 declared gap leaves 130 free; Between
	// spreads that on top of the declared gap.
	tree := scene.Div().
		Row().W(style.Px(300)).H(style.Px(100)).
		Gap(style.Px(10)).Distribute(style.DistributeBetween).
		Children(
			scene.Div().W(style.Px(50)).H(style.Px(50)),
			scene.Div().W(style.Px(50)).H(style.Px(50)),
			scene.Div().W(style.Px(50)).H(style.Px(50)),
		).
		Build()
	NewEngine(800, 600).Layout(tree)

	got := childXs(tree)
	want := []float64{0, 125, 250}
	for i := range want {
		if !approx(got[i], want[i]) {
			t.Errorf("child %d: expected X=%f, got %f", i, want[i], got[i])
		}
	}
}

func TestEngine_PercentGapResolvesAgainstIncomingConstraint(t *testing.T) {
	tree := scene.Div().
		W(style.Px(400)).H(style.Px(200)).
		Child(scene.Div().
			Row().W(style.Px(300)).H(style.Px(100)).Gap(style.Pc(10)).
			Children(
				scene.Div().W(style.Px(50)).H(style.Px(50)),
				scene.Div().W(style.Px(50)).H(style.Px(50)),
			)).
		Build()
	NewEngine(800, 600).Layout(tree)

	var inner scene.NodeID
	for id := range tree.Children(tree.Root()) {
		inner = id
	}
	var xs []float64
	for id := range tree.Children(inner) {
		xs = append(xs, layoutOf(tree, id).X)
	}
	// 10% of the 400px constraint handed to the inner container, not of
	// its own 300px width.
	if xs[0] != 0 || xs[1] != 90 {
		t.Errorf("expected X {0, 90}, got %v", xs)
	}
}

func TestEngine_AspectRatioFromHeight(t *testing.T) {
	tree := scene.Div().
		Child(scene.Div().H(style.Px(80)).AspectRatio(16.0 / 9.0)).
		Build()
	NewEngine(800, 600).Layout(tree)

	var child scene.NodeID
	for id := range tree.Children(tree.Root()) {
		child = id
	}
	l := layoutOf(tree, child)
	if !approx(l.Width, 80*16.0/9.0) {
		t.Errorf("expected width %f, got %f", 80*16.0/9.0, l.Width)
	}
	if l.Height != 80 {
		t.Errorf("expected height 80, got %f", l.Height)
	}
}

func TestEngine_ExplicitSizesBeatAspectRatio(t *testing.T) {
	tree := scene.Div().
		Child(scene.Div().W(style.Px(100)).H(style.Px(100)).AspectRatio(2)).
		Build()
	NewEngine(800, 600).Layout(tree)

	var child scene.NodeID
	for id := range tree.Children(tree.Root()) {
		child = id
	}
	l := layoutOf(tree, child)
	if l.Width != 100 || l.Height != 100 {
		t.Errorf("explicit sizes must win: got %fx%f", l.Width, l.Height)
	}
}

func TestEngine_AssetNaturalSize(t *testing.T) {
	tree := scene.Div().
		Child(scene.Img(stubAsset{w: 200, h: 100})).
		Build()
	NewEngine(800, 600).Layout(tree)

	var child scene.NodeID
	for id := range tree.Children(tree.Root()) {
		child = id
	}
	l := layoutOf(tree, child)
	if l.Width != 200 || l.Height != 100 {
		t.Errorf("expected natural 200x100, got %fx%f", l.Width, l.Height)
	}
}

func TestEngine_AssetKeepsRatioWithOneDimension(t *testing.T) {
	tree := scene.Div().
		Child(scene.Img(stubAsset{w: 200, h: 100}).W(style.Px(50))).
		Build()
	NewEngine(800, 600).Layout(tree)

	var child scene.NodeID
	for id := range tree.Children(tree.Root()) {
		child = id
	}
	l := layoutOf(tree, child)
	if l.Width != 50 || l.Height != 25 {
		t.Errorf("expected 50x25 from the intrinsic ratio, got %fx%f", l.Width, l.Height)
	}
}

func TestEngine_TextMeasured(t *testing.T) {
	engine := NewEngine(800, 600)
	engine.SetMeasurer(charMeasurer{})

	tree := scene.Div().Child(scene.Txt("hello")).Build()
	engine.Layout(tree)

	var child scene.NodeID
	for id := range tree.Children(tree.Root()) {
		child = id
	}
	l := layoutOf(tree, child)
	if l.Width != 50 || l.Height != 20 {
		t.Errorf("expected 50x20, got %fx%f", l.Width, l.Height)
	}
}

func TestEngine_NoopMeasurerTextIsZero(t *testing.T) {
	tree := scene.Div().Child(scene.Txt("anything at all")).Build()
	NewEngine(800, 600).Layout(tree)

	var child scene.NodeID
	for id := range tree.Children(tree.Root()) {
		child = id
	}
	l := layoutOf(tree, child)
	if l.Width != 0 || l.Height != 0 {
		t.Errorf("expected zero footprint, got %fx%f", l.Width, l.Height)
	}
}

func TestEngine_NonNegativeSizes(t *testing.T) {
	// Padding exceeds the styled size; nothing may go negative.
	tree := scene.Div().
		W(style.Px(10)).H(style.Px(10)).P(style.Px(20)).
		Child(scene.Div().W(style.Pc(100)).H(style.Pc(100))).
		Build()
	NewEngine(800, 600).Layout(tree)

	var walk func(id scene.NodeID)
	walk = func(id scene.NodeID) {
		l := layoutOf(tree, id)
		if l.Width < 0 || l.Height < 0 {
			t.Errorf("node %v has negative size %fx%f", id, l.Width, l.Height)
		}
		for child := range tree.Children(id) {
			walk(child)
		}
	}
	walk(tree.Root())
}

func TestEngine_GrownParentContainsFlowChildren(t *testing.T) {
	tree := scene.Div().
		P(style.Px(10)).Gap(style.Px(5)).
		Children(
			scene.Div().W(style.Px(80)).H(style.Px(30)).M(style.Px(4)),
			scene.Div().W(style.Px(40)).H(style.Px(60)),
			scene.Div().W(style.Px(120)).H(style.Px(10)),
		).
		Build()
	NewEngine(800, 600).Layout(tree)

	root := layoutOf(tree, tree.Root())
	left, top := root.X+10, root.Y+10
	right, bottom := root.X+root.Width-10, root.Y+root.Height-10
	for id := range tree.Children(tree.Root()) {
		l := layoutOf(tree, id)
		if l.X < left || l.Y < top || l.X+l.Width > right || l.Y+l.Height > bottom {
			t.Errorf("child %v at %v escapes the content box (%f,%f)-(%f,%f)",
				id, l, left, top, right, bottom)
		}
	}
}

func TestEngine_PortalIndependentOfAncestorSize(t *testing.T) {
	build := func(ancestorW float64) *scene.Tree {
		return scene.Div().
			W(style.Px(ancestorW)).H(style.Px(ancestorW)).
			Child(scene.PortalDiv().
				Top(style.Px(30)).Left(style.Px(40)).
				W(style.Px(50)).H(style.Px(50))).
			Build()
	}

	engine := NewEngine(800, 600)
	small := build(100)
	engine.Layout(small)
	big := build(500)
	engine.Layout(big)

	var a, b scene.Layout
	for id := range small.Children(small.Root()) {
		a = layoutOf(small, id)
	}
	for id := range big.Children(big.Root()) {
		b = layoutOf(big, id)
	}
	if a != b {
		t.Errorf("portal layout depends on the ancestor: %v vs %v", a, b)
	}
}

func TestEngine_Deterministic(t *testing.T) {
	build := func() *scene.Tree {
		return scene.Div().
			Row().W(style.Px(300)).H(style.Px(200)).
			Distribute(style.DistributeAround).Align(style.AlignCenter).
			Children(
				scene.Div().W(style.Px(40)).H(style.Px(40)),
				scene.Div().Absolute().Top(style.Px(5)).Left(style.Px(5)).W(style.Px(10)).H(style.Px(10)),
				scene.PortalDiv().Top(style.Px(1)).Left(style.Px(1)).W(style.Px(20)).H(style.Px(20)),
				scene.Div().W(style.Px(60)).H(style.Px(30)),
			).
			Build()
	}

	engine := NewEngine(800, 600)
	first := build()
	engine.Layout(first)
	second := build()
	engine.Layout(second)
	// Re-running on the same tree must also be stable.
	engine.Layout(second)

	var a, b []scene.Layout
	var collect func(t2 *scene.Tree, id scene.NodeID, out *[]scene.Layout)
	collect = func(t2 *scene.Tree, id scene.NodeID, out *[]scene.Layout) {
		*out = append(*out, t2.Node(id).Layout)
		for child := range t2.Children(id) {
			collect(t2, child, out)
		}
	}
	collect(first, first.Root(), &a)
	collect(second, second.Root(), &b)

	if len(a) != len(b) {
		t.Fatalf("node counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("node %d: %v vs %v", i, a[i], b[i])
		}
	}
}
