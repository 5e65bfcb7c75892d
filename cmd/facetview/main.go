// facetview is a small interactive demo: a facet scene rendered to an
// image inside a fyne window. Taps are routed through the hit tester to
// the scene's handlers; any state change rebuilds and repaints.
package main

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"facet/pkg/layout"
	"facet/pkg/render"
	"facet/pkg/scene"
	"facet/pkg/signal"
	"facet/pkg/style"
)

const (
	viewW = 800
	viewH = 600
)

func main() {
	a := app.New()
	w := a.NewWindow("facet demo")
	w.Resize(fyne.NewSize(viewW, viewH))

	store := signal.NewStore()
	engine := layout.NewEngine(viewW, viewH)
	renderer := render.NewRenderer(viewW, viewH)

	view := newSceneView(image.NewRGBA(image.Rect(0, 0, viewW, viewH)))

	var frame func()
	frame = func() {
		tree := buildScene(store)
		engine.Layout(tree)
		view.img.Image = renderer.Render(tree)
		view.img.Refresh()
		view.onTap = func(x, y float64) {
			if h := layout.HitTest(tree, x, y); h != nil {
				h.HandleEvent(scene.Event{Kind: scene.EventClick, Button: scene.MouseLeft})
			}
			if store.TakeDirty() {
				frame()
			}
		}
	}
	frame()

	w.SetContent(view)
	w.ShowAndRun()
}

// buildScene assembles the demo: a column of counter controls, an
// absolutely positioned badge in the top-right corner, and a portal
// overlay toggled by one of the buttons.
func buildScene(store *signal.Store) *scene.Tree {
	count := signal.Use(store, "count", 0)
	overlay := signal.Use(store, "overlay", false)

	root := scene.Div().
		Size(style.Pc(100)).
		P(style.Px(20)).
		Gap(style.Px(12)).
		Bg(style.RGB(240, 240, 245))

	root.Child(scene.Txt(fmt.Sprintf("count: %d", count)).FontSize(24))

	root.Child(scene.Div().
		Row().
		Gap(style.Px(12)).
		Child(button("-", func() { signal.Update(store, "count", func(n int) int { return n - 1 }) })).
		Child(button("+", func() { signal.Update(store, "count", func(n int) int { return n + 1 }) })).
		Child(button("overlay", func() { signal.Set(store, "overlay", !overlay) })))

	// Corner badge, anchored to the root's content box.
	root.Child(scene.Div().
		Absolute().
		Top(style.Px(0)).
		Right(style.Px(0)).
		Size(style.Px(24)).
		Rounded(12).
		Bg(style.Red))

	if overlay {
		root.Child(scene.PortalDiv().
			Top(style.Px(200)).
			Left(style.Px(200)).
			W(style.Px(280)).
			H(style.Px(120)).
			P(style.Px(16)).
			Bg(style.RGB(40, 40, 60)).
			Rounded(8).
			OnClick(func(scene.Event) scene.EventResult {
				signal.Set(store, "overlay", false)
				return scene.Stop
			}).
			Child(scene.Txt("portal overlay, tap to dismiss").
				TextColor(style.White)))
	}

	return root.Build()
}

func button(label string, onTap func()) *scene.Builder {
	return scene.Div().
		W(style.Px(64)).
		H(style.Px(40)).
		Bg(style.RGB(70, 110, 220)).
		Rounded(6).
		Align(style.AlignCenter).
		Distribute(style.DistributeCenter).
		OnClick(func(scene.Event) scene.EventResult {
			onTap()
			return scene.Stop
		}).
		Child(scene.Txt(label).TextColor(style.White))
}

// sceneView shows the rendered frame and forwards taps with pixel
// coordinates.
type sceneView struct {
	widget.BaseWidget
	img   *canvas.Image
	onTap func(x, y float64)
}

func newSceneView(target image.Image) *sceneView {
	v := &sceneView{img: canvas.NewImageFromImage(target)}
	v.img.FillMode = canvas.ImageFillOriginal
	v.ExtendBaseWidget(v)
	return v
}

func (v *sceneView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.img)
}

func (v *sceneView) Tapped(ev *fyne.PointEvent) {
	if v.onTap != nil {
		v.onTap(float64(ev.Position.X), float64(ev.Position.Y))
	}
}
