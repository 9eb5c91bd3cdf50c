package ui

import (
	"log"
	"time"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/lacking/debug/metric/metricui"
	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/layout"
	"github.com/mokiat/lacking/ui/std"

	"github.com/nobonobo/mesh-scene/render"
	"github.com/nobonobo/mesh-scene/scene"
	"github.com/nobonobo/mesh-scene/schema"
)

var SceneScreen = co.Define[*sceneScreenComponent]()

type SceneScreenData struct {
	App     *applicationComponent
	Variant scene.Variant
}

type sceneScreenComponent struct {
	co.BaseComponent

	app     *applicationComponent
	variant scene.Variant

	engine   *game.Engine
	backdrop *backdrop
	target   *engineTarget

	textFont *ui.Font

	params   schema.Params
	table    *scene.Table
	pointer  *scene.Pointer
	renderer *render.Renderer
	tick     scene.FrameTick

	width  int
	height int

	debugVisible bool
	shareVisible bool
}

var _ ui.ElementRenderHandler = (*sceneScreenComponent)(nil)
var _ ui.ElementMouseHandler = (*sceneScreenComponent)(nil)
var _ ui.ElementKeyboardHandler = (*sceneScreenComponent)(nil)

func (c *sceneScreenComponent) OnCreate() {
	globalState := co.TypedValue[GlobalState](c.Scope())
	c.engine = globalState.Engine

	componentData := co.GetData[SceneScreenData](c.Properties())
	c.app = componentData.App
	c.variant = componentData.Variant

	c.textFont = co.OpenFont(c.Scope(), "ui:///roboto-regular.ttf")

	c.params = sceneData.Params
	table, err := scene.Compose(c.variant, c.params)
	if err != nil {
		log.Printf("ERROR: failed to compose scene: %v", err)
		table = scene.NewTable()
	}
	c.table = table
	c.pointer = scene.NewPointer(c.table)
	c.renderer = render.NewRenderer()
	c.tick = scene.FrameTick{}

	c.backdrop = createBackdrop(c.engine, sceneData.Backdrop)
	c.target = c.backdrop.target(c.engine)
	c.engine.SetActiveScene(c.backdrop.scene)
	c.engine.ResetDeltaTime()
}

func (c *sceneScreenComponent) OnDelete() {
	c.renderer.Release()
	c.target.ResetLines()
	c.engine.SetActiveScene(nil)
	c.backdrop.Delete()
}

func (c *sceneScreenComponent) interactive() bool {
	return c.variant == scene.VariantInteractive
}

func (c *sceneScreenComponent) Render() co.Instance {
	return co.New(std.Element, func() {
		co.WithData(std.ElementData{
			Essence:       c,
			CanAutoFocus:  opt.V(true),
			CreateFocused: true,
			Layout:        layout.Anchor(),
		})

		if c.debugVisible {
			co.WithChild("flamegraph", co.New(metricui.FlameGraph, func() {
				co.WithData(metricui.FlameGraphData{
					UpdateInterval: time.Second,
				})
				co.WithLayoutData(layout.Data{
					Bottom: opt.V(0),
					Left:   opt.V(0),
					Right:  opt.V(0),
				})
			}))
		}

		co.WithChild("toolbar", co.New(std.Element, func() {
			co.WithLayoutData(layout.Data{
				Top:  opt.V(15),
				Left: opt.V(15),
			})
			co.WithData(std.ElementData{
				Layout: layout.Horizontal(layout.HorizontalSettings{
					ContentAlignment: layout.VerticalAlignmentCenter,
					ContentSpacing:   15,
				}),
			})

			co.WithChild("back-button", co.New(std.Button, func() {
				co.WithData(std.ButtonData{
					Text: "Back",
				})
				co.WithCallbackData(std.ButtonCallbackData{
					OnClick: c.onBackClicked,
				})
			}))

			if c.interactive() {
				co.WithChild("share-button", co.New(std.Button, func() {
					co.WithData(std.ButtonData{
						Text: "Share",
					})
					co.WithCallbackData(std.ButtonCallbackData{
						OnClick: c.onShareClicked,
					})
				}))
			}

			co.WithChild("title", co.New(std.Label, func() {
				co.WithData(std.LabelData{
					Font:      c.textFont,
					FontSize:  opt.V(float32(24)),
					FontColor: opt.V(ui.White()),
					Text:      c.title(),
				})
			}))
		}))

		if c.interactive() {
			co.WithChild("params-panel", co.New(ParamsPanel, func() {
				co.WithLayoutData(layout.Data{
					Top:   opt.V(15),
					Right: opt.V(15),
					Width: opt.V(300),
				})
				co.WithData(ParamsPanelData{
					Params: c.params,
				})
				co.WithCallbackData(ParamsPanelCallbackData{
					OnChange: c.onParamsChanged,
				})
			}))
		}

		if c.shareVisible {
			co.WithChild("share-pane", co.New(SharePane, func() {
				co.WithLayoutData(layout.Data{
					Bottom: opt.V(15),
					Right:  opt.V(15),
				})
				co.WithData(SharePaneData{
					Link: ShareLink(c.params),
				})
			}))
		}
	})
}

func (c *sceneScreenComponent) title() string {
	if c.interactive() {
		return "Interactive: hover or click the sphere, drag to orbit, scroll to zoom"
	}
	return "Basic"
}

// OnRender is the frame callback: it advances every object by the frame
// time, then hands the table to the engine scene behind the UI.
func (c *sceneScreenComponent) OnRender(element *ui.Element, canvas *ui.Canvas) {
	drawBounds := canvas.DrawBounds(element, false)
	c.width = int(drawBounds.Size.X)
	c.height = int(drawBounds.Size.Y)

	c.tick = c.tick.Advance(canvas.ElapsedTime().Seconds())
	c.table.Tick(c.tick, c.params)
	c.renderer.Sync(c.target, c.table, c.params)

	element.Invalidate() // force redraw
}

// hits lists the objects under the pointer, nearest first.
func (c *sceneScreenComponent) hits(event ui.MouseEvent) []scene.Handle {
	near, far := c.backdrop.ray(c.width, c.height, event.X, event.Y)
	return c.renderer.HitTest(c.table, near, far)
}

func (c *sceneScreenComponent) OnMouseEvent(element *ui.Element, event ui.MouseEvent) bool {
	if !c.interactive() {
		return false
	}
	x, y := float64(event.X), float64(event.Y)

	switch event.Action {
	case ui.MouseActionMove:
		if dx, dy, ok := c.pointer.Drag(x, y); ok {
			c.renderer.Camera.Orbit(dx, dy)
		}
		c.logPointerError(c.pointer.Move(c.hits(event)))
		return true

	case ui.MouseActionDown:
		if event.Button != ui.MouseButtonLeft {
			return false
		}
		c.pointer.Press(c.hits(event), x, y)
		return true

	case ui.MouseActionUp:
		if event.Button != ui.MouseButtonLeft {
			return false
		}
		c.logPointerError(c.pointer.Release(c.hits(event), x, y))
		return true

	case ui.MouseActionLeave:
		c.logPointerError(c.pointer.Leave())
		return true

	case ui.MouseActionScroll:
		c.renderer.Camera.Zoom(float64(event.ScrollY))
		return true

	default:
		return false
	}
}

func (c *sceneScreenComponent) logPointerError(err error) {
	if err != nil {
		log.Printf("ERROR: pointer dispatch failed: %v", err)
	}
}

func (c *sceneScreenComponent) OnKeyboardEvent(element *ui.Element, event ui.KeyboardEvent) bool {
	switch event.Code {

	case ui.KeyCodeEscape:
		if event.Action == ui.KeyboardActionUp {
			c.onBackClicked()
		}
		return true

	case ui.KeyCodeTab:
		if event.Action == ui.KeyboardActionDown {
			c.debugVisible = !c.debugVisible
			c.Invalidate()
		}
		return true

	default:
		return false
	}
}

func (c *sceneScreenComponent) onParamsChanged(params schema.Params) {
	sceneData.SetParams(params)
	c.params = sceneData.Params
	SyncQuery(c.params.Query())
	c.Invalidate()
}

func (c *sceneScreenComponent) onShareClicked() {
	c.shareVisible = !c.shareVisible
	c.Invalidate()
}

func (c *sceneScreenComponent) onBackClicked() {
	c.app.SetActiveView(ViewNameHome)
}
