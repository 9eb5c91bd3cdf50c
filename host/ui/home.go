package ui

import (
	"github.com/mokiat/gog/opt"
	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/layout"
	"github.com/mokiat/lacking/ui/std"
)

var HomeScreen = co.Define[*homeScreenComponent]()

type HomeScreenData struct {
	App *applicationComponent
}

type homeScreenComponent struct {
	co.BaseComponent

	app *applicationComponent

	engine   *game.Engine
	backdrop *backdrop
}

func (c *homeScreenComponent) OnCreate() {
	globalState := co.TypedValue[GlobalState](c.Scope())
	c.engine = globalState.Engine

	componentData := co.GetData[HomeScreenData](c.Properties())
	c.app = componentData.App

	c.backdrop = createBackdrop(c.engine, sceneData.Backdrop)
	c.engine.SetActiveScene(c.backdrop.scene)
	c.engine.ResetDeltaTime()
}

func (c *homeScreenComponent) OnDelete() {
	c.engine.SetActiveScene(nil)
	c.backdrop.Delete()
}

func (c *homeScreenComponent) Render() co.Instance {
	return co.New(std.Element, func() {
		co.WithData(std.ElementData{
			Layout: layout.Anchor(),
		})

		co.WithChild("pane", co.New(std.Container, func() {
			co.WithLayoutData(layout.Data{
				Top:    opt.V(0),
				Bottom: opt.V(0),
				Left:   opt.V(0),
				Width:  opt.V(320),
			})
			co.WithData(std.ContainerData{
				BackgroundColor: opt.V(ui.RGBA(0, 0, 0, 192)),
				Layout:          layout.Anchor(),
			})

			co.WithChild("holder", co.New(std.Element, func() {
				co.WithLayoutData(layout.Data{
					Left:           opt.V(75),
					VerticalCenter: opt.V(0),
				})
				co.WithData(std.ElementData{
					Layout: layout.Vertical(layout.VerticalSettings{
						ContentAlignment: layout.HorizontalAlignmentLeft,
						ContentSpacing:   15,
					}),
				})

				c.withMenuButton("basic-button", "Basic", c.onBasicClicked)
				c.withMenuButton("interactive-button", "Interactive", c.onInteractiveClicked)
				c.withMenuButton("licenses-button", "Licenses", c.onLicensesClicked)
				c.withMenuButton("exit-button", "Exit", c.onExitClicked)
			}))
		}))
	})
}

func (c *homeScreenComponent) withMenuButton(key, text string, onClick func()) {
	co.WithChild(key, co.New(std.Button, func() {
		co.WithData(std.ButtonData{
			Text: text,
		})
		co.WithCallbackData(std.ButtonCallbackData{
			OnClick: onClick,
		})
	}))
}

func (c *homeScreenComponent) onBasicClicked() {
	c.app.SetActiveView(ViewNameBasic)
}

func (c *homeScreenComponent) onInteractiveClicked() {
	c.app.SetActiveView(ViewNameInteractive)
}

func (c *homeScreenComponent) onLicensesClicked() {
	c.app.SetActiveView(ViewNameLicenses)
}

func (c *homeScreenComponent) onExitClicked() {
	co.Window(c.Scope()).Close()
}
