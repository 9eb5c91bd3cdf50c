package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/layout"
	"github.com/mokiat/lacking/ui/std"
	"github.com/mokiat/lacking/util/async"

	"github.com/nobonobo/mesh-scene/host/resources"
	"github.com/nobonobo/mesh-scene/host/ui/widget"
)

var (
	pendingLoad  *sceneLoad
	loadingError error
)

// --- Intro Screen ---

var IntroScreen = co.Define[*introScreenComponent]()

type IntroScreenData struct {
	App *applicationComponent
}

type introScreenComponent struct {
	co.BaseComponent
}

func (c *introScreenComponent) OnCreate() {
	co.Window(c.Scope()).SetCursorVisible(false)

	globalState := co.TypedValue[GlobalState](c.Scope())
	options := globalState.Options

	componentData := co.GetData[IntroScreenData](c.Properties())
	app := componentData.App

	successView := ViewNameHome
	switch view := initialView(options); view {
	case ViewNameBasic, ViewNameInteractive, ViewNameLicenses:
		successView = view
	}

	pendingLoad = &sceneLoad{
		worker:      co.Window(c.Scope()),
		promise:     LoadSceneData(globalState.ResourceSet, options.ParamsPath),
		successView: successView,
	}

	co.After(c.Scope(), time.Second, func() {
		app.SetActiveView(ViewNameLoading)
	})
}

func (c *introScreenComponent) OnDelete() {
	co.Window(c.Scope()).SetCursorVisible(true)
}

func (c *introScreenComponent) Render() co.Instance {
	return co.New(std.Container, func() {
		co.WithData(std.ContainerData{
			BackgroundColor: opt.V(ui.Black()),
			Layout:          layout.Anchor(),
		})

		co.WithChild("title", co.New(std.Label, func() {
			co.WithLayoutData(layout.Data{
				HorizontalCenter: opt.V(0),
				VerticalCenter:   opt.V(0),
			})
			co.WithData(std.LabelData{
				Font:      co.OpenFont(c.Scope(), "ui:///roboto-bold.ttf"),
				FontSize:  opt.V(float32(64)),
				FontColor: opt.V(ui.White()),
				Text:      "MESH SCENE",
			})
		}))
	})
}

// --- Loading Screen ---

var LoadingScreen = co.Define[*loadingScreenComponent]()

type LoadingScreenData struct {
	App *applicationComponent
}

type loadingScreenComponent struct {
	co.BaseComponent
}

func (c *loadingScreenComponent) OnCreate() {
	componentData := co.GetData[LoadingScreenData](c.Properties())
	pendingLoad.await(componentData.App)
}

func (c *loadingScreenComponent) Render() co.Instance {
	return co.New(std.Container, func() {
		co.WithData(std.ContainerData{
			BackgroundColor: opt.V(ui.Black()),
			Layout:          layout.Anchor(),
		})

		co.WithChild("loading", co.New(widget.Loading, func() {
			co.WithLayoutData(layout.Data{
				HorizontalCenter: opt.V(0),
				VerticalCenter:   opt.V(0),
			})
		}))
	})
}

// sceneLoad tracks the scene data promise started by the intro screen.
// Promise callbacks arrive on a loader goroutine and are moved back onto
// the UI thread through the worker.
type sceneLoad struct {
	worker      game.Worker
	promise     async.Promise[*SceneData]
	successView ViewName
}

func (l *sceneLoad) await(app *applicationComponent) {
	l.promise.OnSuccess(func(data *SceneData) {
		l.worker.Schedule(func() {
			sceneData = data
			app.SetActiveView(l.successView)
		})
	})
	l.promise.OnError(func(err error) {
		l.worker.Schedule(func() {
			slog.Error("Loading failed",
				slog.String("error", err.Error()),
			)
			loadingError = err
			app.SetActiveView(ViewNameError)
		})
	})
}

// --- Error Screen ---

const errorLineWidth = 72

var ErrorScreen = co.Define[*errorScreenComponent]()

type ErrorScreenData struct {
	App *applicationComponent
}

var _ ui.ElementKeyboardHandler = (*errorScreenComponent)(nil)

type errorScreenComponent struct {
	co.BaseComponent

	lines []string
}

func (c *errorScreenComponent) OnCreate() {
	c.lines = append([]string{"The scene could not be loaded. Press ESCAPE to exit.", ""},
		wrapWords("Error: "+loadingError.Error(), errorLineWidth)...)
}

func (c *errorScreenComponent) Render() co.Instance {
	return co.New(std.Element, func() {
		co.WithData(std.ElementData{
			Essence:       c,
			Enabled:       opt.V(true),
			CanAutoFocus:  opt.V(true),
			CreateFocused: true,
			Layout:        layout.Anchor(),
		})

		co.WithChild("background", co.New(std.Container, func() {
			co.WithLayoutData(layout.Data{
				Left:   opt.V(0),
				Right:  opt.V(0),
				Top:    opt.V(0),
				Bottom: opt.V(0),
			})
			co.WithData(std.ContainerData{
				BackgroundColor: opt.V(ui.RGB(0x20, 0x08, 0x08)),
				Layout: layout.Vertical(layout.VerticalSettings{
					ContentAlignment: layout.HorizontalAlignmentCenter,
					ContentSpacing:   6,
				}),
			})

			co.WithChild("title", co.New(std.Label, func() {
				co.WithData(std.LabelData{
					Text:      "ERROR",
					Font:      co.OpenFont(c.Scope(), "ui:///roboto-bold.ttf"),
					FontSize:  opt.V(float32(48)),
					FontColor: opt.V(ui.White()),
				})
			}))

			for i, line := range c.lines {
				co.WithChild(fmt.Sprintf("line-%d", i), co.New(std.Label, func() {
					co.WithData(std.LabelData{
						Text:      line,
						Font:      co.OpenFont(c.Scope(), "ui:///roboto-regular.ttf"),
						FontSize:  opt.V(float32(22)),
						FontColor: opt.V(ui.White()),
					})
				}))
			}
		}))
	})
}

func (c *errorScreenComponent) OnKeyboardEvent(element *ui.Element, event ui.KeyboardEvent) bool {
	if event.Action == ui.KeyboardActionUp && event.Code == ui.KeyCodeEscape {
		co.Window(c.Scope()).Close()
	}
	return true
}

// wrapWords splits text into lines of at most width runes, breaking at
// spaces. A word longer than width gets a line of its own.
func wrapWords(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && len([]rune(line.String()))+1+len([]rune(word)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// --- Licenses Screen ---

var LicensesScreen = co.Define[*licensesScreenComponent]()

type LicensesScreenData struct {
	App *applicationComponent
}

type licensesScreenComponent struct {
	co.BaseComponent
}

func (c *licensesScreenComponent) Render() co.Instance {
	app := co.GetData[LicensesScreenData](c.Properties()).App

	return co.New(std.Container, func() {
		co.WithData(std.ContainerData{
			BackgroundColor: opt.V(ui.RGB(0x11, 0x11, 0x11)),
			Layout:          layout.Anchor(),
		})

		co.WithChild("toolbar", co.New(std.Container, func() {
			co.WithLayoutData(layout.Data{
				Top:    opt.V(0),
				Left:   opt.V(0),
				Right:  opt.V(0),
				Height: opt.V(60),
			})
			co.WithData(std.ContainerData{
				BackgroundColor: opt.V(ui.Black()),
				Padding:         ui.Spacing{Left: 15, Right: 15},
				Layout: layout.Horizontal(layout.HorizontalSettings{
					ContentAlignment: layout.VerticalAlignmentCenter,
					ContentSpacing:   20,
				}),
			})

			co.WithChild("back", co.New(std.Button, func() {
				co.WithData(std.ButtonData{
					Text: "Back",
				})
				co.WithCallbackData(std.ButtonCallbackData{
					OnClick: func() {
						app.SetActiveView(ViewNameHome)
					},
				})
			}))

			co.WithChild("title", co.New(std.Label, func() {
				co.WithData(std.LabelData{
					Font:      co.OpenFont(c.Scope(), "ui:///roboto-bold.ttf"),
					FontSize:  opt.V(float32(28)),
					FontColor: opt.V(ui.White()),
					Text:      "Open-Source Licenses",
				})
			}))
		}))

		co.WithChild("licenses", co.New(std.ScrollPane, func() {
			co.WithLayoutData(layout.Data{
				Top:    opt.V(60),
				Bottom: opt.V(0),
				Left:   opt.V(0),
				Right:  opt.V(0),
			})
			co.WithData(std.ScrollPaneData{
				DisableHorizontal: true,
				CreateFocused:     true,
			})

			co.WithChild("text", co.New(std.Label, func() {
				co.WithLayoutData(layout.Data{
					GrowHorizontally: true,
				})
				co.WithData(std.LabelData{
					Font:      co.OpenFont(c.Scope(), "ui:///roboto-regular.ttf"),
					FontSize:  opt.V(float32(16)),
					FontColor: opt.V(ui.RGB(0xdd, 0xdd, 0xdd)),
					Text:      resources.Licenses,
				})
			}))
		}))
	})
}
