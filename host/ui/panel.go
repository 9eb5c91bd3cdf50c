package ui

import (
	"fmt"
	"log"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/layout"
	"github.com/mokiat/lacking/ui/std"

	"github.com/nobonobo/mesh-scene/schema"
)

// ParamsPanel is the live control panel of the interactive scene. It never
// keeps its own copy of the values: every change is reported through
// OnChange and the owner passes the new snapshot back in.
var ParamsPanel = co.Define[*paramsPanelComponent]()

type ParamsPanelData struct {
	Params schema.Params
}

type ParamsPanelCallbackData struct {
	OnChange func(schema.Params)
}

type paramsPanelComponent struct {
	co.BaseComponent

	params   schema.Params
	onChange func(schema.Params)

	font *ui.Font
}

func (c *paramsPanelComponent) OnCreate() {
	c.font = co.OpenFont(c.Scope(), "ui:///roboto-regular.ttf")
}

func (c *paramsPanelComponent) OnUpsert() {
	data := co.GetData[ParamsPanelData](c.Properties())
	c.params = data.Params

	callbackData := co.GetCallbackData[ParamsPanelCallbackData](c.Properties())
	c.onChange = callbackData.OnChange
}

func (c *paramsPanelComponent) Render() co.Instance {
	return co.New(std.Container, func() {
		co.WithLayoutData(c.Properties().LayoutData())
		co.WithData(std.ContainerData{
			BackgroundColor: opt.V(ui.RGBA(0, 0, 0, 180)),
			Padding:         ui.Spacing{Left: 15, Right: 15, Top: 10, Bottom: 10},
			Layout: layout.Vertical(layout.VerticalSettings{
				ContentAlignment: layout.HorizontalAlignmentLeft,
				ContentSpacing:   8,
			}),
		})

		c.withColorRow(schema.KeyColor, c.params.Color)
		c.withNumberRow(schema.KeyRadius, c.params.Radius)
		c.withNumberRow(schema.KeyWobbleFactor, c.params.WobbleFactor)
		c.withNumberRow(schema.KeyWobbleSpeed, c.params.WobbleSpeed)
		c.withNumberRow(schema.KeyLightIntensity, c.params.LightIntensity)
		c.withColorRow(schema.KeyLightColor, c.params.LightColor)
	})
}

func (c *paramsPanelComponent) withNumberRow(key schema.Key, value float64) {
	co.WithChild(string(key), co.New(std.Element, func() {
		co.WithData(std.ElementData{
			Layout: layout.Horizontal(layout.HorizontalSettings{
				ContentAlignment: layout.VerticalAlignmentCenter,
				ContentSpacing:   10,
			}),
		})

		co.WithChild("label", co.New(std.Label, func() {
			co.WithLayoutData(layout.Data{
				Width: opt.V(170),
			})
			co.WithData(std.LabelData{
				Font:      c.font,
				FontSize:  opt.V(float32(18)),
				FontColor: opt.V(ui.White()),
				Text:      fmt.Sprintf("%s: %.1f", key, value),
			})
		}))

		co.WithChild("decrease", co.New(std.Button, func() {
			co.WithData(std.ButtonData{
				Text: "-",
			})
			co.WithCallbackData(std.ButtonCallbackData{
				OnClick: func() {
					c.step(key, -1)
				},
			})
		}))

		co.WithChild("increase", co.New(std.Button, func() {
			co.WithData(std.ButtonData{
				Text: "+",
			})
			co.WithCallbackData(std.ButtonCallbackData{
				OnClick: func() {
					c.step(key, 1)
				},
			})
		}))
	}))
}

func (c *paramsPanelComponent) withColorRow(key schema.Key, value string) {
	swatch := ui.White()
	if color, err := schema.ParseColor(value); err == nil {
		r, g, b := color.RGB255()
		swatch = ui.RGB(r, g, b)
	}

	co.WithChild(string(key), co.New(std.Element, func() {
		co.WithData(std.ElementData{
			Layout: layout.Horizontal(layout.HorizontalSettings{
				ContentAlignment: layout.VerticalAlignmentCenter,
				ContentSpacing:   10,
			}),
		})

		co.WithChild("label", co.New(std.Label, func() {
			co.WithLayoutData(layout.Data{
				Width: opt.V(170),
			})
			co.WithData(std.LabelData{
				Font:      c.font,
				FontSize:  opt.V(float32(18)),
				FontColor: opt.V(ui.White()),
				Text:      fmt.Sprintf("%s: %s", key, value),
			})
		}))

		co.WithChild("swatch", co.New(std.Container, func() {
			co.WithLayoutData(layout.Data{
				Width:  opt.V(20),
				Height: opt.V(20),
			})
			co.WithData(std.ContainerData{
				BackgroundColor: opt.V(swatch),
			})
		}))

		co.WithChild("next", co.New(std.Button, func() {
			co.WithData(std.ButtonData{
				Text: "Next",
			})
			co.WithCallbackData(std.ButtonCallbackData{
				OnClick: func() {
					c.cycle(key, value)
				},
			})
		}))
	}))
}

func (c *paramsPanelComponent) step(key schema.Key, count int) {
	params, err := c.params.Step(key, count)
	if err != nil {
		log.Printf("ERROR: failed to change %s: %v", key, err)
		return
	}
	c.notify(params)
}

func (c *paramsPanelComponent) cycle(key schema.Key, current string) {
	params, err := c.params.WithColor(key, schema.NextColor(current))
	if err != nil {
		log.Printf("ERROR: failed to change %s: %v", key, err)
		return
	}
	c.notify(params)
}

func (c *paramsPanelComponent) notify(params schema.Params) {
	if params == c.params || c.onChange == nil {
		return
	}
	c.onChange(params)
}
