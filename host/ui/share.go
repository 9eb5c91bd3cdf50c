package ui

import (
	"github.com/mokiat/gog/opt"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/layout"
	"github.com/mokiat/lacking/ui/std"

	"github.com/nobonobo/mesh-scene/host/ui/widget"
	"github.com/nobonobo/mesh-scene/schema"
)

// ShareLink returns a page link that opens the interactive scene with the
// given parameter values.
func ShareLink(params schema.Params) string {
	return BaseURL() + "?" + params.Query().Encode() + "#" + ViewNameInteractive
}

var SharePane = co.Define[*sharePaneComponent]()

type SharePaneData struct {
	Link string
}

type sharePaneComponent struct {
	co.BaseComponent

	link string
}

func (c *sharePaneComponent) OnUpsert() {
	data := co.GetData[SharePaneData](c.Properties())
	c.link = data.Link
}

func (c *sharePaneComponent) Render() co.Instance {
	return co.New(std.Container, func() {
		co.WithLayoutData(c.Properties().LayoutData())
		co.WithData(std.ContainerData{
			BackgroundColor: opt.V(ui.RGBA(0, 0, 0, 180)),
			Padding:         ui.Spacing{Left: 15, Right: 15, Top: 15, Bottom: 15},
			Layout: layout.Vertical(layout.VerticalSettings{
				ContentAlignment: layout.HorizontalAlignmentCenter,
				ContentSpacing:   10,
			}),
		})

		co.WithChild("qrcode", co.New(widget.QRCode, func() {
			co.WithData(widget.QRCodeData{
				Text: c.link,
				Size: 192,
			})
		}))

		co.WithChild("open-button", co.New(std.Button, func() {
			co.WithData(std.ButtonData{
				Text: "Open in browser",
			})
			co.WithCallbackData(std.ButtonCallbackData{
				OnClick: func() {
					URLOpen(c.link)
				},
			})
		}))
	})
}
