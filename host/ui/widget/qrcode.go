package widget

import (
	"log"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	std "github.com/mokiat/lacking/ui/std"
	"github.com/skip2/go-qrcode"
)

var QRCode = co.Define[*qrCodeComponent]()

type QRCodeData struct {
	Text string
	Size float32
}

var defaultQRCodeData = QRCodeData{
	Text: "",
	Size: 128,
}

type qrCodeComponent struct {
	co.BaseComponent

	data    QRCodeData
	qrImage *ui.Image
}

func (c *qrCodeComponent) OnUpsert() {
	data := co.GetOptionalData(c.Properties(), defaultQRCodeData)
	if data == c.data && c.qrImage != nil {
		return
	}
	c.data = data
	c.updateQRImage()
}

func (c *qrCodeComponent) OnDelete() {
	c.releaseImage()
}

func (c *qrCodeComponent) updateQRImage() {
	c.releaseImage()
	if c.data.Text == "" {
		return
	}
	qr, err := qrcode.New(c.data.Text, qrcode.Medium)
	if err != nil {
		log.Printf("ERROR: failed to encode QR code: %v", err)
		return
	}
	ctx := c.Scope().Context()
	img, err := ctx.CreateImage(qr.Image(int(c.data.Size)))
	if err != nil {
		log.Printf("ERROR: failed to create QR image: %v", err)
		return
	}
	c.qrImage = img
}

func (c *qrCodeComponent) releaseImage() {
	if c.qrImage != nil {
		c.qrImage.Destroy()
		c.qrImage = nil
	}
}

func (c *qrCodeComponent) Render() co.Instance {
	padding := ui.Spacing{Left: 5, Right: 5, Top: 5, Bottom: 5}

	return co.New(std.Element, func() {
		co.WithLayoutData(c.Properties().LayoutData())
		co.WithData(std.ElementData{
			Essence:   c,
			Padding:   padding,
			IdealSize: opt.V(ui.NewSize(int(c.data.Size), int(c.data.Size))),
		})
		co.WithChildren(c.Properties().Children())
	})
}

func (c *qrCodeComponent) OnRender(element *ui.Element, canvas *ui.Canvas) {
	drawBounds := canvas.DrawBounds(element, false)
	canvas.Reset()
	canvas.Rectangle(
		drawBounds.Position,
		drawBounds.Size,
	)
	canvas.Fill(ui.Fill{
		Rule:        ui.FillRuleSimple,
		Color:       ui.White(),
		Image:       c.qrImage,
		ImageOffset: drawBounds.Position,
		ImageSize:   drawBounds.Size,
	})
}
