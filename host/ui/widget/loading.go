package widget

import (
	"math"
	"time"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/gomath/sprec"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/std"
)

const (
	spinnerDots   = 8
	spinnerRadius = 24
	spinnerPeriod = 1200 * time.Millisecond
)

// Loading shows a label with a spinner made of dots orbiting below it.
var Loading = co.Define[*loadingComponent]()

type loadingComponent struct {
	co.BaseComponent

	elapsedTime time.Duration
	label       []rune

	font     *ui.Font
	fontSize float32

	labelSize sprec.Vec2
}

func (c *loadingComponent) OnCreate() {
	c.elapsedTime = 0
	c.label = []rune("Loading scene")

	c.font = co.OpenFont(c.Scope(), "ui:///roboto-bold.ttf")
	c.fontSize = 48.0

	c.labelSize = sprec.Vec2{
		X: c.font.LineWidth(c.label, c.fontSize),
		Y: c.font.LineHeight(c.fontSize),
	}
}

func (c *loadingComponent) Render() co.Instance {
	height := c.labelSize.Y + 3*spinnerRadius
	return co.New(std.Element, func() {
		co.WithData(std.ElementData{
			Essence:   c,
			IdealSize: opt.V(ui.NewSize(int(c.labelSize.X), int(height))),
		})
		co.WithLayoutData(c.Properties().LayoutData())
		co.WithChildren(c.Properties().Children())
	})
}

func (c *loadingComponent) OnRender(element *ui.Element, canvas *ui.Canvas) {
	c.elapsedTime += canvas.ElapsedTime()

	drawBounds := canvas.DrawBounds(element, false)

	canvas.Push()
	canvas.Translate(drawBounds.Position)
	canvas.FillTextLine(c.label, sprec.Vec2{
		X: (drawBounds.Size.X - c.labelSize.X) / 2,
	}, ui.Typography{
		Font:  c.font,
		Size:  c.fontSize,
		Color: ui.White(),
	})

	center := sprec.Vec2{
		X: drawBounds.Size.X / 2,
		Y: c.labelSize.Y + 1.5*spinnerRadius,
	}
	phase := float64(c.elapsedTime%spinnerPeriod) / float64(spinnerPeriod)
	head := int(phase * spinnerDots)
	for i := range spinnerDots {
		angle := 2 * math.Pi * float64(i) / spinnerDots
		alpha := uint8(255 * (1 - float32((head-i+spinnerDots)%spinnerDots)/spinnerDots))
		canvas.Reset()
		canvas.Circle(sprec.Vec2{
			X: center.X + spinnerRadius*float32(math.Cos(angle)),
			Y: center.Y + spinnerRadius*float32(math.Sin(angle)),
		}, 4)
		canvas.Fill(ui.Fill{
			Color: ui.RGBA(255, 255, 255, alpha),
		})
	}
	canvas.Pop()

	element.Invalidate() // force redraw
}
