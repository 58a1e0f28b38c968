// Package editor is the fyne editor for the gain knob.
package editor

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/justyntemme/gainknob/pkg/dial"
	"github.com/justyntemme/gainknob/pkg/dial/raster"
	"github.com/justyntemme/gainknob/pkg/framework/param"
)

// Knob draws the dial for a parameter and edits it with vertical drags,
// scrolling and double tap to reset.
type Knob struct {
	widget.BaseWidget

	Param           *param.Parameter
	Layout          dial.Layout
	Render          dial.RenderFunc
	DragSensitivity float64
	OnChanged       func(float64)

	raster *canvas.Raster
}

// NewKnob creates a knob widget bound to p
func NewKnob(p *param.Parameter, layout dial.Layout, dragSensitivity float64) *Knob {
	k := &Knob{
		Param:           p,
		Layout:          layout,
		Render:          dial.Render,
		DragSensitivity: dragSensitivity,
	}
	k.raster = canvas.NewRaster(k.draw)
	k.ExtendBaseWidget(k)
	return k
}

// draw is the raster generator. Geometry is derived again on every call.
func (k *Knob) draw(w, h int) image.Image {
	s := raster.NewImage(w, h)
	defer s.Close()

	layout := k.Layout
	// Raster pixels can be denser than widget units
	if size := k.Size(); size.Width > 0 && w > 0 {
		layout.PixelRatio = float64(w) / float64(size.Width)
		layout.Radius *= layout.PixelRatio
	}
	k.Render(s, s.Bounds(), k.Param.Get(), k.Param.Range(), layout)
	return s.Image()
}

// CreateRenderer implements fyne.Widget
func (k *Knob) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(k.raster)
}

// MinSize keeps the scale and labels readable
func (k *Knob) MinSize() fyne.Size {
	return fyne.NewSize(150, 200)
}

// SetValue stores v through the parameter, redraws and notifies
func (k *Knob) SetValue(v float64) {
	before := k.Param.Get()
	k.Param.Set(v)
	if k.Param.Get() == before {
		return
	}
	k.Refresh()
	if k.OnChanged != nil {
		k.OnChanged(k.Param.Get())
	}
}

// Dragged changes the value by the vertical drag distance, not the pointer position
func (k *Knob) Dragged(e *fyne.DragEvent) {
	k.SetValue(DragValue(k.Param.Get(), float64(e.Dragged.DY), k.DragSensitivity, k.Param.Range()))
}

// DragEnd implements fyne.Draggable
func (k *Knob) DragEnd() {}

// Scrolled steps the value by ScrollStep
func (k *Knob) Scrolled(e *fyne.ScrollEvent) {
	if e == nil {
		return
	}
	k.SetValue(ScrollValue(k.Param.Get(), float64(e.Scrolled.DY), k.Param.Range()))
}

// DoubleTapped resets to the default value
func (k *Knob) DoubleTapped(*fyne.PointEvent) {
	k.SetValue(k.Param.Default())
}

var (
	_ fyne.Draggable      = (*Knob)(nil)
	_ fyne.Scrollable     = (*Knob)(nil)
	_ fyne.DoubleTappable = (*Knob)(nil)
)
