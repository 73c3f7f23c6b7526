package plotlayout

import "github.com/gogpu/plotlayout/geom"

// Dimensions is the output of the dimension solver: the pixel thickness
// of the title band, the footer band, and every axis slot.
type Dimensions struct {
	title  float64
	footer float64
	axes   [NumAxisPositions][]float64
}

// newDimensions creates zeroed dimensions matching the snapshot's axis
// slot counts.
func newDimensions(data *LayoutData) *Dimensions {
	dims := &Dimensions{}
	for pos := AxisPosition(0); pos < NumAxisPositions; pos++ {
		dims.axes[pos] = make([]float64, data.numAxes(pos))
	}
	return dims
}

// Title returns the solved title band height.
func (d *Dimensions) Title() float64 { return d.title }

// Footer returns the solved footer band height.
func (d *Dimensions) Footer() float64 { return d.footer }

// Axis returns the solved thickness of one axis slot.
func (d *Dimensions) Axis(id AxisID) float64 {
	return d.axes[id.Pos][id.Index]
}

func (d *Dimensions) setAxis(id AxisID, dim float64) {
	d.axes[id.Pos][id.Index] = dim
}

// AxesAt returns the total thickness of the axis stack at a position.
func (d *Dimensions) AxesAt(pos AxisPosition) float64 {
	var dim float64
	for _, v := range d.axes[pos] {
		dim += v
	}
	return dim
}

// VerticalAxes returns the combined left and right stack thickness:
// the horizontal space the vertical scales claim.
func (d *Dimensions) VerticalAxes() float64 {
	return d.AxesAt(AxisLeft) + d.AxesAt(AxisRight)
}

// HorizontalAxes returns the combined top and bottom stack thickness:
// the vertical space the horizontal scales claim.
func (d *Dimensions) HorizontalAxes() float64 {
	return d.AxesAt(AxisTop) + d.AxesAt(AxisBottom)
}

// centered returns labelRect narrowed to the canvas span of rect: the
// horizontal band between the left and right axis stacks.
func (d *Dimensions) centered(rect, labelRect geom.Rect) geom.Rect {
	r := labelRect
	r.X = rect.Left() + d.AxesAt(AxisLeft)
	r.W = rect.Width() - d.VerticalAxes()
	return r
}

// innerRect returns rect minus all four axis stacks: the canvas area.
func (d *Dimensions) innerRect(rect geom.Rect) geom.Rect {
	return geom.Rect{
		X: rect.X + d.AxesAt(AxisLeft),
		Y: rect.Y + d.AxesAt(AxisTop),
		W: rect.W - d.VerticalAxes(),
		H: rect.H - d.HorizontalAxes(),
	}
}
