package plotlayout

import (
	"testing"

	"github.com/gogpu/plotlayout/geom"
)

func TestCaptureTickOffset(t *testing.T) {
	scales := NewScaleSet()
	scales.Add(AxisBottom, &FixedScale{
		Dim: 30, BaselineMargin: 3, Ticks: true, TickLength: 7,
	})
	scales.Add(AxisLeft, &FixedScale{Dim: 40, BaselineMargin: 2})

	data := captureLayoutData(Sources{Scales: scales}, geom.NewRect(0, 0, 800, 600))

	// Margin plus tick length of the first visible axis.
	if got := data.tickOffset[AxisBottom]; got != 10 {
		t.Errorf("bottom tick offset = %v, want 10", got)
	}
	// No ticks: margin only.
	if got := data.tickOffset[AxisLeft]; got != 2 {
		t.Errorf("left tick offset = %v, want 2", got)
	}
	if got := data.tickOffset[AxisTop]; got != 0 {
		t.Errorf("top tick offset = %v, want 0", got)
	}
}

func TestCaptureSkipsHiddenAxes(t *testing.T) {
	scales := NewScaleSet()
	scales.Add(AxisLeft, &FixedScale{Hidden: true, Dim: 40, BaselineMargin: 9})
	scales.Add(AxisLeft, &FixedScale{Dim: 30, BaselineMargin: 2})

	data := captureLayoutData(Sources{Scales: scales}, geom.NewRect(0, 0, 800, 600))

	if data.numVisible[AxisLeft] != 1 {
		t.Errorf("numVisible = %d, want 1", data.numVisible[AxisLeft])
	}
	if data.axisData(Axis(AxisLeft, 0)).isVisible {
		t.Error("hidden slot captured as visible")
	}
	if !data.axisData(Axis(AxisLeft, 1)).isVisible {
		t.Error("visible slot not captured")
	}
	// The tick offset comes from the first visible slot, not slot 0.
	if got := data.tickOffset[AxisLeft]; got != 2 {
		t.Errorf("tick offset = %v, want 2 (first visible axis)", got)
	}
}

func TestCaptureLegendHint(t *testing.T) {
	rect := geom.NewRect(0, 0, 300, 200)

	t.Run("hint narrower than plot", func(t *testing.T) {
		data := captureLayoutData(Sources{
			Legend: &FixedLegend{Hint: geom.Size{W: 100, H: 50}},
		}, rect)
		if data.legend.hint != (geom.Size{W: 100, H: 50}) {
			t.Errorf("hint = %+v, want {100 50}", data.legend.hint)
		}
	})

	t.Run("hint wider than plot", func(t *testing.T) {
		data := captureLayoutData(Sources{
			Legend: &FixedLegend{Hint: geom.Size{W: 500, H: 50}},
		}, rect)
		if data.legend.hint.W != 300 {
			t.Errorf("hint width = %v, want clipped to 300", data.legend.hint.W)
		}
	})

	t.Run("content taller than plot adds scrollbar", func(t *testing.T) {
		data := captureLayoutData(Sources{
			Legend: &FixedLegend{Hint: geom.Size{W: 100, H: 500}, HScroll: 16},
		}, rect)
		if data.legend.hint.W != 116 {
			t.Errorf("hint width = %v, want 116 (scrollbar added)", data.legend.hint.W)
		}
	})

	t.Run("height from wrapping", func(t *testing.T) {
		data := captureLayoutData(Sources{
			Legend: &FixedLegend{
				Hint:   geom.Size{W: 100, H: 50},
				Height: func(w float64) float64 { return 75 },
			},
		}, rect)
		if data.legend.hint.H != 75 {
			t.Errorf("hint height = %v, want 75 (height-for-width)", data.legend.hint.H)
		}
	})
}

func TestHasSymmetricYAxes(t *testing.T) {
	sym := NewScaleSet()
	sym.Add(AxisLeft, &FixedScale{Dim: 40})
	sym.Add(AxisRight, &FixedScale{Dim: 40})

	data := captureLayoutData(Sources{Scales: sym}, geom.NewRect(0, 0, 100, 100))
	if !data.hasSymmetricYAxes() {
		t.Error("one left, one right: want symmetric")
	}

	asym := NewScaleSet()
	asym.Add(AxisLeft, &FixedScale{Dim: 40})
	asym.Add(AxisRight, &FixedScale{Dim: 40, Hidden: true})

	data = captureLayoutData(Sources{Scales: asym}, geom.NewRect(0, 0, 100, 100))
	if data.hasSymmetricYAxes() {
		t.Error("hidden right axis: want asymmetric")
	}

	none := captureLayoutData(Sources{}, geom.NewRect(0, 0, 100, 100))
	if !none.hasSymmetricYAxes() {
		t.Error("no axes at all: want symmetric")
	}
}
