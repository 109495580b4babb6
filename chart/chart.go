// Package chart renders the history panels of a patient as PNG images.
//
// Each panel plots one or more fields over time, and a dashed reference line
// per field at the value staged for the next reading, so that a new entry can
// be compared with the history before it is saved.
package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"time"

	"github.com/etnz/health"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Size of a single panel image, in pixels.
const (
	PanelWidth  = 480
	PanelHeight = 320
)

// series colors, in the order of the panel fields.
var colors = []drawing.Color{gochart.ColorBlue, gochart.ColorRed}

var referenceColor = gochart.ColorGreen

func lineStyle(col drawing.Color) gochart.Style {
	return gochart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    4,
	}
}

func referenceStyle() gochart.Style {
	return gochart.Style{
		StrokeColor:     referenceColor,
		StrokeWidth:     1,
		StrokeDashArray: []float64{5.0, 5.0},
	}
}

// RenderPanel writes the PNG chart of a panel to w.
//
// A panel without readings renders as a placeholder. A single reading is drawn
// as a flat segment: go-chart needs two distinct x values.
func RenderPanel(w io.Writer, p health.Panel, readings []health.Reading, staged health.Values) error {
	if len(readings) == 0 {
		return png.Encode(w, placeholder(PanelWidth, PanelHeight, p.Title, "no readings yet"))
	}

	var series []gochart.Series
	lo, hi := math.Inf(1), math.Inf(-1)
	track := func(v float64) {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	for i, f := range p.Fields {
		var xs []time.Time
		var ys []float64
		for ts, v := range health.Series(readings, f) {
			xs = append(xs, ts)
			ys = append(ys, v)
			track(v)
		}
		if first, last := span(xs); !last.After(first) {
			xs = append(xs, last.Add(time.Minute))
			ys = append(ys, ys[len(ys)-1])
		}
		series = append(series, gochart.TimeSeries{
			Name:    f.Column(),
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(colors[i%len(colors)]),
		})

		if ref, ok := staged.Float(f); ok {
			track(ref)
			first, last := span(xs)
			series = append(series, gochart.TimeSeries{
				Name:    "Current " + f.Column(),
				XValues: []time.Time{first, last},
				YValues: []float64{ref, ref},
				Style:   referenceStyle(),
			})
		}
	}

	lo, hi = padRange(lo, hi)
	graph := gochart.Chart{
		Title:      p.Title,
		Width:      PanelWidth,
		Height:     PanelHeight,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Name:           "Date",
			ValueFormatter: gochart.TimeValueFormatterWithFormat("01-02 15:04"),
		},
		YAxis: gochart.YAxis{
			Name:  p.Title,
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("cannot render chart %q: %w", p.Title, err)
	}
	return nil
}

// span returns the earliest and latest of ts.
func span(ts []time.Time) (first, last time.Time) {
	first, last = ts[0], ts[0]
	for _, t := range ts[1:] {
		if t.Before(first) {
			first = t
		}
		if t.After(last) {
			last = t
		}
	}
	return first, last
}

// padRange widens [lo, hi] by 10% so that lines do not touch the frame, and
// makes sure the range is never empty.
func padRange(lo, hi float64) (float64, float64) {
	if hi-lo < 1e-9 {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) * 0.1
	return lo - pad, hi + pad
}

// Panels renders every panel of the patient history, in display order.
func Panels(readings []health.Reading, staged health.Values) ([]image.Image, error) {
	var images []image.Image
	for _, p := range health.Panels {
		var buf bytes.Buffer
		if err := RenderPanel(&buf, p, readings, staged); err != nil {
			return nil, err
		}
		img, err := png.Decode(&buf)
		if err != nil {
			return nil, fmt.Errorf("cannot decode chart %q: %w", p.Title, err)
		}
		images = append(images, img)
	}
	return images, nil
}

// Render writes a single PNG with all the panels of the patient history laid
// out two per row under a caption.
func Render(w io.Writer, caption string, readings []health.Reading, staged health.Values) error {
	images, err := Panels(readings, staged)
	if err != nil {
		return err
	}
	return png.Encode(w, Grid(caption, images, health.PanelsPerRow))
}
