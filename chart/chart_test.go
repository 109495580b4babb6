package chart

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/etnz/health"
	"github.com/shopspring/decimal"
)

func readings(n int) []health.Reading {
	var rs []health.Reading
	for i := 0; i < n; i++ {
		rs = append(rs, health.Reading{
			Timestamp:   time.Date(2025, 3, 1+i, 8, 0, 0, 0, time.UTC),
			Systolic:    115 + 3*i,
			Diastolic:   75 + i,
			Temperature: decimal.NewFromFloat(36.5 + 0.1*float64(i)),
			Glucose:     95 + 5*i,
			VitaminD:    20,
		})
	}
	return rs
}

func TestRenderPanel(t *testing.T) {
	staged := health.NewForm().Staged()
	testCases := []struct {
		name     string
		readings []health.Reading
		staged   health.Values
	}{
		{name: "no readings", readings: nil, staged: staged},
		{name: "one reading", readings: readings(1), staged: staged},
		{name: "one reading equal to the staged value", readings: readings(1)[:1], staged: health.Values{health.VitaminD: decimal.NewFromInt(20)}},
		{name: "many readings", readings: readings(12), staged: staged},
		{name: "no staged values", readings: readings(3), staged: nil},
		{name: "same timestamps", readings: append(readings(1), readings(1)...), staged: staged},
	}

	for _, tc := range testCases {
		for _, p := range health.Panels {
			t.Run(tc.name+"/"+p.Title, func(t *testing.T) {
				var buf bytes.Buffer
				if err := RenderPanel(&buf, p, tc.readings, tc.staged); err != nil {
					t.Fatalf("RenderPanel() returned an unexpected error: %v", err)
				}
				img, err := png.Decode(&buf)
				if err != nil {
					t.Fatalf("RenderPanel() did not write a PNG: %v", err)
				}
				if b := img.Bounds(); b.Dx() != PanelWidth || b.Dy() != PanelHeight {
					t.Errorf("RenderPanel() image is %dx%d, want %dx%d", b.Dx(), b.Dy(), PanelWidth, PanelHeight)
				}
			})
		}
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, "Health Tracker - Bob", readings(5), health.NewForm().Staged()); err != nil {
		t.Fatalf("Render() returned an unexpected error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Render() did not write a PNG: %v", err)
	}
	// four panels, two per row.
	wantW, wantH := 2*PanelWidth, captionHeight+2*PanelHeight
	if b := img.Bounds(); b.Dx() != wantW || b.Dy() != wantH {
		t.Errorf("Render() image is %dx%d, want %dx%d", b.Dx(), b.Dy(), wantW, wantH)
	}
}

func TestGrid(t *testing.T) {
	cell := func(w, h int) image.Image { return image.NewRGBA(image.Rect(0, 0, w, h)) }
	testCases := []struct {
		name         string
		images       []image.Image
		perRow       int
		wantW, wantH int
	}{
		{name: "empty", images: nil, perRow: 2, wantW: 1, wantH: captionHeight},
		{name: "one", images: []image.Image{cell(10, 5)}, perRow: 2, wantW: 10, wantH: captionHeight + 5},
		{name: "three", images: []image.Image{cell(10, 5), cell(10, 5), cell(8, 7)}, perRow: 2, wantW: 20, wantH: captionHeight + 14},
		{name: "column", images: []image.Image{cell(10, 5), cell(10, 5)}, perRow: 0, wantW: 10, wantH: captionHeight + 10},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := Grid("caption", tc.images, tc.perRow).Bounds()
			if b.Dx() != tc.wantW || b.Dy() != tc.wantH {
				t.Errorf("Grid() is %dx%d, want %dx%d", b.Dx(), b.Dy(), tc.wantW, tc.wantH)
			}
		})
	}
}
