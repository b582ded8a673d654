// Package render turns report data into a trend chart image and a printable
// HTML document. Both are thin consumers of the assembled Report; nothing
// here feeds back into advice or trend analysis.
package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/rcliao/arcs-survey/internal/model"
)

// ChartOptions control the rendered trend chart.
type ChartOptions struct {
	Width  int
	Height int
	Title  string
}

// DefaultChartOptions returns the standard chart size.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{Width: 800, Height: 400}
}

// One line color per factor, in model.Factors order.
var factorColors = map[model.Factor][3]float64{
	model.Attention:    {0.86, 0.20, 0.18},
	model.Relevance:    {0.95, 0.61, 0.07},
	model.Confidence:   {0.17, 0.51, 0.85},
	model.Satisfaction: {0.18, 0.64, 0.31},
}

const (
	marginLeft   = 60.0
	marginRight  = 140.0
	marginTop    = 40.0
	marginBottom = 40.0
)

// Chart draws the four factor series as lines over submission order, with
// the y axis spanning the deployment scale. Points are spaced evenly by
// submission index; timestamps label the first and last point.
func Chart(series map[model.Factor][]model.TrendPoint, scale model.Scale, opts ChartOptions) (image.Image, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("no data to chart")
	}

	n := 0
	for _, pts := range series {
		if len(pts) > n {
			n = len(pts)
		}
	}
	if n == 0 {
		return nil, fmt.Errorf("no data to chart")
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	plotW := float64(opts.Width) - marginLeft - marginRight
	plotH := float64(opts.Height) - marginTop - marginBottom

	xAt := func(i int) float64 {
		if n == 1 {
			return marginLeft + plotW/2
		}
		return marginLeft + plotW*float64(i)/float64(n-1)
	}
	yAt := func(v float64) float64 {
		unit := (v - scale.Min) / (scale.Max - scale.Min)
		return marginTop + plotH*(1-unit)
	}

	// Grid and y labels at quarters of the scale.
	dc.SetLineWidth(1)
	for i := 0; i <= 4; i++ {
		v := scale.Min + (scale.Max-scale.Min)*float64(i)/4
		y := yAt(v)
		dc.SetRGB(0.85, 0.85, 0.85)
		dc.DrawLine(marginLeft, y, marginLeft+plotW, y)
		dc.Stroke()
		dc.SetRGB(0.3, 0.3, 0.3)
		dc.DrawStringAnchored(fmt.Sprintf("%g", v), marginLeft-8, y, 1, 0.4)
	}

	// Axes.
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(1.5)
	dc.DrawLine(marginLeft, marginTop, marginLeft, marginTop+plotH)
	dc.DrawLine(marginLeft, marginTop+plotH, marginLeft+plotW, marginTop+plotH)
	dc.Stroke()

	// Series lines and points, legend down the right edge.
	legendY := marginTop
	for _, f := range model.Factors {
		pts := series[f]
		if len(pts) == 0 {
			continue
		}
		c := factorColors[f]
		dc.SetRGB(c[0], c[1], c[2])

		dc.SetLineWidth(2)
		for i, p := range pts {
			if i == 0 {
				dc.MoveTo(xAt(i), yAt(p.Value))
			} else {
				dc.LineTo(xAt(i), yAt(p.Value))
			}
		}
		dc.Stroke()
		for i, p := range pts {
			dc.DrawCircle(xAt(i), yAt(p.Value), 3)
			dc.Fill()
		}

		dc.DrawRectangle(marginLeft+plotW+16, legendY, 12, 12)
		dc.Fill()
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(f.Label(), marginLeft+plotW+34, legendY+6, 0, 0.4)
		legendY += 20
	}

	// First and last timestamps under the x axis.
	var first, last model.TrendPoint
	for _, f := range model.Factors {
		if pts := series[f]; len(pts) > 0 {
			first, last = pts[0], pts[len(pts)-1]
			break
		}
	}
	dc.SetRGB(0.3, 0.3, 0.3)
	dc.DrawStringAnchored(first.Timestamp.Format("2006-01-02"), xAt(0), marginTop+plotH+16, 0, 0.4)
	if n > 1 {
		dc.DrawStringAnchored(last.Timestamp.Format("2006-01-02"), xAt(n-1), marginTop+plotH+16, 1, 0.4)
	}

	if opts.Title != "" {
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.DrawStringAnchored(opts.Title, marginLeft+plotW/2, marginTop/2, 0.5, 0.4)
	}

	return dc.Image(), nil
}

// SaveChartPNG renders the chart and writes it to path.
func SaveChartPNG(path string, series map[model.Factor][]model.TrendPoint, scale model.Scale, opts ChartOptions) error {
	img, err := Chart(series, scale, opts)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}
