package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"komoralink.backend/internal/domain/entities"
)

// Renderer draws analytics charts as PNG for the admin/web consoles
type Renderer struct{}

// NewRenderer creates a chart renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderRevenueChart draws daily successful-deposit totals as a time
// series. Returns nil when there is nothing to plot.
func (r *Renderer) RenderRevenueChart(points []entities.RevenuePoint, currencyCode string) ([]byte, error) {
	if len(points) < 2 {
		return nil, nil
	}

	xValues := make([]float64, len(points))
	yValues := make([]float64, len(points))
	for i, p := range points {
		xValues[i] = float64(p.Day.Unix())
		yValues[i] = p.Amount
	}

	graph := chart.Chart{
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f %s", v.(float64), currencyCode)
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Revenue",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render revenue chart: %w", err)
	}
	return buf.Bytes(), nil
}
