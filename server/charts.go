package server

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/fitdash/fitfile"
	"github.com/fitdash/models"
)

func generateLineChart(data models.ChartData) *charts.Line {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    data.Title,
			Subtitle: data.Subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Rotate: 45,
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:         "Heart Rate (bpm)",
			NameLocation: "middle",
			NameGap:      40,
			Scale:        opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:            opts.Bool(true),
			Trigger:         "axis",
			BackgroundColor: "#f5f5f5",
			BorderColor:     "#ccc",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
			}}),
	)

	// X-axis data
	line.SetXAxis(data.XAxis)

	// Add each series from the data
	for name, values := range data.Series {
		line.AddSeries(name, generateLineItems(values))
	}

	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	return line
}

// generateLineItems converts int slice to LineData slice
func generateLineItems(data []int) []opts.LineData {
	items := make([]opts.LineData, 0)
	for _, v := range data {
		items = append(items, opts.LineData{Value: v})
	}
	return items
}

// generateHistogramChart builds the heart-rate distribution chart with mark
// lines at the mean and quartiles, like the metric overlays on the line chart.
func generateHistogramChart(hist fitfile.Histogram, summary fitfile.Summary) *charts.Bar {
	bar := charts.NewBar()

	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Heart Rate Distribution",
			Subtitle: "Sample count per bpm range",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Heart Rate (bpm)",
			AxisLabel: &opts.AxisLabel{
				Rotate: 45,
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:         "Frequency",
			NameLocation: "middle",
			NameGap:      40,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "shadow",
			},
			BackgroundColor: "rgba(255, 255, 255, 0.9)",
			BorderColor:     "#ccc",
		}),
	)

	bar.SetXAxis(hist.Labels)

	barData := make([]opts.BarData, len(hist.Counts))
	for i, count := range hist.Counts {
		barData[i] = opts.BarData{Value: count}
	}

	bar.AddSeries("Samples", barData).
		SetSeriesOptions(
			charts.WithMarkLineNameXAxisItemOpts(
				markLineAt(hist, "Avg", summary.Mean),
				markLineAt(hist, "Q1", summary.Q1),
				markLineAt(hist, "Median", summary.Median),
				markLineAt(hist, "Q3", summary.Q3),
			),
			charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
				Symbol: []string{"none", "none"},
				Label:  &opts.Label{Show: opts.Bool(true), Formatter: "{b}"},
			}),
		)

	return bar
}

// markLineAt pins a named vertical line to the bin holding the statistic.
func markLineAt(hist fitfile.Histogram, name string, value float64) opts.MarkLineNameXAxisItem {
	label := fmt.Sprintf("%s: %.1f bpm", name, value)
	idx := hist.BinIndex(value)
	return opts.MarkLineNameXAxisItem{Name: label, XAxis: idx}
}

type chartRenderer interface {
	Render(w io.Writer) error
}

// renderChart renders a chart into embeddable HTML.
func renderChart(c chartRenderer) template.HTML {
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		log.Printf("Failed to render chart: %v", err)
		return ""
	}
	return template.HTML(buf.String())
}
