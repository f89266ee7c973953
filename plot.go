package forecastcv

import (
	"fmt"
	"io"

	"github.com/arhodes/go-forecastcv/interval"
	"github.com/arhodes/go-forecastcv/timedataset"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// PlotOpts configures the forecast chart.
type PlotOpts struct {
	Title  string
	Alphas []float64
}

// PlotForecast uses the Apache Echarts library to render an html page with
// the observation horizon, the point forecast at the current horizon, and
// one interval band per confidence level. Interval computation failures are
// suppressed here: a forecaster without an error magnitude collaborator
// still gets a point-only chart.
func PlotForecast(f Forecaster, w io.Writer, opt *PlotOpts) error {
	s := f.State()
	if err := s.CheckIsFitted(); err != nil {
		return err
	}

	title := "Forecast"
	alphas := []float64{DefaultAlpha}
	if opt != nil {
		if opt.Title != "" {
			title = opt.Title
		}
		if len(opt.Alphas) > 0 {
			alphas = opt.Alphas
		}
	}

	yPred, err := f.Predict(nil, nil)
	if err != nil {
		return fmt.Errorf("unable to predict for chart, %w", err)
	}

	var intervals []interval.Interval
	var labels []float64
	for _, alpha := range alphas {
		errs, err := f.PredictErrors(alpha)
		if err != nil {
			continue
		}
		intvl, err := interval.Compute(yPred.Y, errs)
		if err != nil {
			continue
		}
		intervals = append(intervals, intvl)
		labels = append(labels, alpha)
	}

	page := components.NewPage()
	page.AddCharts(lineForecast(title, s.ObservationHorizon(), yPred, intervals, labels))
	return page.Render(w)
}

// lineForecast generates an echart line chart of the observed series followed
// by the forecast with its interval bounds.
func lineForecast(title string, oh, yPred *timedataset.TimeDataset, intervals []interval.Interval, alphas []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	t := make([]interface{}, 0, oh.Len()+yPred.Len())
	for _, ts := range oh.T {
		t = append(t, ts)
	}
	for _, ts := range yPred.T {
		t = append(t, ts)
	}

	lineDataObserved := make([]opts.LineData, 0, oh.Len())
	for _, v := range oh.Y {
		lineDataObserved = append(lineDataObserved, opts.LineData{Value: v})
	}

	// pad the forecast series so it lines up after the observed points
	lineDataForecast := make([]opts.LineData, 0, oh.Len()+yPred.Len())
	for i := 0; i < oh.Len(); i++ {
		lineDataForecast = append(lineDataForecast, opts.LineData{Value: "-"})
	}
	for _, v := range yPred.Y {
		lineDataForecast = append(lineDataForecast, opts.LineData{Value: v})
	}

	line = line.SetXAxis(t).
		AddSeries("Observed", lineDataObserved).
		AddSeries("Forecast", lineDataForecast)

	for i, intvl := range intervals {
		lineDataUpper := make([]opts.LineData, 0, oh.Len()+yPred.Len())
		lineDataLower := make([]opts.LineData, 0, oh.Len()+yPred.Len())
		for j := 0; j < oh.Len(); j++ {
			lineDataUpper = append(lineDataUpper, opts.LineData{Value: "-"})
			lineDataLower = append(lineDataLower, opts.LineData{Value: "-"})
		}
		for j := 0; j < len(intvl.Upper); j++ {
			lineDataUpper = append(lineDataUpper, opts.LineData{Value: intvl.Upper[j]})
			lineDataLower = append(lineDataLower, opts.LineData{Value: intvl.Lower[j]})
		}
		conf := (1.0 - alphas[i]) * 100.0
		line = line.
			AddSeries(fmt.Sprintf("Upper %.0f%%", conf), lineDataUpper).
			AddSeries(fmt.Sprintf("Lower %.0f%%", conf), lineDataLower)
	}

	return line
}
