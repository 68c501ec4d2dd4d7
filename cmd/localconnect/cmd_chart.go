package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/charts"
)

var (
	chartGranularity string
	chartCount       int
	chartTrend       string
	chartMin         float64
	chartMax         float64
)

func init() {
	chartPreviewCmd.Flags().StringVar(&chartGranularity, "granularity", "day", "day, week, month or year")
	chartPreviewCmd.Flags().IntVar(&chartCount, "count", 7, "number of periods")
	chartPreviewCmd.Flags().StringVar(&chartTrend, "trend", "stable", "up, down or stable")
	chartPreviewCmd.Flags().Float64Var(&chartMin, "min", 0, "lower bound")
	chartPreviewCmd.Flags().Float64Var(&chartMax, "max", 1000, "upper bound")
}

// localconnect chart:preview — render a demo series in the terminal,
// handy for eyeballing trend shapes without the dashboard.
var chartPreviewCmd = &cobra.Command{
	Use:   "chart:preview",
	Short: "Print a mock dashboard series",
	RunE: func(cmd *cobra.Command, args []string) error {
		series := charts.MockSeries(
			charts.ParseGranularity(chartGranularity),
			chartCount,
			charts.SeriesOptions{
				Min:   chartMin,
				Max:   chartMax,
				Trend: charts.Trend(chartTrend),
			},
		)

		span := chartMax - chartMin
		if span <= 0 {
			span = 1
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		for {
			p, ok := series.Next()
			if !ok {
				break
			}
			bar := int((p.Value - chartMin) / span * 40)
			if bar < 0 {
				bar = 0
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				p.Label,
				charts.FormatValue(p.Value),
				strings.Repeat("█", bar),
			)
		}
		return w.Flush()
	},
}
