package cli

import (
	"fmt"

	"github.com/rcliao/arcs-survey/internal/render"
	"github.com/rcliao/arcs-survey/internal/trend"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chart [identity]",
		Short: "Render an identity's trend chart as PNG",
		Args:  cobra.ExactArgs(1),
		Run:   runChart,
	}

	cmd.Flags().StringP("out", "o", "arcs-trend.png", "Output PNG path")

	RootCmd.AddCommand(cmd)
}

func runChart(cmd *cobra.Command, args []string) {
	identity := args[0]
	out, _ := cmd.Flags().GetString("out")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	history, err := s.Query(cmd.Context(), identity)
	if err != nil {
		exitErr("query history", err)
	}
	if len(history) == 0 {
		exitErr("chart", fmt.Errorf("no check-ins recorded for %q", identity))
	}

	opts := render.DefaultChartOptions()
	opts.Title = identity + "'s motivation over time"

	series := trend.Summarize(history).Series
	if err := render.SaveChartPNG(out, series, s.Scale(), opts); err != nil {
		exitErr("render chart", err)
	}

	fmt.Println(out)
}
