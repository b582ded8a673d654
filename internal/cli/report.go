package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/rcliao/arcs-survey/internal/render"
	"github.com/rcliao/arcs-survey/internal/report"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "report [identity]",
		Short: "Recompute the latest report for an identity",
		Long:  "Recompute the report for an identity's latest check-in from stored history, without recording anything new.",
		Args:  cobra.ExactArgs(1),
		Run:   runReport,
	}

	cmd.Flags().String("html", "", "Write a printable HTML report to this path instead of stdout output")

	RootCmd.AddCommand(cmd)
}

func runReport(cmd *cobra.Command, args []string) {
	identity := args[0]
	htmlPath, _ := cmd.Flags().GetString("html")

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
		exitErr("report", fmt.Errorf("no check-ins recorded for %q", identity))
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].CreatedAt.Before(history[j].CreatedAt)
	})
	current := history[len(history)-1]

	rep, err := report.Assemble(s.Scale(), identity, current, history)
	if err != nil {
		exitErr("assemble report", err)
	}

	if htmlPath != "" {
		f, err := os.Create(htmlPath)
		if err != nil {
			exitErr("create html", err)
		}
		defer f.Close()
		if err := render.WriteHTML(f, rep); err != nil {
			exitErr("write html", err)
		}
		fmt.Println(htmlPath)
		return
	}

	printReport(rep)
}
