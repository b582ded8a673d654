package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rcliao/arcs-survey/internal/model"
)

func printReport(r *model.Report) {
	if formatFlag == "text" {
		printReportText(r)
		return
	}
	b, _ := json.MarshalIndent(r, "", "  ")
	fmt.Println(string(b))
}

func printReportText(r *model.Report) {
	w := os.Stdout

	fmt.Fprintf(w, "Motivation check-in for %s (%s)\n\n",
		r.Identity, r.Current.CreatedAt.Format("2006-01-02 15:04"))

	fmt.Fprint(w, "Scores: ")
	for i, f := range model.Factors {
		if i > 0 {
			fmt.Fprint(w, " | ")
		}
		fmt.Fprintf(w, "%s %g", f.Label(), r.Current.Score(f))
	}
	fmt.Fprint(w, "\n\n")

	for _, a := range r.Advice {
		if a.Question != "" {
			fmt.Fprintf(w, "* %s\n", a.Question)
		}
		fmt.Fprintf(w, "  %s\n", a.Message)
		if a.SelfCheck != "" {
			fmt.Fprintf(w, "  Check yourself: %s\n", a.SelfCheck)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Trend:")
	for _, st := range r.Statements {
		fmt.Fprintf(w, "  %s\n", st.Text)
	}
}
