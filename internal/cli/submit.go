package cli

import (
	"fmt"
	"os"

	"github.com/rcliao/arcs-survey/internal/model"
	"github.com/rcliao/arcs-survey/internal/report"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Record a check-in and print the report",
		Long:  "Record a motivation check-in (four factor scores) and print the resulting report with advice and trend summary.",
		Run:   runSubmit,
	}

	cmd.Flags().StringP("name", "n", "", "Name or nickname")
	cmd.Flags().StringP("id", "i", "", "Student number or user ID")
	cmd.Flags().Float64("attention", 0, "Does studying this feel exciting? (required)")
	cmd.Flags().Float64("relevance", 0, "Does this learning feel relevant to you? (required)")
	cmd.Flags().Float64("confidence", 0, "Are you confident you can see it through? (required)")
	cmd.Flags().Float64("satisfaction", 0, "Are you satisfied with your learning so far? (required)")

	cmd.MarkFlagRequired("attention")
	cmd.MarkFlagRequired("relevance")
	cmd.MarkFlagRequired("confidence")
	cmd.MarkFlagRequired("satisfaction")

	RootCmd.AddCommand(cmd)
}

func runSubmit(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	userID, _ := cmd.Flags().GetString("id")
	attention, _ := cmd.Flags().GetFloat64("attention")
	relevance, _ := cmd.Flags().GetFloat64("relevance")
	confidence, _ := cmd.Flags().GetFloat64("confidence")
	satisfaction, _ := cmd.Flags().GetFloat64("satisfaction")

	sub := model.Submission{
		Name:         name,
		UserID:       userID,
		Attention:    attention,
		Relevance:    relevance,
		Confidence:   confidence,
		Satisfaction: satisfaction,
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	// Append first. On append failure no report is produced; the user must
	// never see advice for a check-in that was not saved.
	stored, err := s.Append(cmd.Context(), sub)
	if err != nil {
		exitErr("submit", err)
	}

	// Advice and trend are best-effort: a failed history read degrades to
	// an empty history rather than losing the saved check-in.
	history, err := s.Query(cmd.Context(), stored.IdentityKey())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: reading history: %v\n", err)
		history = nil
	}

	rep, err := report.Assemble(s.Scale(), stored.IdentityKey(), *stored, history)
	if err != nil {
		exitErr("assemble report", err)
	}

	printReport(rep)
}
