package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rcliao/arcs-survey/internal/model"
	"github.com/rcliao/arcs-survey/internal/trend"
	"github.com/spf13/cobra"
)

// csvHeader is the stable export column order.
var csvHeader = []string{
	"name", "user_id", "timestamp",
	"attention", "relevance", "confidence", "satisfaction",
	"summary",
}

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all check-ins as CSV",
		Long:  "Export all check-ins as CSV. The summary column holds the trend summary as of each row (computed over that identity's history up to and including it).",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	subs, err := s.ExportAll(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}

	w := csv.NewWriter(os.Stdout)
	w.Write(csvHeader)

	// Rows arrive grouped by identity and ordered by timestamp, so the
	// prefix slice for the running summary is just the rows seen so far
	// for the current identity.
	var prefix []model.Submission
	var curIdentity string
	for _, sub := range subs {
		if sub.IdentityKey() != curIdentity {
			curIdentity = sub.IdentityKey()
			prefix = prefix[:0]
		}
		prefix = append(prefix, sub)

		w.Write([]string{
			sub.Name,
			sub.UserID,
			sub.CreatedAt.Format(time.RFC3339),
			formatScore(sub.Attention),
			formatScore(sub.Relevance),
			formatScore(sub.Confidence),
			formatScore(sub.Satisfaction),
			summaryText(prefix),
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		exitErr("write csv", err)
	}
}

func summaryText(history []model.Submission) string {
	stmts := trend.Summarize(history).Statements
	texts := make([]string, 0, len(stmts))
	for _, st := range stmts {
		texts = append(texts, st.Text)
	}
	return strings.Join(texts, "; ")
}

func formatScore(v float64) string {
	return fmt.Sprintf("%g", v)
}
