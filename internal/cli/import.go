package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rcliao/arcs-survey/internal/model"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import check-ins from CSV",
		Long:  "Import check-ins from CSV (stdin or file). Expects the column order produced by export; the summary column is ignored and recomputed on demand.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			exitErr("open file", err)
		}
		defer f.Close()
		in = f
	}

	r := csv.NewReader(in)
	records, err := r.ReadAll()
	if err != nil {
		exitErr("parse csv", err)
	}
	if len(records) > 0 && records[0][0] == "name" {
		records = records[1:] // header row
	}

	var subs []model.Submission
	for i, rec := range records {
		sub, err := parseCSVRow(rec)
		if err != nil {
			exitErr("import", fmt.Errorf("row %d: %w", i+1, err))
		}
		subs = append(subs, sub)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	imported, err := s.Import(cmd.Context(), subs)
	if err != nil {
		exitErr("import", err)
	}

	fmt.Printf(`{"ok":true,"imported":%d}`+"\n", imported)
}

func parseCSVRow(rec []string) (model.Submission, error) {
	var sub model.Submission
	if len(rec) < 7 {
		return sub, fmt.Errorf("expected at least 7 columns, got %d", len(rec))
	}

	sub.Name = rec[0]
	sub.UserID = rec[1]

	ts, err := time.Parse(time.RFC3339, rec[2])
	if err != nil {
		return sub, fmt.Errorf("timestamp: %w", err)
	}
	sub.CreatedAt = ts

	for i, f := range model.Factors {
		v, err := strconv.ParseFloat(rec[3+i], 64)
		if err != nil {
			return sub, fmt.Errorf("%s: %w", f, err)
		}
		sub.SetScore(f, v)
	}
	return sub, nil
}
