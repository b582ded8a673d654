// Package cli implements the arcs-survey CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rcliao/arcs-survey/internal/model"
	"github.com/rcliao/arcs-survey/internal/store"
	"github.com/spf13/cobra"
)

var (
	dbPath     string
	formatFlag string
	scaleFlag  int
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "arcs-survey",
	Short: "ARCS motivation self-check",
	Long: "Record motivation check-ins on the four ARCS factors (attention, relevance,\n" +
		"confidence, satisfaction), get advice on low scores, and track trends over\n" +
		"repeated check-ins. SQLite-backed, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $ARCS_SURVEY_DB or ~/.arcs-survey/survey.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().IntVar(&scaleFlag, "scale", 100, "Score scale: 100 (1-100 sliders) or 7 (1-7 Likert)")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("ARCS_SURVEY_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".arcs-survey", "survey.db")
}

func getScale() model.Scale {
	sc, err := model.ScaleByMax(scaleFlag)
	if err != nil {
		exitErr("scale", err)
	}
	return sc
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath(), getScale())
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
