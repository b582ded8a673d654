package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/rcliao/arcs-survey/internal/model"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history [identity]",
		Short: "List an identity's check-ins, oldest first",
		Args:  cobra.ExactArgs(1),
		Run:   runHistory,
	}

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	identity := args[0]

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	history, err := s.Query(cmd.Context(), identity)
	if err != nil {
		exitErr("history", err)
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].CreatedAt.Before(history[j].CreatedAt)
	})

	if formatFlag == "text" {
		for _, sub := range history {
			fmt.Printf("%s", sub.CreatedAt.Format("2006-01-02 15:04"))
			for _, f := range model.Factors {
				fmt.Printf("  %s %g", f.Label(), sub.Score(f))
			}
			fmt.Println()
		}
		return
	}

	b, _ := json.MarshalIndent(history, "", "  ")
	fmt.Println(string(b))
}
