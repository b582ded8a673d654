package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List identities with check-in counts",
		Run:   runUsers,
	}

	RootCmd.AddCommand(cmd)
}

func runUsers(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	rows, err := s.Identities(cmd.Context())
	if err != nil {
		exitErr("list identities", err)
	}

	if formatFlag == "text" {
		for _, r := range rows {
			fmt.Printf("%s  %d check-in(s)  last %s\n",
				r.Identity, r.Count, r.LastAt.Format("2006-01-02"))
		}
		return
	}

	b, _ := json.MarshalIndent(rows, "", "  ")
	fmt.Println(string(b))
}
