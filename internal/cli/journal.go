package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newJournalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "journal",
		Short: "List applied contract edits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := a.openJournal()
			if err != nil {
				return err
			}
			entries, err := j.Entries()
			if err != nil {
				return fmt.Errorf("read journal: %w", err)
			}

			w := cmd.OutOrStdout()
			if a.flags.jsonMode {
				out, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal journal: %w", err)
				}
				fmt.Fprintln(w, string(out))
				return nil
			}
			for _, e := range entries {
				years := make([]string, 0, e.Contract.Length())
				for _, y := range e.Contract.Years[:e.Contract.Length()] {
					years = append(years, fmt.Sprint(y))
				}
				schedule := "minor-league deal"
				if len(years) > 0 {
					schedule = strings.Join(years, "/")
				}
				fmt.Fprintf(w, "%s  %s %s (id %s): %s [%d row(s)]\n",
					e.AppliedAt.Format(time.RFC3339), e.FirstName, e.LastName,
					e.PlayerID, schedule, e.RowsUpdated)
			}
			return nil
		},
	}
}
