package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/owenc21/ootp-roster-editor/internal/contract"
)

func newFindCmd(a *app) *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "find <first> <last>",
		Short: "List the roster rows of a player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadRoster(in)
			if err != nil {
				return err
			}
			defer s.Close()

			_, cands, err := contract.Lookup(s, args[0], args[1])
			if err != nil {
				return err
			}
			if a.flags.jsonMode {
				out, err := json.MarshalIndent(cands, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal candidates: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			if len(cands) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No player named %s %s\n", args[0], args[1])
				return nil
			}
			contract.RenderCandidates(cmd.OutOrStdout(), cands)
			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "input roster file (default: config input)")
	return cmd
}
