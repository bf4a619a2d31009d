package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/owenc21/ootp-roster-editor/internal/contract"
	"github.com/owenc21/ootp-roster-editor/internal/store"
)

func newEditCmd(a *app) *cobra.Command {
	var (
		in         string
		out        string
		keepHeader bool
	)
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Rewrite player contracts interactively",
		Long: `Edit loads the roster, checks its team hierarchy, and asks for players by
"First Last". Enter the contract length and one amount per guaranteed year;
enter 0 as the name to finish and save. Nothing is saved, and nothing is
added to the edit journal, if the session ends early.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outPath, err := rosterPath(out, a.cfg.Output, errNoOutput)
			if err != nil {
				return err
			}
			keep := a.cfg.KeepHeader
			if cmd.Flags().Changed("keep-header") {
				keep = keepHeader
			}

			s, err := a.loadRoster(in)
			if err != nil {
				return err
			}
			defer s.Close()

			if _, err := a.resolveTeams(s); err != nil {
				return err
			}

			journal, err := a.openJournal()
			if err != nil {
				return err
			}

			sessionID := store.NewID()
			editor := contract.NewEditor(s, cmd.InOrStdin(), cmd.OutOrStdout(),
				contract.WithRecorder(journal),
				contract.WithLogger(a.log),
				contract.WithSessionID(sessionID),
			)
			if err := editor.Run(); err != nil {
				a.log.Error("edit session aborted, roster not saved",
					zap.String("session_id", sessionID),
					zap.Int("applied", editor.Applied()),
					zap.Error(err))
				return fmt.Errorf("edit session: %w", err)
			}

			if err := s.Save(outPath, keep); err != nil {
				return fmt.Errorf("save roster: %w", err)
			}
			if err := editor.Commit(); err != nil {
				return fmt.Errorf("roster saved to %s but journal not updated: %w", outPath, err)
			}
			a.log.Info("roster saved",
				zap.String("path", outPath),
				zap.String("session_id", sessionID),
				zap.Int("applied", editor.Applied()))
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d rows to %s (%d contract(s) changed)\n",
				s.Len(), outPath, editor.Applied())
			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "input roster file (default: config input)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output roster file (default: config output)")
	cmd.Flags().BoolVar(&keepHeader, "keep-header", false, "write the banner and header block to the output")
	return cmd
}
