package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/owenc21/ootp-roster-editor/internal/store"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the config file and the edit journal",
		Long:  "Create config.yaml in the config directory (if missing) and an empty edit journal in the data directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// config.yaml was written by setup when it was missing.
			j, err := a.openJournal()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config:  %s\njournal: %s\n",
				filepath.Join(a.configDir, configFileExt), j.Path())
			return nil
		},
	}
}

// openJournal opens the edit journal in the resolved data directory.
func (a *app) openJournal() (*store.Journal, error) {
	dataDir, err := a.dataDir()
	if err != nil {
		return nil, err
	}
	j, err := store.OpenJournal(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return j, nil
}
