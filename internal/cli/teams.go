package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/owenc21/ootp-roster-editor/pkg/types"
)

// Output formats of the teams command.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func newTeamsCmd(a *app) *cobra.Command {
	var (
		in     string
		format string
	)
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Show major league teams and their affiliates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.flags.jsonMode {
				format = formatJSON
			}
			s, err := a.loadRoster(in)
			if err != nil {
				return err
			}
			defer s.Close()

			h, err := a.resolveTeams(s)
			if err != nil {
				return err
			}
			return writeTeams(cmd.OutOrStdout(), h, format)
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "input roster file (default: config input)")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json, or yaml")
	return cmd
}

func writeTeams(w io.Writer, h *types.Hierarchy, format string) error {
	switch format {
	case formatJSON:
		out, err := json.MarshalIndent(h.Teams(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal teams: %w", err)
		}
		fmt.Fprintln(w, string(out))
	case formatYAML:
		out, err := yaml.Marshal(h.Teams())
		if err != nil {
			return fmt.Errorf("marshal teams: %w", err)
		}
		fmt.Fprint(w, string(out))
	case formatText:
		name, _ := h.Name(types.FreeAgentTeamID)
		fmt.Fprintf(w, "%d %s\n", types.FreeAgentTeamID, name)
		for _, id := range h.Majors() {
			name, _ := h.Name(id)
			league, _ := h.League(id)
			fmt.Fprintf(w, "%d %s (%s)\n", id, name, league)
			for _, aff := range h.Affiliates(id) {
				name, _ := h.Name(aff)
				league, _ := h.League(aff)
				fmt.Fprintf(w, "    %d %s (%s)\n", aff, name, league)
			}
		}
	default:
		return fmt.Errorf("unknown format %q (valid: text, json, yaml)", format)
	}
	return nil
}
