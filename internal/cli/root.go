// Package cli implements the roster command-line interface.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/owenc21/ootp-roster-editor/pkg/types"
)

// Version is the roster tool version.
const Version = "0.3.0"

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values.
type rootFlags struct {
	configDir string
	dataDir   string
	verbose   bool
	jsonMode  bool
}

// app is the state shared by one command invocation.
type app struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
	log       *zap.Logger
}

// NewRootCmd creates the top-level "roster" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: types.DefaultConfig(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "roster",
		Short: "Edit player contracts in an OOTP roster export",
		Long: "roster loads an OOTP roster export, rebuilds the major/minor league team\n" +
			"hierarchy, lets you rewrite player contracts, and saves the roster back\n" +
			"in the same comma-separated format.",
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory holding the edit journal")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output as JSON")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newEditCmd(a))
	root.AddCommand(newTeamsCmd(a))
	root.AddCommand(newFindCmd(a))
	root.AddCommand(newJournalCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// userErrors are failures caused by the input file, the operator, or the
// configuration rather than the system.
var userErrors = []error{
	types.ErrMalformedHeader,
	types.ErrMissingSentinel,
	types.ErrInvalidTeamID,
	types.ErrOrphanAffiliate,
	types.ErrNonContiguousAffiliate,
	types.ErrSchemaMismatch,
	types.ErrInputClosed,
	types.ErrMajorLeagueEmpty,
	types.ErrLogLevelUnknown,
	errNoInput,
	errNoOutput,
	os.ErrNotExist,
}

func exitCode(err error) int {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return exitUserError
		}
	}
	return exitSysError
}
