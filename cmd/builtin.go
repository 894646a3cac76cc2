package cmd

import (
	"os"

	"github.com/josephlewis42/chainsh/commands"
	"github.com/josephlewis42/chainsh/core"
	"github.com/josephlewis42/chainsh/core/vos"
	"github.com/spf13/cobra"
)

// builtinCmd is started by the shell to run a forked builtin in a child
// process.
var builtinCmd = &cobra.Command{
	Use:                core.BuiltinSubcommand + " NAME [ARG]...",
	Short:              "Run a single builtin and exit with its status.",
	Hidden:             true,
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(commands.Main(vos.NewHostOS(vos.NewHostIO()), args))
	},
}

func init() {
	rootCmd.AddCommand(builtinCmd)
}
