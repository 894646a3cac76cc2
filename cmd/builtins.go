package cmd

import (
	"fmt"
	"sort"

	"github.com/josephlewis42/chainsh/commands"
	"github.com/josephlewis42/chainsh/core"
	"github.com/spf13/cobra"
)

// builtinsCmd lists the builtin commands
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin commands of the shell.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var builtins []string

		for _, name := range commands.ListBuiltinCommands() {
			builtins = append(builtins, "forked:"+name)
		}

		for _, name := range core.ListShellBuiltins() {
			builtins = append(builtins, "shell:"+name)
		}

		sort.Strings(builtins)

		for _, v := range builtins {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
