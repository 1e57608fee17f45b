package cmd

import (
	"github.com/atomicstack/tmux-session-manager/internal/app"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved session config",
	Long: `Delete the saved config of the named session. A running session
with the same name keeps running.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Delete(appConfig(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
