package cmd

import (
	"github.com/atomicstack/tmux-session-manager/internal/app"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [name]",
	Short: "Edit a saved session config",
	Long: `Open the saved config of the named session in the editor. Without
a name the current session's config is edited, which requires running
inside tmux.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return app.Edit(appConfig(), name)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
