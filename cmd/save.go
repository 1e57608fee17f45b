package cmd

import (
	"github.com/atomicstack/tmux-session-manager/internal/app"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save [name]",
	Short: "Save a running session's layout",
	Long: `Save the window and pane layout of a running session as a YAML
config. Without a name the current session is saved, which requires
running inside tmux.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return app.Save(appConfig(), name)
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
}
