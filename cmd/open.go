package cmd

import (
	"github.com/atomicstack/tmux-session-manager/internal/app"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <name>",
	Short: "Open a session by name",
	Long: `Open the named session: attach when it is already running,
otherwise recreate it from its saved config and attach.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Open(appConfig(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
