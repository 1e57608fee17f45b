package cmd

import (
	"github.com/atomicstack/tmux-session-manager/internal/app"
	"github.com/atomicstack/tmux-session-manager/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagPreview bool
	flagConfirm bool
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive session menu",
	Long: `Open the fuzzy-filtered session menu.

The menu lists saved and running sessions together. Type to filter,
enter opens the selected session, and ctrl+h shows the full key map.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Menu(menuConfig(flagPreview, flagConfirm))
	},
}

func init() {
	menuCmd.Flags().BoolVarP(&flagPreview, "preview", "p", config.Preview(), "show the layout preview panel")
	menuCmd.Flags().BoolVarP(&flagConfirm, "ask-for-confirmation", "a", config.ConfirmBeforeDelete(), "ask before deleting a saved session")
	rootCmd.AddCommand(menuCmd)
}

func menuConfig(preview, confirm bool) app.Config {
	cfg := appConfig()
	cfg.ShowPreview = preview
	cfg.ConfirmBeforeDelete = confirm
	return cfg
}
