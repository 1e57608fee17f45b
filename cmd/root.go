package cmd

import (
	"os"

	"github.com/atomicstack/tmux-session-manager/internal/app"
	"github.com/atomicstack/tmux-session-manager/internal/config"
	"github.com/atomicstack/tmux-session-manager/internal/logging"
	"github.com/atomicstack/tmux-session-manager/internal/logging/events"
	"github.com/spf13/cobra"
)

var (
	// Global flags.
	flagStorageDir string
	flagSocket     string
	flagEditor     string
	flagLogFile    string
	flagTrace      bool
)

var rootCmd = &cobra.Command{
	Use:   "tmux-session-manager",
	Short: "Save, restore, and switch tmux sessions",
	Long: `tmux-session-manager keeps tmux session layouts as YAML files and
opens them again later, from the command line or from an interactive
fuzzy-filtered menu.

Running it without a subcommand opens the menu.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Configure(flagLogFile)
		logging.SetTraceEnabled(flagTrace)
		events.App.Start(map[string]interface{}{
			"command": cmd.Name(),
			"argv":    os.Args[1:],
			"storage": flagStorageDir,
			"socket":  flagSocket,
			"tty":     collectTTYDetails(),
		})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Menu(menuConfig(config.Preview(), config.ConfirmBeforeDelete()))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logging.Error(err)
		events.App.Exit(1)
		os.Exit(1)
	}
	events.App.Exit(0)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStorageDir, "storage-dir", config.StorageDir(), "directory holding saved session configs")
	rootCmd.PersistentFlags().StringVar(&flagSocket, "socket", config.SocketPath(), "path to the tmux socket (default server when empty)")
	rootCmd.PersistentFlags().StringVar(&flagEditor, "editor", config.Editor(), "editor command for saved configs")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", config.LogFile(), "path to the log file")
	rootCmd.PersistentFlags().BoolVar(&flagTrace, "trace", config.Trace(), "enable verbose JSON trace logging")
}

func appConfig() app.Config {
	return app.Config{
		StorageDir: flagStorageDir,
		Socket:     flagSocket,
		Editor:     flagEditor,
	}
}
