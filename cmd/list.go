package cmd

import (
	"fmt"

	"github.com/atomicstack/tmux-session-manager/internal/app"
	"github.com/atomicstack/tmux-session-manager/internal/format/table"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved and running sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := app.Catalog(appConfig())
		if err != nil {
			return err
		}
		if len(catalog) == 0 {
			fmt.Println("No sessions.")
			return nil
		}
		rows := make([][]string, 0, len(catalog))
		for _, entry := range catalog {
			rows = append(rows, []string{entry.Name, entry.Source.String(), entry.ConfigPath})
		}
		for _, line := range table.Format([]string{"NAME", "SOURCE", "CONFIG"}, rows) {
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
