package cli

import (
	"github.com/spf13/cobra"
)

var importersCmd = &cobra.Command{
	Use:   "importers",
	Short: "List available importers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, closeFn, err := openServices(RunOptions{})
		defer closeFn()
		if err != nil {
			return err
		}

		for _, name := range svc.Import.Importers() {
			cmd.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importersCmd)
}
