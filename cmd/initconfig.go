package cmd

import (
	"fmt"
	"path/filepath"

	"strava-insights/internal/config"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an example config file",
	Long:  `Write an example config to ~/.strava-insights/config.yaml. Does nothing if one already exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.CreateExample(); err != nil {
			return err
		}

		dir, err := config.Dir()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Config file at %s\n", filepath.Join(dir, "config.yaml"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
