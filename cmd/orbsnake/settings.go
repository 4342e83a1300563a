package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbsnake/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Print the game settings compiled into this build",
	Long: `Print the embedded settings document and check that it is valid.

Settings are fixed at build time. To change the grid, the orb lifespan or the
tick interval, edit internal/config/defaults/orbsnake.yaml and rebuild.`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func runSettings(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, string(config.DefaultYAML()))

	if _, err := config.Parse(config.DefaultYAML()); err != nil {
		return err
	}
	fmt.Fprintln(out, "# settings OK")
	return nil
}
