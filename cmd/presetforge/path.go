package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vladcraftcom/presetforge/pkg/paths"
)

var pathCmd = &cobra.Command{
	Use:   "path [directory]",
	Short: MsgPathShort,
	Long:  MsgPathLong,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider := paths.NewProvider()

		if len(args) == 1 {
			dir := paths.SanitizePath(args[0])
			if err := provider.Save(dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Presets directory set to %s\n", dir)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), provider.Resolve())
		return nil
	},
}
