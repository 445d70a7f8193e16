package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vladcraftcom/presetforge/pkg/filesystem"
	"github.com/vladcraftcom/presetforge/pkg/paths"
	"github.com/vladcraftcom/presetforge/pkg/preset"
	"github.com/vladcraftcom/presetforge/pkg/style"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: MsgListShort,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fs := filesystem.NewOS()
		presetsDir := paths.NewProvider().Resolve()

		ids, err := preset.Discover(fs, presetsDir)
		if err != nil {
			return err
		}

		names := make(map[string]string, len(ids))
		for _, id := range ids {
			names[id] = preset.DisplayName(fs, presetsDir, id)
		}

		renderer := style.NewRenderer(!stdoutIsTerminal())
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPresetList(ids, names))
		return nil
	},
}
