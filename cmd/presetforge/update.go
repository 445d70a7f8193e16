package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/vladcraftcom/presetforge/pkg/fetch"
	"github.com/vladcraftcom/presetforge/pkg/filesystem"
	"github.com/vladcraftcom/presetforge/pkg/logging"
	"github.com/vladcraftcom/presetforge/pkg/paths"
	"github.com/vladcraftcom/presetforge/pkg/preset"
)

var updateURL string

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: MsgUpdateShort,
	Long:  MsgUpdateLong,
	Args:  cobra.NoArgs,
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateURL, "url", fetch.DefaultArchiveURL, "Archive URL to download presets from")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	log := logging.GetLogger("update")

	provider := paths.NewProvider()
	presetsDir := provider.Resolve()

	var spinner *pterm.SpinnerPrinter
	if stdoutIsTerminal() {
		spinner, _ = pterm.DefaultSpinner.Start("Downloading presets...")
	}

	fetcher := &fetch.Fetcher{}
	err := fetcher.FetchAndExtract(cmd.Context(), presetsDir, updateURL)

	if spinner != nil {
		if err != nil {
			spinner.Fail("Download failed")
		} else {
			spinner.Success("Presets updated")
		}
	}
	if err != nil {
		return err
	}

	// Persist the location so the next run finds the presets without asking
	if err := provider.Save(presetsDir); err != nil {
		log.Warn().Err(err).Msg("Failed to save presets path")
	}

	ids, err := preset.Discover(filesystem.NewOS(), presetsDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Found %d preset(s) in %s\n", len(ids), presetsDir)
	return nil
}
