package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/vladcraftcom/presetforge/pkg/create"
	"github.com/vladcraftcom/presetforge/pkg/filesystem"
	"github.com/vladcraftcom/presetforge/pkg/paths"
	"github.com/vladcraftcom/presetforge/pkg/preset"
	"github.com/vladcraftcom/presetforge/pkg/style"
)

var (
	previewName   string
	previewFields []string
)

var previewCmd = &cobra.Command{
	Use:   "preview <preset-id>",
	Short: MsgPreviewShort,
	Long:  MsgPreviewLong,
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewName, "name", "n", "example", "Project name to substitute")
	previewCmd.Flags().StringArrayVarP(&previewFields, "field", "f", nil, "Field value as id=value (repeatable)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	fs := filesystem.NewOS()
	presetsDir := paths.NewProvider().Resolve()

	p, err := preset.Load(fs, presetsDir, args[0])
	if err != nil {
		return err
	}

	fieldValues, err := parseFieldValues(previewFields)
	if err != nil {
		return err
	}

	readme := create.RenderReadme(p.ReadmeTemplate, previewName, fieldValues, p.Fields, time.Now())

	out := cmd.OutOrStdout()
	if !stdoutIsTerminal() {
		fmt.Fprintln(out, readme)
		return nil
	}

	fmt.Fprintln(out, style.Heading(fmt.Sprintf("%s: README preview", p.DisplayName())))

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// Fall back to plain text when the terminal renderer cannot be built
		fmt.Fprintln(out, readme)
		return nil
	}

	rendered, err := renderer.Render(readme)
	if err != nil {
		fmt.Fprintln(out, readme)
		return nil
	}

	fmt.Fprint(out, rendered)
	return nil
}
