package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vladcraftcom/presetforge/pkg/create"
	"github.com/vladcraftcom/presetforge/pkg/errors"
	"github.com/vladcraftcom/presetforge/pkg/filesystem"
	"github.com/vladcraftcom/presetforge/pkg/paths"
	"github.com/vladcraftcom/presetforge/pkg/preset"
	"github.com/vladcraftcom/presetforge/pkg/style"
	"github.com/vladcraftcom/presetforge/pkg/types"
)

var (
	createPresetID string
	createDir      string
	createFields   []string
	createOptions  []string
	createForce    bool
	createRefresh  bool
)

var createCmd = &cobra.Command{
	Use:     "create <project-name>",
	Short:   MsgCreateShort,
	Long:    MsgCreateLong,
	Example: MsgCreateExample,
	Args:    cobra.ExactArgs(1),
	RunE:    runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createPresetID, "preset", "p", "", "Preset id to use (defaults to 'software' when available)")
	createCmd.Flags().StringVarP(&createDir, "dir", "d", "", "Parent directory for the project (defaults to the current directory)")
	createCmd.Flags().StringArrayVarP(&createFields, "field", "f", nil, "Field value as id=value (repeatable)")
	createCmd.Flags().StringArrayVarP(&createOptions, "option", "o", nil, "Option toggle as id=true|false (repeatable)")
	createCmd.Flags().BoolVar(&createForce, "force", false, "Allow creating into a non-empty directory")
	createCmd.Flags().BoolVar(&createRefresh, "refresh", false, "Overwrite files that already exist at the destination")
}

func runCreate(cmd *cobra.Command, args []string) error {
	projectName := args[0]
	if err := paths.ValidateProjectName(projectName); err != nil {
		return err
	}

	fs := filesystem.NewOS()
	presetsDir := paths.NewProvider().Resolve()

	presetID, err := resolvePresetID(fs, presetsDir, createPresetID)
	if err != nil {
		return err
	}

	p, err := preset.Load(fs, presetsDir, presetID)
	if err != nil {
		return err
	}

	fieldValues, err := parseFieldValues(createFields)
	if err != nil {
		return err
	}
	optionValues, err := parseOptionValues(createOptions, p.Options)
	if err != nil {
		return err
	}

	parent := createDir
	if parent == "" {
		parent, err = os.Getwd()
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to determine current directory")
		}
	}

	result, err := create.Create(create.Options{
		TargetRoot:   filepath.Join(parent, projectName),
		PresetsDir:   presetsDir,
		Preset:       p,
		ProjectName:  projectName,
		FieldValues:  fieldValues,
		OptionValues: optionValues,
		Force:        createForce,
		Refresh:      createRefresh,
		FileSystem:   fs,
	})
	if err != nil {
		return err
	}

	renderer := style.NewRenderer(!stdoutIsTerminal())
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderLog(result.Log))
	return nil
}

// resolvePresetID picks the preset to use when none was given: "software"
// when present, otherwise the first discovered preset.
func resolvePresetID(fs types.FS, presetsDir, requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}

	ids, err := preset.Discover(fs, presetsDir)
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", errors.Newf(errors.ErrPresetNotFound,
			"no presets found in %s, run 'presetforge update' first", presetsDir)
	}

	for _, id := range ids {
		if id == "software" {
			return id, nil
		}
	}
	return ids[0], nil
}

// parseFieldValues parses repeated id=value flags
func parseFieldValues(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		id, value, ok := strings.Cut(pair, "=")
		if !ok || id == "" {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"invalid --field %q, expected id=value", pair)
		}
		values[id] = value
	}
	return values, nil
}

// parseOptionValues parses repeated id=bool flags on top of the preset's
// declared defaults
func parseOptionValues(pairs []string, declared []types.Option) (map[string]bool, error) {
	values := make(map[string]bool, len(declared))
	for _, opt := range declared {
		values[opt.ID] = opt.Default
	}

	for _, pair := range pairs {
		id, raw, ok := strings.Cut(pair, "=")
		if !ok || id == "" {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"invalid --option %q, expected id=true|false", pair)
		}
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"invalid --option value %q for %s", raw, id)
		}
		values[id] = enabled
	}
	return values, nil
}
