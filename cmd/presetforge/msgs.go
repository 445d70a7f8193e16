package main

// Message constants
const (
	MsgRootShort = "Create project directories from downloadable presets"
	MsgRootLong  = `presetforge materializes project directory trees from declarative preset
descriptions: it creates directories, copies template files, creates empty
placeholder files and generates a README with placeholder substitution.

Presets are fetched as a zip archive from a remote repository and merged into
a local presets directory without touching unrelated files.`

	MsgCreateShort = "Create a new project from a preset"
	MsgCreateLong  = `Create a new project directory from a preset.

The project is created under the current directory (or --dir) using the
layout declared by the preset: subdirectories, copied templates, empty
placeholder files and a generated README.md. Existing files are preserved
unless --refresh is given; a non-empty target directory is refused unless
--force is given.`
	MsgCreateExample = `  presetforge create my-app --preset software --field author="Ada Lovelace"
  presetforge create my-app --preset software --refresh
  presetforge create my-book --preset book --dir ~/writing`

	MsgUpdateShort = "Download and update presets from the remote archive"
	MsgUpdateLong  = `Download the presets archive and extract it into the local presets
directory. Presets present in the archive are updated or added; custom
presets and other local files are never deleted.`

	MsgListShort = "List available presets"

	MsgPathShort = "Show or set the presets directory"
	MsgPathLong  = `Show the resolved presets directory, or set it when a path argument is
given. The directory is persisted to the presetforge config file; the
PRESETFORGE_PRESETS_DIR environment variable overrides it for a session.`

	MsgPreviewShort = "Preview the README a preset would generate"
	MsgPreviewLong  = `Render the README a preset would generate, substituting placeholder values,
and display it as formatted markdown.`
)
