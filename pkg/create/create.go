// Package create materializes a project directory tree from a preset
// descriptor.
//
// Materialization runs as an ordered pipeline of phases: target check,
// project root, declared directories, template copies, empty files, README.
// Directories are always created before any file phase runs, so file writes
// never race their own parents. Every decision is recorded in an ordered
// operation log which is the sole return value on success; a fatal error
// aborts the run and surfaces only the error, leaving the filesystem in
// whatever partial state was reached. Re-running with Refresh is the
// recovery path.
package create

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/vladcraftcom/presetforge/pkg/errors"
	"github.com/vladcraftcom/presetforge/pkg/filesystem"
	"github.com/vladcraftcom/presetforge/pkg/logging"
	"github.com/vladcraftcom/presetforge/pkg/paths"
	"github.com/vladcraftcom/presetforge/pkg/types"
)

// ReadmeFileName is the README generated at the project root
const ReadmeFileName = "README.md"

// Options contains everything a single materialization run needs
type Options struct {
	// TargetRoot is the project directory to create
	TargetRoot string

	// PresetsDir is the root directory containing all preset directories.
	// Template sources are resolved against PresetsDir/<preset id>.
	PresetsDir string

	// Preset is the descriptor to materialize
	Preset *types.Preset

	// ProjectName is substituted into the README. Callers validate it for
	// filesystem safety before invoking Create; Create re-checks defensively.
	ProjectName string

	// FieldValues maps field ids to user-supplied values
	FieldValues map[string]string

	// OptionValues maps option ids to resolved toggles. Carried for forward
	// compatibility; no phase branches on it today.
	OptionValues map[string]bool

	// Force permits materializing into a non-empty target directory
	Force bool

	// Refresh permits overwriting files that already exist at the destination
	Refresh bool

	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS

	// Now is the clock used for the README timestamp (optional, defaults to
	// time.Now). Tests inject a fixed clock here.
	Now func() time.Time
}

// Result holds the outcome of a successful materialization
type Result struct {
	// ProjectPath is the created project root
	ProjectPath string

	// Log is the ordered operation log, one line per filesystem action or
	// decision, terminated by a success marker
	Log []string
}

// run carries the state shared by the phases of one materialization
type run struct {
	opts      Options
	fs        types.FS
	presetDir string
	log       []string
}

func (r *run) logf(format string, args ...interface{}) {
	r.log = append(r.log, fmt.Sprintf(format, args...))
}

// phase is one step of the materialization pipeline
type phase struct {
	name string
	fn   func(*run) error
}

// phases run strictly in order; the directory phase always precedes the file
// phases
var phases = []phase{
	{"check-target", checkTarget},
	{"project-root", createProjectRoot},
	{"directories", createDirectories},
	{"templates", copyTemplates},
	{"empty-files", createEmptyFiles},
	{"readme", generateReadme},
}

// Create materializes opts.Preset into opts.TargetRoot and returns the
// ordered operation log. On any fatal error the log is not returned; the
// filesystem keeps whatever partial state was reached.
func Create(opts Options) (*Result, error) {
	log := logging.GetLogger("create")
	start := time.Now()

	if opts.Preset == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no preset descriptor given")
	}
	if err := paths.ValidateProjectName(opts.ProjectName); err != nil {
		return nil, err
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	r := &run{
		opts:      opts,
		fs:        fs,
		presetDir: filepath.Join(opts.PresetsDir, opts.Preset.ID),
	}

	for _, p := range phases {
		log.Debug().
			Str("phase", p.name).
			Str("preset", opts.Preset.ID).
			Str("target", opts.TargetRoot).
			Msg("Running phase")
		if err := p.fn(r); err != nil {
			log.Error().Err(err).Str("phase", p.name).Msg("Materialization aborted")
			return nil, err
		}
	}

	r.log = append(r.log, "Project created successfully!")
	logging.LogDuration(start, "create")

	return &Result{ProjectPath: opts.TargetRoot, Log: r.log}, nil
}

// checkTarget enforces the target-directory policy: an existing, non-empty
// target is fatal unless Force is set. An existing empty directory is fine.
func checkTarget(r *run) error {
	info, err := r.fs.Stat(r.opts.TargetRoot)
	if err != nil {
		// Nothing there yet; the next phase creates it.
		return nil
	}

	if !info.IsDir() {
		return errors.Newf(errors.ErrTargetNotEmpty,
			"target path %s exists and is not a directory", r.opts.TargetRoot)
	}

	entries, err := r.fs.ReadDir(r.opts.TargetRoot)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate,
			"failed to read project directory %s", r.opts.TargetRoot)
	}

	if len(entries) > 0 && !r.opts.Force {
		return errors.Newf(errors.ErrTargetNotEmpty,
			"project directory %s already exists and is not empty, use --force to override",
			r.opts.TargetRoot).
			WithDetail("path", r.opts.TargetRoot)
	}

	return nil
}

func createProjectRoot(r *run) error {
	r.logf("Creating project directory: %s", r.opts.TargetRoot)
	if err := r.fs.MkdirAll(r.opts.TargetRoot, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create project directory %s", r.opts.TargetRoot)
	}
	return nil
}

// createDirectories creates the declared subdirectories in descriptor order.
// Re-creating an existing directory is not an error and is still logged.
func createDirectories(r *run) error {
	for _, dir := range r.opts.Preset.Directories {
		path := filepath.Join(r.opts.TargetRoot, dir)
		r.logf("Creating subdirectory: %s", path)
		if err := r.fs.MkdirAll(path, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate,
				"failed to create directory %s", path)
		}
	}
	return nil
}

// copyTemplates copies each declared template in descriptor order. Existing
// destinations are skipped unless Refresh is set; a missing source is a
// logged warning, not an error, since descriptors may reference optional
// templates.
func copyTemplates(r *run) error {
	for _, tpl := range r.opts.Preset.Templates {
		source := filepath.Join(r.presetDir, tpl.Source)
		dest := filepath.Join(r.opts.TargetRoot, tpl.Destination)

		if _, err := r.fs.Stat(dest); err == nil && !r.opts.Refresh {
			r.logf("Skipping existing file: %s", dest)
			continue
		}

		if _, err := r.fs.Stat(source); err != nil {
			r.logf("Warning: Template source not found: %s", source)
			continue
		}

		r.logf("Copying template: %s -> %s", source, dest)

		if err := r.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate,
				"failed to create parent directory for %s", dest)
		}

		data, err := r.fs.ReadFile(source)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileCopy,
				"failed to read template %s", source)
		}
		if err := r.fs.WriteFile(dest, data, 0644); err != nil {
			return errors.Wrapf(err, errors.ErrFileCopy,
				"failed to copy template %s to %s", source, dest)
		}
	}
	return nil
}

// createEmptyFiles creates the declared zero-byte files in descriptor order,
// skipping existing ones unless Refresh is set.
func createEmptyFiles(r *run) error {
	for _, name := range r.opts.Preset.EmptyFiles {
		path := filepath.Join(r.opts.TargetRoot, name)

		if _, err := r.fs.Stat(path); err == nil && !r.opts.Refresh {
			r.logf("Skipping existing empty file: %s", path)
			continue
		}

		r.logf("Creating empty file: %s", path)

		if err := r.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate,
				"failed to create parent directory for %s", path)
		}
		if err := r.fs.WriteFile(path, nil, 0644); err != nil {
			return errors.Wrapf(err, errors.ErrFileCreate,
				"failed to create empty file %s", path)
		}
	}
	return nil
}

// generateReadme writes README.md. An existing README is preserved unless
// Refresh is set, mirroring the don't-clobber policy of the template phase.
func generateReadme(r *run) error {
	path := filepath.Join(r.opts.TargetRoot, ReadmeFileName)

	if !r.opts.Refresh {
		if _, err := r.fs.Stat(path); err == nil {
			return nil
		}
	}

	r.logf("Generating README: %s", path)

	content := RenderReadme(
		r.opts.Preset.ReadmeTemplate,
		r.opts.ProjectName,
		r.opts.FieldValues,
		r.opts.Preset.Fields,
		r.opts.Now(),
	)

	if err := r.fs.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"failed to write README %s", path)
	}
	return nil
}
