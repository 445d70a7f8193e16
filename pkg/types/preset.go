package types

// Field kinds accepted in a preset descriptor.
const (
	FieldText   = "text"
	FieldSelect = "select"
)

// Preset describes one project archetype: the directory layout, file
// templates, empty placeholder files and README skeleton that materialization
// turns into an actual project tree. It is loaded from the preset's
// files_config.json and is immutable once loaded.
type Preset struct {
	// ID is the preset's stable slug. It must equal the name of the
	// directory the descriptor was loaded from.
	ID string `json:"preset_id" yaml:"preset_id"`

	// Name is the human-readable display name
	Name string `json:"preset_name" yaml:"preset_name"`

	// Description is a short display string
	Description string `json:"description" yaml:"description"`

	// Directories are relative paths to create under the project root,
	// in declaration order. Duplicates are tolerated.
	Directories []string `json:"directories" yaml:"directories"`

	// Templates are files copied from the preset directory into the project
	Templates []Template `json:"templates" yaml:"templates"`

	// EmptyFiles are relative paths created as zero-byte files if absent
	EmptyFiles []string `json:"empty_files" yaml:"empty_files"`

	// ReadmeTemplate is the raw README body with {TOKEN} placeholders
	ReadmeTemplate string `json:"readme_template" yaml:"readme_template"`

	// Fields are the user-facing inputs declared by the preset. The
	// materializer only consumes the resolved id -> value mapping; the
	// declarations drive the CLI prompt surface.
	Fields []Field `json:"fields" yaml:"fields"`

	// Options are boolean toggles declared by the preset
	Options []Option `json:"options" yaml:"options"`
}

// Template maps a source file inside the preset directory to a destination
// path inside the project being created.
type Template struct {
	// Source is resolved against the preset's own directory
	Source string `json:"source" yaml:"source"`

	// Destination is resolved against the project root
	Destination string `json:"destination" yaml:"destination"`
}

// Field declares a user input consumed at materialization time.
type Field struct {
	ID       string `json:"id" yaml:"id"`
	Label    string `json:"label" yaml:"label"`
	Required bool   `json:"required" yaml:"required"`

	// Kind is "text" or "select"
	Kind string `json:"type" yaml:"type"`

	// Choices enumerates the allowed values for select fields
	Choices []string `json:"options,omitempty" yaml:"options,omitempty"`

	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Option declares a boolean toggle. Present for forward compatibility;
// current materialization does not branch on option values.
type Option struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	Default     bool   `json:"default" yaml:"default"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// DisplayName returns the preset's name, falling back to its id
func (p *Preset) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}
