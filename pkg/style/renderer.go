package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	forgeerrors "github.com/vladcraftcom/presetforge/pkg/errors"
)

// Renderer formats presetforge output for the terminal
type Renderer struct {
	// Plain disables decoration, for non-terminal output
	Plain bool
}

// NewRenderer creates a terminal renderer
func NewRenderer(plain bool) *Renderer {
	return &Renderer{Plain: plain}
}

// RenderLog renders an operation log, styling skips, warnings and the final
// success marker
func (r *Renderer) RenderLog(lines []string) string {
	var result strings.Builder
	for _, line := range lines {
		result.WriteString(r.renderLogLine(line) + "\n")
	}
	return strings.TrimRight(result.String(), "\n")
}

func (r *Renderer) renderLogLine(line string) string {
	if r.Plain {
		return line
	}
	switch {
	case strings.HasPrefix(line, "Warning:"):
		return WarnStyle.Sprint(line)
	case strings.HasPrefix(line, "Skipping"):
		return MutedStyle.Sprint(line)
	case strings.HasSuffix(line, "successfully!"):
		return SuccessStyle.Sprint(line)
	default:
		return line
	}
}

// RenderPresetList renders the discovered presets with their display names
func (r *Renderer) RenderPresetList(ids []string, names map[string]string) string {
	if len(ids) == 0 {
		return r.muted("No presets found")
	}

	var result strings.Builder
	result.WriteString(r.title("Available Presets") + "\n\n")

	for _, id := range ids {
		line := fmt.Sprintf("%s %s", pterm.Info.Prefix.Text, r.bold(names[id]))
		if r.Plain {
			line = names[id]
		}
		result.WriteString(line + "\n")

		if names[id] != id {
			result.WriteString(Indent(r.muted(id), 1) + "\n")
		}
		result.WriteString("\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderError renders an error with its code when it carries one
func (r *Renderer) RenderError(err error) string {
	code := forgeerrors.GetErrorCode(err)
	if r.Plain {
		return fmt.Sprintf("error: %v", err)
	}
	if code != forgeerrors.ErrUnknown {
		return fmt.Sprintf("%s %s %v",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(code),
			err)
	}
	return fmt.Sprintf("%s %v", pterm.Error.Prefix.Text, err)
}

func (r *Renderer) title(s string) string {
	if r.Plain {
		return s
	}
	return TitleStyle.Sprint(s)
}

func (r *Renderer) muted(s string) string {
	if r.Plain {
		return s
	}
	return MutedStyle.Sprint(s)
}

func (r *Renderer) bold(s string) string {
	if r.Plain {
		return s
	}
	return Bold(s)
}
