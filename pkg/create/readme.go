package create

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vladcraftcom/presetforge/pkg/types"
)

// readmeTimeFormat is the timestamp format substituted for {DATE}
const readmeTimeFormat = "2006-01-02 15:04"

// RenderReadme substitutes placeholder tokens into a README template and
// wraps the result with the standard heading block.
//
// Tokens are literal {NAME} occurrences, each matched in its uppercase and
// lowercase spelling: {PROJECT_NAME}/{project_name}, {DATE}/{date}, and one
// pair per field id. Fields are substituted in declaration order, then any
// undeclared field values in sorted order; a value missing from fieldValues
// substitutes the empty string. Two field ids differing only by case collide
// on the same tokens; the earlier replacement consumes them, so the
// first-declared field wins.
func RenderReadme(template, projectName string, fieldValues map[string]string, fields []types.Field, now time.Time) string {
	timestamp := now.Format(readmeTimeFormat)

	body := template
	body = strings.ReplaceAll(body, "{PROJECT_NAME}", projectName)
	body = strings.ReplaceAll(body, "{project_name}", projectName)
	body = strings.ReplaceAll(body, "{DATE}", timestamp)
	body = strings.ReplaceAll(body, "{date}", timestamp)

	for _, id := range substitutionOrder(fieldValues, fields) {
		value := fieldValues[id]
		body = strings.ReplaceAll(body, "{"+strings.ToUpper(id)+"}", value)
		body = strings.ReplaceAll(body, "{"+strings.ToLower(id)+"}", value)
	}

	return fmt.Sprintf("# %s\n\nCreated: %s\n\n## What's next\n%s",
		projectName, timestamp, body)
}

// substitutionOrder returns the field ids to substitute: declared fields in
// declaration order, then values for undeclared ids sorted by id. Go map
// iteration is randomized, so the order has to be pinned down here for the
// operation to stay deterministic.
func substitutionOrder(fieldValues map[string]string, fields []types.Field) []string {
	seen := make(map[string]struct{}, len(fields))
	order := make([]string, 0, len(fields)+len(fieldValues))

	for _, f := range fields {
		if _, dup := seen[f.ID]; dup {
			continue
		}
		seen[f.ID] = struct{}{}
		order = append(order, f.ID)
	}

	var extras []string
	for id := range fieldValues {
		if _, declared := seen[id]; !declared {
			extras = append(extras, id)
		}
	}
	sort.Strings(extras)

	return append(order, extras...)
}
