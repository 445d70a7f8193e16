package preset

import (
	_ "embed"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/vladcraftcom/presetforge/pkg/errors"
)

//go:embed files_config.schema.json
var descriptorSchema []byte

// validateDocument checks a decoded descriptor document against the embedded
// JSON schema. The document is the generic form produced by json or yaml
// decoding, so both descriptor flavors share one validation path.
func validateDocument(doc interface{}, source string) error {
	schemaLoader := gojsonschema.NewBytesLoader(descriptorSchema)
	docLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to validate descriptor %s", source)
	}

	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return errors.Newf(errors.ErrConfigInvalid,
			"descriptor %s is not a valid preset config: %s",
			source, strings.Join(problems, "; ")).
			WithDetail("problems", problems)
	}

	return nil
}
