package state

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed state.schema.json
var documentSchema string

var schemaLoader = gojsonschema.NewStringLoader(documentSchema)

// ShapeError reports a state file that parsed as JSON but does not have the
// document's shape (a list stored as a string, a size stored as text, ...).
type ShapeError struct {
	Problems []string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("state document has unexpected shape: %s", strings.Join(e.Problems, "; "))
}

// CheckShape validates raw bytes against the embedded document schema.
// Unparseable JSON is reported as a plain error.
func CheckShape(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to check state document: %w", err)
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		problems[i] = desc.String()
	}
	return &ShapeError{Problems: problems}
}
