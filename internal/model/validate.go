package model

import (
	_ "embed"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume_input.schema.json
var inputSchema []byte

// ValidateInput checks a raw request body against the resume input schema
// before it is unmarshaled. A schema violation comes back as a
// ValidationError with the collected messages.
func ValidateInput(raw []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(inputSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return &ValidationError{Msg: "invalid JSON payload"}
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return &ValidationError{Msg: strings.Join(msgs, "; ")}
}
