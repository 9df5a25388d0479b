package content

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns a JSON Schema for content.json, handy for editor
// validation when hand-editing the file.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	sch := r.Reflect(&File{})
	sch.Title = "termfolio content file"
	sch.Description = "Profile, projects and canned terminal command responses."
	return sch
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}
