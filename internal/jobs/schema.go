package jobs

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/spigell/jobmatch/internal/apierr"
)

// dumpSchema checks the shape of a dump before decoding. It is loose on
// purpose about types that Decode coerces (string ids and scores).
const dumpSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "definitions": {
    "record": {
      "type": "object",
      "required": ["id"],
      "properties": {
        "id": {"type": ["integer", "string"]},
        "score": {"type": ["number", "string", "null"]}
      }
    },
    "records": {
      "type": ["array", "null"],
      "items": {"$ref": "#/definitions/record"}
    }
  },
  "properties": {
    "postings": {"$ref": "#/definitions/records"},
    "resumes": {"$ref": "#/definitions/records"},
    "matches": {"$ref": "#/definitions/records"},
    "applications": {"$ref": "#/definitions/records"}
  }
}`

var dumpSchemaLoader = gojsonschema.NewStringLoader(dumpSchema)

// ValidateDump reports every schema violation of data as one decoding error.
func ValidateDump(data []byte) error {
	result, err := gojsonschema.Validate(dumpSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return apierr.Decoding(err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		violations = append(violations, e.String())
	}
	return &apierr.Error{
		Kind:    apierr.KindDecoding,
		Message: "invalid dump: " + strings.Join(violations, "; "),
	}
}
