package scoring

import (
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// resultSchema constrains a 2xx scoring response. The backend is not fully
// consistent about field names, so the schema accepts either correctness
// spelling (or an application error) and types the optional fields.
const resultSchema = `{
  "type": "object",
  "properties": {
    "is_correct": {"type": "boolean"},
    "isCorrect": {"type": "boolean"},
    "message": {"type": "string"},
    "result": {"type": "string"},
    "correct_answer": {"type": "string"},
    "show_answer": {"type": "boolean"},
    "misspelled_words": {"type": "array", "items": {"type": "string"}},
    "feedback_type": {"type": "string"},
    "highlight_issue": {"type": "string"},
    "error": {"type": "string"}
  },
  "anyOf": [
    {"required": ["is_correct"]},
    {"required": ["isCorrect"]},
    {"required": ["error"]}
  ]
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// resultJSONSchema returns the compiled response schema, compiling it once.
func resultJSONSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(resultSchema))
		if err != nil {
			schemaErr = err
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://scoring-result.json", doc); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://scoring-result.json")
	})
	return compiledSchema, schemaErr
}
