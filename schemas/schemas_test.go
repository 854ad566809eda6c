package schemas_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/schemas"
	rootschemas "github.com/jonathan/talent-matcher/schemas"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	names := rootschemas.Names()
	require.ElementsMatch(t, []string{rootschemas.ProfileExport, rootschemas.JobRequirement}, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			data, err := rootschemas.Load(name)
			require.NoError(t, err)

			var v interface{}
			assert.NoError(t, json.Unmarshal(data, &v), "schema file should be valid JSON: %s", name)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	// An empty object is rejected by both schemas for a missing required field,
	// which only happens when the schema itself loads.
	for _, name := range rootschemas.Names() {
		t.Run(name, func(t *testing.T) {
			err := schemas.ValidateDocument(name, []byte(`{}`))
			require.Error(t, err)

			var validationErr *schemas.ValidationError
			assert.ErrorAs(t, err, &validationErr, "schema should load: %s", name)
		})
	}
}

func TestLoad_Unknown(t *testing.T) {
	_, err := rootschemas.Load("missing.schema.json")
	assert.Error(t, err)
}
