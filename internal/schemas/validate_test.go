package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rootschemas "github.com/jonathan/talent-matcher/schemas"
)

func TestValidateDocument_ProfileExport(t *testing.T) {
	tests := []struct {
		name      string
		document  string
		wantError bool
	}{
		{
			name: "valid export",
			document: `{
				"exported_at": "2026-03-01T10:00:00Z",
				"count": 1,
				"profiles": [{
					"id": "p-1",
					"personal_info": {"name": "Ada", "years_of_experience": 6},
					"skills": [{"name": "Go", "category": "programming", "proficiency": "expert", "confidence": 0.9}],
					"experiences": null,
					"flags": [{"type": "concern", "severity": "low", "description": "short answers"}],
					"confidence": 0.8,
					"completeness": 0.7,
					"last_updated": "2026-02-01T09:30:00.123Z"
				}],
				"scoring_results": [{"profile_id": "p-1", "overall_score": 0.82, "category_scores": {}}]
			}`,
		},
		{
			name:      "missing profiles",
			document:  `{"count": 0}`,
			wantError: true,
		},
		{
			name:      "profile without id",
			document:  `{"profiles": [{"personal_info": {"name": "Ada"}}]}`,
			wantError: true,
		},
		{
			name:      "unknown proficiency",
			document:  `{"profiles": [{"id": "p", "personal_info": {"name": "Ada"}, "skills": [{"name": "Go", "proficiency": "guru"}]}]}`,
			wantError: true,
		},
		{
			name:      "confidence above one",
			document:  `{"profiles": [{"id": "p", "personal_info": {"name": "Ada"}, "confidence": 1.5}]}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(rootschemas.ProfileExport, []byte(tt.document))
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "error should be ValidationError, got %T: %v", err, err)
			assert.Greater(t, len(validationErr.Errors), 0)
		})
	}
}

func TestValidateDocument_JobRequirement(t *testing.T) {
	valid := `{"title": "Backend", "required_skills": [{"name": "Go", "importance": "critical", "weight": 1}], "minimum_years": 3}`
	assert.NoError(t, ValidateDocument(rootschemas.JobRequirement, []byte(valid)))

	invalid := `{"required_skills": [{"name": "Go", "importance": "urgent"}]}`
	assert.Error(t, ValidateDocument(rootschemas.JobRequirement, []byte(invalid)))
}

func TestValidateDocument_UnknownSchema(t *testing.T) {
	err := ValidateDocument("nope.schema.json", []byte(`{}`))
	require.Error(t, err)
	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok)
}

func TestValidateDocument_MalformedJSON(t *testing.T) {
	err := ValidateDocument(rootschemas.ProfileExport, []byte("{ invalid json }"))
	require.Error(t, err)
}

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"name": "test"}`

	err := ValidateJSONString(schemaContent, jsonContent)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"age": 30}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "name")
	assert.Contains(t, errorMsg, "age")
}

func TestValidateJSONString_NestedFieldValidation(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["person"],
		"properties": {
			"person": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {"type": "string"}
				}
			}
		}
	}`

	jsonContent := `{"person": {}}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
	// Check that the field path includes nested field
	found := false
	for _, fieldErr := range validationErr.Errors {
		if fieldErr.Field != "" {
			found = true
			break
		}
	}
	assert.True(t, found, "should include field path in error")
}
