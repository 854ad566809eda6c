package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema describes the JSON object a model is asked to return
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "SkillAugmentation")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Only report what the text states or clearly implies, do not invent experience.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// SkillAugmentationSchema returns the schema used to find skills a fixed taxonomy
// would miss. The description is the preamble; callers may replace it.
func SkillAugmentationSchema(description string) ExtractionSchema {
	if description == "" {
		description = `You are an expert technical interviewer. Identify every technical or professional skill the candidate demonstrates in the text.`
	}
	return ExtractionSchema{
		Name:        "SkillAugmentation",
		Description: description,
		Fields: []SchemaField{
			{
				Name:        "skills",
				Type:        `[{"name": "string", "category": "string", "proficiency": "string", "confidence": 0.0}]`,
				Description: "category is one of programming, frontend, backend, database, cloud, devops, data, mobile, methodology, soft_skill; proficiency is one of beginner, intermediate, advanced, expert",
				Required:    true,
			},
		},
	}
}
