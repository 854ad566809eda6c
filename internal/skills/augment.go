package skills

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/talent-matcher/internal/llm"
	"github.com/jonathan/talent-matcher/internal/prompts"
	"github.com/jonathan/talent-matcher/internal/schemas"
	"github.com/jonathan/talent-matcher/internal/types"
)

// augmentedConfidence caps the confidence of every augmented skill
const augmentedConfidence = 0.5

// augmentedSkillsSchema is the shape every model response must have once unwrapped
const augmentedSkillsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["name"],
    "properties": {
      "name": { "type": "string" },
      "category": { "type": "string" },
      "proficiency": { "type": "string" },
      "confidence": { "type": "number" }
    }
  }
}`

// Augmenter supplies skills a fixed taxonomy cannot see. Implementations may fail;
// the extractor treats any failure as "no extra skills".
type Augmenter interface {
	Augment(ctx context.Context, text string) ([]types.Skill, error)
}

// AugmenterFunc adapts a plain function to Augmenter
type AugmenterFunc func(ctx context.Context, text string) ([]types.Skill, error)

// Augment calls f
func (f AugmenterFunc) Augment(ctx context.Context, text string) ([]types.Skill, error) {
	return f(ctx, text)
}

// LLMAugmenter asks a language model for skills demonstrated in the text
type LLMAugmenter struct {
	client llm.Client
	tier   llm.ModelTier
	role   string
}

// NewLLMAugmenter creates an augmenter backed by client. role, when set, is added
// to the prompt as the role under evaluation.
func NewLLMAugmenter(client llm.Client, role string) *LLMAugmenter {
	return &LLMAugmenter{client: client, tier: llm.TierLite, role: role}
}

type augmentedSkill struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Proficiency string  `json:"proficiency"`
	Confidence  float64 `json:"confidence"`
}

type augmentationResponse struct {
	Skills json.RawMessage `json:"skills"`
}

// Augment implements Augmenter
func (a *LLMAugmenter) Augment(ctx context.Context, text string) ([]types.Skill, error) {
	if a.client == nil {
		return nil, &AugmentationError{Message: "no language model client configured"}
	}

	response, err := a.client.GenerateJSON(ctx, a.buildPrompt(text), a.tier)
	if err != nil {
		return nil, &AugmentationError{Message: "LLM call failed", Cause: err}
	}

	return parseAugmentationResponse(response)
}

func (a *LLMAugmenter) buildPrompt(text string) string {
	description, _ := prompts.Get("extraction.json", "skill-augmentation")
	if a.role != "" {
		if roleContext, err := prompts.Get("extraction.json", "skill-augmentation-context"); err == nil {
			description += "\n" + prompts.Format(roleContext, map[string]string{"Role": a.role})
		}
	}
	return llm.BuildExtractionPrompt(llm.SkillAugmentationSchema(description), text)
}

// parseAugmentationResponse accepts either {"skills": [...]} or a bare array
func parseAugmentationResponse(response string) ([]types.Skill, error) {
	response = llm.CleanJSONBlock(response)

	var raw json.RawMessage
	switch {
	case strings.HasPrefix(response, "{"):
		var wrapped augmentationResponse
		if err := json.Unmarshal([]byte(response), &wrapped); err != nil {
			return nil, &AugmentationError{Message: "JSON parse error", Cause: err}
		}
		raw = wrapped.Skills
	default:
		startIdx := strings.Index(response, "[")
		endIdx := strings.LastIndex(response, "]")
		if startIdx == -1 || endIdx <= startIdx {
			return nil, &AugmentationError{Message: "no valid JSON found in response"}
		}
		raw = json.RawMessage(response[startIdx : endIdx+1])
	}
	if len(raw) == 0 {
		return nil, &AugmentationError{Message: "response has no skills list"}
	}

	if err := schemas.ValidateJSONString(augmentedSkillsSchema, string(raw)); err != nil {
		return nil, &AugmentationError{Message: "response does not match the skills schema", Cause: err}
	}

	var entries []augmentedSkill
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &AugmentationError{Message: "JSON parse error", Cause: err}
	}

	out := make([]types.Skill, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			continue
		}
		out = append(out, types.Skill{
			Name:        name,
			Category:    types.SkillCategory(strings.ToLower(strings.TrimSpace(e.Category))),
			Proficiency: types.ProficiencyLevel(strings.ToLower(strings.TrimSpace(e.Proficiency))),
			Confidence:  clamp01(e.Confidence),
			Source:      types.SkillSourceAugmentation,
		})
	}
	return out, nil
}
