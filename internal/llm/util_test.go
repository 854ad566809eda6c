package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"skills\": []}\n```",
			expected: `{"skills": []}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"skills\": []}\n```",
			expected: `{"skills": []}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n[1, 2]\n```",
			expected: `[1, 2]`,
		},
		{
			name:     "plain JSON",
			input:    `  {"skills": []}  `,
			expected: `{"skills": []}`,
		},
		{
			name:     "preamble",
			input:    "Here are the skills I found:\n{\"skills\": [{\"name\": \"Go\"}]}",
			expected: `{"skills": [{"name": "Go"}]}`,
		},
		{
			name:     "no JSON at all",
			input:    "nothing to see",
			expected: "nothing to see",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestClientError(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := &ClientError{Message: "failed to generate content", Cause: cause}

	assert.Equal(t, "llm: failed to generate content: quota exceeded", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "llm: no candidates in response", (&ClientError{Message: "no candidates in response"}).Error())
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(t.Context(), nil, "")
	var clientErr *ClientError
	assert.ErrorAs(t, err, &clientErr)
}

func TestExtractTextFromResponse_Empty(t *testing.T) {
	_, err := extractTextFromResponse(nil)
	assert.Error(t, err)
}
