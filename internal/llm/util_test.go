package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"label\": 4}\n```"

	assert.Equal(t, `{"label": 4}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"label\": 4}\n```"

	assert.Equal(t, `{"label": 4}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_FenceWithLanguageIdentifier(t *testing.T) {
	input := "```javascript\n{\"label\": 4}\n```"

	assert.Equal(t, `{"label": 4}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_PlainJSONUntouched(t *testing.T) {
	input := "{\"label\": 4, \"notes\": \"contains ``` inside\"}"

	assert.Equal(t, input, CleanJSONBlock(input))
}

func TestCleanJSONBlock_SurroundingWhitespaceTrimmed(t *testing.T) {
	input := "  \n```json\n{\"ok\": true}\n```\n  "

	assert.Equal(t, `{"ok": true}`, CleanJSONBlock(input))
}
