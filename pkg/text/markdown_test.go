package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMarkdown(t *testing.T) {
	assert.False(t, IsMarkdown(""))
	assert.False(t, IsMarkdown("Plain narration with a dash - here."))
	assert.False(t, IsMarkdown("[Tone: warm] Welcome to the show.\n\nToday we talk about tides."))

	assert.True(t, IsMarkdown("# Episode 1\n\n- first\n- second"))
	assert.True(t, IsMarkdown("**Hook:** did you know?\n\n> a quote"))
}

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "Hello world.\n\nSecond paragraph.",
			expected: "Hello world.\n\nSecond paragraph.",
		},
		{
			name:     "heading emphasis and list",
			input:    "# Welcome\n\nThis is **bold** and *italic* text.\n\n- one\n- two\n",
			expected: "Welcome\n\nThis is bold and italic text.\n\none\ntwo",
		},
		{
			name:     "tone instructions survive",
			input:    "[Tone: warm] Hello there.\nSecond line.",
			expected: "[Tone: warm] Hello there.\nSecond line.",
		},
		{
			name:     "links keep their label",
			input:    "Read [the paper](https://example.org/paper) later.",
			expected: "Read the paper later.",
		},
		{
			name:     "whitespace only",
			input:    "  \n\n ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripMarkdown(tt.input))
		})
	}
}
