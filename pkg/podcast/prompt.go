package podcast

import (
	_ "embed"
	"strings"
	"text/template"
)

var (
	//go:embed prompt.tmpl
	promptText string

	promptTemplate = template.Must(template.New("prompt").Parse(promptText))
)

// Prompt renders the script-writer instructions for the source text.
// Empty parameters take the defaults.
func Prompt(text string, params Parameters) (string, error) {
	params = params.withDefaults()

	duration, err := ParseDuration(params.Duration)

	if err != nil {
		return "", err
	}

	mainMin := max(duration.Min-2, 1)
	mainMax := max(duration.Max-2, mainMin)

	var b strings.Builder

	if err := promptTemplate.Execute(&b, map[string]any{
		"Style":    params.Style,
		"Duration": params.Duration,
		"Words":    duration.Words(),
		"Audience": params.Audience,

		"MainMin": mainMin,
		"MainMax": mainMax,

		"Text": text,
	}); err != nil {
		return "", err
	}

	return strings.TrimSpace(b.String()), nil
}
