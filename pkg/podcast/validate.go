package podcast

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const DefaultMaxInput = 10000

// Validate checks the credential and source text with the default input limit.
func Validate(credential, text string) error {
	return validate(credential, text, DefaultMaxInput)
}

func validate(credential, text string, maxInput int) error {
	if maxInput <= 0 {
		maxInput = DefaultMaxInput
	}

	var problems []string

	if strings.TrimSpace(credential) == "" {
		problems = append(problems, "credential is required")
	}

	text = strings.TrimSpace(text)

	if text == "" {
		problems = append(problems, "text input is required")
	}

	if utf8.RuneCountInString(text) > maxInput {
		problems = append(problems, fmt.Sprintf("text input is too long (max %d characters)", maxInput))
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}

	return nil
}

func validateTranscript(credential, transcript string) error {
	var problems []string

	if strings.TrimSpace(credential) == "" {
		problems = append(problems, "credential is required")
	}

	if strings.TrimSpace(transcript) == "" {
		problems = append(problems, "transcript is required")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}

	return nil
}
