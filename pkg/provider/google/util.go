package google

import (
	"errors"

	"github.com/hdprajwal/podcast-creator/pkg/provider"

	"google.golang.org/genai"
)

func convertError(err error) error {
	if err == nil {
		return nil
	}

	result := &provider.Error{
		Provider: "google",

		Message: err.Error(),
		Err:     err,
	}

	var apierr genai.APIError

	if errors.As(err, &apierr) {
		result.Code = apierr.Code

		if apierr.Message != "" {
			result.Message = apierr.Message
		}
	}

	return result
}

func toUsage(metadata *genai.GenerateContentResponseUsageMetadata) *provider.Usage {
	if metadata == nil {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(metadata.PromptTokenCount),
		OutputTokens: int(metadata.CandidatesTokenCount),
	}
}
