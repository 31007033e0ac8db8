package openai

import (
	"errors"

	"github.com/hdprajwal/podcast-creator/pkg/provider"

	"github.com/openai/openai-go/v3"
)

func convertError(err error) error {
	if err == nil {
		return nil
	}

	result := &provider.Error{
		Provider: "openai",

		Message: err.Error(),
		Err:     err,
	}

	var apierr *openai.Error

	if errors.As(err, &apierr) {
		result.Code = apierr.StatusCode

		if apierr.Message != "" {
			result.Message = apierr.Message
		}
	}

	return result
}
