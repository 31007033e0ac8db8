package podcast

import (
	"github.com/google/uuid"
	"github.com/hdprajwal/podcast-creator/pkg/audio"
)

// Session carries the state of one user between the transcript and the
// podcast stage. It is owned by the caller and not safe for concurrent use.
type Session struct {
	ID string

	Credential string

	// Voice overrides the generator's default voice when set.
	Voice string

	Text       string
	Parameters Parameters

	Prompt     string
	Transcript string

	EditedTranscript string

	Audio *audio.Audio
}

func NewSession(credential string) *Session {
	return &Session{
		ID: uuid.NewString(),

		Credential: credential,
	}
}
