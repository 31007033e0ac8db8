package server

type TranscriptRequest struct {
	Text string `json:"text"`

	Style    string `json:"style,omitempty"`
	Duration string `json:"duration,omitempty"`
	Audience string `json:"audience,omitempty"`

	Model string `json:"model,omitempty"`
}

type TranscriptResponse struct {
	ID string `json:"id"`

	Prompt     string `json:"prompt"`
	Transcript string `json:"transcript"`
}

type PodcastRequest struct {
	Transcript string `json:"transcript"`

	Model string `json:"model,omitempty"`
	Voice string `json:"voice,omitempty"`
}

type ArchiveRequest struct {
	Text       string `json:"text,omitempty"`
	Prompt     string `json:"prompt,omitempty"`
	Transcript string `json:"transcript,omitempty"`

	// Audio is base64 encoded in JSON.
	Audio       []byte `json:"audio,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

type ModelList struct {
	Models []string `json:"models"`

	Styles    []string `json:"styles"`
	Durations []string `json:"durations"`
	Audiences []string `json:"audiences"`
}

type ErrorResponse struct {
	Error Error `json:"error"`
}

type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
