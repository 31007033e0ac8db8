package audio

// Chunk is one unit of a streamed speech response. Audio-bearing chunks carry
// Data and ContentType, diagnostic chunks carry Text only.
type Chunk struct {
	Data        []byte
	ContentType string

	Text string
}

func (c Chunk) IsAudio() bool {
	return len(c.Data) > 0
}

// Audio is a self-contained playable file.
type Audio struct {
	Data []byte

	ContentType string
	Extension   string

	// PCM is set when the container header was synthesized around raw samples.
	PCM *PCMParameters
}

func (a *Audio) FileName(base string) string {
	if a == nil {
		return base
	}

	return base + a.Extension
}
