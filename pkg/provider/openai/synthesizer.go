package openai

import (
	"context"
	"io"

	"github.com/hdprajwal/podcast-creator/pkg/audio"
	"github.com/hdprajwal/podcast-creator/pkg/provider"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

type Synthesizer struct {
	*Config
	speech openai.AudioSpeechService
}

func NewSynthesizer(url, model string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		url:   url,
		model: model,
		voice: "alloy",
	}

	for _, option := range options {
		option(cfg)
	}

	return &Synthesizer{
		Config: cfg,
		speech: openai.NewAudioSpeechService(cfg.Options()...),
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	voice := options.Voice

	if voice == "" {
		voice = s.voice
	}

	req := openai.AudioSpeechNewParams{
		Model: s.model,
		Input: content,

		Voice: openai.AudioSpeechNewParamsVoice(voice),

		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	}

	if options.Instructions != "" {
		req.Instructions = openai.String(options.Instructions)
	}

	resp, err := s.speech.New(ctx, req, tokenOptions(options.Token)...)

	if err != nil {
		return nil, convertError(err)
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")

	if contentType == "" {
		contentType = "audio/mpeg"
	}

	result := &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: s.model,
	}

	if len(data) > 0 {
		result.Chunks = []audio.Chunk{
			{
				Data:        data,
				ContentType: contentType,
			},
		}
	}

	return result, nil
}
