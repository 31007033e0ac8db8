package google

import (
	"context"

	"github.com/hdprajwal/podcast-creator/pkg/audio"
	"github.com/hdprajwal/podcast-creator/pkg/provider"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

const DefaultVoice = "Charon"

type Synthesizer struct {
	*Config
}

func NewSynthesizer(model string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		model: model,
		voice: DefaultVoice,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Synthesizer{
		Config: cfg,
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	client, err := s.newClient(ctx, options.Token)

	if err != nil {
		return nil, convertError(err)
	}

	voice := options.Voice

	if voice == "" {
		voice = s.voice
	}

	temperature := options.Temperature

	if temperature == nil {
		temperature = genai.Ptr[float32](1)
	}

	config := &genai.GenerateContentConfig{
		Temperature: temperature,

		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: voice,
				},
			},
		},
	}

	config.ResponseModalities = append(config.ResponseModalities, "AUDIO")

	if options.Instructions != "" {
		content = options.Instructions + "\n\n" + content
	}

	contents := []*genai.Content{
		genai.NewContentFromText(content, genai.RoleUser),
	}

	result := &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: s.model,
	}

	for resp, err := range client.Models.GenerateContentStream(ctx, s.model, contents, config) {
		if err != nil {
			return nil, convertError(err)
		}

		result.Chunks = append(result.Chunks, toChunks(resp)...)

		if usage := toUsage(resp.UsageMetadata); usage != nil {
			result.Usage = usage
		}
	}

	return result, nil
}

func toChunks(resp *genai.GenerateContentResponse) []audio.Chunk {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}

	candidate := resp.Candidates[0]

	if candidate == nil || candidate.Content == nil {
		return nil
	}

	var chunks []audio.Chunk

	for _, part := range candidate.Content.Parts {
		if part == nil {
			continue
		}

		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			chunks = append(chunks, audio.Chunk{
				Data:        part.InlineData.Data,
				ContentType: part.InlineData.MIMEType,
			})

			continue
		}

		if part.Text != "" {
			chunks = append(chunks, audio.Chunk{
				Text: part.Text,
			})
		}
	}

	return chunks
}
