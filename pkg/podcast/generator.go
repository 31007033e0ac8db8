package podcast

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/hdprajwal/podcast-creator/pkg/audio"
	"github.com/hdprajwal/podcast-creator/pkg/provider"
	"github.com/hdprajwal/podcast-creator/pkg/text"
)

var (
	errNoCompleter   = errors.New("no text model configured")
	errNoSynthesizer = errors.New("no speech model configured")
)

type Generator struct {
	completer   provider.Completer
	synthesizer provider.Synthesizer

	options Options
}

type Options struct {
	// MaxInput is the rune limit of the source text, DefaultMaxInput when zero.
	MaxInput int

	// Plain strips markdown from generated transcripts.
	Plain bool

	Voice string
}

func New(completer provider.Completer, synthesizer provider.Synthesizer, options *Options) *Generator {
	if options == nil {
		options = new(Options)
	}

	return &Generator{
		completer:   completer,
		synthesizer: synthesizer,

		options: *options,
	}
}

// GenerateTranscript turns the source text into a narration script and
// records prompt and transcript on the session.
func (g *Generator) GenerateTranscript(ctx context.Context, session *Session, input string, params Parameters) (string, error) {
	if session == nil {
		session = new(Session)
	}

	if err := validate(session.Credential, input, g.options.MaxInput); err != nil {
		return "", err
	}

	params = params.withDefaults()

	prompt, err := Prompt(input, params)

	if err != nil {
		return "", &ValidationError{Problems: []string{err.Error()}}
	}

	if g.completer == nil {
		return "", &UpstreamError{Stage: StageTranscript, Err: errNoCompleter}
	}

	completion, err := g.completer.Complete(ctx, []provider.Message{
		provider.UserMessage(prompt),
	}, &provider.CompleteOptions{
		Token: session.Credential,
	})

	if err != nil {
		return "", &UpstreamError{Stage: StageTranscript, Err: err}
	}

	transcript := strings.TrimSpace(completion.Text())

	if g.options.Plain {
		transcript = text.StripMarkdown(transcript)
	} else if text.IsMarkdown(transcript) {
		slog.Warn("transcript contains markdown", "session", session.ID)
	}

	if transcript == "" {
		return "", ErrNoTranscript
	}

	session.Text = input
	session.Parameters = params
	session.Prompt = prompt

	session.Transcript = transcript
	session.EditedTranscript = transcript
	session.Audio = nil

	return transcript, nil
}

// GeneratePodcast synthesizes the (edited) transcript and normalizes the
// streamed chunks into a playable file.
func (g *Generator) GeneratePodcast(ctx context.Context, session *Session, transcript string) (*audio.Audio, error) {
	if session == nil {
		session = new(Session)
	}

	if err := validateTranscript(session.Credential, transcript); err != nil {
		return nil, err
	}

	session.EditedTranscript = transcript

	if g.synthesizer == nil {
		return nil, &UpstreamError{Stage: StagePodcast, Err: errNoSynthesizer}
	}

	voice := g.options.Voice

	if session.Voice != "" {
		voice = session.Voice
	}

	synthesis, err := g.synthesizer.Synthesize(ctx, transcript, &provider.SynthesizeOptions{
		Token: session.Credential,
		Voice: voice,
	})

	if err != nil {
		return nil, &UpstreamError{Stage: StagePodcast, Err: err}
	}

	for _, d := range audio.Diagnostics(synthesis.Chunks) {
		slog.Info("speech diagnostic", "session", session.ID, "text", d)
	}

	result := audio.Normalize(synthesis.Chunks)

	if result == nil {
		return nil, ErrNoAudio
	}

	attrs := []any{"session", session.ID, "type", result.ContentType, "size", len(result.Data)}

	if d, err := audio.Probe(result); err == nil {
		attrs = append(attrs, "duration", d)
	}

	slog.Info("podcast generated", attrs...)

	session.Audio = result

	return result, nil
}
