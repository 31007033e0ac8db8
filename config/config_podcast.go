package config

import (
	"github.com/hdprajwal/podcast-creator/pkg/podcast"
)

type Podcast struct {
	Completer   string
	Synthesizer string

	// Token is the credential used when a caller supplies none.
	Token string

	MaxInput int
	Plain    bool
	Voice    string
}

type podcastConfig struct {
	Completer   string `yaml:"completer"`
	Synthesizer string `yaml:"synthesizer"`

	Token string `yaml:"token"`

	MaxInput int    `yaml:"max_input"`
	Plain    bool   `yaml:"plain"`
	Voice    string `yaml:"voice"`
}

func (cfg *Config) registerPodcast(f *configFile) error {
	p := f.Podcast

	cfg.Podcast = Podcast{
		Completer:   p.Completer,
		Synthesizer: p.Synthesizer,

		Token: p.Token,

		MaxInput: p.MaxInput,
		Plain:    p.Plain,
		Voice:    p.Voice,
	}

	if cfg.Podcast.MaxInput <= 0 {
		cfg.Podcast.MaxInput = podcast.DefaultMaxInput
	}

	if p.Completer != "" {
		if _, err := cfg.Completer(p.Completer); err != nil {
			return err
		}
	}

	if p.Synthesizer != "" {
		if _, err := cfg.Synthesizer(p.Synthesizer); err != nil {
			return err
		}
	}

	return nil
}

// Generator wires the named models into a podcast generator. Empty ids fall
// back to the podcast defaults, then to the first registered model. A stage
// without any registered model is left unset.
func (cfg *Config) Generator(completerID, synthesizerID string) (*podcast.Generator, error) {
	if completerID == "" {
		completerID = cfg.Podcast.Completer
	}

	if synthesizerID == "" {
		synthesizerID = cfg.Podcast.Synthesizer
	}

	completer, err := cfg.Completer(completerID)

	if err != nil && completerID != "" {
		return nil, err
	}

	synthesizer, err := cfg.Synthesizer(synthesizerID)

	if err != nil && synthesizerID != "" {
		return nil, err
	}

	return podcast.New(completer, synthesizer, &podcast.Options{
		MaxInput: cfg.Podcast.MaxInput,
		Plain:    cfg.Podcast.Plain,
		Voice:    cfg.Podcast.Voice,
	}), nil
}
