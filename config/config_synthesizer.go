package config

import (
	"errors"
	"strings"

	"github.com/hdprajwal/podcast-creator/pkg/provider"
	"github.com/hdprajwal/podcast-creator/pkg/provider/google"
	"github.com/hdprajwal/podcast-creator/pkg/provider/openai"
)

func (cfg *Config) RegisterSynthesizer(id string, p provider.Synthesizer) {
	cfg.RegisterModel(id)

	if cfg.synthesizer == nil {
		cfg.synthesizer = make(map[string]provider.Synthesizer)
	}

	if _, ok := cfg.synthesizer[""]; !ok {
		cfg.synthesizer[""] = p
	}

	cfg.synthesizer[id] = p
}

func (cfg *Config) Synthesizer(id string) (provider.Synthesizer, error) {
	if cfg.synthesizer != nil {
		if s, ok := cfg.synthesizer[id]; ok {
			return s, nil
		}
	}

	return nil, errors.New("synthesizer not found: " + id)
}

func createSynthesizer(cfg providerConfig, model modelContext) (provider.Synthesizer, error) {
	switch strings.ToLower(cfg.Type) {
	case "google", "gemini":
		return googleSynthesizer(cfg, model)

	case "openai", "openai-compatible":
		return openaiSynthesizer(cfg, model)

	default:
		return nil, errors.New("invalid synthesizer type: " + cfg.Type)
	}
}

func googleSynthesizer(cfg providerConfig, model modelContext) (provider.Synthesizer, error) {
	var options []google.Option

	if cfg.URL != "" {
		options = append(options, google.WithURL(cfg.URL))
	}

	if cfg.Token != "" {
		options = append(options, google.WithToken(cfg.Token))
	}

	if model.Voice != "" {
		options = append(options, google.WithVoice(model.Voice))
	}

	return google.NewSynthesizer(model.ID, options...)
}

func openaiSynthesizer(cfg providerConfig, model modelContext) (provider.Synthesizer, error) {
	var options []openai.Option

	if cfg.Token != "" {
		options = append(options, openai.WithToken(cfg.Token))
	}

	if model.Voice != "" {
		options = append(options, openai.WithVoice(model.Voice))
	}

	return openai.NewSynthesizer(cfg.URL, model.ID, options...)
}
