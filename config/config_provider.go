package config

import (
	"errors"
	"strings"

	"github.com/hdprajwal/podcast-creator/pkg/limiter"
	"github.com/hdprajwal/podcast-creator/pkg/otel"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type providerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Limit *int `yaml:"limit"`

	Models yaml.Node `yaml:"models"`
}

type modelConfig struct {
	Type string `yaml:"type"`

	ID    string `yaml:"id"`
	Voice string `yaml:"voice"`
}

type modelType string

const (
	modelTypeCompleter   modelType = "completer"
	modelTypeSynthesizer modelType = "synthesizer"
)

type modelContext struct {
	ID    string
	Type  modelType
	Voice string

	Limiter *rate.Limiter
}

func (cfg *Config) registerProviders(f *configFile) error {
	for _, p := range f.Providers {
		var models map[string]modelConfig

		if err := p.Models.Decode(&models); err != nil {
			return err
		}

		l := createLimiter(p.Limit)

		for _, node := range p.Models.Content {
			id := node.Value

			m, ok := models[id]

			if !ok {
				continue
			}

			context := modelContext{
				ID:    id,
				Type:  detectModelType(id, m.Type),
				Voice: m.Voice,

				Limiter: l,
			}

			if m.ID != "" {
				context.ID = m.ID
			}

			switch context.Type {
			case modelTypeCompleter:
				completer, err := createCompleter(p, context)

				if err != nil {
					return err
				}

				completer = limiter.NewCompleter(context.Limiter, completer)
				completer = otel.NewCompleter(providerName(p.Type), context.ID, completer)

				cfg.RegisterCompleter(id, completer)

			case modelTypeSynthesizer:
				synthesizer, err := createSynthesizer(p, context)

				if err != nil {
					return err
				}

				synthesizer = limiter.NewSynthesizer(context.Limiter, synthesizer)
				synthesizer = otel.NewSynthesizer(providerName(p.Type), context.ID, synthesizer)

				cfg.RegisterSynthesizer(id, synthesizer)

			default:
				return errors.New("invalid model type: " + string(context.Type))
			}
		}
	}

	return nil
}

func detectModelType(id, typ string) modelType {
	if typ != "" {
		return modelType(strings.ToLower(typ))
	}

	if strings.Contains(strings.ToLower(id), "tts") {
		return modelTypeSynthesizer
	}

	return modelTypeCompleter
}

func providerName(typ string) string {
	switch strings.ToLower(typ) {
	case "google", "gemini":
		return "gcp.gemini"
	}

	return strings.ToLower(typ)
}
