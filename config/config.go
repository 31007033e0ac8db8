package config

import (
	"bytes"
	"errors"
	"os"

	"github.com/hdprajwal/podcast-creator/pkg/auth"
	"github.com/hdprajwal/podcast-creator/pkg/limiter"
	"github.com/hdprajwal/podcast-creator/pkg/provider"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	Authorizers []auth.Provider

	Podcast Podcast

	models []string

	completer   map[string]provider.Completer
	synthesizer map[string]provider.Synthesizer
}

// Parse reads a yaml configuration file. Environment variables in the file
// are expanded before decoding.
func Parse(path string) (*Config, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return parse(data)
}

// Load parses the file at path, or returns Default when it does not exist.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default()
	}

	return Parse(path)
}

const defaultConfig = `
providers:
  - type: google
    token: ${GEMINI_API_KEY}
    models:
      gemini-2.0-flash: {}
      gemma-3n-e4b-it: {}
      gemini-2.5-flash-preview-05-20: {}
      gemini-2.5-flash-preview-tts: {}
      gemini-2.5-pro-preview-tts: {}

podcast:
  completer: gemini-2.0-flash
  synthesizer: gemini-2.5-flash-preview-tts
  token: ${GEMINI_API_KEY}
`

// Default is the configuration used when no file exists: the Gemini models
// with the key from GEMINI_API_KEY.
func Default() (*Config, error) {
	return parse([]byte(defaultConfig))
}

func parse(data []byte) (*Config, error) {
	file, err := parseFile(data)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":8080",
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	if err := c.registerAuthorizer(file); err != nil {
		return nil, err
	}

	if err := c.registerProviders(file); err != nil {
		return nil, err
	}

	if err := c.registerPodcast(file); err != nil {
		return nil, err
	}

	return c, nil
}

func (cfg *Config) RegisterModel(id string) {
	for _, m := range cfg.models {
		if m == id {
			return
		}
	}

	cfg.models = append(cfg.models, id)
}

// Models lists every registered model id in configuration order.
func (cfg *Config) Models() []string {
	return cfg.models
}

type configFile struct {
	Address string `yaml:"address"`

	Authorizers []authorizerConfig `yaml:"authorizers"`

	Providers []providerConfig `yaml:"providers"`

	Podcast podcastConfig `yaml:"podcast"`
}

func parseFile(data []byte) (*configFile, error) {
	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return limiter.New(*limit)
}
