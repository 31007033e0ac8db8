package provider

import (
	"context"

	"github.com/hdprajwal/podcast-creator/pkg/audio"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, input string, options *SynthesizeOptions) (*Synthesis, error)
}

type SynthesizeOptions struct {
	// Token replaces the configured credential for a single call.
	Token string

	Voice        string
	Instructions string

	Temperature *float32
}

// Synthesis holds every chunk the speech service streamed for one call, in
// arrival order.
type Synthesis struct {
	ID    string
	Model string

	Chunks []audio.Chunk

	Usage *Usage
}
