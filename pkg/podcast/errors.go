package podcast

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmpty marks a call that succeeded upstream but produced nothing usable.
var ErrEmpty = errors.New("empty result")

var (
	ErrNoTranscript = fmt.Errorf("%w: model returned no transcript", ErrEmpty)
	ErrNoAudio      = fmt.Errorf("%w: model returned no audio", ErrEmpty)
)

// ValidationError lists every input problem found before any external call.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

type Stage string

const (
	StageTranscript Stage = "transcript"
	StagePodcast    Stage = "podcast"
)

// UpstreamError is a failure of the text or speech service.
type UpstreamError struct {
	Stage Stage
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Error generating %s: %s", e.Stage, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeInvalid
	OutcomeFailed
	OutcomeEmpty
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeEmpty:
		return "empty"
	default:
		return "failed"
	}
}

// Classify maps an error returned by a Generator to its outcome.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}

	var verr *ValidationError

	if errors.As(err, &verr) {
		return OutcomeInvalid
	}

	if errors.Is(err, ErrEmpty) {
		return OutcomeEmpty
	}

	return OutcomeFailed
}
