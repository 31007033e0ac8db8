package podcast

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultStyle    = "educational"
	DefaultDuration = "5-8 minutes"
	DefaultAudience = "general"
)

var Styles = []string{
	"educational",
	"conversational",
	"storytelling",
	"interview-style",
	"documentary",
}

var Durations = []string{
	"3-5 minutes",
	"5-8 minutes",
	"8-12 minutes",
	"12-15 minutes",
}

var Audiences = []string{
	"general",
	"beginners",
	"professionals",
	"students",
	"experts",
}

type Parameters struct {
	Style    string
	Duration string
	Audience string
}

func (p Parameters) withDefaults() Parameters {
	if p.Style == "" {
		p.Style = DefaultStyle
	}

	if p.Duration == "" {
		p.Duration = DefaultDuration
	}

	if p.Audience == "" {
		p.Audience = DefaultAudience
	}

	return p
}

type DurationRange struct {
	Min int
	Max int
}

// Words is the approximate script length for the range.
func (r DurationRange) Words() int {
	return r.Min * 100
}

// ParseDuration reads a range such as "5-8 minutes" or "5-8".
func ParseDuration(s string) (DurationRange, error) {
	fields := strings.Fields(s)

	if len(fields) == 0 {
		return DurationRange{}, fmt.Errorf("invalid duration %q", s)
	}

	lo, hi, ok := strings.Cut(fields[0], "-")

	if !ok {
		return DurationRange{}, fmt.Errorf("invalid duration %q", s)
	}

	from, err := strconv.Atoi(lo)

	if err != nil {
		return DurationRange{}, fmt.Errorf("invalid duration %q", s)
	}

	to, err := strconv.Atoi(hi)

	if err != nil {
		return DurationRange{}, fmt.Errorf("invalid duration %q", s)
	}

	if from <= 0 || to < from {
		return DurationRange{}, fmt.Errorf("invalid duration %q", s)
	}

	return DurationRange{Min: from, Max: to}, nil
}
