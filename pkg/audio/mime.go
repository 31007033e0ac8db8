package audio

import (
	"math"
	"mime"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	DefaultBitsPerSample = 16
	DefaultSampleRate    = 24000
	DefaultNumChannels   = 1
)

const (
	maxBitsPerSample = 64
	maxSampleRate    = math.MaxUint32 / (maxBitsPerSample / 8)
)

type PCMParameters struct {
	BitsPerSample int
	SampleRate    int
	NumChannels   int
}

func mediaType(contentType string) string {
	val, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(val))
}

// IsRawPCM reports whether the type names headerless linear PCM, such as
// "audio/L16;rate=24000" or "audio/pcm".
func IsRawPCM(contentType string) bool {
	t := mediaType(contentType)

	if t == "audio/pcm" {
		return true
	}

	bits, ok := strings.CutPrefix(t, "audio/l")

	if !ok || bits == "" {
		return false
	}

	_, err := strconv.Atoi(bits)
	return err == nil
}

// Extension maps a MIME type to a file extension including the leading
// dot. Parameters are ignored. Raw PCM and types without an extension, the
// generic octet-stream type included, are reported as not known, whatever
// the host MIME tables say.
func Extension(contentType string) (string, bool) {
	t := mediaType(contentType)

	if t == "" || t == "application/octet-stream" || IsRawPCM(t) {
		return "", false
	}

	if m := mimetype.Lookup(t); m != nil && m.Extension() != "" {
		return m.Extension(), true
	}

	if exts, _ := mime.ExtensionsByType(t); len(exts) > 0 {
		return exts[0], true
	}

	return "", false
}

// ParsePCMParameters reads bit depth and sample rate from a raw PCM type
// such as "audio/L16;codec=pcm;rate=24000". It never fails: anything missing
// malformed or out of range keeps the default. Bit depths must be a
// multiple of 8.
func ParsePCMParameters(contentType string) PCMParameters {
	p := PCMParameters{
		BitsPerSample: DefaultBitsPerSample,
		SampleRate:    DefaultSampleRate,
		NumChannels:   DefaultNumChannels,
	}

	for _, param := range strings.Split(contentType, ";") {
		param = strings.TrimSpace(param)
		lower := strings.ToLower(param)

		if key, val, ok := strings.Cut(lower, "="); ok && strings.TrimSpace(key) == "rate" {
			if rate, err := strconv.Atoi(strings.TrimSpace(val)); err == nil && rate > 0 && rate <= maxSampleRate {
				p.SampleRate = rate
			}

			continue
		}

		if bits, ok := strings.CutPrefix(lower, "audio/l"); ok {
			if n, err := strconv.Atoi(bits); err == nil && n > 0 && n <= maxBitsPerSample && n%8 == 0 {
				p.BitsPerSample = n
			}
		}
	}

	return p
}
