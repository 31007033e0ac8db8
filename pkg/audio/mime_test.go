package audio

import (
	"fmt"
	"mime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePCMParameters(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		expected    PCMParameters
	}{
		{
			name:        "bits and rate",
			contentType: "audio/L16;rate=8000",
			expected:    PCMParameters{BitsPerSample: 16, SampleRate: 8000, NumChannels: 1},
		},
		{
			name:        "gemini default",
			contentType: "audio/L16;codec=pcm;rate=24000",
			expected:    PCMParameters{BitsPerSample: 16, SampleRate: 24000, NumChannels: 1},
		},
		{
			name:        "other depth with spaces",
			contentType: "audio/L24; rate=48000",
			expected:    PCMParameters{BitsPerSample: 24, SampleRate: 48000, NumChannels: 1},
		},
		{
			name:        "uppercase key",
			contentType: "audio/L8;RATE=11025",
			expected:    PCMParameters{BitsPerSample: 8, SampleRate: 11025, NumChannels: 1},
		},
		{
			name:        "missing rate",
			contentType: "audio/L32",
			expected:    PCMParameters{BitsPerSample: 32, SampleRate: 24000, NumChannels: 1},
		},
		{
			name:        "empty",
			contentType: "",
			expected:    PCMParameters{BitsPerSample: 16, SampleRate: 24000, NumChannels: 1},
		},
		{
			name:        "garbage",
			contentType: "audio/Lxx;rate=fast;;=",
			expected:    PCMParameters{BitsPerSample: 16, SampleRate: 24000, NumChannels: 1},
		},
		{
			name:        "empty rate",
			contentType: "audio/pcm;rate=",
			expected:    PCMParameters{BitsPerSample: 16, SampleRate: 24000, NumChannels: 1},
		},
		{
			name:        "depth out of range",
			contentType: "audio/L70000;rate=8000",
			expected:    PCMParameters{BitsPerSample: 16, SampleRate: 8000, NumChannels: 1},
		},
		{
			name:        "depth not byte aligned",
			contentType: "audio/L12",
			expected:    PCMParameters{BitsPerSample: 16, SampleRate: 24000, NumChannels: 1},
		},
		{
			name:        "rate out of range",
			contentType: "audio/L16;rate=99999999999",
			expected:    PCMParameters{BitsPerSample: 16, SampleRate: 24000, NumChannels: 1},
		},
		{
			name:        "non positive values",
			contentType: "audio/L0;rate=-1",
			expected:    PCMParameters{BitsPerSample: 16, SampleRate: 24000, NumChannels: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ParsePCMParameters(tt.contentType))
		})
	}
}

func TestParsePCMParametersGrid(t *testing.T) {
	for _, bits := range []int{8, 16, 24, 32} {
		for _, rate := range []int{8000, 16000, 22050, 24000, 44100} {
			p := ParsePCMParameters(fmt.Sprintf("audio/L%d;rate=%d", bits, rate))

			require.Equal(t, bits, p.BitsPerSample)
			require.Equal(t, rate, p.SampleRate)
			require.Equal(t, 1, p.NumChannels)
		}
	}
}

func TestExtension(t *testing.T) {
	t.Run("known types", func(t *testing.T) {
		for contentType, expected := range map[string]string{
			"audio/mpeg":          ".mp3",
			"audio/wav":           ".wav",
			"audio/x-wav":         ".wav",
			"AUDIO/MPEG; foo=bar": ".mp3",
			"audio/flac":          ".flac",
		} {
			ext, ok := Extension(contentType)

			require.True(t, ok, contentType)
			require.Equal(t, expected, ext, contentType)
		}
	})

	t.Run("raw pcm types", func(t *testing.T) {
		for _, contentType := range []string{
			"",
			"audio/L16;rate=24000",
			"audio/L16;codec=pcm;rate=24000",
			"application/octet-stream",
		} {
			_, ok := Extension(contentType)
			require.False(t, ok, contentType)
		}
	})
}

func TestExtensionIgnoresHostPCMEntries(t *testing.T) {
	require.NoError(t, mime.AddExtensionType(".l16", "audio/L16"))
	require.NoError(t, mime.AddExtensionType(".pcm", "audio/pcm"))

	for _, contentType := range []string{
		"audio/L16",
		"audio/L16;rate=24000",
		"audio/pcm;rate=16000",
	} {
		_, ok := Extension(contentType)
		require.False(t, ok, contentType)
	}
}

func TestIsRawPCM(t *testing.T) {
	for contentType, expected := range map[string]bool{
		"audio/L16;rate=24000":  true,
		"AUDIO/L24":             true,
		"audio/pcm":             true,
		"audio/pcm; rate=16000": true,
		"audio/l":               false,
		"audio/lame":            false,
		"audio/mpeg":            false,
		"":                      false,
	} {
		require.Equal(t, expected, IsRawPCM(contentType), contentType)
	}
}
