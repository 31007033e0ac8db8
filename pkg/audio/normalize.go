package audio

import (
	"bytes"
	"log/slog"
)

// Normalize turns the chunks of one synthesis call into a single playable
// file, or nil when no chunk carried audio.
//
// The MIME type of the first audio-bearing chunk decides the handling of the
// whole stream. A type with a known extension is passed through unchanged,
// anything else is treated as raw PCM and gets a WAV header. Later chunks
// declaring a different type are still appended under that first decision.
func Normalize(chunks []Chunk) *Audio {
	var first *Chunk
	var payload bytes.Buffer

	for i := range chunks {
		c := &chunks[i]

		if !c.IsAudio() {
			continue
		}

		if first == nil {
			first = c
		} else if mediaType(c.ContentType) != mediaType(first.ContentType) {
			slog.Warn("mixed audio types in stream", "first", first.ContentType, "chunk", c.ContentType, "index", i)
		}

		payload.Write(c.Data)
	}

	if first == nil {
		return nil
	}

	if ext, ok := Extension(first.ContentType); ok {
		return &Audio{
			Data: payload.Bytes(),

			ContentType: mediaType(first.ContentType),
			Extension:   ext,
		}
	}

	params := ParsePCMParameters(first.ContentType)

	data := make([]byte, 0, WAVHeaderSize+payload.Len())
	data = append(data, WAVHeader(params, payload.Len())...)
	data = append(data, payload.Bytes()...)

	return &Audio{
		Data: data,

		ContentType: "audio/wav",
		Extension:   ".wav",

		PCM: &params,
	}
}

// Diagnostics returns the text of all non-audio chunks in arrival order.
func Diagnostics(chunks []Chunk) []string {
	var result []string

	for _, c := range chunks {
		if c.IsAudio() || c.Text == "" {
			continue
		}

		result = append(result, c.Text)
	}

	return result
}
