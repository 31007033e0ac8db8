package audio

import (
	"bytes"
	"encoding/binary"
	"mime"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRawPCM(t *testing.T) {
	chunks := []Chunk{
		{Data: []byte{0x01, 0x02}, ContentType: "audio/L16;rate=8000"},
		{Data: []byte{0x03, 0x04}, ContentType: "audio/L16;rate=8000"},
	}

	result := Normalize(chunks)
	require.NotNil(t, result)

	require.Len(t, result.Data, 48)
	require.Equal(t, ".wav", result.Extension)
	require.Equal(t, "audio/wav", result.ContentType)

	h := result.Data[:WAVHeaderSize]

	require.Equal(t, "RIFF", string(h[0:4]))
	require.Equal(t, uint32(36+4), binary.LittleEndian.Uint32(h[4:8]))
	require.Equal(t, "WAVE", string(h[8:12]))
	require.Equal(t, "fmt ", string(h[12:16]))
	require.Equal(t, uint32(16), binary.LittleEndian.Uint32(h[16:20]))
	require.Equal(t, uint16(1), binary.LittleEndian.Uint16(h[20:22]))
	require.Equal(t, uint16(1), binary.LittleEndian.Uint16(h[22:24]))
	require.Equal(t, uint32(8000), binary.LittleEndian.Uint32(h[24:28]))
	require.Equal(t, uint32(16000), binary.LittleEndian.Uint32(h[28:32]))
	require.Equal(t, uint16(2), binary.LittleEndian.Uint16(h[32:34]))
	require.Equal(t, uint16(16), binary.LittleEndian.Uint16(h[34:36]))
	require.Equal(t, "data", string(h[36:40]))
	require.Equal(t, uint32(4), binary.LittleEndian.Uint32(h[40:44]))

	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, result.Data[WAVHeaderSize:])

	require.Equal(t, &PCMParameters{BitsPerSample: 16, SampleRate: 8000, NumChannels: 1}, result.PCM)
}

func TestNormalizeRawPCMWithHostMIMEEntry(t *testing.T) {
	require.NoError(t, mime.AddExtensionType(".l16", "audio/L16"))

	result := Normalize([]Chunk{
		{Data: []byte{0x01, 0x02}, ContentType: "audio/L16;rate=8000"},
		{Data: []byte{0x03, 0x04}, ContentType: "audio/L16;rate=8000"},
	})

	require.NotNil(t, result)
	require.Len(t, result.Data, 48)
	require.Equal(t, ".wav", result.Extension)
	require.Equal(t, "audio/wav", result.ContentType)
	require.NotNil(t, result.PCM)
}

func TestNormalizePreservesOrder(t *testing.T) {
	a := Chunk{Data: []byte{0x0a, 0x0a}, ContentType: "audio/L16;rate=24000"}
	b := Chunk{Data: []byte{0x0b, 0x0b}, ContentType: "audio/L16;rate=24000"}
	c := Chunk{Data: []byte{0x0c, 0x0c}, ContentType: "audio/L16;rate=24000"}

	forward := Normalize([]Chunk{a, b, c})
	backward := Normalize([]Chunk{c, b, a})

	require.NotEqual(t, forward.Data, backward.Data)
	require.Equal(t, []byte{0x0a, 0x0a, 0x0b, 0x0b, 0x0c, 0x0c}, forward.Data[WAVHeaderSize:])
	require.Equal(t, []byte{0x0c, 0x0c, 0x0b, 0x0b, 0x0a, 0x0a}, backward.Data[WAVHeaderSize:])
}

func TestNormalizeHeaderSizes(t *testing.T) {
	var chunks []Chunk
	var total int

	for i := 1; i <= 10; i++ {
		data := bytes.Repeat([]byte{byte(i)}, i*2)
		total += len(data)

		chunks = append(chunks, Chunk{Data: data, ContentType: "audio/L16;rate=24000"})
	}

	result := Normalize(chunks)
	require.NotNil(t, result)

	require.Len(t, result.Data, WAVHeaderSize+total)
	require.Equal(t, uint32(36+total), binary.LittleEndian.Uint32(result.Data[4:8]))
	require.Equal(t, uint32(total), binary.LittleEndian.Uint32(result.Data[40:44]))
}

func TestNormalizeProducesValidWAV(t *testing.T) {
	samples := make([]byte, 2400)

	result := Normalize([]Chunk{
		{Data: samples[:1200], ContentType: "audio/L16;codec=pcm;rate=24000"},
		{Data: samples[1200:], ContentType: "audio/L16;codec=pcm;rate=24000"},
	})

	require.NotNil(t, result)

	d := wav.NewDecoder(bytes.NewReader(result.Data))
	require.True(t, d.IsValidFile())

	require.Equal(t, uint32(24000), d.SampleRate)
	require.Equal(t, uint16(1), d.NumChans)
	require.Equal(t, uint16(16), d.BitDepth)
}

func TestNormalizeSamplesDecode(t *testing.T) {
	result := Normalize([]Chunk{
		{Data: []byte{0x01, 0x00, 0xff, 0xff}, ContentType: "audio/L16;rate=16000"},
		{Data: []byte{0xff, 0x7f}, ContentType: "audio/L16;rate=16000"},
	})

	require.NotNil(t, result)

	buf, err := wav.NewDecoder(bytes.NewReader(result.Data)).FullPCMBuffer()
	require.NoError(t, err)

	require.Equal(t, &goaudio.Format{NumChannels: 1, SampleRate: 16000}, buf.Format)
	require.Equal(t, []int{1, -1, 32767}, buf.Data)
}

func TestNormalizePassThrough(t *testing.T) {
	payload := []byte("ID3\x03\x00\x00\x00\x00\x00\x00frame-data")

	result := Normalize([]Chunk{
		{Data: payload, ContentType: "audio/mpeg"},
	})

	require.NotNil(t, result)
	require.Equal(t, payload, result.Data)
	require.Equal(t, ".mp3", result.Extension)
	require.Equal(t, "audio/mpeg", result.ContentType)
	require.Nil(t, result.PCM)
}

func TestNormalizePassThroughConcatenates(t *testing.T) {
	result := Normalize([]Chunk{
		{Data: []byte("RIFF-part-1"), ContentType: "audio/wav"},
		{Text: "thinking"},
		{Data: []byte("-part-2"), ContentType: "audio/wav"},
	})

	require.NotNil(t, result)
	require.Equal(t, []byte("RIFF-part-1-part-2"), result.Data)
	require.Equal(t, ".wav", result.Extension)
}

func TestNormalizeDiagnosticOnly(t *testing.T) {
	chunks := []Chunk{
		{Text: "I cannot read this aloud"},
		{Text: "finished"},
		{ContentType: "audio/L16;rate=24000"},
	}

	require.Nil(t, Normalize(chunks))
	require.Nil(t, Normalize(nil))

	require.Equal(t, []string{"I cannot read this aloud", "finished"}, Diagnostics(chunks))
}

func TestNormalizeIgnoresText(t *testing.T) {
	result := Normalize([]Chunk{
		{Text: "before"},
		{Data: []byte{0x01, 0x02}, ContentType: "audio/L16;rate=16000"},
		{Text: "between"},
		{Data: []byte{0x03, 0x04}, ContentType: "audio/L16;rate=16000"},
	})

	require.NotNil(t, result)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, result.Data[WAVHeaderSize:])
	require.Equal(t, uint32(16000), binary.LittleEndian.Uint32(result.Data[24:28]))
}

func TestNormalizeFirstChunkGoverns(t *testing.T) {
	t.Run("pcm first", func(t *testing.T) {
		result := Normalize([]Chunk{
			{Data: []byte{0x01, 0x02}, ContentType: "audio/L16;rate=8000"},
			{Data: []byte{0x03, 0x04}, ContentType: "audio/mpeg"},
			{Data: []byte{0x05, 0x06}, ContentType: "audio/L16;rate=44100"},
		})

		require.Equal(t, ".wav", result.Extension)
		require.Equal(t, uint32(8000), binary.LittleEndian.Uint32(result.Data[24:28]))
		require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}, result.Data[WAVHeaderSize:])
	})

	t.Run("compressed first", func(t *testing.T) {
		result := Normalize([]Chunk{
			{Data: []byte("mp3"), ContentType: "audio/mpeg"},
			{Data: []byte("pcm"), ContentType: "audio/L16;rate=8000"},
		})

		require.Equal(t, ".mp3", result.Extension)
		require.Equal(t, []byte("mp3pcm"), result.Data)
	})
}

func TestWAVHeaderFields(t *testing.T) {
	h := WAVHeader(PCMParameters{BitsPerSample: 24, SampleRate: 48000, NumChannels: 2}, 600)

	require.Len(t, h, WAVHeaderSize)
	require.Equal(t, uint32(636), binary.LittleEndian.Uint32(h[4:8]))
	require.Equal(t, uint16(2), binary.LittleEndian.Uint16(h[22:24]))
	require.Equal(t, uint32(48000*2*3), binary.LittleEndian.Uint32(h[28:32]))
	require.Equal(t, uint16(6), binary.LittleEndian.Uint16(h[32:34]))
	require.Equal(t, uint16(24), binary.LittleEndian.Uint16(h[34:36]))
	require.Equal(t, uint32(600), binary.LittleEndian.Uint32(h[40:44]))
}
