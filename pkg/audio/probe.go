package audio

import (
	"bytes"
	"errors"
	"time"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Probe reports the playback length of a normalized file.
func Probe(a *Audio) (time.Duration, error) {
	if a == nil || len(a.Data) == 0 {
		return 0, errors.New("no audio")
	}

	switch a.Extension {
	case ".wav":
		return probeWAV(a.Data)

	case ".mp3":
		return probeMP3(a.Data)
	}

	return 0, ErrUnsupportedFormat
}

func probeWAV(data []byte) (time.Duration, error) {
	d := wav.NewDecoder(bytes.NewReader(data))

	if !d.IsValidFile() {
		return 0, errors.New("invalid wav file")
	}

	return d.Duration()
}

func probeMP3(data []byte) (time.Duration, error) {
	d, err := mp3.NewDecoder(bytes.NewReader(data))

	if err != nil {
		return 0, err
	}

	// decoded stream is always 16 bit stereo
	frames := d.Length() / 4

	if frames <= 0 || d.SampleRate() <= 0 {
		return 0, errors.New("invalid mp3 stream")
	}

	return time.Duration(frames) * time.Second / time.Duration(d.SampleRate()), nil
}
