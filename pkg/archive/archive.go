package archive

import (
	"encoding/json"
	"io"
	"time"

	"github.com/hdprajwal/podcast-creator/pkg/audio"
	"github.com/klauspost/compress/zip"
)

const ManifestName = "manifest.json"

type Bundle struct {
	Text       string
	Prompt     string
	Transcript string

	Audio    *audio.Audio
	Duration time.Duration

	// Created defaults to the current time.
	Created time.Time
}

type Manifest struct {
	Created time.Time `json:"created"`

	Duration float64 `json:"duration_seconds,omitempty"`

	Members []Member `json:"members"`
}

type Member struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

// FileName is the download name of an archive created at t.
func FileName(t time.Time) string {
	return "podcast-" + t.Format("20060102-150405") + ".zip"
}

// Write packs the non-empty parts of the bundle and a manifest describing
// them into a zip archive. Text members are deflated, audio is stored.
func Write(w io.Writer, bundle Bundle) (*Manifest, error) {
	created := bundle.Created

	if created.IsZero() {
		created = time.Now()
	}

	created = created.UTC().Truncate(time.Second)

	manifest := &Manifest{
		Created: created,
	}

	if bundle.Duration > 0 {
		manifest.Duration = bundle.Duration.Seconds()
	}

	zw := zip.NewWriter(w)

	add := func(name, contentType string, method uint16, data []byte) error {
		f, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   method,
			Modified: created,
		})

		if err != nil {
			return err
		}

		if _, err := f.Write(data); err != nil {
			return err
		}

		manifest.Members = append(manifest.Members, Member{
			Name:        name,
			ContentType: contentType,
			Size:        len(data),
		})

		return nil
	}

	texts := []struct {
		name  string
		value string
	}{
		{"input.txt", bundle.Text},
		{"prompt.txt", bundle.Prompt},
		{"transcript.txt", bundle.Transcript},
	}

	for _, t := range texts {
		if t.value == "" {
			continue
		}

		if err := add(t.name, "text/plain; charset=utf-8", zip.Deflate, []byte(t.value)); err != nil {
			return nil, err
		}
	}

	if a := bundle.Audio; a != nil && len(a.Data) > 0 {
		if err := add(a.FileName("podcast"), a.ContentType, zip.Store, a.Data); err != nil {
			return nil, err
		}
	}

	data, err := json.MarshalIndent(manifest, "", "  ")

	if err != nil {
		return nil, err
	}

	f, err := zw.CreateHeader(&zip.FileHeader{
		Name:     ManifestName,
		Method:   zip.Deflate,
		Modified: created,
	})

	if err != nil {
		return nil, err
	}

	if _, err := f.Write(data); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}

	return manifest, nil
}
