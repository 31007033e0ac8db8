package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hdprajwal/podcast-creator/pkg/podcast"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"
)

func newGemini(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, ":streamGenerateContent") {
			w.Header().Set("Content-Type", "text/event-stream")

			for _, chunk := range [][]byte{{0x01, 0x02}, {0x03, 0x04}} {
				fmt.Fprintf(w, "data: {\"candidates\":[{\"content\":{\"role\":\"model\",\"parts\":[{\"inlineData\":{\"mimeType\":\"audio/L16;codec=pcm;rate=24000\",\"data\":%q}}]}}]}\n\n",
					base64.StdEncoding.EncodeToString(chunk))
			}

			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"[Tone: warm] Welcome to the show."}]}}]}`))
	}))

	t.Cleanup(server.Close)

	return server
}

func writeConfig(t *testing.T, url string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
providers:
  - type: google
    url: ` + url + `
    models:
      gemini-2.0-flash: {}
      gemini-2.5-flash-preview-tts: {}
`

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun(t *testing.T) {
	server := newGemini(t)
	output := t.TempDir()

	var stdout bytes.Buffer

	err := run(context.Background(), options{
		Config: writeConfig(t, server.URL),
		Input:  "-",
		Output: output,

		Token: "key",

		Archive: true,
		Yes:     true,
	}, strings.NewReader("The moon drives the tides."), &stdout)

	require.NoError(t, err)

	transcript, err := os.ReadFile(filepath.Join(output, "transcript.txt"))
	require.NoError(t, err)
	require.Equal(t, "[Tone: warm] Welcome to the show.\n", string(transcript))

	wave, err := os.ReadFile(filepath.Join(output, "podcast.wav"))
	require.NoError(t, err)
	require.Len(t, wave, 48)

	archives, err := filepath.Glob(filepath.Join(output, "podcast-*.zip"))
	require.NoError(t, err)
	require.Len(t, archives, 1)

	r, err := zip.OpenReader(archives[0])
	require.NoError(t, err)

	defer r.Close()

	require.Len(t, r.File, 5)

	require.Contains(t, stdout.String(), "Podcast written to")
}

func TestRunInvalidInput(t *testing.T) {
	server := newGemini(t)

	t.Setenv("GEMINI_API_KEY", "")

	err := run(context.Background(), options{
		Config: writeConfig(t, server.URL),
		Input:  "-",
		Output: t.TempDir(),
		Yes:    true,
	}, strings.NewReader(""), &bytes.Buffer{})

	require.Equal(t, podcast.OutcomeInvalid, podcast.Classify(err))
}

func TestEditTranscriptRequiresEditorForStdin(t *testing.T) {
	t.Setenv("EDITOR", "")

	err := editTranscript(context.Background(), "transcript.txt", true, strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)

	var stdout bytes.Buffer

	err = editTranscript(context.Background(), "transcript.txt", false, strings.NewReader("\n"), &stdout)
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "press Enter")
}

func TestEditorArgs(t *testing.T) {
	args, err := editorArgs(`code --wait`, "/tmp/transcript.txt")
	require.NoError(t, err)
	require.Equal(t, []string{"code", "--wait", "/tmp/transcript.txt"}, args)

	args, err = editorArgs(`"/Applications/My Editor/bin/edit" -n`, "t.txt")
	require.NoError(t, err)
	require.Equal(t, []string{"/Applications/My Editor/bin/edit", "-n", "t.txt"}, args)

	_, err = editorArgs("   ", "t.txt")
	require.Error(t, err)

	_, err = editorArgs(`vim "unterminated`, "t.txt")
	require.Error(t, err)
}
