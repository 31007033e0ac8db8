package server

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/hdprajwal/podcast-creator/pkg/archive"
	"github.com/hdprajwal/podcast-creator/pkg/audio"
)

func (s *Server) handleArchive(w http.ResponseWriter, r *http.Request) {
	var req ArchiveRequest

	if err := readJson(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	bundle := archive.Bundle{
		Text:       req.Text,
		Prompt:     req.Prompt,
		Transcript: req.Transcript,

		Created: time.Now(),
	}

	if len(req.Audio) > 0 {
		ext, ok := audio.Extension(req.ContentType)

		if !ok {
			writeError(w, http.StatusBadRequest, errors.New("unsupported audio content type: "+req.ContentType))
			return
		}

		bundle.Audio = &audio.Audio{
			Data: req.Audio,

			ContentType: req.ContentType,
			Extension:   ext,
		}

		if d, err := audio.Probe(bundle.Audio); err == nil {
			bundle.Duration = d
		}
	}

	var buf bytes.Buffer

	if _, err := archive.Write(&buf, bundle); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	attachment(w, "application/zip", archive.FileName(bundle.Created))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))

	w.Write(buf.Bytes())
}
