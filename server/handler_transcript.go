package server

import (
	"net/http"

	"github.com/hdprajwal/podcast-creator/pkg/podcast"
)

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	var req TranscriptRequest

	if err := readJson(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	g, err := s.Generator(req.Model, "")

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	session := podcast.NewSession(s.credential(r))

	transcript, err := g.GenerateTranscript(r.Context(), session, req.Text, podcast.Parameters{
		Style:    req.Style,
		Duration: req.Duration,
		Audience: req.Audience,
	})

	if err != nil {
		writeOutcome(w, err)
		return
	}

	writeJson(w, TranscriptResponse{
		ID: session.ID,

		Prompt:     session.Prompt,
		Transcript: transcript,
	})
}
