package server

import (
	"net/http"
	"strconv"

	"github.com/hdprajwal/podcast-creator/pkg/audio"
	"github.com/hdprajwal/podcast-creator/pkg/podcast"
)

func (s *Server) handlePodcast(w http.ResponseWriter, r *http.Request) {
	var req PodcastRequest

	if err := readJson(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	g, err := s.Generator("", req.Model)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	session := podcast.NewSession(s.credential(r))
	session.Voice = req.Voice

	result, err := g.GeneratePodcast(r.Context(), session, req.Transcript)

	if err != nil {
		writeOutcome(w, err)
		return
	}

	if d, err := audio.Probe(result); err == nil {
		w.Header().Set("X-Audio-Duration", strconv.FormatFloat(d.Seconds(), 'f', 3, 64))
	}

	attachment(w, result.ContentType, result.FileName("podcast"))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))

	w.Write(result.Data)
}
