package server

import (
	"net/http"

	"github.com/hdprajwal/podcast-creator/pkg/podcast"
)

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	models := s.Models()

	if models == nil {
		models = []string{}
	}

	writeJson(w, ModelList{
		Models: models,

		Styles:    podcast.Styles,
		Durations: podcast.Durations,
		Audiences: podcast.Audiences,
	})
}
