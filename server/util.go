package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/hdprajwal/podcast-creator/pkg/podcast"
)

const maxBodySize = 64 << 20

func readJson(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errors.New("invalid request body: " + err.Error())
	}

	return nil
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	errorType := "invalid_request_error"

	switch {
	case code == http.StatusUnauthorized:
		errorType = "authentication_error"
	case code == http.StatusUnprocessableEntity:
		errorType = "empty_result_error"
	case code >= 500:
		errorType = "upstream_error"
	}

	resp := ErrorResponse{
		Error: Error{
			Type:    errorType,
			Message: err.Error(),
		},
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(resp)
}

// writeOutcome reports a generator error with the status of its outcome.
func writeOutcome(w http.ResponseWriter, err error) {
	switch podcast.Classify(err) {
	case podcast.OutcomeInvalid:
		writeError(w, http.StatusBadRequest, err)

	case podcast.OutcomeEmpty:
		writeError(w, http.StatusUnprocessableEntity, err)

	default:
		writeError(w, http.StatusBadGateway, err)
	}
}

func (s *Server) credential(r *http.Request) string {
	for _, h := range []string{"X-Goog-Api-Key", "X-Api-Key"} {
		if val := strings.TrimSpace(r.Header.Get(h)); val != "" {
			return val
		}
	}

	return s.Podcast.Token
}

func attachment(w http.ResponseWriter, contentType, name string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
}
