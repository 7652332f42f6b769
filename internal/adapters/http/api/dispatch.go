package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleDispatch handles POST /entrypoints/{key}. The body is the raw input
// object; an empty body means an empty input. Validation, payment, and the
// handler all run inside the service dispatch pipeline.
func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	raw, err := decodeInput(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	out, err := s.deps.Dispatch(r.Context(), key, raw)
	if err != nil {
		writeDispatchError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// decodeInput reads the request body as a JSON object. Empty bodies are
// treated as empty input so free-form {}-input entrypoints can be called
// without a payload.
func decodeInput(body io.Reader) (map[string]any, error) {
	var raw map[string]any
	dec := json.NewDecoder(body)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, ErrNotObject
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}
