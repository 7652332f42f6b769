package api

import (
	"net/http"
)

// catalogEntry is the published metadata for one entrypoint. Everything here
// is discoverable without invoking a handler.
type catalogEntry struct {
	Key         string         `json:"key"`
	Description string         `json:"description"`
	Price       int64          `json:"price"`
	InputSchema map[string]any `json:"inputSchema"`
}

// catalogDocument is the registration document served at the well-known path.
type catalogDocument struct {
	Name        string         `json:"name"`
	BaseURL     string         `json:"baseURL"`
	Entrypoints []catalogEntry `json:"entrypoints"`
}

// handleCatalog handles GET /.well-known/catalog.json.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	descriptors := s.deps.Catalog()

	entries := make([]catalogEntry, 0, len(descriptors))
	for _, d := range descriptors {
		entries = append(entries, catalogEntry{
			Key:         d.Key,
			Description: d.Description,
			Price:       d.Price,
			InputSchema: d.Schema.Describe(),
		})
	}

	writeJSON(w, http.StatusOK, catalogDocument{
		Name:        "fightgate",
		BaseURL:     s.baseURL,
		Entrypoints: entries,
	})
}
