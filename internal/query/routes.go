package query

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cpslab/papersite/internal/datastore"
	"github.com/cpslab/papersite/internal/papers"
)

// RegisterRoutes mounts the query endpoints under /api on the given router.
// Every endpoint answers 200 with a {"data": ...} envelope; load failures
// show up as empty data.
func RegisterRoutes(r chi.Router, api *API) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/papers", handlePapers(api))
		r.Get("/papers/{id}", handlePaperByID(api))
		r.Get("/categories", handleCategories(api))
		r.Get("/overview", handleOverview(api))
		r.Get("/overview/{section}", handleOverviewBySection(api))
		r.Get("/status", handleStatus(api))
	})
}

func handlePapers(api *API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c := r.URL.Query().Get("category"); c != "" {
			writeJSON(w, http.StatusOK, api.PapersByCategory(r.Context(), papers.Category(c)))
			return
		}
		writeJSON(w, http.StatusOK, api.AllPapers(r.Context()))
	}
}

func handlePaperByID(api *API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, api.PaperByID(r.Context(), chi.URLParam(r, "id")))
	}
}

func handleCategories(api *API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, api.Categories())
	}
}

func handleOverview(api *API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, api.OverviewAll(r.Context()))
	}
}

func handleOverviewBySection(api *API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, api.OverviewBySection(r.Context(), chi.URLParam(r, "section")))
	}
}

// handleStatus reports the load state of each document without triggering a load.
func handleStatus(api *API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := api.Store()
		writeJSON(w, http.StatusOK, Response[map[string]string]{Data: map[string]string{
			string(datastore.DocumentPapers):   store.State(datastore.DocumentPapers).String(),
			string(datastore.DocumentOverview): store.State(datastore.DocumentOverview).String(),
		}})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
