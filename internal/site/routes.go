package site

import (
	"bytes"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the page routes and the stylesheet on the given
// router. Paths are relative to the router's mount point.
func RegisterRoutes(r chi.Router, renderer *Renderer) {
	for _, route := range Routes {
		h := handlePage(renderer, route)
		r.Get(route.Path, h)
		if route.Path != "/" {
			r.Get(route.Path+"/", h)
		}
	}
	r.Get("/"+StylesheetName, handleStylesheet)
}

func handlePage(renderer *Renderer, route Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := renderer.Render(r.Context(), &buf, route); err != nil {
			log.Printf("rendering %s: %v", route.Name, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	}
}

func handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(cssContent))
}
