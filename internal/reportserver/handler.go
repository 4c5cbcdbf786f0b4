// Package reportserver serves stored survey results over HTTP.
package reportserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"scentsurvey/internal/report"
	"scentsurvey/internal/results"
)

// Source is the read side of the result store.
type Source interface {
	Get(ctx context.Context, id string) (results.Result, error)
	List(ctx context.Context, limit int) ([]results.Result, error)
}

// NewHandler builds the HTTP handler for the index, result pages and JSON.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Source == nil {
		return nil, errors.New("reportserver: source is required")
	}

	mux := http.NewServeMux()
	mux.Handle("/{$}", getOnly(serveIndex(cfg.Source, cfg.Limit)))
	mux.Handle("/results/{id}", getOnly(servePage(cfg.Source)))
	mux.Handle("/api/results/{id}", getOnly(serveJSON(cfg.Source)))
	return mux, nil
}

func getOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// serveIndex lists stored results newest first.
func serveIndex(source Source, limit int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		list, err := source.List(r.Context(), limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = indexPage(list).Render(r.Context(), w)
	})
}

// servePage renders one result with the shared result page component.
func servePage(source Source) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, ok := lookup(w, r, source)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = report.ResultPage(result).Render(r.Context(), w)
	})
}

func serveJSON(source Source) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, ok := lookup(w, r, source)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "application/json")
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		_ = encoder.Encode(result)
	})
}

func lookup(w http.ResponseWriter, r *http.Request, source Source) (results.Result, bool) {
	result, err := source.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, results.ErrNotFound) {
		http.NotFound(w, r)
		return results.Result{}, false
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return results.Result{}, false
	}
	return result, true
}
