package site

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/docsite/internal/doctree"
	"github.com/ziadkadry99/docsite/internal/navigation"
	"github.com/ziadkadry99/docsite/internal/search"
)

// RegisterRoutes mounts the reader API and app shell on the given router.
// If assets is non-nil it is served under /src/.
func RegisterRoutes(r chi.Router, s *Site, assets http.FileSystem) {
	r.Get("/", handleShell(s))
	if assets != nil {
		r.Handle("/src/*", http.StripPrefix("/src/", http.FileServer(assets)))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/nav", handleNav(s))
		r.Get("/search", handleSearch(s))
		r.Post("/sessions", handleCreateSession(s))
		r.Route("/sessions/{sid}", func(r chi.Router) {
			r.Get("/", handleGetSession(s))
			r.Post("/load/{docID}", handleLoad(s))
			r.Post("/toggle/{docID}", handleToggle(s))
		})
	})
}

// navResponse is the JSON response for /api/nav.
type navResponse struct {
	Title    string            `json:"title"`
	Sections []doctree.Section `json:"sections"`
}

// sessionResponse describes a session and its sidebar.
type sessionResponse struct {
	Session  string              `json:"session"`
	State    navigation.Snapshot `json:"state"`
	Nav      string              `json:"nav"`
	Document *Document           `json:"document,omitempty"`
}

// searchResponse is the JSON response for /api/search. Active is false when
// the query is blank.
type searchResponse struct {
	Query   string          `json:"query"`
	Active  bool            `json:"active"`
	Results []search.Result `json:"results"`
}

func handleShell(s *Site) http.HandlerFunc {
	tmpl := template.Must(template.New("shell").Parse(shellTemplate))
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, struct{ Title string }{Title: s.Title()}); err != nil {
			s.logger.Error("rendering shell", "error", err)
		}
	}
}

func handleNav(s *Site) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, navResponse{Title: s.Title(), Sections: s.Tree().Sections()})
	}
}

func handleSearch(s *Site) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		results := s.Search(q)
		resp := searchResponse{Query: q, Active: results != nil, Results: results}
		if resp.Results == nil {
			resp.Results = []search.Result{}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleCreateSession(s *Site) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, doc := s.NewSession(r.Context())
		snap := sess.Snapshot()
		writeJSON(w, http.StatusCreated, sessionResponse{
			Session:  sess.ID(),
			State:    snap,
			Nav:      RenderNav(s.Tree(), snap),
			Document: doc,
		})
	}
}

func handleGetSession(s *Site) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.Session(chi.URLParam(r, "sid"))
		if err != nil {
			writeError(w, err)
			return
		}
		snap := sess.Snapshot()
		writeJSON(w, http.StatusOK, sessionResponse{
			Session: sess.ID(),
			State:   snap,
			Nav:     RenderNav(s.Tree(), snap),
		})
	}
}

func handleLoad(s *Site) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.Session(chi.URLParam(r, "sid"))
		if err != nil {
			writeError(w, err)
			return
		}
		doc, err := sess.Load(r.Context(), chi.URLParam(r, "docID"))
		if err != nil {
			if !errors.Is(err, ErrSuperseded) {
				s.logger.Warn("load failed", "session", sess.ID(), "error", err)
			}
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sessionResponse{
			Session:  sess.ID(),
			State:    doc.State,
			Nav:      RenderNav(s.Tree(), doc.State),
			Document: doc,
		})
	}
}

func handleToggle(s *Site) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.Session(chi.URLParam(r, "sid"))
		if err != nil {
			writeError(w, err)
			return
		}
		snap, err := sess.Toggle(chi.URLParam(r, "docID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sessionResponse{
			Session: sess.ID(),
			State:   snap,
			Nav:     RenderNav(s.Tree(), snap),
		})
	}
}

func writeError(w http.ResponseWriter, err error) {
	msg := Describe(err)
	writeJSON(w, msg.Status, msg)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
