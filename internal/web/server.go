package web

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"

	"searchpath/internal/logging"
	"searchpath/internal/model"
	"searchpath/internal/report"
	"searchpath/internal/searchpath"
)

//go:embed help.md
var helpMD string

// DefaultAddr is used by StartServer when addr is empty.
const DefaultAddr = "localhost:8080"

type server struct {
	sp *searchpath.SearchPath
}

// NewHandler returns the API routes for sp. The handler only reads sp.
func NewHandler(sp *searchpath.SearchPath) http.Handler {
	s := &server{sp: sp}

	router := httprouter.New()
	router.GET("/api/path", s.handlePath)
	router.GET("/api/find", s.handleFind)
	router.GET("/api/ls", s.handleLs)
	router.GET("/api/help", s.handleHelp)
	return router
}

// StartServer serves the API for sp on addr until the listener fails.
func StartServer(sp *searchpath.SearchPath, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	logger := logging.GetLogger("web")

	fmt.Printf("Starting searchpath web server at http://%s\n", addr)
	logger.Info().Str("addr", addr).Int("entries", sp.Len()).Msg("Serving search path")

	if err := http.ListenAndServe(addr, NewHandler(sp)); err != nil {
		return fmt.Errorf("web server on %s: %w", addr, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger := logging.GetLogger("web")
		logger.Warn().Err(err).Msg("Failed to write response")
	}
}

func (s *server) handlePath(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	entries := model.Inspect(s.sp)

	response := struct {
		Entries []model.DirEntry `json:"Entries"`
		Summary model.Summary    `json:"Summary"`
		Report  string           `json:"Report"`
		Version string           `json:"Version"`
	}{
		Entries: entries,
		Summary: model.Summarize(entries),
		Report:  report.Listing(entries, false),
		Version: model.Version,
	}
	writeJSON(w, response)
}

func (s *server) handleFind(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	name := q.Get("name")
	if name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	kind, ok := searchpath.ParseKind(q.Get("kind"))
	if !ok {
		http.Error(w, "kind must be any, file or dir", http.StatusBadRequest)
		return
	}
	all, _ := strconv.ParseBool(q.Get("all"))

	writeJSON(w, report.Resolve(s.sp, name, kind, all))
}

// LsEntry is one item of a directory listing.
type LsEntry struct {
	Name    string `json:"Name"`
	IsDir   bool   `json:"IsDir"`
	Size    int64  `json:"Size"`
	Mode    string `json:"Mode"`
	ModTime string `json:"ModTime"`
}

func (s *server) handleLs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	idx, err := strconv.Atoi(r.URL.Query().Get("index"))
	paths := s.sp.Paths()
	if err != nil || idx < 0 || idx >= len(paths) {
		http.Error(w, "index must name a search path entry", http.StatusBadRequest)
		return
	}

	files, err := os.ReadDir(paths[idx])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	entries := []LsEntry{}
	for _, f := range files {
		info, err := f.Info()
		if err != nil {
			continue
		}
		entries = append(entries, LsEntry{
			Name:    f.Name(),
			IsDir:   f.IsDir(),
			Size:    info.Size(),
			Mode:    info.Mode().String(),
			ModTime: info.ModTime().Format("Jan 02 15:04"),
		})
	}
	writeJSON(w, entries)
}

func (s *server) handleHelp(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	text := strings.ReplaceAll(helpMD, "{{VERSION}}", model.Version)

	w.Header().Set("Content-Type", "text/markdown")
	w.Write([]byte(text))
}
