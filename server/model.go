package server

import (
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/puckduck/level"
	"gopkg.in/yaml.v3"
)

// LevelServer serves the level files found in Dir.
type LevelServer struct {
	Dir string
}

func NewLevelServer(dir string) *LevelServer {
	return &LevelServer{Dir: dir}
}

// Names lists the level names in Dir, sorted.
func (s *LevelServer) Names() ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(s.Dir, "*"+LEVEL_EXT))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, strings.TrimSuffix(filepath.Base(p), LEVEL_EXT))
	}
	sort.Strings(names)
	return names, nil
}

// Fetch returns the raw document of a level after checking that it parses.
func (s *LevelServer) Fetch(name string) ([]byte, ResponseCode) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return nil, LEVEL_BAD_NAME
	}
	data, err := ioutil.ReadFile(filepath.Join(s.Dir, name+LEVEL_EXT))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, LEVEL_NOT_FOUND
		}
		log.Warnf("LevelServer.Fetch %s: %v", name, err)
		return nil, LEVEL_UNREADABLE
	}
	if _, err := level.Parse(data); err != nil {
		log.Warnf("LevelServer.Fetch %s invalid: %v", name, err)
		return nil, LEVEL_INVALID
	}
	return data, LEVEL_READY
}

func (s *LevelServer) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := s.Names()
		if err != nil {
			log.Errorf("HandleList %v", err)
			w.WriteHeader(HTTP_SERVER_ERR)
			return
		}
		body, err := yaml.Marshal(Catalog{Levels: names})
		if err != nil {
			log.Errorf("HandleList marshal %v", err)
			w.WriteHeader(HTTP_SERVER_ERR)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(HTTP_SUCCESS)
		w.Write(body)
	}
}

func (s *LevelServer) HandleLevel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := way.Param(r.Context(), "name")
		data, code := s.Fetch(name)
		log.Printf("HandleLevel %q -> %s", name, code.Name())
		if code != LEVEL_READY {
			w.WriteHeader(code.ToHttp())
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(HTTP_SUCCESS)
		w.Write(data)
	}
}

const URI_LEVELS = "/levels"
const URI_LEVEL = "/levels/:name"

func (s *LevelServer) Routes(router *way.Router) {
	router.HandleFunc("GET", URI_LEVELS, s.HandleList())
	router.HandleFunc("GET", URI_LEVEL, s.HandleLevel())
}
