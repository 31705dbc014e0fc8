package testutil

import (
	"github.com/gorilla/mux"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// FixtureServer is a fake upstream that answers GET requests with canned JSON
// bodies and counts hits per route.
type FixtureServer struct {
	*httptest.Server
	router *mux.Router
	hits   map[string]int
	mtx    sync.Mutex
}

func NewFixtureServer(t *testing.T) *FixtureServer {
	fs := &FixtureServer{
		router: mux.NewRouter(),
		hits:   make(map[string]int),
	}
	fs.Server = httptest.NewServer(fs.router)
	t.Cleanup(fs.Close)
	return fs
}

// Handle serves body with status on path. Paths may use mux variables.
func (f *FixtureServer) Handle(path string, status int, body []byte) {
	f.router.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		f.mtx.Lock()
		f.hits[path]++
		f.mtx.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(body)
	}).Methods(http.MethodGet)
}

// HandleVars answers with a body chosen from the route's mux variables.
func (f *FixtureServer) HandleVars(path string, body func(vars map[string]string) (int, []byte)) {
	f.router.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		f.mtx.Lock()
		f.hits[path]++
		f.mtx.Unlock()
		status, data := body(mux.Vars(r))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(data)
	}).Methods(http.MethodGet)
}

func (f *FixtureServer) Hits(path string) int {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.hits[path]
}
