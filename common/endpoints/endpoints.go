// Package endpoints serves a registry's stats and bindings over http, the
// way a Twitter server exposes its admin pages.
package endpoints

import (
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/twitter/goice/common/stats"
)

// Dumper renders a textual debug dump. *ice.Registry is one.
type Dumper interface {
	Dump() string
}

func NewTwitterServer(addr string, stats stats.StatsReceiver, dumper Dumper) *TwitterServer {
	s := &TwitterServer{
		Addr:   addr,
		Stats:  stats,
		Dumper: dumper,
		mux:    http.NewServeMux(),
	}
	s.mux.HandleFunc("/", helpHandler)
	s.mux.HandleFunc("/health", healthHandler)
	s.mux.HandleFunc("/admin/metrics.json", s.statsHandler)
	s.mux.HandleFunc("/admin/bindings", s.bindingsHandler)
	return s
}

type TwitterServer struct {
	Addr   string
	Stats  stats.StatsReceiver
	Dumper Dumper

	mux *http.ServeMux
}

func (s *TwitterServer) Serve() error {
	log.Infof("Serving http & stats on %v", s.Addr)
	return http.ListenAndServe(s.Addr, s.mux)
}

// Handler is the http handler Serve uses.
func (s *TwitterServer) Handler() http.Handler { return s.mux }

func helpHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Error(w, "Common paths: '/health', '/admin/metrics.json', '/admin/bindings'", http.StatusNotImplemented)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "ok")
}

func (s *TwitterServer) statsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	pretty := r.URL.Query().Get("pretty") == "true"
	if _, err := w.Write(s.Stats.Render(pretty)); err != nil {
		log.WithError(err).Info("Couldn't write stats")
	}
}

func (s *TwitterServer) bindingsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, s.Dumper.Dump())
}
