// Package server implements the development preview server behind the
// serve sub-command. It serves the built site from the output directory;
// it is not meant for production hosting.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves a built site during development.
type Server interface {
	ListenAndServe() error
	PingHandler(w http.ResponseWriter, req *http.Request)
	ServeHTTP(w http.ResponseWriter, req *http.Request)
}

type serve struct {
	ip      string
	port    string
	siteDir string
	router  *mux.Router
}

// Response is the message returned to HTTP clients of the service endpoints.
type Response struct {
	Status  string
	Message string `json:",omitempty"`
}

var requestCount = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "blogofile",
	Subsystem: "server",
	Name:      "requests_total",
	Help:      "Number of requests served by the preview server.",
})

func init() {
	prometheus.MustRegister(requestCount)
}

// NewServer returns a Server that serves siteDir on ip:port.
var NewServer = func(ip, port, siteDir string) Server {
	m := &serve{ip: ip, port: port, siteDir: siteDir}
	router := mux.NewRouter()
	router.HandleFunc("/ping", m.PingHandler).Methods("GET")
	router.Handle("/metrics", promhttp.Handler())
	router.PathPrefix("/").Handler(http.FileServer(http.Dir(siteDir)))
	m.router = router
	return m
}

func (m *serve) ListenAndServe() error {
	address := fmt.Sprintf("%s:%s", m.ip, m.port)
	slog.Info("starting preview server", "address", address, "dir", m.siteDir)
	return httpListenAndServe(address, m)
}

func (m *serve) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	requestCount.Inc()
	slog.Debug("processing request", "url", req.URL.String())
	m.router.ServeHTTP(w, req)
}

func (m *serve) PingHandler(w http.ResponseWriter, req *http.Request) {
	js, _ := json.Marshal(Response{Status: "OK"})
	httpWriterSetContentType(w, "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(js)
}
