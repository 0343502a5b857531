// Package ui serves the operator interface.
package ui

import (
	"context"
	"crypto/rand"
	"embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/forlenza-industrial/scada"
)

const contentTypeJson = "application/json"

//go:embed assets
var assets embed.FS

// Status is reported by the /api/status endpoint.
type Status struct {
	Title     string `json:"title,omitempty"`
	Product   string `json:"product"`
	OSVersion string `json:"os_version"`
	OSLabel   string `json:"os_label"`
	Source    string `json:"detection_source"`
	DevMode   bool   `json:"dev_mode"`
}

// Server serves the embedded interface over HTTP.
type Server struct {
	server *http.Server
	mux    *http.ServeMux
	addr   string
	ln     net.Listener
}

// NewServer returns a server for addr, serving status on /api/status.
func NewServer(addr string, status Status) (*Server, error) {
	content, err := fs.Sub(assets, "assets")
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	s := &Server{
		server: &http.Server{Handler: logRequest(mux), ReadHeaderTimeout: 5 * time.Second},
		mux:    mux,
		addr:   addr,
	}
	mux.Handle("/", http.FileServer(http.FS(content)))
	s.Register("/api/status", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewEncoder(w).Encode(status); err != nil {
			scada.Log(r.Context(), scada.ProxyLogger.Load().Error().Err(err), "could not encode status")
		}
	}))
	return s, nil
}

// Register adds a JSON endpoint. It must be called before Serve.
func (s *Server) Register(pattern string, handler http.Handler) {
	s.mux.Handle(pattern, jsonResponse(handler))
}

// Listen binds the server address. It must be called before Serve.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.ln = ln
	return nil
}

// Serve serves requests until Stop is called.
func (s *Server) Serve() error {
	if err := s.server.Serve(s.ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// URL returns the address the interface is reachable at, once listening.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String() + "/"
}

// Stop shuts the server down, waiting at most 2 seconds for open requests.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*2)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func jsonResponse(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeJson)
		next.ServeHTTP(w, r)
	})
}

func logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), scada.ReqIdCtxKey{}, requestID())
		scada.Log(ctx, scada.ProxyLogger.Load().Debug(), "%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestID() string {
	b := make([]byte, 3) // 6 chars
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
