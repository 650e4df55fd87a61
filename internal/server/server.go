package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"

	"github.com/openfloor/planner/pkg/config"
	"github.com/openfloor/planner/pkg/editor"
	"github.com/openfloor/planner/pkg/export"
	"github.com/openfloor/planner/pkg/validation"
)

// Server is the local development server for interactive editing. It owns
// one floorplan; all handlers serialize access through a single mutex.
type Server struct {
	mu   sync.Mutex
	fp   *editor.Floorplan
	cfg  *config.Config
	port int
}

// New creates a server around the given floorplan.
func New(fp *editor.Floorplan, cfg *config.Config, port int) *Server {
	return &Server{
		fp:   fp,
		cfg:  cfg,
		port: port,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/plan", s.handleGetPlan)
	mux.HandleFunc("PUT /api/plan", s.handlePutPlan)
	mux.HandleFunc("GET /api/plan/vertices", s.handleVertices)
	mux.HandleFunc("GET /api/plan.png", s.handlePNG)
	mux.HandleFunc("GET /api/plan.dxf", s.handleDXF)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /", s.handleIndex)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Planner server starting on http://localhost%s", addr)

	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>Planner</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>Planner</h1>
<p>Editor UI not yet embedded. Fetch <code>/api/plan</code> or <code>/api/plan.png</code> directly.</p>
</div>
</body></html>`)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	data, err := export.ProjectJSON(s.fp.Floors())
	s.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// handlePutPlan replaces the whole floor set. The body is schema-validated
// before it touches the model, so a rejected upload leaves the current plan
// untouched.
func (s *Server) handlePutPlan(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	floors, err := export.LoadProject(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.mu.Lock()
	s.fp.Load(floors)
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleVertices(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	data, err := export.VerticesJSON(s.fp.Floors())
	s.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) handlePNG(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	data, err := export.PNG(s.fp.Floors(), s.cfg.Render)
	s.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(data)
}

func (s *Server) handleDXF(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	data := export.DXF(s.fp.Floors())
	s.mu.Unlock()
	w.Header().Set("Content-Type", "application/dxf")
	w.Write(data)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	report := validation.ValidatePlan(s.fp.Floors())
	s.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
