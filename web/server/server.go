// Package server exposes the renderer over HTTP: a render endpoint
// that returns a finished PNG, a scene listing, and a health check.
package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"strconv"

	"github.com/ilan-segal/raytracer/pkg/config"
	"github.com/ilan-segal/raytracer/pkg/core"
	"github.com/ilan-segal/raytracer/pkg/renderer"
	"github.com/ilan-segal/raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port   int
	cfg    *config.Config
	logger core.Logger
}

// NewServer creates a new web server
func NewServer(port int, cfg *config.Config, logger core.Logger) *Server {
	if logger == nil {
		logger = renderer.NewDefaultLogger()
	}
	return &Server{port: port, cfg: cfg, logger: logger}
}

// Start starts the web server
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Starting web server on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"scenes": scene.ListScenes()})
}

// handleRender renders a built-in scene and returns the PNG.
// Query parameters: scene (name, default "default"), width, height
// (optional resolution override). The render is abandoned if the
// client disconnects.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	selectedScene, err := scene.GetScene(sceneName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := overrideResolution(selectedScene, r); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rend := renderer.New(selectedScene, s.cfg.TracerConfig(), s.cfg.RendererConfig(), s.logger)
	img, stats, err := rend.Render(r.Context())
	if err != nil {
		// Client went away mid-render; nothing useful to write
		s.logger.Printf("Render of %q abandoned: %v\n", sceneName, err)
		return
	}
	s.logger.Printf("Rendered %q (%dx%d) in %v\n", sceneName, stats.Width, stats.Height, stats.Elapsed)

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		s.logger.Printf("Failed to write PNG response: %v\n", err)
	}
}

// overrideResolution applies optional width/height query parameters to
// the scene's camera grid.
func overrideResolution(selectedScene *scene.Scene, r *http.Request) error {
	for param, field := range map[string]*int{
		"width":  &selectedScene.Camera.ScreenColumns,
		"height": &selectedScene.Camera.ScreenRows,
	} {
		value := r.URL.Query().Get(param)
		if value == "" {
			continue
		}
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			return fmt.Errorf("invalid %s %q", param, value)
		}
		*field = parsed
	}
	return nil
}
