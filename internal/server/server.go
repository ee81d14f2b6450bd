// Package server implements the sketchwall HTTP API.
//
// The server exposes board CRUD, shape operations, rendering and export
// endpoints, plus a websocket for live board updates. Board writes go
// through [store.Manager], so every connected client sees the same
// sequence of whole-board states.
//
// # Endpoints
//
//	GET    /healthz                               liveness probe
//	GET    /api/boards                            list board summaries
//	POST   /api/boards                            create a board
//	GET    /api/boards/{boardID}                  fetch a board
//	PUT    /api/boards/{boardID}                  replace a board
//	DELETE /api/boards/{boardID}                  delete a board
//	POST   /api/boards/{boardID}/shapes           add a shape
//	PUT    /api/boards/{boardID}/shapes/{shapeID} replace a shape
//	DELETE /api/boards/{boardID}/shapes/{shapeID} remove a shape
//	POST   /api/boards/{boardID}/shapes/{shapeID}/move  move + rebind arrows
//	GET    /api/boards/{boardID}/render           render (svg, png, jpeg, pdf)
//	GET    /api/boards/{boardID}/export/excalidraw
//	GET    /api/boards/{boardID}/export/graph     connectivity diagram (dot, svg, png)
//	GET    /ws/boards/{boardID}                   live updates
//
// # Rendering
//
// Render results are cached by board content hash plus every option
// that changes the output bytes. Rasterization (png, jpeg) runs through
// a bounded pool; requests beyond the cap get 429 with Retry-After
// rather than piling up chromium sessions.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/sketchwall/sketchwall/internal/config"
	"github.com/sketchwall/sketchwall/internal/store"
	"github.com/sketchwall/sketchwall/pkg/cache"
)

// Server wires the HTTP API together.
type Server struct {
	cfg    config.Config
	log    *log.Logger
	boards *store.Manager

	artifacts cache.Cache
	keyer     cache.Keyer

	rasterSem chan struct{}
	upgrader  websocket.Upgrader
}

// New builds a server. artifacts may be nil to disable render caching.
func New(cfg config.Config, logger *log.Logger, boards *store.Manager, artifacts cache.Cache) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if artifacts == nil {
		artifacts = cache.NewNullCache()
	}
	keyer := cache.NewDefaultKeyer()
	if cfg.Cache.KeyPrefix != "" {
		keyer = cache.NewScopedKeyer(keyer, cfg.Cache.KeyPrefix)
	}

	return &Server{
		cfg:       cfg,
		log:       logger,
		boards:    boards,
		artifacts: artifacts,
		keyer:     keyer,
		rasterSem: make(chan struct{}, cfg.Render.MaxConcurrentRasters),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Boards on a whiteboard server are shared by design; the
			// API carries no cookies, so cross-origin reads are inert.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(s.logRequests)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/boards", func(r chi.Router) {
		r.Get("/", s.handleListBoards)
		r.Post("/", s.handleCreateBoard)

		r.Route("/{boardID}", func(r chi.Router) {
			r.Get("/", s.handleGetBoard)
			r.Put("/", s.handlePutBoard)
			r.Delete("/", s.handleDeleteBoard)

			r.Post("/shapes", s.handleAddShape)
			r.Put("/shapes/{shapeID}", s.handleUpdateShape)
			r.Delete("/shapes/{shapeID}", s.handleDeleteShape)
			r.Post("/shapes/{shapeID}/move", s.handleMoveShape)

			r.Get("/render", s.handleRender)
			r.Get("/export/excalidraw", s.handleExportExcalidraw)
			r.Get("/export/graph", s.handleExportGraph)
		})
	})

	r.Get("/ws/boards/{boardID}", s.handleWS)

	return r
}

// ListenAndServe runs the server until ctx is canceled, then shuts
// down gracefully. When configured, the instance is announced over
// mDNS for the lifetime of the listener.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.cfg.Server.MDNS {
		stop, err := advertise(s.cfg.Server.Name, s.cfg.Server.Port)
		if err != nil {
			s.log.Warn("mdns advertisement failed", "err", err)
		} else {
			defer stop()
			s.log.Info("announced over mdns", "name", s.cfg.Server.Name, "port", s.cfg.Server.Port)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// logRequests writes one structured line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start).Round(time.Microsecond),
		)
	})
}
