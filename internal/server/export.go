package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sketchwall/sketchwall/pkg/errors"
	"github.com/sketchwall/sketchwall/pkg/export/excalidraw"
	"github.com/sketchwall/sketchwall/pkg/export/graphlink"
)

func (s *Server) handleExportExcalidraw(w http.ResponseWriter, r *http.Request) {
	board, err := s.boards.Get(r.Context(), chi.URLParam(r, "boardID"))
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := excalidraw.Export(board)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", board.ID+".excalidraw"))
	_, _ = w.Write(data)
}

func (s *Server) handleExportGraph(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	format := q.Get("format")
	if format == "" {
		format = "svg"
	}

	detailed := false
	if v := q.Get("detailed"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, errors.New(errors.ErrCodeInvalidOptions, "invalid detailed %q", v))
			return
		}
		detailed = b
	}

	board, err := s.boards.Get(r.Context(), chi.URLParam(r, "boardID"))
	if err != nil {
		writeError(w, err)
		return
	}

	dot := graphlink.ToDOT(board, graphlink.Options{Detailed: detailed})

	switch format {
	case "dot":
		w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
		_, _ = w.Write([]byte(dot))
	case "svg":
		data, err := graphlink.RenderSVG(dot)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
		_, _ = w.Write(data)
	case "png":
		data, err := graphlink.RenderPNG(dot)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	default:
		writeError(w, errors.New(errors.ErrCodeInvalidFormat, "invalid graph format %q (want dot, svg or png)", format))
	}
}
