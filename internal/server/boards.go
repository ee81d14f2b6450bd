package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sketchwall/sketchwall/internal/store"
	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/errors"
	boardio "github.com/sketchwall/sketchwall/pkg/io"
)

func (s *Server) handleListBoards(w http.ResponseWriter, r *http.Request) {
	infos, err := s.boards.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if infos == nil {
		infos = []store.BoardInfo{}
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleCreateBoard(w http.ResponseWriter, r *http.Request) {
	board, err := boardio.ReadJSON(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	if board.ID == "" {
		board.ID = uuid.NewString()
	}

	if err := s.boards.Put(r.Context(), board); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, board)
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	board, err := s.boards.Get(r.Context(), chi.URLParam(r, "boardID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (s *Server) handlePutBoard(w http.ResponseWriter, r *http.Request) {
	board, err := boardio.ReadJSON(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	board.ID = chi.URLParam(r, "boardID")

	if err := s.boards.Put(r.Context(), board); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (s *Server) handleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	if err := s.boards.Delete(r.Context(), chi.URLParam(r, "boardID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddShape(w http.ResponseWriter, r *http.Request) {
	var shape canvas.Shape
	if err := decodeJSON(r, &shape); err != nil {
		writeError(w, err)
		return
	}

	board, err := s.boards.Update(r.Context(), chi.URLParam(r, "boardID"), func(b *canvas.Board) error {
		return applyAddShape(b, &shape)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, board)
}

func (s *Server) handleUpdateShape(w http.ResponseWriter, r *http.Request) {
	var shape canvas.Shape
	if err := decodeJSON(r, &shape); err != nil {
		writeError(w, err)
		return
	}

	board, err := s.boards.Update(r.Context(), chi.URLParam(r, "boardID"), func(b *canvas.Board) error {
		return applyUpdateShape(b, chi.URLParam(r, "shapeID"), &shape)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (s *Server) handleDeleteShape(w http.ResponseWriter, r *http.Request) {
	board, err := s.boards.Update(r.Context(), chi.URLParam(r, "boardID"), func(b *canvas.Board) error {
		return applyDeleteShape(b, chi.URLParam(r, "shapeID"))
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

// moveRequest is the body of a shape move.
type moveRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (s *Server) handleMoveShape(w http.ResponseWriter, r *http.Request) {
	var move moveRequest
	if err := decodeJSON(r, &move); err != nil {
		writeError(w, err)
		return
	}

	board, err := s.boards.Update(r.Context(), chi.URLParam(r, "boardID"), func(b *canvas.Board) error {
		return applyMoveShape(b, chi.URLParam(r, "shapeID"), move.X, move.Y)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	return nil
}
