// Package store provides board persistence for the server and CLI.
//
// This package defines the storage interface for boards, with
// implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for CLI and single-machine setups
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage when boards need queryable history
//
// # Architecture
//
// Boards are stored whole: a board is small (tens to hundreds of
// shapes), so read-modify-write of the full document is simpler and
// safer than per-shape patching. The [Store] interface supports:
//   - Get/Put/Delete operations
//   - Listing board summaries
//
// Concurrent mutation goes through [Manager], which serializes writers
// per board and fans out change events to subscribers (the websocket
// hub, cache invalidation).
//
// # Usage
//
// Create a store:
//
//	// Development
//	st := store.NewMemoryStore()
//
//	// CLI
//	st, err := store.NewFileStore("")  // Uses ~/.config/sketchwall/boards/
//
//	// Production
//	st, err := store.NewRedisStore(ctx, store.RedisConfig{
//	    Addr: "localhost:6379",
//	})
//
// Manage boards:
//
//	mgr := store.NewManager(st)
//	updated, err := mgr.Update(ctx, "sprint-42", func(b *canvas.Board) error {
//	    b.Shapes = append(b.Shapes, shape)
//	    return nil
//	})
package store

import (
	"context"
	"sort"
	"time"

	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/errors"
)

// Store is the interface for board storage backends.
type Store interface {
	// Get retrieves a board by id. Returns an ErrCodeBoardNotFound error
	// when the board does not exist.
	Get(ctx context.Context, boardID string) (*canvas.Board, error)

	// Put stores a board, stamping CreatedAt on first write and
	// UpdatedAt on every write.
	Put(ctx context.Context, board *canvas.Board) error

	// Delete removes a board. Deleting a missing board is not an error.
	Delete(ctx context.Context, boardID string) error

	// List returns summaries of all boards, most recently updated first.
	List(ctx context.Context) ([]BoardInfo, error)

	// Close releases backend resources.
	Close() error
}

// BoardInfo is a board summary for listings.
type BoardInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Shapes    int       `json:"shapes"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// notFound builds the error every backend returns for a missing board.
func notFound(boardID string) error {
	return errors.New(errors.ErrCodeBoardNotFound, "board %q not found", boardID)
}

// checkBoard validates a board before a write.
func checkBoard(b *canvas.Board) error {
	if b == nil {
		return errors.New(errors.ErrCodeInvalidBoard, "cannot store a nil board")
	}
	return errors.ValidateBoardID(b.ID)
}

// stamp sets the write timestamps on a board.
func stamp(b *canvas.Board) {
	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// info builds a listing entry from a board.
func info(b *canvas.Board) BoardInfo {
	return BoardInfo{
		ID:        b.ID,
		Name:      b.Name,
		Shapes:    len(b.Shapes),
		UpdatedAt: b.UpdatedAt,
	}
}

// sortInfos orders summaries most recently updated first, ties by id.
func sortInfos(infos []BoardInfo) {
	sort.Slice(infos, func(i, j int) bool {
		if !infos[i].UpdatedAt.Equal(infos[j].UpdatedAt) {
			return infos[i].UpdatedAt.After(infos[j].UpdatedAt)
		}
		return infos[i].ID < infos[j].ID
	})
}
