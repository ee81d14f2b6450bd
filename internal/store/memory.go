package store

import (
	"context"
	"sync"

	"github.com/sketchwall/sketchwall/pkg/canvas"
)

// MemoryStore is an in-process board store for development and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	boards map[string]*canvas.Board
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{boards: make(map[string]*canvas.Board)}
}

func (s *MemoryStore) Get(ctx context.Context, boardID string) (*canvas.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.boards[boardID]
	if !ok {
		return nil, notFound(boardID)
	}
	return b.Clone(), nil
}

func (s *MemoryStore) Put(ctx context.Context, board *canvas.Board) error {
	if err := checkBoard(board); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.boards[board.ID]; ok && board.CreatedAt.IsZero() {
		board.CreatedAt = prev.CreatedAt
	}
	stamp(board)
	s.boards[board.ID] = board.Clone()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, boardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.boards, boardID)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]BoardInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]BoardInfo, 0, len(s.boards))
	for _, b := range s.boards {
		infos = append(infos, info(b))
	}
	sortInfos(infos)
	return infos, nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.boards = make(map[string]*canvas.Board)
	return nil
}

var _ Store = (*MemoryStore)(nil)
