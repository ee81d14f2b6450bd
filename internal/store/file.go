package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/errors"
	boardio "github.com/sketchwall/sketchwall/pkg/io"
)

// FileStore keeps one JSON file per board in a config directory.
// Board ids are validated before touching the filesystem, so a board id
// can never escape the base directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based board store.
// If baseDir is empty, defaults to ~/.config/sketchwall/boards/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "sketchwall", "boards")
	}
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("create board dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) boardPath(boardID string) string {
	return filepath.Join(s.baseDir, boardID+".json")
}

func (s *FileStore) Get(ctx context.Context, boardID string) (*canvas.Board, error) {
	if err := errors.ValidateBoardID(boardID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	path := s.boardPath(boardID)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, notFound(boardID)
	}
	return boardio.ImportJSON(path)
}

func (s *FileStore) Put(ctx context.Context, board *canvas.Board) error {
	if err := checkBoard(board); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, err := boardio.ImportJSON(s.boardPath(board.ID)); err == nil && board.CreatedAt.IsZero() {
		board.CreatedAt = prev.CreatedAt
	}
	stamp(board)
	return boardio.ExportJSON(board, s.boardPath(board.ID))
}

func (s *FileStore) Delete(ctx context.Context, boardID string) error {
	if err := errors.ValidateBoardID(boardID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.boardPath(boardID)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeStore, err, "remove board file")
	}
	return nil
}

func (s *FileStore) List(ctx context.Context) ([]BoardInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read board dir")
	}

	var infos []BoardInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		b, err := boardio.ImportJSON(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		infos = append(infos, info(b))
	}
	sortInfos(infos)
	return infos, nil
}

func (s *FileStore) Close() error { return nil }

// Path returns the base directory for board files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)
