package store

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/sketchwall/sketchwall/pkg/cache"
	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/errors"
)

// RedisConfig configures the Redis board store.
type RedisConfig struct {
	// Addr is the host:port of the Redis server.
	Addr string

	// Password is optional.
	Password string

	// DB selects the Redis logical database.
	DB int

	// Prefix namespaces all keys. Defaults to "sketchwall".
	Prefix string
}

// RedisStore keeps boards as JSON values in Redis. It is the backend
// for multi-instance deployments, where every instance must see the
// same boards.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to Redis and verifies the connection.
// Transient connection failures are retried with backoff before
// giving up.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	if cfg.Prefix == "" {
		cfg.Prefix = "sketchwall"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	err := cache.RetryWithBackoff(ctx, func() error {
		if err := client.Ping(ctx).Err(); err != nil {
			return cache.Retryable(err)
		}
		return nil
	})
	if err != nil {
		client.Close()
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to redis at %s", cfg.Addr)
	}

	return &RedisStore{client: client, prefix: cfg.Prefix}, nil
}

func (s *RedisStore) key(boardID string) string {
	return s.prefix + ":board:" + boardID
}

func (s *RedisStore) Get(ctx context.Context, boardID string) (*canvas.Board, error) {
	data, err := s.client.Get(ctx, s.key(boardID)).Bytes()
	if err == redis.Nil {
		return nil, notFound(boardID)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "get board %q", boardID)
	}

	var board canvas.Board
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "decode board %q", boardID)
	}
	return &board, nil
}

func (s *RedisStore) Put(ctx context.Context, board *canvas.Board) error {
	if err := checkBoard(board); err != nil {
		return err
	}

	if prev, err := s.Get(ctx, board.ID); err == nil && board.CreatedAt.IsZero() {
		board.CreatedAt = prev.CreatedAt
	}
	stamp(board)

	data, err := json.Marshal(board)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode board %q", board.ID)
	}
	if err := s.client.Set(ctx, s.key(board.ID), data, 0).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "put board %q", board.ID)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, boardID string) error {
	if err := s.client.Del(ctx, s.key(boardID)).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete board %q", boardID)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]BoardInfo, error) {
	var infos []BoardInfo

	iter := s.client.Scan(ctx, 0, s.prefix+":board:*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			continue
		}
		var board canvas.Board
		if err := json.Unmarshal(data, &board); err != nil {
			continue
		}
		infos = append(infos, info(&board))
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "scan boards")
	}

	sortInfos(infos)
	return infos, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
