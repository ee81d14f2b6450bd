package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sketchwall/sketchwall/pkg/cache"
	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/errors"
)

// MongoConfig configures the MongoDB board store.
type MongoConfig struct {
	// URI is the MongoDB connection string.
	URI string

	// Database name. Defaults to "sketchwall".
	Database string

	// Collection name. Defaults to "boards".
	Collection string
}

// MongoStore keeps boards as documents in a MongoDB collection, one
// document per board. Shapes embed directly via their bson tags.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB, verifies the connection and
// ensures the unique index on board ids.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "sketchwall"
	}
	if cfg.Collection == "" {
		cfg.Collection = "boards"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to mongodb")
	}
	err = cache.RetryWithBackoff(ctx, func() error {
		if err := client.Ping(ctx, nil); err != nil {
			return cache.Retryable(err)
		}
		return nil
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping mongodb")
	}

	coll := client.Database(cfg.Database).Collection(cfg.Collection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "create board index")
	}

	return &MongoStore{client: client, coll: coll}, nil
}

func (s *MongoStore) Get(ctx context.Context, boardID string) (*canvas.Board, error) {
	var board canvas.Board
	err := s.coll.FindOne(ctx, bson.M{"id": boardID}).Decode(&board)
	if err == mongo.ErrNoDocuments {
		return nil, notFound(boardID)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "get board %q", boardID)
	}
	return &board, nil
}

func (s *MongoStore) Put(ctx context.Context, board *canvas.Board) error {
	if err := checkBoard(board); err != nil {
		return err
	}

	if prev, err := s.Get(ctx, board.ID); err == nil && board.CreatedAt.IsZero() {
		board.CreatedAt = prev.CreatedAt
	}
	stamp(board)

	_, err := s.coll.ReplaceOne(ctx, bson.M{"id": board.ID}, board,
		options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "put board %q", board.ID)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, boardID string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"id": boardID}); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete board %q", boardID)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context) ([]BoardInfo, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list boards")
	}
	defer cur.Close(ctx)

	var infos []BoardInfo
	for cur.Next(ctx) {
		var board canvas.Board
		if err := cur.Decode(&board); err != nil {
			continue
		}
		infos = append(infos, info(&board))
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list boards")
	}

	sortInfos(infos)
	return infos, nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
