package repository

import (
	"context"
	"errors"
	"fmt"
	"github.com/bgstats/play-service/internal/config"
	"github.com/bgstats/play-service/internal/repository/model"
	"github.com/bgstats/play-service/internal/repository/registrytypes"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"sync"
)

const (
	boardGameCollectionName       = "board-games"
	boardGameStatusCollectionName = "board-game-status"
	playCollectionName            = "plays"
)

var _ Repository = (*MongoRepository)(nil)

type MongoRepository struct {
	cfg config.MongoDBConfig
	log *zap.SugaredLogger

	client   *mongo.Client
	database *mongo.Database

	boardGameCollection       *mongo.Collection
	boardGameStatusCollection *mongo.Collection
	playCollection            *mongo.Collection
}

// NewMongoRepository creates an unconnected repository. Start must be called before use.
func NewMongoRepository(cfg config.MongoDBConfig, log *zap.SugaredLogger) *MongoRepository {
	return &MongoRepository{
		cfg: cfg,
		log: log,
	}
}

func (m *MongoRepository) Start(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.cfg.URI).SetRegistry(registrytypes.CodecRegistry))
	if err != nil {
		return fmt.Errorf("failed to connect to mongo: %w", err)
	}

	m.client = client
	m.database = client.Database(m.cfg.Database)
	m.boardGameCollection = m.database.Collection(boardGameCollectionName)
	m.boardGameStatusCollection = m.database.Collection(boardGameStatusCollectionName)
	m.playCollection = m.database.Collection(playCollectionName)

	if err := m.createIndexes(ctx); err != nil {
		if dErr := client.Disconnect(ctx); dErr != nil {
			m.log.Errorw("failed to disconnect from mongo", "error", dErr)
		}
		m.client = nil
		return err
	}
	m.log.Infow("connected to mongo", "database", m.cfg.Database)

	return nil
}

func (m *MongoRepository) Shutdown(ctx context.Context) error {
	if m.client == nil {
		return nil
	}

	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongo: %w", err)
	}

	return nil
}

// None of these are unique: one status per game is kept by UpsertBoardGameStatus, not by the schema.
var (
	boardGameIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "objectId", Value: 1}},
			Options: options.Index().SetName("objectId"),
		},
	}
	boardGameStatusIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "objectId", Value: 1}},
			Options: options.Index().SetName("objectId"),
		},
	}
	playIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "objectId", Value: 1}},
			Options: options.Index().SetName("objectId"),
		},
	}
)

func (m *MongoRepository) createIndexes(ctx context.Context) error {
	collIndexes := map[*mongo.Collection][]mongo.IndexModel{
		m.boardGameCollection:       boardGameIndexes,
		m.boardGameStatusCollection: boardGameStatusIndexes,
		m.playCollection:            playIndexes,
	}

	wg := sync.WaitGroup{}
	errs := make(chan error, len(collIndexes))

	for coll, indexes := range collIndexes {
		wg.Add(1)
		go func(coll *mongo.Collection, indexes []mongo.IndexModel) {
			defer wg.Done()
			if err := m.createCollIndexes(ctx, coll, indexes); err != nil {
				errs <- fmt.Errorf("failed to create indexes for collection %s: %w", coll.Name(), err)
			}
		}(coll, indexes)
	}

	wg.Wait()
	close(errs)

	var joined error
	for err := range errs {
		joined = errors.Join(joined, err)
	}
	return joined
}

func (m *MongoRepository) createCollIndexes(ctx context.Context, coll *mongo.Collection, indexes []mongo.IndexModel) error {
	ctx, cancel := m.opContext(ctx)
	defer cancel()

	_, err := coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (m *MongoRepository) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := m.cfg.OperationTimeout
	if timeout <= 0 {
		timeout = config.DefaultOperationTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func (m *MongoRepository) started() error {
	if m.client == nil {
		return errNotStarted
	}
	return nil
}

func (m *MongoRepository) Ping(ctx context.Context) error {
	if err := m.started(); err != nil {
		return wrapErr(ctx, "ping mongo", err)
	}

	opCtx, cancel := m.opContext(ctx)
	defer cancel()

	return wrapErr(ctx, "ping mongo", m.client.Ping(opCtx, readpref.Primary()))
}

func (m *MongoRepository) ListBoardGames(ctx context.Context) ([]*model.BoardGame, error) {
	if err := m.started(); err != nil {
		return nil, wrapErr(ctx, "list board games", err)
	}

	opCtx, cancel := m.opContext(ctx)
	defer cancel()

	cursor, err := m.boardGameCollection.Find(opCtx, bson.M{})
	if err != nil {
		return nil, wrapErr(ctx, "list board games", err)
	}

	games := make([]*model.BoardGame, 0)
	if err := cursor.All(opCtx, &games); err != nil {
		return nil, wrapErr(ctx, "decode board games", err)
	}

	return games, nil
}

func (m *MongoRepository) CountPlays(ctx context.Context, objectID int) (int64, error) {
	if err := m.started(); err != nil {
		return 0, wrapErr(ctx, "count plays", err)
	}

	opCtx, cancel := m.opContext(ctx)
	defer cancel()

	count, err := m.playCollection.CountDocuments(opCtx, bson.M{"objectId": objectID})
	if err != nil {
		return 0, wrapErr(ctx, "count plays", err)
	}

	return count, nil
}

func (m *MongoRepository) InsertPlays(ctx context.Context, plays []*model.Play) error {
	return m.savePlays(ctx, "Inserting", plays)
}

func (m *MongoRepository) UpsertPlays(ctx context.Context, plays []*model.Play) error {
	return m.savePlays(ctx, "Upserting", plays)
}

// savePlays replaces plays by ID one at a time, in order. It stops at the first failure and
// leaves already saved plays in place.
func (m *MongoRepository) savePlays(ctx context.Context, verb string, plays []*model.Play) error {
	plays = nonNilPlays(plays)
	if len(plays) == 0 {
		m.log.Warnw("attempted to save an empty play list")
		return nil
	}

	if err := m.started(); err != nil {
		return wrapErr(ctx, "save plays", err)
	}

	m.log.Debugw(verb+" plays", "count", len(plays), "objectId", plays[0].ObjectID)

	for _, play := range plays {
		if err := m.replacePlay(ctx, play); err != nil {
			return wrapErr(ctx, fmt.Sprintf("save play %d", play.ID), err)
		}
	}

	return nil
}

func nonNilPlays(plays []*model.Play) []*model.Play {
	filtered := make([]*model.Play, 0, len(plays))
	for _, p := range plays {
		if p != nil {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (m *MongoRepository) replacePlay(ctx context.Context, play *model.Play) error {
	ctx, cancel := m.opContext(ctx)
	defer cancel()

	_, err := m.playCollection.ReplaceOne(ctx, bson.M{"_id": play.ID}, play, options.Replace().SetUpsert(true))
	return err
}

func (m *MongoRepository) DeletePlaysFor(ctx context.Context, objectID int) error {
	if err := m.started(); err != nil {
		return wrapErr(ctx, "delete plays", err)
	}

	if objectID == 0 {
		m.log.Warnw("deleting plays for the zero object id", "objectId", objectID)
	}
	m.log.Debugw("removing all plays", "objectId", objectID)

	opCtx, cancel := m.opContext(ctx)
	defer cancel()

	if _, err := m.playCollection.DeleteMany(opCtx, bson.M{"objectId": objectID}); err != nil {
		return wrapErr(ctx, "delete plays", err)
	}

	return nil
}

func (m *MongoRepository) GetBoardGameStatus(ctx context.Context, objectID int) (*model.BoardGameStatus, error) {
	if err := m.started(); err != nil {
		return nil, wrapErr(ctx, "get board game status", err)
	}

	opCtx, cancel := m.opContext(ctx)
	defer cancel()

	var status model.BoardGameStatus
	if err := m.boardGameStatusCollection.FindOne(opCtx, bson.M{"objectId": objectID}).Decode(&status); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}

		return nil, wrapErr(ctx, "get board game status", err)
	}

	return &status, nil
}

func (m *MongoRepository) UpsertBoardGameStatus(ctx context.Context, status *model.BoardGameStatus) error {
	if status == nil {
		m.log.Warnw("attempted to upsert a nil status")
		return nil
	}

	if err := m.started(); err != nil {
		return wrapErr(ctx, "upsert board game status", err)
	}

	m.log.Debugw("upserting status", "objectId", status.ObjectID)

	opCtx, cancel := m.opContext(ctx)
	defer cancel()

	_, err := m.boardGameStatusCollection.ReplaceOne(opCtx, bson.M{"objectId": status.ObjectID}, status, options.Replace().SetUpsert(true))
	return wrapErr(ctx, "upsert board game status", err)
}
