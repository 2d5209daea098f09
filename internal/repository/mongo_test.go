package repository

import (
	"context"
	"errors"
	"github.com/bgstats/play-service/internal/config"
	"github.com/bgstats/play-service/internal/repository/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"testing"
	"time"
)

func nopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func TestMongoRepository_ListBoardGames(t *testing.T) {
	repo := newTestRepo(t, nopLogger())
	ctx := context.Background()

	games, err := repo.ListBoardGames(ctx)
	require.NoError(t, err)
	assert.Empty(t, games)

	_, err = repo.boardGameCollection.InsertMany(ctx, []any{
		&model.BoardGame{ObjectID: 13, Name: "Catan", YearPublished: 1995},
		&model.BoardGame{ObjectID: 822, Name: "Carcassonne", YearPublished: 2000},
	})
	require.NoError(t, err)

	games, err = repo.ListBoardGames(ctx)
	require.NoError(t, err)
	require.Len(t, games, 2)

	names := []string{games[0].Name, games[1].Name}
	assert.ElementsMatch(t, []string{"Catan", "Carcassonne"}, names)
	assert.False(t, games[0].ID.IsZero())
}

func TestMongoRepository_InsertThenUpsertPlays(t *testing.T) {
	repo := newTestRepo(t, nopLogger())
	ctx := context.Background()

	require.NoError(t, repo.InsertPlays(ctx, []*model.Play{
		{ID: 1, ObjectID: 42, Quantity: 1},
		{ID: 2, ObjectID: 42, Quantity: 1},
	}))

	count, err := repo.CountPlays(ctx, 42)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	updated := &model.Play{ID: 1, ObjectID: 42, Quantity: 1, Incomplete: true, Comments: "rematch"}
	require.NoError(t, repo.UpsertPlays(ctx, []*model.Play{updated}))

	var stored model.Play
	require.NoError(t, repo.playCollection.FindOne(ctx, bson.M{"_id": int64(1)}).Decode(&stored))
	assert.Equal(t, *updated, stored)

	count, err = repo.CountPlays(ctx, 42)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestMongoRepository_InsertPlaysIsIdempotent(t *testing.T) {
	repo := newTestRepo(t, nopLogger())
	ctx := context.Background()

	plays := []*model.Play{
		{ID: 10, ObjectID: 7, Date: model.PlayDate{Year: 2024, Month: time.January, Day: 5}, Players: []model.PlayerResult{{Name: "Ana", Win: true}}},
		{ID: 11, ObjectID: 7},
		{ID: 12, ObjectID: 8},
	}

	require.NoError(t, repo.InsertPlays(ctx, plays))
	require.NoError(t, repo.InsertPlays(ctx, plays))

	total, err := repo.playCollection.CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	var stored model.Play
	require.NoError(t, repo.playCollection.FindOne(ctx, bson.M{"_id": int64(10)}).Decode(&stored))
	assert.Equal(t, *plays[0], stored)
}

func TestMongoRepository_EmptyPlayListIsNoop(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	repo := newTestRepo(t, zap.New(core).Sugar())
	ctx := context.Background()

	require.NoError(t, repo.InsertPlays(ctx, []*model.Play{}))
	require.NoError(t, repo.UpsertPlays(ctx, nil))

	total, err := repo.playCollection.CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Equal(t, 2, logs.FilterMessage("attempted to save an empty play list").Len())
}

func TestMongoRepository_DeletePlaysFor(t *testing.T) {
	repo := newTestRepo(t, nopLogger())
	ctx := context.Background()

	require.NoError(t, repo.InsertPlays(ctx, []*model.Play{
		{ID: 1, ObjectID: 42},
		{ID: 2, ObjectID: 42},
		{ID: 3, ObjectID: 99},
	}))

	require.NoError(t, repo.DeletePlaysFor(ctx, 42))

	count, err := repo.CountPlays(ctx, 42)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = repo.CountPlays(ctx, 99)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// nothing left to delete
	require.NoError(t, repo.DeletePlaysFor(ctx, 42))
	count, err = repo.CountPlays(ctx, 42)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMongoRepository_BoardGameStatus(t *testing.T) {
	repo := newTestRepo(t, nopLogger())
	ctx := context.Background()

	status, err := repo.GetBoardGameStatus(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, status)

	first := &model.BoardGameStatus{ObjectID: 42, ImportSuccessful: false, LastImportedPage: 3}
	require.NoError(t, repo.UpsertBoardGameStatus(ctx, first))

	status, err = repo.GetBoardGameStatus(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, status)
	firstID := status.ID
	status.ID = first.ID
	assert.Equal(t, first, status)

	second := &model.BoardGameStatus{ObjectID: 42, ImportSuccessful: true, PlayCount: 120, LastImportedPage: 6}
	require.NoError(t, repo.UpsertBoardGameStatus(ctx, second))

	status, err = repo.GetBoardGameStatus(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, firstID, status.ID)
	status.ID = second.ID
	assert.Equal(t, second, status)

	total, err := repo.boardGameStatusCollection.CountDocuments(ctx, bson.M{"objectId": 42})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestMongoRepository_NilStatusIsNoop(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	repo := newTestRepo(t, zap.New(core).Sugar())
	ctx := context.Background()

	require.NoError(t, repo.UpsertBoardGameStatus(ctx, nil))

	total, err := repo.boardGameStatusCollection.CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Equal(t, 1, logs.FilterMessage("attempted to upsert a nil status").Len())
}

func TestMongoRepository_Cancelled(t *testing.T) {
	repo := newTestRepo(t, nopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.CountPlays(ctx, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCancelled)

	err = repo.InsertPlays(ctx, []*model.Play{{ID: 1, ObjectID: 42}})
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestMongoRepository_Ping(t *testing.T) {
	repo := newTestRepo(t, nopLogger())
	assert.NoError(t, repo.Ping(context.Background()))
}

func TestMongoRepository_NotStarted(t *testing.T) {
	repo := NewMongoRepository(config.MongoDBConfig{URI: "mongodb://localhost:1"}, nopLogger())
	ctx := context.Background()

	_, err := repo.ListBoardGames(ctx)
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = repo.CountPlays(ctx, 1)
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	assert.ErrorIs(t, repo.DeletePlaysFor(ctx, 1), ErrStorageUnavailable)
	assert.ErrorIs(t, repo.Ping(ctx), ErrStorageUnavailable)

	// guards run before the connection is needed
	assert.NoError(t, repo.InsertPlays(ctx, nil))
	assert.NoError(t, repo.UpsertPlays(ctx, []*model.Play{nil}))
	assert.ErrorIs(t, repo.InsertPlays(ctx, []*model.Play{nil, {ID: 1, ObjectID: 42}}), ErrStorageUnavailable)
	assert.NoError(t, repo.UpsertBoardGameStatus(ctx, nil))
	assert.NoError(t, repo.Shutdown(ctx))
}

func TestMongoRepository_Unreachable(t *testing.T) {
	repo := NewMongoRepository(config.MongoDBConfig{
		URI:              "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200&connectTimeoutMS=200",
		Database:         "unreachable",
		OperationTimeout: time.Second,
	}, nopLogger())
	ctx := context.Background()

	// index creation needs a server, so Start itself reports the failure and drops the client
	err := repo.Start(ctx)
	require.Error(t, err)
	assert.Nil(t, repo.client)
	t.Cleanup(func() { _ = repo.Shutdown(ctx) })

	_, err = repo.GetBoardGameStatus(ctx, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStorageUnavailable), "got %v", err)
}

func TestMongoRepository_NilPlaysAreSkipped(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	repo := newTestRepo(t, zap.New(core).Sugar())
	ctx := context.Background()

	require.NoError(t, repo.InsertPlays(ctx, []*model.Play{nil, {ID: 1, ObjectID: 42}}))

	count, err := repo.CountPlays(ctx, 42)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	require.NoError(t, repo.UpsertPlays(ctx, []*model.Play{nil}))
	assert.Equal(t, 1, logs.FilterMessage("attempted to save an empty play list").Len())

	total, err := repo.playCollection.CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestMongoRepository_SavePlaysStopsAtFirstFailure(t *testing.T) {
	repo := newTestRepo(t, nopLogger())
	ctx := context.Background()

	// a unique location makes the second play collide with an existing document
	_, err := repo.playCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "location", Value: 1}},
		Options: options.Index().SetName("location_unique").SetUnique(true).SetSparse(true),
	})
	require.NoError(t, err)
	require.NoError(t, repo.InsertPlays(ctx, []*model.Play{{ID: 99, ObjectID: 1, Location: "Home"}}))

	err = repo.UpsertPlays(ctx, []*model.Play{
		{ID: 1, ObjectID: 42, Location: "Cafe"},
		{ID: 2, ObjectID: 42, Location: "Home"},
		{ID: 3, ObjectID: 42, Location: "Club"},
	})
	require.Error(t, err)
	assert.True(t, mongo.IsDuplicateKeyError(err), "got %v", err)
	assert.ErrorContains(t, err, "save play 2")

	var stored model.Play
	require.NoError(t, repo.playCollection.FindOne(ctx, bson.M{"_id": int64(1)}).Decode(&stored))
	assert.Equal(t, "Cafe", stored.Location)

	for _, id := range []int64{2, 3} {
		n, err := repo.playCollection.CountDocuments(ctx, bson.M{"_id": id})
		require.NoError(t, err)
		assert.Zero(t, n, "play %d should not be stored", id)
	}

	count, err := repo.CountPlays(ctx, 42)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestMongoRepository_OpContextDefaultTimeout(t *testing.T) {
	repo := NewMongoRepository(config.MongoDBConfig{}, nopLogger())

	ctx, cancel := repo.opContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(config.DefaultOperationTimeout), deadline, time.Second)
}
