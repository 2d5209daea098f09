package repository

import (
	"context"
	"github.com/bgstats/play-service/internal/repository/model"
)

//go:generate mockgen -destination=../mocks/mock_repository.go -package=mocks github.com/bgstats/play-service/internal/repository Repository

// Repository is the play data store. Every method returns an error wrapping ErrStorageUnavailable
// when the database cannot be reached and ErrCancelled when ctx is cancelled.
type Repository interface {
	ListBoardGames(ctx context.Context) ([]*model.BoardGame, error)

	CountPlays(ctx context.Context, objectID int) (int64, error)
	// InsertPlays saves plays one by one, replacing any play with the same ID.
	// An empty list is logged and ignored.
	InsertPlays(ctx context.Context, plays []*model.Play) error
	// UpsertPlays behaves exactly like InsertPlays.
	UpsertPlays(ctx context.Context, plays []*model.Play) error
	// DeletePlaysFor removes every play of the given game. Deleting nothing is not an error.
	DeletePlaysFor(ctx context.Context, objectID int) error

	// GetBoardGameStatus returns nil, nil when the game has no status.
	GetBoardGameStatus(ctx context.Context, objectID int) (*model.BoardGameStatus, error)
	// UpsertBoardGameStatus replaces the status with the same ObjectID. A nil status is logged and ignored.
	UpsertBoardGameStatus(ctx context.Context, status *model.BoardGameStatus) error

	Ping(ctx context.Context) error
}
