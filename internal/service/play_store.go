package service

import (
	"context"
	"github.com/bgstats/play-service/internal/kafka"
	"github.com/bgstats/play-service/internal/repository"
	"github.com/bgstats/play-service/internal/repository/model"
	"go.uber.org/zap"
)

// playStore publishes a change event after every successful write to the wrapped repository.
// Publishing failures are logged and never returned to the caller.
type playStore struct {
	repository.Repository

	notif kafka.Notifier
	log   *zap.SugaredLogger
}

func NewPlayStore(repo repository.Repository, notif kafka.Notifier, log *zap.SugaredLogger) repository.Repository {
	return &playStore{
		Repository: repo,
		notif:      notif,
		log:        log,
	}
}

func (s *playStore) InsertPlays(ctx context.Context, plays []*model.Play) error {
	if err := s.Repository.InsertPlays(ctx, plays); err != nil {
		return err
	}

	s.notifyPlaysSaved(ctx, plays)
	return nil
}

func (s *playStore) UpsertPlays(ctx context.Context, plays []*model.Play) error {
	if err := s.Repository.UpsertPlays(ctx, plays); err != nil {
		return err
	}

	s.notifyPlaysSaved(ctx, plays)
	return nil
}

func (s *playStore) DeletePlaysFor(ctx context.Context, objectID int) error {
	if err := s.Repository.DeletePlaysFor(ctx, objectID); err != nil {
		return err
	}

	if err := s.notif.PlaysDeleted(ctx, objectID); err != nil {
		s.log.Errorw("failed to notify plays deleted", "objectId", objectID, "error", err)
	}
	return nil
}

func (s *playStore) UpsertBoardGameStatus(ctx context.Context, status *model.BoardGameStatus) error {
	if err := s.Repository.UpsertBoardGameStatus(ctx, status); err != nil {
		return err
	}

	if status == nil {
		return nil
	}

	if err := s.notif.BoardGameStatusUpdated(ctx, status); err != nil {
		s.log.Errorw("failed to notify status updated", "objectId", status.ObjectID, "error", err)
	}
	return nil
}

// notifyPlaysSaved sends one event per game, in the order the games first appear in plays.
func (s *playStore) notifyPlaysSaved(ctx context.Context, plays []*model.Play) {
	counts := make(map[int]int)
	order := make([]int, 0)

	for _, p := range plays {
		if p == nil {
			continue
		}
		if _, ok := counts[p.ObjectID]; !ok {
			order = append(order, p.ObjectID)
		}
		counts[p.ObjectID]++
	}

	for _, objectID := range order {
		if err := s.notif.PlaysSaved(ctx, objectID, counts[objectID]); err != nil {
			s.log.Errorw("failed to notify plays saved", "objectId", objectID, "error", err)
		}
	}
}
