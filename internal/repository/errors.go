package repository

import (
	"context"
	"errors"
	"fmt"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

var (
	// ErrStorageUnavailable is returned when the database cannot be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrCancelled is returned when the caller's context was cancelled mid-operation.
	ErrCancelled = errors.New("operation cancelled")

	errNotStarted = errors.New("repository not started")
)

// wrapErr tags err with its kind. ctx is the caller's context, not the per-operation one:
// a cancelled or expired caller context is a cancellation, while an operation timeout
// with the caller still waiting is reported as unavailable storage.
func wrapErr(ctx context.Context, action string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case ctx.Err() != nil || errors.Is(err, context.Canceled):
		return fmt.Errorf("failed to %s: %w: %w", action, ErrCancelled, err)
	case isUnavailable(err):
		return fmt.Errorf("failed to %s: %w: %w", action, ErrStorageUnavailable, err)
	default:
		return fmt.Errorf("failed to %s: %w", action, err)
	}
}

func isUnavailable(err error) bool {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return true
	}

	var selErr topology.ServerSelectionError
	if errors.As(err, &selErr) {
		return true
	}

	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.Is(err, topology.ErrTopologyClosed) ||
		errors.Is(err, errNotStarted)
}
