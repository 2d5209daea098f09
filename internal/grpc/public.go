package grpc

import (
	"context"
	"fmt"
	"github.com/bgstats/play-service/internal/config"
	"github.com/bgstats/play-service/internal/repository"
	grpczap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"net"
	"sync"
	"time"
)

// ServiceName is the name reported by the health service for the play data store.
const ServiceName = "bgstats.PlayService"

type GrpcRunner struct {
	log  *zap.SugaredLogger
	cfg  config.Config
	repo repository.Repository

	s      *grpc.Server
	health *health.Server

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func RunServices(log *zap.SugaredLogger, cfg config.Config, repo repository.Repository) (*GrpcRunner, error) {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpczap.UnaryServerInterceptor(log.Desugar(), grpczap.WithLevels(func(code codes.Code) zapcore.Level {
			if code != codes.Internal && code != codes.Unavailable && code != codes.Unknown {
				return zapcore.DebugLevel
			} else {
				return zapcore.ErrorLevel
			}
		})),
	))

	if cfg.Development {
		reflection.Register(s)
	}

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(s, healthSrv)

	return &GrpcRunner{
		log:    log,
		cfg:    cfg,
		repo:   repo,
		s:      s,
		health: healthSrv,
	}, nil
}

func (r *GrpcRunner) Start(_ context.Context) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", r.cfg.Port))
	if err != nil {
		return err
	}

	r.log.Infow("listening for gRPC requests", "port", r.cfg.Port)

	go func() {
		if err := r.s.Serve(lis); err != nil {
			r.log.Errorw("failed to serve", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.watchHealth(ctx)
	}()

	return nil
}

func (r *GrpcRunner) Shutdown(_ context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()

	r.health.Shutdown()
	r.s.GracefulStop()
	return nil
}

func (r *GrpcRunner) watchHealth(ctx context.Context) {
	interval := r.cfg.Health.Interval
	if interval <= 0 {
		interval = config.DefaultHealthInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		r.updateHealth(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// updateHealth pings the repository and reports the result on both the overall and the named service.
func (r *GrpcRunner) updateHealth(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if err := r.repo.Ping(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}

		r.log.Warnw("play data store is unhealthy", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	r.health.SetServingStatus("", status)
	r.health.SetServingStatus(ServiceName, status)
}
