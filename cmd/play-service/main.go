package main

import (
	"github.com/bgstats/play-service/internal/config"
	"github.com/bgstats/play-service/internal/grpc"
	"github.com/bgstats/play-service/internal/kafka"
	"github.com/bgstats/play-service/internal/repository"
	"github.com/bgstats/play-service/internal/service"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(options()).Run()
}

func options() fx.Option {
	return fx.Options(
		// Config
		fx.Provide(config.LoadGlobalConfig),

		// Logging
		fx.Provide(
			newZapLogger,
			newZapSugared,
		),

		// Storage - MongoDB
		fx.Provide(newRepoMongo),

		// Events - Kafka
		fx.Provide(newNotifier),

		fx.Provide(newPlayStore),

		fx.Invoke(func(log *zap.SugaredLogger) {
			log.Info("Starting play service")
		}),

		// gRPC
		fx.Provide(startGrpc),
		fx.Invoke(func(*grpc.GrpcRunner) {}),
	)
}

func newZapLogger(conf config.Config) (*zap.Logger, error) {
	if conf.Development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newZapSugared(log *zap.Logger) *zap.SugaredLogger {
	zap.ReplaceGlobals(log)
	return log.Sugar()
}

func newRepoMongo(cfg config.Config, log *zap.SugaredLogger, lc fx.Lifecycle) *repository.MongoRepository {
	r := repository.NewMongoRepository(cfg.MongoDB, log)

	lc.Append(fx.Hook{OnStart: r.Start, OnStop: r.Shutdown})
	return r
}

func newNotifier(cfg config.Config, log *zap.SugaredLogger, lc fx.Lifecycle) kafka.Notifier {
	if !cfg.Kafka.Enabled() {
		log.Infow("kafka host not set, change events are disabled")
		return kafka.NewNoopNotifier()
	}

	n := kafka.NewKafkaNotifier(cfg.Kafka, log)

	lc.Append(fx.StopHook(n.Close))
	return n
}

func newPlayStore(repo *repository.MongoRepository, notif kafka.Notifier, log *zap.SugaredLogger) repository.Repository {
	return service.NewPlayStore(repo, notif, log)
}

func startGrpc(log *zap.SugaredLogger, cfg config.Config, repo repository.Repository, lc fx.Lifecycle) (*grpc.GrpcRunner, error) {
	r, err := grpc.RunServices(log, cfg, repo)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{OnStart: r.Start, OnStop: r.Shutdown})
	return r, nil
}
