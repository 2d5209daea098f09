package config

import (
	"errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"os"
	"strings"
	"time"
)

type Config struct {
	MongoDB MongoDBConfig
	Kafka   KafkaConfig
	Health  HealthConfig

	Development bool
	Port        uint16
}

type MongoDBConfig struct {
	URI      string
	Database string

	// OperationTimeout bounds every single round-trip to the database.
	OperationTimeout time.Duration
}

type KafkaConfig struct {
	Host string
	Port int
}

// Enabled reports whether change events should be published.
func (c KafkaConfig) Enabled() bool {
	return c.Host != ""
}

type HealthConfig struct {
	Interval time.Duration
}

const (
	DefaultOperationTimeout = 5 * time.Second
	DefaultHealthInterval   = 10 * time.Second
)

var defaults = map[string]any{
	"development":              false,
	"port":                     10051,
	"mongodb.uri":              "mongodb://localhost:27017",
	"mongodb.database":         "board-game-stats",
	"mongodb.operationtimeout": DefaultOperationTimeout,
	"kafka.host":               "",
	"kafka.port":               9092,
	"health.interval":          DefaultHealthInterval,
}

func LoadGlobalConfig() (Config, error) {
	return load(pflag.CommandLine, os.Args[1:])
}

func load(flags *pflag.FlagSet, args []string) (cfg Config, err error) {
	v := viper.New()

	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.AddConfigPath(".")

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	registerFlags(flags)
	if !flags.Parsed() {
		if err = flags.Parse(args); err != nil {
			return
		}
	}

	if err = v.BindPFlags(flags); err != nil {
		return
	}

	err = v.Unmarshal(&cfg)
	return
}

func registerFlags(flags *pflag.FlagSet) {
	if flags.Lookup("development") != nil {
		return
	}

	flags.Bool("development", false, "enable development logging and gRPC reflection")
	flags.Uint16("port", 10051, "port the gRPC health server listens on")
	flags.String("mongodb.uri", "mongodb://localhost:27017", "MongoDB connection string")
	flags.String("kafka.host", "", "Kafka broker host, leave empty to disable change events")
}
