package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type AuctionConfig struct {
	Env string     `yaml:"env" env-default:"local"`
	HTTPServer     `yaml:"http_server"`
	AuctionDB      `yaml:"auction_db"`
	LogConfig      `yaml:"log_config"`
	KafkaService   `yaml:"kafka-service"`
	Engine         `yaml:"engine"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type AuctionDB struct {
	Dsn string `yaml:"dsn"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"auction-events"`
}

type Engine struct {
	ExtendWindow     time.Duration `yaml:"extend_window" env-default:"5m"`
	MaxExtensions    int32         `yaml:"max_extensions" env-default:"3"`
	MaxTotalDuration time.Duration `yaml:"max_total_duration" env-default:"720h"`
	BidRetryLimit    int           `yaml:"bid_retry_limit" env-default:"5"`
	CancelLockWindow time.Duration `yaml:"cancel_lock_window" env-default:"1h"`
	SweepInterval    time.Duration `yaml:"sweep_interval" env-default:"30s"`
	SweepBatchSize   int           `yaml:"sweep_batch_size" env-default:"500"`
}

func MustLoad() *AuctionConfig {

	// Processing env config variable and file
	configPath := os.Getenv("AUCTION_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("AUCTION_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg AuctionConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
