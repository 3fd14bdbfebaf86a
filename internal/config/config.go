package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type DisputeConfig struct {
	Env           string `yaml:"env" env-default:"local"`
	HTTPServer    `yaml:"http_server"`
	GRPCServer    `yaml:"grpc_server"`
	MetricsServer `yaml:"metrics_server"`
	DisputeDB     `yaml:"dispute_db"`
	KafkaService  `yaml:"kafka-service"`
	PushService   `yaml:"push-service"`
	Rules         DisputeRules `yaml:"dispute_rules"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type GRPCServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"50051"`
}

type MetricsServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"9090"`
}

type DisputeDB struct {
	Dsn            string `yaml:"dsn" env:"DISPUTE_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"dispute-events"`
}

type PushService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// DisputeRules carries the tunable thresholds of the voting flow. They
// are handed to the usecases at construction so tests can shrink them.
type DisputeRules struct {
	MinVotesToResolve   int           `yaml:"min_votes_to_resolve" env-default:"6"`
	VotingDeadlineHours int           `yaml:"voting_deadline_hours" env-default:"72"`
	JurorsPerSide       int           `yaml:"jurors_per_side" env-default:"5"`
	CandidatePoolLimit  int           `yaml:"candidate_pool_limit" env-default:"100"`
	SweepInterval       time.Duration `yaml:"sweep_interval" env-default:"5m"`
}

func (r DisputeRules) VotingDeadline() time.Duration {
	return time.Duration(r.VotingDeadlineHours) * time.Hour
}

func MustLoad() *DisputeConfig {
	configPath := os.Getenv("DISPUTE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("DISPUTE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg DisputeConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
