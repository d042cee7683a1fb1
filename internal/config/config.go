// Package config loads and validates the pipeline's layered
// configuration: defaults, then an optional YAML file, then ETLCORE_*
// environment variables take precedence in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"etlcore/internal/apperr"
	"etlcore/internal/schema"

	"gopkg.in/yaml.v3"
)

// Config holds every recognized option of the pipeline, both the core
// dataset/partition/dedupe options and the ambient collaborator settings
// (logging, csv, postgres, kafka) a runnable CLI needs.
type Config struct {
	// Dataset selects the schema variant ("current" or "historical")
	// used by the Schema Registry.
	Dataset string `yaml:"dataset"`

	// PartitionField is the logical field name used to shard candidate
	// rows (default: "nom").
	PartitionField string `yaml:"partition_field"`

	// WorkerCount is the partition worker-pool size (default: logical
	// cores).
	WorkerCount int `yaml:"worker_count"`

	// OnPaidPhone controls the action taken on paid-service phone
	// numbers: "reject" (default) or "keep_raw".
	OnPaidPhone string `yaml:"on_paid_phone"`

	// ClusterJoinSeparator is the multi-value join separator used by
	// the Reconciler (default: "/").
	ClusterJoinSeparator string `yaml:"cluster_join_separator"`

	// StrictSchema aborts the pipeline on a missing logical field when
	// true; otherwise the offending transform is skipped.
	StrictSchema bool `yaml:"strict_schema"`

	Logging  LoggingConfig  `yaml:"logging"`
	CSV      CSVConfig      `yaml:"csv"`
	Postgres PostgresConfig `yaml:"postgres"`
	Kafka    KafkaConfig    `yaml:"kafka"`
}

// CSVConfig names the JDD/HDD CSV file paths the CLI's csv ingress/egress
// adapter reads and writes.
type CSVConfig struct {
	InPath  string `yaml:"in_path"`
	OutPath string `yaml:"out_path"`
}

// PostgresConfig configures the relational store adapter.
type PostgresConfig struct {
	DSN       string `yaml:"dsn"`
	TableName string `yaml:"table_name"`
}

// KafkaConfig configures the message bus adapter.
type KafkaConfig struct {
	BootstrapServers string `yaml:"bootstrap_servers"`
	Topic            string `yaml:"topic"`
}

// DefaultConfig returns the configuration used when no file is present
// and no environment override applies.
func DefaultConfig() *Config {
	return &Config{
		Dataset:              string(schema.Current),
		PartitionField:       "nom",
		WorkerCount:          runtime.NumCPU(),
		OnPaidPhone:          "reject",
		ClusterJoinSeparator: "/",
		StrictSchema:         false,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		CSV: CSVConfig{
			InPath:  "in.csv",
			OutPath: "out.csv",
		},
	}
}

// Load reads path as YAML over the defaults, applying environment
// overrides afterward. A missing file is not an error: the defaults
// (plus any environment overrides) are returned as-is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes c to path as YAML, creating the parent directory if
// necessary.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// applyEnvOverrides layers ETLCORE_*-prefixed environment variables over
// whatever was loaded from file/defaults.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ETLCORE_DATASET"); v != "" {
		c.Dataset = v
	}
	if v := os.Getenv("ETLCORE_PARTITION_FIELD"); v != "" {
		c.PartitionField = v
	}
	if v := os.Getenv("ETLCORE_WORKER_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.WorkerCount = n
		}
	}
	if v := os.Getenv("ETLCORE_ON_PAID_PHONE"); v != "" {
		c.OnPaidPhone = v
	}
	if v := os.Getenv("ETLCORE_CLUSTER_JOIN_SEPARATOR"); v != "" {
		c.ClusterJoinSeparator = v
	}
	if v := os.Getenv("ETLCORE_STRICT_SCHEMA"); v != "" {
		c.StrictSchema = v == "true" || v == "1"
	}
	if v := os.Getenv("ETLCORE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ETLCORE_CSV_IN"); v != "" {
		c.CSV.InPath = v
	}
	if v := os.Getenv("ETLCORE_CSV_OUT"); v != "" {
		c.CSV.OutPath = v
	}
	if v := os.Getenv("ETLCORE_POSTGRES_DSN"); v != "" {
		c.Postgres.DSN = v
	}
	if v := os.Getenv("ETLCORE_KAFKA_BROKERS"); v != "" {
		c.Kafka.BootstrapServers = v
	}
	if v := os.Getenv("ETLCORE_KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}
}

// Validate rejects a configuration that cannot be bound to a dataset or
// carries an unrecognized paid-phone policy.
func (c *Config) Validate() error {
	switch schema.Name(c.Dataset) {
	case schema.Current, schema.Historical:
	default:
		return apperr.SchemaMismatch("unknown dataset: "+c.Dataset, nil)
	}

	if c.OnPaidPhone != "reject" && c.OnPaidPhone != "keep_raw" {
		return apperr.SchemaMismatch("on_paid_phone must be \"reject\" or \"keep_raw\", got "+c.OnPaidPhone, nil)
	}

	if c.ClusterJoinSeparator == "" {
		return apperr.SchemaMismatch("cluster_join_separator must not be empty", nil)
	}

	if c.WorkerCount < 1 {
		return apperr.SchemaMismatch("worker_count must be >= 1", nil)
	}

	return nil
}

// ActiveDataset resolves c.Dataset to its Dataset schema.
func (c *Config) ActiveDataset() (schema.Dataset, error) {
	return schema.ByName(schema.Name(c.Dataset))
}
