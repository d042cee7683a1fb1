package config

// LoggingConfig configures the zap logger shared by every pipeline stage.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}
