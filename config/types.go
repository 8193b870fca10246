package config

// Config represents the complete configuration structure
type Config struct {
	FTC     FTCConfig     `mapstructure:"ftc"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// FTCConfig holds FTC Events API credentials and season selection
type FTCConfig struct {
	Username string `mapstructure:"username"`
	Key      string `mapstructure:"key"`
	Season   int    `mapstructure:"season"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
