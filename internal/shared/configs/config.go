package configs

// Config holds all configuration for the application.
type Config struct {
	Log    LogConfig    `mapstructure:"log" validate:"required"`
	Report ReportConfig `mapstructure:"report" validate:"required"`
	Server ServerConfig `mapstructure:"server"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// ReportConfig holds reporting cadence and counting rules.
type ReportConfig struct {
	Every       int    `mapstructure:"every" validate:"required,min=1"`                       // accepted lines between periodic reports
	Mode        string `mapstructure:"mode" validate:"required,oneof=cumulative windowed"`     // reset counters after periodic reports or not
	StatusCodes string `mapstructure:"status_codes" validate:"required,oneof=allow_list any"` // which status codes get a counter
}

// ServerConfig holds the optional read-only HTTP surface configuration.
type ServerConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	Port              int  `mapstructure:"port" validate:"required_if=Enabled true,min=0,max=65535"`
	ReadHeaderTimeout int  `mapstructure:"read_header_timeout" validate:"min=1"` // seconds
	ReadTimeout       int  `mapstructure:"read_timeout" validate:"min=1"`        // seconds (headers+body)
	WriteTimeout      int  `mapstructure:"write_timeout" validate:"min=1"`       // seconds (response)
	IdleTimeout       int  `mapstructure:"idle_timeout" validate:"min=1"`        // seconds (keep-alive)
	ShutdownTimeout   int  `mapstructure:"shutdown_timeout" validate:"min=1"`    // seconds
}
