package config

import "time"

// Logging defaults.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Telemetry defaults.
const (
	DefaultSampleRatio     = 1.0
	DefaultShutdownTimeout = 5 * time.Second
	DefaultEnvironment     = "dev"
)

// Engine defaults.
const (
	DefaultRecheck       = true
	DefaultMaxSourceSize = 4 << 20 // 4 MiB.
)
