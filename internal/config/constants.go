package config

import "time"

// Application constants - all hardcoded values for the GrowDash system
const (
	// Application Info
	AppName    = "GrowDash"
	AppVersion = "1.2.0"

	// Rate Limiting
	DefaultRateLimit = 100 // requests per minute
	DefaultBurstSize = 50

	// Network Timeouts
	DefaultHTTPTimeout  = 30 * time.Second
	WebSocketPingPeriod = 30 * time.Second
	WebSocketPongWait   = 60 * time.Second

	// File Paths (relative to executable)
	DefaultDataDir    = "data"
	DefaultLogsDir    = "logs"
	DefaultWebDir     = "web"
	DefaultExportsDir = "exports"

	// Operation Timeouts
	DatasetLoadTimeout      = 2 * time.Minute
	ReportGenerationTimeout = 5 * time.Minute

	// WebSocket Buffer Sizes
	WebSocketReadBufferSize  = 1024
	WebSocketWriteBufferSize = 1024

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// URLs and Endpoints
const (
	// API Endpoints (internal)
	APIBasePath         = "/api"
	OverviewEndpoint    = "/api/overview"
	EnvironmentEndpoint = "/api/environment"
	GrowthEndpoint      = "/api/growth"
	SchoolsEndpoint     = "/api/schools"
	ExportEndpoint      = "/api/export"
	ReloadEndpoint      = "/api/data/reload"
	HealthEndpoint      = "/health"
	MetricsEndpoint     = "/metrics"

	// WebSocket Endpoints
	WebSocketEndpoint = "/ws"
)
