package server

import (
	"time"

	"linkedopt/internal/config"
	linkedoptErrors "linkedopt/internal/errors"
	"linkedopt/internal/telemetry"
	"linkedopt/internal/training"
	"linkedopt/internal/types"
)

// ExtractRequest is the JSON body for the extract endpoint. Clients
// that cannot send multipart uploads pass base64-encoded images here.
type ExtractRequest struct {
	Images []string `json:"images"`
}

// ScoreRequest carries a profile plus the target to score against.
type ScoreRequest struct {
	Profile types.Profile `json:"profile"`
	Target  types.Target  `json:"target"`
}

// GapsRequest carries a profile plus the target for gap analysis.
type GapsRequest struct {
	Profile types.Profile `json:"profile"`
	Target  types.Target  `json:"target"`
}

// OptimizeRequest is the strategy generation body. ModelChoice selects
// the hosted model; AdditionalContext turns the call into a follow-up.
type OptimizeRequest struct {
	Profile           types.Profile `json:"profile"`
	Target            types.Target  `json:"target"`
	ModelChoice       string        `json:"modelChoice,omitempty"`
	AdditionalContext string        `json:"additionalContext,omitempty"`
}

// ExtractResponse bundles the extracted profile with its validation.
type ExtractResponse struct {
	Profile    types.Profile              `json:"profile"`
	Validation types.ExtractionValidation `json:"validation"`
}

// ScoreResponse bundles the quality scores with recommendations.
type ScoreResponse struct {
	Quality         types.ProfileQuality `json:"quality"`
	Recommendations []string             `json:"recommendations"`
}

// OptimizeResponse bundles the generated report with its post-hoc
// content validation.
type OptimizeResponse struct {
	Report     types.OptimizationReport `json:"report"`
	Validation types.ContentValidation  `json:"validation"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// Certificate management
	CertificateManager *CertificateManager

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limits
	MaxRequestSize int64
	MaxUploadSize  int64
	MaxImages      int

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Pipeline sinks shared across handlers
	Recorder *telemetry.Recorder
	Training *training.Logger

	// Logger
	Logger *linkedoptErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	MaxUploadSize  int64
	MaxImages      int
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *linkedoptErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	trainingLogger, err := training.NewLogger(appCfg.App.DatasetPath)
	if err != nil {
		logger.Warn("Training dataset logging disabled", "error", err)
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		MaxUploadSize:  cfg.MaxUploadSize,
		MaxImages:      cfg.MaxImages,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Recorder:       telemetry.NewRecorder(appCfg.App.TelemetryPath, logger),
		Training:       trainingLogger,
		Logger:         logger,
	}
}
