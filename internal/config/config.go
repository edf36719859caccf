package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/Mikhail-Beresnev/shared-ng/internal/constants"
	"github.com/Mikhail-Beresnev/shared-ng/internal/logger"
	"github.com/Mikhail-Beresnev/shared-ng/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// ServerURL is the base URL relative request paths are resolved against.
	ServerURL string `mapstructure:"server_url"`
	// SessionToken seeds the session cookie sent to the server. Optional.
	SessionToken string `mapstructure:"session_token"`
	// SessionCookieName is the name of the cookie whose presence triggers verification.
	SessionCookieName string `mapstructure:"session_cookie_name"`
	// VerifyURI is the endpoint that returns the current user.
	VerifyURI string `mapstructure:"verify_uri"`
	// UploadImageURI is the endpoint that accepts multipart image uploads.
	UploadImageURI string `mapstructure:"upload_image_uri"`
	// UserAgent overrides the default User-Agent header.
	UserAgent string `mapstructure:"user_agent"`
	// RequestTimeout is the HTTP client timeout (e.g., "60s").
	RequestTimeout string `mapstructure:"request_timeout"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// MaxLogLength caps the size of dumped requests and responses (e.g., "1MB").
	MaxLogLength string `mapstructure:"max_log_length"`
	// MaxUploadSize caps the size of uploaded files (e.g., "10MB").
	MaxUploadSize string `mapstructure:"max_upload_size"`
	// ShowMetrics prints a request metrics summary after each command.
	ShowMetrics bool `mapstructure:"show_metrics"`
	// Filename is the file the configuration was loaded from (set automatically).
	Filename string `mapstructure:"-"`
	// ParsedServerURL is the parsed server URL.
	ParsedServerURL *url.URL
	// ParsedRequestTimeout is the parsed HTTP client timeout.
	ParsedRequestTimeout time.Duration
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedMaxLogLength is the parsed dump size limit in bytes.
	ParsedMaxLogLength uint64
	// ParsedMaxUploadSize is the parsed upload size limit in bytes.
	ParsedMaxUploadSize int64
}

const (
	// DefaultServerURL is the API server used when none is configured.
	DefaultServerURL = "https://aswwu.com/server"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".shared-ng.yaml"

	// DefaultSessionCookieName is the cookie that marks an existing session.
	DefaultSessionCookieName = "token"

	// DefaultVerifyURI is the session verification endpoint.
	DefaultVerifyURI = "verify"

	// DefaultUploadImageURI is the image upload endpoint.
	DefaultUploadImageURI = "/pages/media/upload_image"

	// DefaultRequestTimeout is the default HTTP client timeout.
	DefaultRequestTimeout = "60s"

	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "info"

	// DefaultMaxLogLength is the default maximum size (in bytes) of dumped HTTP traffic.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// DefaultMaxUploadSize is the default upload size limit.
	DefaultMaxUploadSize = "10MB"

	// sessionTokenKey is the YAML key rewritten by SaveConfig.
	sessionTokenKey = "session_token"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyServerURL indicates that the server URL is missing.
	ErrEmptyServerURL = errors.New("server URL cannot be empty")
	// ErrInvalidServerURL indicates that the server URL is not an absolute http(s) URL.
	ErrInvalidServerURL = errors.New("server URL must be an absolute http or https URL")
	// ErrEmptySessionCookieName indicates that the session cookie name is missing.
	ErrEmptySessionCookieName = errors.New("session cookie name cannot be empty")
	// ErrEmptyVerifyURI indicates that the verify endpoint is missing.
	ErrEmptyVerifyURI = errors.New("verify URI cannot be empty")
	// ErrEmptyUploadImageURI indicates that the upload endpoint is missing.
	ErrEmptyUploadImageURI = errors.New("upload image URI cannot be empty")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is not positive.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidMaxUploadSize indicates that the upload size limit is not positive.
	ErrInvalidMaxUploadSize = errors.New("max_upload_size must be positive")
)

// LoadConfig loads configuration settings from a YAML file.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	v := newViper()
	v.SetConfigFile(configFilename)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Filename = configFilename

	return &cfg, nil
}

// Default returns a configuration populated with default values only.
func Default() *Config {
	return &Config{
		ServerURL:         DefaultServerURL,
		SessionCookieName: DefaultSessionCookieName,
		VerifyURI:         DefaultVerifyURI,
		UploadImageURI:    DefaultUploadImageURI,
		RequestTimeout:    DefaultRequestTimeout,
		LogLevel:          DefaultLogLevel,
		MaxUploadSize:     DefaultMaxUploadSize,
		Filename:          DefaultConfigFilename,
	}
}

// ValidateConfig checks the configuration for validity and sets derived fields.
//
//nolint:cyclop,funlen // Validation functions naturally have high complexity and length due to sequential checks.
func ValidateConfig(cfg *Config) error {
	var err error

	serverURL := strings.TrimSpace(cfg.ServerURL)
	if serverURL == "" {
		return ErrEmptyServerURL
	}

	cfg.ParsedServerURL, err = url.Parse(serverURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerURL, err)
	}

	if (cfg.ParsedServerURL.Scheme != "http" && cfg.ParsedServerURL.Scheme != "https") ||
		cfg.ParsedServerURL.Host == "" {
		return fmt.Errorf("%w: '%s'", ErrInvalidServerURL, serverURL)
	}

	cfg.ServerURL = serverURL
	cfg.SessionToken = strings.TrimSpace(cfg.SessionToken)

	if strings.TrimSpace(cfg.SessionCookieName) == "" {
		return ErrEmptySessionCookieName
	}

	if strings.TrimSpace(cfg.VerifyURI) == "" {
		return ErrEmptyVerifyURI
	}

	if strings.TrimSpace(cfg.UploadImageURI) == "" {
		return ErrEmptyUploadImageURI
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	cfg.ParsedMaxLogLength = DefaultMaxLogLength

	if maxLogLength := strings.TrimSpace(cfg.MaxLogLength); maxLogLength != "" && maxLogLength != "0" {
		cfg.ParsedMaxLogLength, err = humanize.ParseBytes(maxLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse max log length: %w", err)
		}
	}

	parsedMaxUploadSize, err := humanize.ParseBytes(strings.TrimSpace(cfg.MaxUploadSize))
	if err != nil {
		return fmt.Errorf("failed to parse max upload size: %w", err)
	}

	if parsedMaxUploadSize == 0 {
		return ErrInvalidMaxUploadSize
	}

	// multipart bodies are measured with int64 counters.
	cfg.ParsedMaxUploadSize = utils.SafeUint64ToInt64(parsedMaxUploadSize)

	return nil
}

// SaveConfig stores the session token in the configuration file while preserving the original format and order.
func SaveConfig(cfg *Config) error {
	configFile := cfg.Filename
	if configFile == "" {
		configFile = DefaultConfigFilename
	}

	// Read the original file content.
	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg.SessionToken, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	updateSessionTokenInNode(&node, cfg.SessionToken)

	// Marshal back to YAML (preserves order).
	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, newContent, constants.PrivateFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("server_url", DefaultServerURL)
	v.SetDefault("session_cookie_name", DefaultSessionCookieName)
	v.SetDefault("verify_uri", DefaultVerifyURI)
	v.SetDefault("upload_image_uri", DefaultUploadImageURI)
	v.SetDefault("request_timeout", DefaultRequestTimeout)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("max_upload_size", DefaultMaxUploadSize)

	return v
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile, sessionToken string, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	v := viper.New()
	v.Set(sessionTokenKey, sessionToken)

	if err = v.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// updateSessionTokenInNode sets the session_token value in the YAML node tree,
// appending the key when the document does not have it yet.
func updateSessionTokenInNode(node *yaml.Node, sessionToken string) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		if keyNode.Value == sessionTokenKey {
			valueNode.Value = sessionToken

			// Ensure it's quoted if it contains special characters.
			if valueNode.Style == 0 {
				valueNode.Style = yaml.DoubleQuotedStyle
			}

			return
		}
	}

	mapNode.Content = append(mapNode.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: sessionTokenKey},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: sessionToken, Style: yaml.DoubleQuotedStyle},
	)
}
