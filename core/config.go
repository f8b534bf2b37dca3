package core

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Config holds all configuration values
type Config struct {
	// Instagram Configuration (required only for posting)
	InstagramUsername string // Account username
	InstagramPassword string // Account password
	InstagramAPIURL   string // API base URL (uses the client default if empty)
	SessionFile       string // Path to the encrypted session file
	SessionKey        string // Passphrase protecting the session file
	PostFormat        string // Post format: square, portrait, landscape, story

	// OpenAI Configuration (optional - template captions are used without it)
	OpenAIAPIKey  string // API key for AI caption generation
	OpenAIBaseURL string // Optional override for the API endpoint
	CaptionModel  string // Model identifier for caption requests

	// Generation Configuration
	OutputDir    string // Directory where rendered artworks are written
	ImageWidth   int    // Output image width in pixels
	ImageHeight  int    // Output image height in pixels
	JPEGQuality  int    // JPEG encoding quality (1-100)
	SavePNG      bool   // Write lossless PNG instead of JPEG
	HashtagCount int    // Number of hashtags attached to each post

	// Scheduler Configuration
	ScheduleTimes  []string // Daily posting times in HH:MM format
	IntervalHours  int      // Fixed posting interval (used when ScheduleTimes is empty)
	ScheduleConfig string   // Optional path to a YAML schedule file

	// Storage Configuration
	DatabasePath string // Path to the SQLite post history database
	LogFilePath  string // Path to the application log file

	// Runtime Configuration
	DevMode              bool // Colored debug logging when true
	DryRun               bool // Skip the actual upload, log what would be posted
	AllowSelfSignedCerts bool
	RequestTimeout       time.Duration
}

// LoadConfig loads configuration from environment variables with sensible
// defaults. Only generation settings have defaults; Instagram credentials are
// validated separately because generate and gallery runs do not need them.
func LoadConfig() (*Config, error) {
	outputDir := GetEnvOrDefault("OUTPUT_DIR", "artworks")

	// 1080x1080 matches the square Instagram format, the primary target
	imageWidth := ParseIntEnv("IMAGE_WIDTH", 1080)
	imageHeight := ParseIntEnv("IMAGE_HEIGHT", 1080)
	if imageWidth < 64 || imageHeight < 64 {
		return nil, fmt.Errorf("IMAGE_WIDTH and IMAGE_HEIGHT must be at least 64, got %dx%d", imageWidth, imageHeight)
	}
	if imageWidth > 4096 || imageHeight > 4096 {
		return nil, fmt.Errorf("IMAGE_WIDTH and IMAGE_HEIGHT must be at most 4096, got %dx%d", imageWidth, imageHeight)
	}

	jpegQuality := ParseIntEnv("IMAGE_QUALITY", 95)
	if jpegQuality < 1 || jpegQuality > 100 {
		return nil, fmt.Errorf("IMAGE_QUALITY must be between 1 and 100, got %d", jpegQuality)
	}

	hashtagCount := ParseIntEnv("HASHTAG_COUNT", 20)
	if hashtagCount < 0 {
		return nil, fmt.Errorf("HASHTAG_COUNT must not be negative, got %d", hashtagCount)
	}

	intervalHours := ParseIntEnv("SCHEDULE_INTERVAL_HOURS", 0)
	if intervalHours < 0 {
		return nil, fmt.Errorf("SCHEDULE_INTERVAL_HOURS must not be negative, got %d", intervalHours)
	}

	sessionFile := GetEnvOrDefault("INSTAGRAM_SESSION_FILE", GetDataFilePath("session.bin"))
	databasePath := GetEnvOrDefault("MALEVICH_DB_PATH", GetDataFilePath("malevich.db"))
	logFilePath := GetEnvOrDefault("MALEVICH_LOG_FILE", filepath.Join("logs", "malevich.log"))

	return &Config{
		// Instagram Configuration
		InstagramUsername: os.Getenv("INSTAGRAM_USERNAME"),
		InstagramPassword: os.Getenv("INSTAGRAM_PASSWORD"),
		InstagramAPIURL:   os.Getenv("INSTAGRAM_API_URL"),
		SessionFile:       sessionFile,
		SessionKey:        os.Getenv("INSTAGRAM_SESSION_KEY"),
		PostFormat:        GetEnvOrDefault("INSTAGRAM_FORMAT", "square"),

		// OpenAI Configuration (optional)
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		CaptionModel:  os.Getenv("OPENAI_CAPTION_MODEL"),

		// Generation Configuration
		OutputDir:    outputDir,
		ImageWidth:   imageWidth,
		ImageHeight:  imageHeight,
		JPEGQuality:  jpegQuality,
		SavePNG:      ParseBoolEnv("SAVE_PNG", false),
		HashtagCount: hashtagCount,

		// Scheduler Configuration
		ScheduleTimes:  ParseListEnv("SCHEDULE_TIMES"),
		IntervalHours:  intervalHours,
		ScheduleConfig: os.Getenv("SCHEDULE_CONFIG"),

		// Storage Configuration
		DatabasePath: databasePath,
		LogFilePath:  logFilePath,

		// Runtime Configuration
		DevMode:              ParseBoolEnv("DEV_MODE", false),
		DryRun:               ParseBoolEnv("DRY_RUN", false),
		AllowSelfSignedCerts: ParseBoolEnv("ALLOW_SELF_SIGNED_CERTS", false),
		RequestTimeout:       ParseDurationEnv("REQUEST_TIMEOUT", 30),
	}, nil
}

// RequireInstagram validates that the credentials needed for posting are set.
// Called by the post and schedule commands; generate and gallery do not need
// Instagram access.
func (c *Config) RequireInstagram() error {
	var missingVars []string
	if c.InstagramUsername == "" {
		missingVars = append(missingVars, "INSTAGRAM_USERNAME")
	}
	if c.InstagramPassword == "" {
		missingVars = append(missingVars, "INSTAGRAM_PASSWORD")
	}
	if c.SessionKey == "" {
		missingVars = append(missingVars, "INSTAGRAM_SESSION_KEY")
	}
	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v. See .env.example for configuration template", missingVars)
	}
	return nil
}

// HasOpenAI returns true if an OpenAI API key is configured.
// Without a key, captions fall back to the template generator.
func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}

// GetHTTPClient returns an HTTP client configured with TLS settings based on AllowSelfSignedCerts.
// This should be used for all HTTP requests to external APIs to ensure TLS configuration is respected.
func GetHTTPClient(cfg *Config, timeout time.Duration) *http.Client {
	client := &http.Client{
		Timeout: timeout,
	}

	if cfg.AllowSelfSignedCerts {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return client
}

// GetDefaultHTTPClient returns an HTTP client with the configured request timeout.
func GetDefaultHTTPClient(cfg *Config) *http.Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return GetHTTPClient(cfg, timeout)
}
