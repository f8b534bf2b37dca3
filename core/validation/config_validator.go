package validation

import (
	"os"

	"malevich/core"
	"malevich/scheduler"
)

// ValidationResult represents the result of a configuration validation check.
type ValidationResult struct {
	Valid   bool
	Message string
	Error   error
}

// ConfigValidator composes validation atoms to provide comprehensive configuration checking.
// This is a molecule that orchestrates URL validation, directory checks, schedule parsing
// and credential checks.
type ConfigValidator struct {
	envPath string // Path to .env file (default: ".env")
}

// NewConfigValidator creates a new ConfigValidator with default settings.
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{
		envPath: ".env",
	}
}

// WithEnvPath sets a custom path for the .env file.
func (v *ConfigValidator) WithEnvPath(path string) *ConfigValidator {
	v.envPath = path
	return v
}

// CheckEnvFile validates that the .env file exists.
// Returns a ValidationResult with error details if the file is missing.
func (v *ConfigValidator) CheckEnvFile() ValidationResult {
	if err := CheckFileExists(v.envPath); err != nil {
		return ValidationResult{
			Valid:   false,
			Message: "Configuration file not found. Copy .env.example to .env and configure your Instagram credentials.",
			Error:   core.ErrEnvFileMissing(v.envPath),
		}
	}
	return ValidationResult{
		Valid:   true,
		Message: "Environment file found",
	}
}

// CheckOutputDir validates that the artwork output directory is writable.
// Returns a ValidationResult with error details if the directory is unusable.
func (v *ConfigValidator) CheckOutputDir() ValidationResult {
	outputDir := core.GetEnvOrDefault("OUTPUT_DIR", "artworks")

	if err := CheckDirWritable(outputDir); err != nil {
		return ValidationResult{
			Valid:   false,
			Message: "Output directory is not writable: " + outputDir,
			Error:   core.ErrOutputDirInvalid(outputDir, err.Error()),
		}
	}

	return ValidationResult{
		Valid:   true,
		Message: "Output directory writable",
	}
}

// CheckSchedule validates the SCHEDULE_TIMES environment variable.
// An unset schedule is valid; the default times (10:00 and 20:00) are used.
func (v *ConfigValidator) CheckSchedule() ValidationResult {
	raw := os.Getenv("SCHEDULE_TIMES")
	if raw == "" {
		return ValidationResult{
			Valid:   true,
			Message: "Default schedule (10:00, 20:00)",
		}
	}

	times := core.ParseListEnv("SCHEDULE_TIMES")
	if _, err := scheduler.ParseTimes(times); err != nil {
		return ValidationResult{
			Valid:   false,
			Message: "Invalid SCHEDULE_TIMES. Use comma-separated HH:MM values (e.g., 10:00,20:00)",
			Error:   core.ErrInvalidSchedule(raw, err.Error()),
		}
	}

	return ValidationResult{
		Valid:   true,
		Message: "Schedule valid",
	}
}

// CheckInstagramCredentials validates that Instagram posting credentials are configured.
// Returns a ValidationResult with error details if any credential is missing.
func (v *ConfigValidator) CheckInstagramCredentials() ValidationResult {
	username := os.Getenv("INSTAGRAM_USERNAME")
	password := os.Getenv("INSTAGRAM_PASSWORD")
	sessionKey := os.Getenv("INSTAGRAM_SESSION_KEY")

	if username == "" || password == "" || sessionKey == "" {
		return ValidationResult{
			Valid:   false,
			Message: "Instagram credentials required. Set INSTAGRAM_USERNAME, INSTAGRAM_PASSWORD and INSTAGRAM_SESSION_KEY",
			Error:   core.ErrMissingAuth("instagram"),
		}
	}

	return ValidationResult{
		Valid:   true,
		Message: "Instagram credentials configured",
	}
}

// CheckOpenAICredentials validates that OpenAI credentials are configured.
// NOTE: This is OPTIONAL. Without a key, captions fall back to the template generator.
func (v *ConfigValidator) CheckOpenAICredentials() ValidationResult {
	apiKey := os.Getenv("OPENAI_API_KEY")

	if apiKey == "" {
		return ValidationResult{
			Valid:   false,
			Message: "OpenAI API key not configured (optional - template captions are used instead)",
			Error:   core.ErrMissingAuth("openai"),
		}
	}

	return ValidationResult{
		Valid:   true,
		Message: "OpenAI API key configured",
	}
}

// ValidateAll runs all configuration checks and returns all results.
// This provides a comprehensive view of the configuration state, including optional settings.
func (v *ConfigValidator) ValidateAll() []ValidationResult {
	return []ValidationResult{
		v.CheckEnvFile(),
		v.CheckOutputDir(),
		v.CheckSchedule(),
		v.CheckInstagramCredentials(),
		v.CheckOpenAICredentials(), // Included but not required
	}
}

// ValidateRequired runs only the checks required before posting.
// This does NOT check OpenAI credentials - the template caption generator
// works without them. Returns the first validation failure, or nil if all
// required checks pass.
func (v *ConfigValidator) ValidateRequired() error {
	// Check env file first
	if result := v.CheckEnvFile(); !result.Valid {
		return result.Error
	}

	// Check output directory
	if result := v.CheckOutputDir(); !result.Valid {
		return result.Error
	}

	// Check posting schedule
	if result := v.CheckSchedule(); !result.Valid {
		return result.Error
	}

	// Check Instagram credentials
	if result := v.CheckInstagramCredentials(); !result.Valid {
		return result.Error
	}

	return nil
}

// ValidateGenerate runs only the checks needed for offline generation.
// Generation needs a writable output directory and nothing else.
func (v *ConfigValidator) ValidateGenerate() error {
	if result := v.CheckOutputDir(); !result.Valid {
		return result.Error
	}
	return nil
}

// IsValid returns true if all required configuration is valid.
// This checks ONLY required settings (posting credentials), not optional cloud APIs.
func (v *ConfigValidator) IsValid() bool {
	return v.ValidateRequired() == nil
}

// GetFirstError returns the first validation error, or nil if all required checks pass.
func (v *ConfigValidator) GetFirstError() error {
	return v.ValidateRequired()
}

// CountValid returns the number of valid configuration items.
func (v *ConfigValidator) CountValid() int {
	results := v.ValidateAll()
	count := 0
	for _, r := range results {
		if r.Valid {
			count++
		}
	}
	return count
}

// CountInvalid returns the number of invalid configuration items.
func (v *ConfigValidator) CountInvalid() int {
	results := v.ValidateAll()
	return len(results) - v.CountValid()
}
