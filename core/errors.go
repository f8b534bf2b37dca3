package core

import (
	"fmt"
)

// ConfigError represents a configuration-related error with actionable instructions.
type ConfigError struct {
	Code    string // Error code for programmatic handling
	Message string // Human-readable error message
	Action  string // Actionable instruction for resolution
}

func (e *ConfigError) Error() string {
	if e.Action != "" {
		return fmt.Sprintf("%s. %s", e.Message, e.Action)
	}
	return e.Message
}

// Error codes for configuration errors
const (
	ErrCodeEnvFileMissing    = "ENV_FILE_MISSING"
	ErrCodeInvalidAPIURL     = "INVALID_API_URL"
	ErrCodeMissingAuth       = "MISSING_AUTH"
	ErrCodeServerUnreachable = "SERVER_UNREACHABLE"
	ErrCodeAuthFailed        = "AUTH_FAILED"
	ErrCodeInvalidSchedule   = "INVALID_SCHEDULE"
	ErrCodeOutputDirInvalid  = "OUTPUT_DIR_INVALID"
	ErrCodeMissingConfig     = "MISSING_CONFIG"
)

// ErrEnvFileMissing returns an error for missing .env file
func ErrEnvFileMissing(path string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeEnvFileMissing,
		Message: fmt.Sprintf("Configuration file not found: %s", path),
		Action:  "Copy .env.example to .env and configure the required values",
	}
}

// ErrInvalidAPIURL returns an error for an invalid API URL format
func ErrInvalidAPIURL(url string, reason string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeInvalidAPIURL,
		Message: fmt.Sprintf("Invalid INSTAGRAM_API_URL '%s': %s", url, reason),
		Action:  "Set INSTAGRAM_API_URL to a valid URL (e.g., https://i.instagram.com/api/v1)",
	}
}

// ErrMissingAuth returns an error for missing authentication credentials
func ErrMissingAuth(service string) *ConfigError {
	var action string
	switch service {
	case "instagram":
		action = "Set INSTAGRAM_USERNAME, INSTAGRAM_PASSWORD and INSTAGRAM_SESSION_KEY in your .env file"
	case "openai":
		action = "Set OPENAI_API_KEY in your .env file (or rely on template captions)"
	default:
		action = fmt.Sprintf("Set the required credentials for %s in your .env file", service)
	}
	return &ConfigError{
		Code:    ErrCodeMissingAuth,
		Message: fmt.Sprintf("Missing authentication credentials for %s", service),
		Action:  action,
	}
}

// ErrServerUnreachable returns an error when the server cannot be reached
func ErrServerUnreachable(url string, reason string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeServerUnreachable,
		Message: fmt.Sprintf("Cannot connect to server at %s: %s", url, reason),
		Action:  "Check that INSTAGRAM_API_URL is correct and the network is up. For self-signed certificates, set ALLOW_SELF_SIGNED_CERTS=true",
	}
}

// ErrAuthFailed returns an error when authentication fails
func ErrAuthFailed(service string, reason string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeAuthFailed,
		Message: fmt.Sprintf("Authentication failed for %s: %s", service, reason),
		Action:  "Verify the credentials are correct and the account is not locked",
	}
}

// ErrInvalidSchedule returns an error for an unparseable posting schedule
func ErrInvalidSchedule(value string, reason string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeInvalidSchedule,
		Message: fmt.Sprintf("Invalid posting schedule '%s': %s", value, reason),
		Action:  "Set SCHEDULE_TIMES to comma-separated HH:MM values (e.g., 10:00,20:00)",
	}
}

// ErrOutputDirInvalid returns an error when the output directory is unusable
func ErrOutputDirInvalid(path string, reason string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeOutputDirInvalid,
		Message: fmt.Sprintf("Output directory %s is not usable: %s", path, reason),
		Action:  "Set OUTPUT_DIR to a writable directory",
	}
}

// ErrMissingConfig returns an error for missing required configuration
func ErrMissingConfig(varName string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeMissingConfig,
		Message: fmt.Sprintf("Missing required configuration: %s", varName),
		Action:  fmt.Sprintf("Set %s in your .env file", varName),
	}
}

// IsConfigError checks if an error is a ConfigError and returns it if so
func IsConfigError(err error) (*ConfigError, bool) {
	if configErr, ok := err.(*ConfigError); ok {
		return configErr, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from an error if it's a ConfigError
func GetErrorCode(err error) string {
	if configErr, ok := IsConfigError(err); ok {
		return configErr.Code
	}
	return ""
}
