// Package metrics provides pure data types for the pipeline metrics system.
// This file contains atom-level type definitions with no behavior.
package metrics

import "time"

// RunRecord represents a single pipeline run record.
// This is a pure data structure for tracking individual generation and posting operations.
type RunRecord struct {
	// ID is the unique identifier for this run
	ID string `json:"id"`

	// Type identifies the kind of run (e.g., "generate", "caption", "post", "gallery")
	Type string `json:"type"`

	// Style is the artwork style used for this run (empty for non-generation runs)
	Style string `json:"style,omitempty"`

	// Status indicates the current state: "success", "error", "processing"
	Status string `json:"status"`

	// StartTime is when the run began execution
	StartTime time.Time `json:"start_time"`

	// EndTime is when the run completed (zero value if still processing)
	EndTime time.Time `json:"end_time,omitempty"`

	// Duration is the total execution time
	Duration time.Duration `json:"duration"`

	// ErrorMsg contains error details if Status is "error"
	ErrorMsg string `json:"error_msg,omitempty"`
}

// RenderSnapshot describes the most recently rendered artwork.
// This differs from logging.RenderMetrics in that it carries the output
// path and file size for status reporting.
type RenderSnapshot struct {
	// Style is the composer style used for the render
	Style string `json:"style"`

	// Palette is the name of the colour palette used
	Palette string `json:"palette"`

	// Seed is the random seed that produced the artwork
	Seed int64 `json:"seed"`

	// Width is the image width in pixels
	Width int `json:"width"`

	// Height is the image height in pixels
	Height int `json:"height"`

	// OutputPath is where the rendered image was written
	OutputPath string `json:"output_path"`

	// FileSize is the size of the rendered image in bytes
	FileSize int64 `json:"file_size"`

	// Duration is how long the render took
	Duration time.Duration `json:"duration"`
}

// AccountStatus represents the session and health status of a posting account.
// This is a pure data structure with no behavior.
type AccountStatus struct {
	// Username is the account username
	Username string `json:"username"`

	// APIURL is the endpoint the account posts through
	APIURL string `json:"api_url"`

	// LoggedIn indicates if the account has a valid session
	LoggedIn bool `json:"logged_in"`

	// LastPost is the timestamp of the last successful post
	LastPost time.Time `json:"last_post"`

	// PostsToday is the count of posts published today
	PostsToday int64 `json:"posts_today"`

	// SuccessRate is the percentage of successful posts (0-100)
	SuccessRate float64 `json:"success_rate"`

	// Errors contains recent error messages (limited to last N errors)
	Errors []string `json:"errors,omitempty"`
}

// SystemStatus represents the overall system health and status.
// This is a pure data structure with no behavior.
type SystemStatus struct {
	// Health indicates the system state: "running", "error", "stopped"
	Health string `json:"health"`

	// Version is the application version string
	Version string `json:"version"`

	// Uptime is the duration since the application started
	Uptime time.Duration `json:"uptime"`

	// LastCheck is the timestamp of the last health check
	LastCheck time.Time `json:"last_check"`
}

// RunMetrics represents aggregated pipeline run statistics.
// This is a pure data structure with no behavior.
type RunMetrics struct {
	// TotalProcessed is the total number of runs processed
	TotalProcessed int64 `json:"total_processed"`

	// TotalSuccess is the count of successfully completed runs
	TotalSuccess int64 `json:"total_success"`

	// TotalErrors is the count of failed runs
	TotalErrors int64 `json:"total_errors"`

	// ByType contains per-type statistics
	ByType map[string]*RunTypeMetrics `json:"by_type"`
}

// RunTypeMetrics represents statistics for a specific run type.
// This is a pure data structure with no behavior.
type RunTypeMetrics struct {
	// Count is the total number of runs of this type
	Count int64 `json:"count"`

	// SuccessRate is the percentage of successful runs (0-100)
	SuccessRate float64 `json:"success_rate"`

	// AvgDuration is the average execution time for this run type
	AvgDuration time.Duration `json:"avg_duration"`
}

// Status constants for RunRecord
const (
	RunStatusSuccess    = "success"
	RunStatusError      = "error"
	RunStatusProcessing = "processing"
)

// Health constants for SystemStatus
const (
	SystemHealthRunning = "running"
	SystemHealthError   = "error"
	SystemHealthStopped = "stopped"
)

// Run type constants
const (
	RunTypeGenerate = "generate"
	RunTypeCaption  = "caption"
	RunTypePost     = "post"
	RunTypeGallery  = "gallery"
)
