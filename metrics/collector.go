// Package metrics provides the Collector interface for aggregating metrics.
// This is a molecule that composes the atom-level types from types.go.
package metrics

// Collector defines the interface for collecting metrics from various sources.
// This molecule aggregates RunRecord, RenderSnapshot, and AccountStatus atoms to
// provide a unified interface for metric collection.
//
// Implementation strategy:
// - Implementations should aggregate data from pipeline runs, rendering, and account status
// - Methods should be concurrency-safe
// - Zero values should be returned for unavailable metrics
type Collector interface {
	// RecordRun logs a completed pipeline run.
	// Aggregates RunRecord atoms into the metrics system.
	RecordRun(run RunRecord)

	// GetRunMetrics returns aggregated pipeline run statistics.
	// Composes multiple RunRecord atoms into a RunMetrics summary.
	GetRunMetrics() RunMetrics

	// GetRecentRuns returns the N most recent run records.
	// Provides access to individual RunRecord atoms.
	GetRecentRuns(limit int) []RunRecord

	// UpdateRenderSnapshot updates the latest render snapshot.
	// Records the current RenderSnapshot atom state.
	UpdateRenderSnapshot(snapshot RenderSnapshot)

	// GetRenderSnapshot returns the latest render snapshot.
	// Retrieves the latest RenderSnapshot atom.
	GetRenderSnapshot() RenderSnapshot

	// UpdateAccountStatus updates the status for a posting account.
	// Records the current AccountStatus atom for an account.
	UpdateAccountStatus(status AccountStatus)

	// GetAccountStatus returns the status for a specific account by username.
	// Retrieves the AccountStatus atom for a given account.
	GetAccountStatus(username string) (AccountStatus, bool)

	// GetAllAccountStatuses returns status for all tracked accounts.
	// Provides access to all AccountStatus atoms.
	GetAllAccountStatuses() []AccountStatus

	// GetSystemStatus returns the overall system health status.
	// Composes a SystemStatus atom from collected metrics.
	GetSystemStatus() SystemStatus
}
