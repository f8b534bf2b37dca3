// Package metrics provides the Store organism for in-memory metrics storage.
// This file contains the Store which implements the Collector interface.
package metrics

import (
	"sync"
	"time"
)

// Store is an in-memory storage organism for all pipeline metrics.
// It implements the Collector interface and provides thread-safe
// access to run records, render snapshots, account statuses, and system health.
//
// This is an organism-level component that composes:
// - a circular buffer for run history
// - sync.RWMutex for thread-safety
// - metrics types (RunRecord, RenderSnapshot, AccountStatus, etc.)
//
// Usage:
//
//	store := NewStore(DefaultStoreConfig(), time.Now())
//	store.RecordRun(run)
//	metrics := store.GetRunMetrics()
type Store struct {
	mu sync.RWMutex

	// Run tracking
	runHistory []RunRecord // Circular buffer of recent runs
	runCap     int         // Maximum runs to retain
	runHead    int         // Write index
	runSize    int         // Current number of runs

	// Run aggregation
	totalRuns    int64
	totalSuccess int64
	totalErrors  int64
	runByType    map[string]*runTypeStats // Per-type statistics

	// Latest render snapshot
	renderSnapshot RenderSnapshot

	// Account statuses (keyed by username)
	accountStatuses map[string]AccountStatus

	// System metadata
	startTime time.Time
	version   string
}

// runTypeStats holds per-type aggregation data
type runTypeStats struct {
	count         int64
	successCount  int64
	totalDuration time.Duration
}

// StoreConfig configures the Store behavior.
type StoreConfig struct {
	// RunHistoryCapacity is the max number of runs to retain in history
	RunHistoryCapacity int
	// Version is the application version string
	Version string
}

// DefaultStoreConfig returns a default configuration.
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		RunHistoryCapacity: 100,
		Version:            "0.0.0",
	}
}

// NewStore creates a new Store with the specified configuration.
// The startTime is used to calculate uptime.
func NewStore(config StoreConfig, startTime time.Time) *Store {
	cap := config.RunHistoryCapacity
	if cap < 1 {
		cap = 100
	}

	return &Store{
		runHistory:      make([]RunRecord, cap),
		runCap:          cap,
		runHead:         0,
		runSize:         0,
		runByType:       make(map[string]*runTypeStats),
		accountStatuses: make(map[string]AccountStatus),
		startTime:       startTime,
		version:         config.Version,
	}
}

// RecordRun logs a completed pipeline run.
// This implements part of the Collector interface.
func (s *Store) RecordRun(run RunRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Add to circular buffer
	s.runHistory[s.runHead] = run
	s.runHead = (s.runHead + 1) % s.runCap
	if s.runSize < s.runCap {
		s.runSize++
	}

	// Update aggregations
	s.totalRuns++

	if run.Status == RunStatusSuccess {
		s.totalSuccess++
	} else if run.Status == RunStatusError {
		s.totalErrors++
	}

	// Update per-type stats
	stats, ok := s.runByType[run.Type]
	if !ok {
		stats = &runTypeStats{}
		s.runByType[run.Type] = stats
	}
	stats.count++
	if run.Status == RunStatusSuccess {
		stats.successCount++
	}
	stats.totalDuration += run.Duration
}

// GetRunMetrics returns aggregated pipeline run statistics.
// This implements part of the Collector interface.
func (s *Store) GetRunMetrics() RunMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	metrics := RunMetrics{
		TotalProcessed: s.totalRuns,
		TotalSuccess:   s.totalSuccess,
		TotalErrors:    s.totalErrors,
		ByType:         make(map[string]*RunTypeMetrics),
	}

	for runType, stats := range s.runByType {
		var successRate float64
		if stats.count > 0 {
			successRate = float64(stats.successCount) / float64(stats.count) * 100
		}

		var avgDuration time.Duration
		if stats.count > 0 {
			avgDuration = stats.totalDuration / time.Duration(stats.count)
		}

		metrics.ByType[runType] = &RunTypeMetrics{
			Count:       stats.count,
			SuccessRate: successRate,
			AvgDuration: avgDuration,
		}
	}

	return metrics
}

// GetRecentRuns returns the N most recent run records.
// If limit exceeds available runs, all available are returned.
// This implements part of the Collector interface.
func (s *Store) GetRecentRuns(limit int) []RunRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || s.runSize == 0 {
		return []RunRecord{}
	}

	if limit > s.runSize {
		limit = s.runSize
	}

	// Calculate the starting index for the most recent 'limit' items
	result := make([]RunRecord, limit)
	for i := 0; i < limit; i++ {
		// Work backwards from head to get most recent first
		idx := (s.runHead - limit + i + s.runCap) % s.runCap
		result[i] = s.runHistory[idx]
	}

	return result
}

// UpdateRenderSnapshot updates the latest render snapshot.
// This implements part of the Collector interface.
func (s *Store) UpdateRenderSnapshot(snapshot RenderSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderSnapshot = snapshot
}

// GetRenderSnapshot returns the latest render snapshot.
// This implements part of the Collector interface.
func (s *Store) GetRenderSnapshot() RenderSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.renderSnapshot
}

// UpdateAccountStatus updates the status for a posting account.
// This implements part of the Collector interface.
func (s *Store) UpdateAccountStatus(status AccountStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accountStatuses[status.Username] = status
}

// GetAccountStatus returns the status for a specific account by username.
// This implements part of the Collector interface.
func (s *Store) GetAccountStatus(username string) (AccountStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status, ok := s.accountStatuses[username]
	return status, ok
}

// GetAllAccountStatuses returns status for all tracked accounts.
// This implements part of the Collector interface.
func (s *Store) GetAllAccountStatuses() []AccountStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]AccountStatus, 0, len(s.accountStatuses))
	for _, status := range s.accountStatuses {
		result = append(result, status)
	}
	return result
}

// GetSystemStatus returns the overall system health status.
// This implements part of the Collector interface.
func (s *Store) GetSystemStatus() SystemStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Determine health based on logged-in accounts
	health := SystemHealthRunning
	hasLoggedIn := false
	for _, account := range s.accountStatuses {
		if account.LoggedIn {
			hasLoggedIn = true
			break
		}
	}

	// If accounts are registered but none hold a session, report error
	if len(s.accountStatuses) > 0 && !hasLoggedIn {
		health = SystemHealthError
	}

	return SystemStatus{
		Health:    health,
		Version:   s.version,
		Uptime:    time.Since(s.startTime),
		LastCheck: time.Now(),
	}
}

// Verify Store implements Collector interface
var _ Collector = (*Store)(nil)
