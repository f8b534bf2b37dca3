package metrics

import (
	"sync"
	"testing"
	"time"
)

// MockCollector is a simple in-memory implementation of Collector for testing.
// This validates that the interface can be implemented and used correctly.
type MockCollector struct {
	mu              sync.RWMutex
	runs            []RunRecord
	runMetrics      RunMetrics
	renderSnapshot  RenderSnapshot
	accountStatuses map[string]AccountStatus
	systemStatus    SystemStatus
}

// NewMockCollector creates a new mock collector for testing.
func NewMockCollector() *MockCollector {
	return &MockCollector{
		runs:            make([]RunRecord, 0),
		accountStatuses: make(map[string]AccountStatus),
		runMetrics: RunMetrics{
			ByType: make(map[string]*RunTypeMetrics),
		},
	}
}

func (m *MockCollector) RecordRun(run RunRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, run)
}

func (m *MockCollector) GetRunMetrics() RunMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.runMetrics
}

func (m *MockCollector) GetRecentRuns(limit int) []RunRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.runs) <= limit {
		result := make([]RunRecord, len(m.runs))
		copy(result, m.runs)
		return result
	}

	start := len(m.runs) - limit
	result := make([]RunRecord, limit)
	copy(result, m.runs[start:])
	return result
}

func (m *MockCollector) UpdateRenderSnapshot(snapshot RenderSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.renderSnapshot = snapshot
}

func (m *MockCollector) GetRenderSnapshot() RenderSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.renderSnapshot
}

func (m *MockCollector) UpdateAccountStatus(status AccountStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accountStatuses[status.Username] = status
}

func (m *MockCollector) GetAccountStatus(username string) (AccountStatus, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	status, ok := m.accountStatuses[username]
	return status, ok
}

func (m *MockCollector) GetAllAccountStatuses() []AccountStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	statuses := make([]AccountStatus, 0, len(m.accountStatuses))
	for _, status := range m.accountStatuses {
		statuses = append(statuses, status)
	}
	return statuses
}

func (m *MockCollector) GetSystemStatus() SystemStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.systemStatus
}

// TestCollectorInterface verifies that MockCollector implements Collector.
func TestCollectorInterface(t *testing.T) {
	var _ Collector = (*MockCollector)(nil)
}

// TestRecordRun verifies run recording functionality.
func TestRecordRun(t *testing.T) {
	collector := NewMockCollector()

	run := RunRecord{
		ID:        "run-1",
		Type:      RunTypeGenerate,
		Style:     "suprematism",
		Status:    RunStatusSuccess,
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Second),
		Duration:  time.Second,
	}

	collector.RecordRun(run)

	runs := collector.GetRecentRuns(10)
	if len(runs) != 1 {
		t.Errorf("Expected 1 run, got %d", len(runs))
	}

	if runs[0].ID != "run-1" {
		t.Errorf("Expected run ID 'run-1', got '%s'", runs[0].ID)
	}
}

// TestGetRecentRunsLimit verifies that GetRecentRuns respects the limit.
func TestGetRecentRunsLimit(t *testing.T) {
	collector := NewMockCollector()

	// Add 10 runs
	for i := 0; i < 10; i++ {
		run := RunRecord{
			ID:     string(rune('0' + i)),
			Type:   RunTypeGenerate,
			Status: RunStatusSuccess,
		}
		collector.RecordRun(run)
	}

	// Request only 5 most recent
	runs := collector.GetRecentRuns(5)

	if len(runs) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(runs))
	}
}

// TestGetRecentRunsLimitExceedsTotal verifies behavior when limit exceeds total runs.
func TestGetRecentRunsLimitExceedsTotal(t *testing.T) {
	collector := NewMockCollector()

	// Add 3 runs
	for i := 0; i < 3; i++ {
		run := RunRecord{
			ID:     string(rune('0' + i)),
			Type:   RunTypeGenerate,
			Status: RunStatusSuccess,
		}
		collector.RecordRun(run)
	}

	// Request 10 (more than available)
	runs := collector.GetRecentRuns(10)

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs, got %d", len(runs))
	}
}

// TestRenderSnapshot verifies render snapshot update and retrieval.
func TestRenderSnapshot(t *testing.T) {
	collector := NewMockCollector()

	snapshot := RenderSnapshot{
		Style:      "bauhaus",
		Palette:    "primary",
		Seed:       42,
		Width:      1080,
		Height:     1080,
		OutputPath: "artworks/bauhaus_42.png",
		FileSize:   102400,
		Duration:   500 * time.Millisecond,
	}

	collector.UpdateRenderSnapshot(snapshot)

	retrieved := collector.GetRenderSnapshot()

	if retrieved.Style != "bauhaus" {
		t.Errorf("Expected style 'bauhaus', got %q", retrieved.Style)
	}

	if retrieved.FileSize != 102400 {
		t.Errorf("Expected file size 102400, got %d", retrieved.FileSize)
	}
}

// TestAccountStatus verifies account status update and retrieval.
func TestAccountStatus(t *testing.T) {
	collector := NewMockCollector()

	status := AccountStatus{
		Username:    "malevich.art",
		APIURL:      "https://graph.example.com",
		LoggedIn:    true,
		LastPost:    time.Now(),
		PostsToday:  2,
		SuccessRate: 95.5,
	}

	collector.UpdateAccountStatus(status)

	retrieved, ok := collector.GetAccountStatus("malevich.art")

	if !ok {
		t.Fatal("Expected to find account status")
	}

	if retrieved.Username != "malevich.art" {
		t.Errorf("Expected username 'malevich.art', got '%s'", retrieved.Username)
	}

	if retrieved.PostsToday != 2 {
		t.Errorf("Expected 2 posts today, got %d", retrieved.PostsToday)
	}
}

// TestAccountStatusNotFound verifies behavior when the account is not found.
func TestAccountStatusNotFound(t *testing.T) {
	collector := NewMockCollector()

	_, ok := collector.GetAccountStatus("nonexistent")

	if ok {
		t.Error("Expected not to find account status")
	}
}

// TestGetAllAccountStatuses verifies retrieval of all account statuses.
func TestGetAllAccountStatuses(t *testing.T) {
	collector := NewMockCollector()

	status1 := AccountStatus{Username: "account-1"}
	status2 := AccountStatus{Username: "account-2"}

	collector.UpdateAccountStatus(status1)
	collector.UpdateAccountStatus(status2)

	statuses := collector.GetAllAccountStatuses()

	if len(statuses) != 2 {
		t.Errorf("Expected 2 account statuses, got %d", len(statuses))
	}
}

// TestSystemStatus verifies system status retrieval.
func TestSystemStatus(t *testing.T) {
	collector := NewMockCollector()

	// Default system status should have zero values
	status := collector.GetSystemStatus()

	if status.Health != "" {
		t.Errorf("Expected empty health, got '%s'", status.Health)
	}
}

// TestConcurrentAccess verifies thread-safety of the collector.
func TestConcurrentAccess(t *testing.T) {
	collector := NewMockCollector()

	// Launch multiple goroutines to record runs concurrently
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			run := RunRecord{
				ID:     string(rune('0' + (id % 10))),
				Type:   RunTypeGenerate,
				Status: RunStatusSuccess,
			}
			collector.RecordRun(run)
		}(i)
	}

	wg.Wait()

	runs := collector.GetRecentRuns(1000)
	if len(runs) != 100 {
		t.Errorf("Expected 100 runs, got %d", len(runs))
	}
}
