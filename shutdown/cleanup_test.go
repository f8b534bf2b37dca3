package shutdown

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func TestCleanupPreparedUploads_RemovesPreparedFiles(t *testing.T) {
	logger := zaptest.NewLogger(t)

	// Create a temp directory for testing
	tempDir := t.TempDir()

	// Create some prepared upload copies
	preparedFiles := []string{
		"suprematism_42_instagram_square.jpg",
		"bauhaus_17_instagram_portrait.jpg",
		"rothko_99_instagram_landscape.jpg",
	}
	for _, f := range preparedFiles {
		path := filepath.Join(tempDir, f)
		if err := os.WriteFile(path, []byte("test content"), 0644); err != nil {
			t.Fatalf("Failed to create test file %s: %v", f, err)
		}
	}

	// Create an artwork file that should NOT be deleted
	keepFile := filepath.Join(tempDir, "suprematism_42.png")
	if err := os.WriteFile(keepFile, []byte("keep this"), 0644); err != nil {
		t.Fatalf("Failed to create keep file: %v", err)
	}

	// Execute cleanup
	cleanupFn := CleanupPreparedUploads(logger, tempDir)
	err := cleanupFn(context.Background())
	if err != nil {
		t.Errorf("CleanupPreparedUploads returned unexpected error: %v", err)
	}

	// Verify prepared files are deleted
	for _, f := range preparedFiles {
		path := filepath.Join(tempDir, f)
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("Prepared file %s should have been deleted", f)
		}
	}

	// Verify the artwork still exists
	if _, err := os.Stat(keepFile); os.IsNotExist(err) {
		t.Error("Artwork file should not have been deleted")
	}
}

func TestCleanupPreparedUploads_HandlesEmptyDirectory(t *testing.T) {
	logger := zaptest.NewLogger(t)

	// Create an empty temp directory
	tempDir := t.TempDir()

	// Execute cleanup - should succeed without errors
	cleanupFn := CleanupPreparedUploads(logger, tempDir)
	err := cleanupFn(context.Background())
	if err != nil {
		t.Errorf("CleanupPreparedUploads on empty directory returned error: %v", err)
	}

	// Directory should still exist
	if _, err := os.Stat(tempDir); os.IsNotExist(err) {
		t.Error("Directory should still exist after cleanup")
	}
}

func TestCleanupPreparedUploads_HandlesMissingDirectory(t *testing.T) {
	logger := zaptest.NewLogger(t)

	// Use a path that doesn't exist
	nonExistentDir := filepath.Join(t.TempDir(), "does_not_exist")

	// Execute cleanup - should succeed (filepath.Glob handles missing dirs gracefully)
	cleanupFn := CleanupPreparedUploads(logger, nonExistentDir)
	err := cleanupFn(context.Background())
	if err != nil {
		t.Errorf("CleanupPreparedUploads on missing directory returned error: %v", err)
	}
}

func TestCleanupPreparedUploads_RespectsContextCancellation(t *testing.T) {
	logger := zaptest.NewLogger(t)

	// Create a temp directory with many files
	tempDir := t.TempDir()
	for i := 0; i < 10; i++ {
		path := filepath.Join(tempDir, "art_"+string(rune('a'+i))+"_instagram_square.jpg")
		if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}

	// Create an already-cancelled context
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Execute cleanup with cancelled context
	cleanupFn := CleanupPreparedUploads(logger, tempDir)
	err := cleanupFn(ctx)

	// Should return nil (cleanup doesn't block on cancellation)
	if err != nil {
		t.Errorf("CleanupPreparedUploads with cancelled context returned error: %v", err)
	}
}

func TestCleanupPreparedUploads_ReturnsShutdownFunc(t *testing.T) {
	logger := zaptest.NewLogger(t)
	tempDir := t.TempDir()

	// Verify return type is compatible with core.ShutdownFunc
	fn := CleanupPreparedUploads(logger, tempDir)

	// Should be callable with context and return error
	err := fn(context.Background())
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

// ============================================================================
// Integration Tests - Testing with shutdown.Manager
// ============================================================================

func TestCleanupPreparedUploads_IntegrationWithManager(t *testing.T) {
	logger := zaptest.NewLogger(t)

	// Create a temp directory
	tempDir := t.TempDir()

	// Create a prepared upload copy
	preparedFile := filepath.Join(tempDir, "mondrian_7_instagram_square.jpg")
	if err := os.WriteFile(preparedFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create prepared file: %v", err)
	}

	// Create manager and register cleanup
	manager := NewManager(logger, WithTimeout(5*time.Second))
	manager.Register("cleanup-prepared", 45, CleanupPreparedUploads(logger, tempDir))

	// Execute shutdown
	err := manager.Shutdown()
	if err != nil {
		t.Errorf("Shutdown returned error: %v", err)
	}

	// Verify file was cleaned up
	if _, err := os.Stat(preparedFile); !os.IsNotExist(err) {
		t.Error("Prepared file should have been cleaned up during shutdown")
	}
}

func TestCleanupPreparedUploads_ExecutesInPriorityOrder(t *testing.T) {
	logger := zaptest.NewLogger(t)

	// Create a temp directory
	tempDir := t.TempDir()

	// Create a prepared upload copy
	preparedFile := filepath.Join(tempDir, "kandinsky_3_instagram_square.jpg")
	if err := os.WriteFile(preparedFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create prepared file: %v", err)
	}

	var executionOrder []string

	// Create manager
	manager := NewManager(logger, WithTimeout(5*time.Second))

	// Register cleanup with high priority (executes last)
	manager.Register("cleanup-prepared", 45, func(ctx context.Context) error {
		executionOrder = append(executionOrder, "cleanup-prepared")
		return CleanupPreparedUploads(logger, tempDir)(ctx)
	})

	// Register another handler with lower priority (executes first)
	manager.Register("pre-cleanup", 10, func(ctx context.Context) error {
		executionOrder = append(executionOrder, "pre-cleanup")
		return nil
	})

	// Execute shutdown
	err := manager.Shutdown()
	if err != nil {
		t.Errorf("Shutdown returned error: %v", err)
	}

	// Verify execution order
	if len(executionOrder) != 2 {
		t.Fatalf("Expected 2 handlers executed, got %d", len(executionOrder))
	}
	if executionOrder[0] != "pre-cleanup" {
		t.Errorf("Expected pre-cleanup first, got %s", executionOrder[0])
	}
	if executionOrder[1] != "cleanup-prepared" {
		t.Errorf("Expected cleanup-prepared second, got %s", executionOrder[1])
	}

	// Verify cleanup happened
	if _, err := os.Stat(preparedFile); !os.IsNotExist(err) {
		t.Error("Prepared file should have been cleaned up")
	}
}
