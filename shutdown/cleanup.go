package shutdown

import (
	"context"
	"os"
	"path/filepath"

	"malevich/core"

	"go.uber.org/zap"
)

// CleanupPreparedUploads returns a shutdown function that removes prepared
// upload copies from the output directory. It matches files with the
// "*_instagram_*.jpg" pattern that the posting pipeline writes next to
// each rendered artwork.
//
// Priority recommendation: 40+ (final cleanup, after services stopped)
//
// The cleanup function:
//   - Removes files matching "*_instagram_*.jpg" in the output directory
//   - Logs each file removal (success or failure)
//   - Continues cleanup even if individual file removals fail
//   - Returns nil to avoid blocking shutdown (errors are logged)
//
// Usage:
//
//	manager.Register("cleanup-prepared", 45, shutdown.CleanupPreparedUploads(logger, cfg.OutputDir))
func CleanupPreparedUploads(logger *zap.Logger, outputDir string) core.ShutdownFunc {
	return func(ctx context.Context) error {
		return cleanupPreparedFiles(ctx, logger, outputDir)
	}
}

// cleanupPreparedFiles removes files matching "*_instagram_*.jpg" in the
// output directory. It returns nil even if some files fail to delete
// (errors are logged).
func cleanupPreparedFiles(ctx context.Context, logger *zap.Logger, outputDir string) error {
	logger.Debug("Starting prepared file cleanup",
		zap.String("directory", outputDir),
	)

	pattern := filepath.Join(outputDir, "*_instagram_*.jpg")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		logger.Error("Failed to list prepared files",
			zap.String("pattern", pattern),
			zap.Error(err),
		)
		// Return nil to not block shutdown
		return nil
	}

	if len(matches) == 0 {
		logger.Debug("No prepared files to clean up")
		return nil
	}

	logger.Info("Cleaning up prepared upload files",
		zap.Int("file_count", len(matches)),
	)

	var removedCount int
	var failedCount int

	for _, match := range matches {
		// Check context between file deletions
		select {
		case <-ctx.Done():
			logger.Warn("Shutdown context cancelled during cleanup",
				zap.Int("removed", removedCount),
				zap.Int("remaining", len(matches)-removedCount-failedCount),
			)
			return nil
		default:
		}

		if err := os.Remove(match); err != nil {
			failedCount++
			logger.Warn("Failed to remove prepared file",
				zap.String("file", filepath.Base(match)),
				zap.Error(err),
			)
		} else {
			removedCount++
			logger.Debug("Removed prepared file",
				zap.String("file", filepath.Base(match)),
			)
		}
	}

	logger.Info("Prepared file cleanup complete",
		zap.Int("removed", removedCount),
		zap.Int("failed", failedCount),
	)

	return nil
}

