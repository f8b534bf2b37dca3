// Package logging provides structured logging utilities for the Malevich
// application. This file contains molecule-level helper functions that compose
// the RenderMetrics atom into convenient zap.Field helpers.
package logging

import (
	"time"

	"go.uber.org/zap"
)

// RenderFields creates a structured zap field from render metrics.
// This is a molecule that composes the RenderMetrics atom into a ready-to-use zap.Field.
//
// Example:
//
//	metrics := logging.RenderMetrics{
//		Style:    "cubism",
//		Palette:  "earth_tones",
//		Seed:     42,
//		Width:    1080,
//		Height:   1080,
//		Duration: 500 * time.Millisecond,
//	}
//	logger.Info("render complete", logging.RenderFields(metrics))
func RenderFields(metrics RenderMetrics) zap.Field {
	return zap.Object("render", metrics)
}

// PostFields creates a slice of zap fields describing a published post.
// This is a convenience function for logging post outcomes without a dedicated struct.
//
// Example:
//
//	logger.Info("post published", logging.PostFields("media-123", "square", path)...)
func PostFields(mediaID, format, imagePath string) []zap.Field {
	return []zap.Field{
		zap.String("media_id", mediaID),
		zap.String("format", format),
		zap.String("image_path", imagePath),
	}
}

// TimingFields creates a slice of zap fields for operation timing.
// This is a convenience function with automatic duration calculation.
//
// Example:
//
//	start := time.Now()
//	// ... render the artwork ...
//	logger.Info("timing", logging.TimingFields(start, time.Now())...)
func TimingFields(startTime, endTime time.Time) []zap.Field {
	return []zap.Field{
		zap.Time("start_time", startTime),
		zap.Time("end_time", endTime),
		zap.Duration("duration", endTime.Sub(startTime)),
	}
}
