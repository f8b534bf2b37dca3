package logging

import (
	"time"

	"go.uber.org/zap/zapcore"
)

// RenderMetrics represents metrics collected while rendering a single artwork.
// Implements zapcore.ObjectMarshaler for structured logging.
//
// This is a pure data structure with no dependencies on other logging atoms.
//
// Example:
//
//	metrics := RenderMetrics{
//		Style:    "suprematism",
//		Palette:  "jewel_tones",
//		Seed:     884213,
//		Width:    1080,
//		Height:   1080,
//		Duration: 700 * time.Millisecond,
//	}
//	logger.Info("render complete", zap.Object("render", metrics))
type RenderMetrics struct {
	// Style is the art style that was rendered
	Style string `json:"style"`

	// Palette is the color palette used for the composition
	Palette string `json:"palette"`

	// Seed is the random seed the composition was derived from
	Seed int64 `json:"seed"`

	// Width is the output image width in pixels
	Width int `json:"width"`

	// Height is the output image height in pixels
	Height int `json:"height"`

	// Duration is the total time taken to compose and encode the image
	Duration time.Duration `json:"duration"`
}

// MarshalLogObject implements zapcore.ObjectMarshaler for structured logging.
// This allows RenderMetrics to be logged as a nested JSON object in zap logs.
//
// Duration is encoded in milliseconds for readability.
func (m RenderMetrics) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("style", m.Style)
	enc.AddString("palette", m.Palette)
	enc.AddInt64("seed", m.Seed)
	enc.AddInt("width", m.Width)
	enc.AddInt("height", m.Height)
	enc.AddInt64("duration_ms", m.Duration.Milliseconds())
	return nil
}
