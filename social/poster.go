package social

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// PostResult describes one completed (or dry-run) post.
type PostResult struct {
	// MediaID is the API media identifier. Empty for dry runs.
	MediaID string

	// PreparedPath is the resized image that was (or would be) posted.
	PreparedPath string

	// DryRun is true when no provider was configured and the post
	// stopped after image preparation.
	DryRun bool
}

// Poster drives the full posting pipeline: prepare the image for the
// chosen format, log in, and upload. Without a provider it runs dry,
// preparing the image but posting nothing, which keeps the pipeline
// usable with no credentials configured.
type Poster struct {
	provider Provider
	format   Format
	logger   *zap.Logger
}

// NewPoster creates a Poster. A nil provider selects dry-run mode.
func NewPoster(provider Provider, format Format, logger *zap.Logger) *Poster {
	if logger == nil {
		logger = zap.NewNop()
	}
	if format == "" {
		format = FormatSquare
	}
	return &Poster{provider: provider, format: format, logger: logger}
}

// DryRun reports whether the poster has no provider to post through.
func (p *Poster) DryRun() bool {
	return p.provider == nil
}

// Post prepares the image and uploads it with the caption.
func (p *Poster) Post(ctx context.Context, imagePath, caption string) (*PostResult, error) {
	prepared, err := PrepareImage(imagePath, p.format)
	if err != nil {
		return nil, err
	}
	p.logger.Info("prepared image for posting",
		zap.String("source", imagePath),
		zap.String("prepared", prepared),
		zap.String("format", string(p.format)))

	if p.provider == nil {
		p.logger.Info("dry run, skipping upload", zap.String("image", prepared))
		return &PostResult{PreparedPath: prepared, DryRun: true}, nil
	}

	if !p.provider.LoggedIn() {
		if err := p.provider.Login(ctx); err != nil {
			return nil, fmt.Errorf("social: login before posting: %w", err)
		}
	}

	mediaID, err := p.provider.PostPhoto(ctx, prepared, caption)
	if err != nil {
		return nil, fmt.Errorf("social: post photo: %w", err)
	}

	p.logger.Info("posted image",
		zap.String("image", prepared),
		zap.String("media_id", mediaID))
	return &PostResult{MediaID: mediaID, PreparedPath: prepared}, nil
}
