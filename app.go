package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"malevich/artgen"
	"malevich/caption"
	"malevich/core"
	"malevich/db"
	"malevich/logging"
	"malevich/metrics"
	"malevich/social"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// app bundles the pieces every command needs: configuration, the
// structured logger, and the in-memory run metrics.
type app struct {
	cfg     *core.Config
	logger  *logging.Logger
	metrics *metrics.Store
}

// newApp loads configuration and initializes logging. Every command
// goes through here so the environment is read exactly once.
func newApp() (*app, error) {
	cfg, err := core.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewLogger(cfg.DevMode, cfg.LogFilePath)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	store := metrics.NewStore(metrics.StoreConfig{
		RunHistoryCapacity: 100,
		Version:            core.GetVersion(),
	}, time.Now())

	return &app{cfg: cfg, logger: logger, metrics: store}, nil
}

// close flushes the logger. Sync on stderr fails on some platforms, so
// the error is ignored.
func (a *app) close() {
	_ = a.logger.Sync()
}

// generate renders one artwork and writes it to the output directory.
// styleArg may be empty for a random style; paletteName overrides the
// style's palette when set.
func (a *app) generate(styleArg, paletteName string, seed int64) (*artgen.Artwork, string, error) {
	style := artgen.StyleAuto
	if styleArg != "" {
		resolved, err := artgen.NormalizeStyle(styleArg)
		if err != nil {
			return nil, "", err
		}
		style = resolved
	}

	if err := os.MkdirAll(a.cfg.OutputDir, 0755); err != nil {
		return nil, "", fmt.Errorf("create output directory: %w", err)
	}

	gen := artgen.NewGenerator(a.cfg.ImageWidth, a.cfg.ImageHeight)

	start := time.Now()
	artwork, err := gen.Generate(artgen.Options{
		Style:       style,
		PaletteName: paletteName,
		Seed:        seed,
	})
	if err != nil {
		return nil, "", err
	}

	var path string
	if a.cfg.SavePNG {
		path, err = artwork.SavePNG(a.cfg.OutputDir)
	} else {
		path, err = artwork.SaveJPEG(a.cfg.OutputDir, a.cfg.JPEGQuality)
	}
	if err != nil {
		return nil, "", err
	}
	elapsed := time.Since(start)

	a.logger.Info("rendered artwork",
		logging.RenderFields(logging.RenderMetrics{
			Style:    string(artwork.Style),
			Palette:  artwork.PaletteName,
			Seed:     artwork.Seed,
			Width:    gen.Width(),
			Height:   gen.Height(),
			Duration: elapsed,
		}),
		zap.String("path", path),
	)

	var fileSize int64
	if info, statErr := os.Stat(path); statErr == nil {
		fileSize = info.Size()
	}
	a.metrics.UpdateRenderSnapshot(metrics.RenderSnapshot{
		Style:      string(artwork.Style),
		Palette:    artwork.PaletteName,
		Seed:       artwork.Seed,
		Width:      gen.Width(),
		Height:     gen.Height(),
		OutputPath: path,
		FileSize:   fileSize,
		Duration:   elapsed,
	})

	return artwork, path, nil
}

// buildCaption produces the caption text and hashtag list for a style.
// With an OpenAI key configured the caption comes from the model; the
// phrase pools are the fallback and always supply the hashtags.
func (a *app) buildCaption(ctx context.Context, style string) (string, []string) {
	gen := caption.NewGenerator(0)
	hashtags := gen.Hashtags(style, a.cfg.HashtagCount)

	if a.cfg.OpenAIAPIKey != "" {
		provider := caption.NewAIProvider(caption.AIProviderConfig{
			APIKey:  a.cfg.OpenAIAPIKey,
			BaseURL: a.cfg.OpenAIBaseURL,
			Model:   a.cfg.CaptionModel,
		}, gen)

		text, err := provider.Caption(ctx, style)
		if err != nil {
			a.logger.Warn("AI caption failed, using phrase pools",
				zap.String("style", style),
				zap.Error(err),
			)
		}
		return text, hashtags
	}

	opts := caption.DefaultOptions()
	opts.Style = style
	return gen.Caption(opts), hashtags
}

// newPoster builds the posting pipeline. Dry-run mode, or missing
// credentials, selects a poster with no provider: the image is still
// prepared but nothing is uploaded.
func (a *app) newPoster() (*social.Poster, error) {
	format, err := social.ParseFormat(a.cfg.PostFormat)
	if err != nil {
		return nil, err
	}

	if a.cfg.DryRun {
		a.logger.Info("dry run enabled, posts will not be uploaded")
		return social.NewPoster(nil, format, a.logger.Zap()), nil
	}
	if err := a.cfg.RequireInstagram(); err != nil {
		a.logger.Warn("Instagram credentials not configured, skipping upload",
			zap.Error(err),
		)
		return social.NewPoster(nil, format, a.logger.Zap()), nil
	}
	if a.cfg.InstagramAPIURL == "" {
		a.logger.Warn("INSTAGRAM_API_URL not set, skipping upload")
		return social.NewPoster(nil, format, a.logger.Zap()), nil
	}

	client := social.NewClient(social.ClientConfig{
		Username: a.cfg.InstagramUsername,
		Password: a.cfg.InstagramPassword,
		BaseURL:  a.cfg.InstagramAPIURL,
		Sessions: social.NewSessionStore(a.cfg.SessionFile, a.cfg.SessionKey),
		Timeout:  a.cfg.RequestTimeout,
	}, a.logger.Zap())

	return social.NewPoster(client, format, a.logger.Zap()), nil
}

// recordHistory runs one history write through the async writer when
// one is running, falling back to a synchronous call.
func (a *app) recordHistory(history *db.AsyncWriter, op db.WriteOp) {
	if history != nil && history.IsStarted() && history.Write(op) {
		return
	}
	if err := op(); err != nil {
		a.logger.Warn("could not record post history", zap.Error(err))
	}
}

// postOnce runs the full pipeline for one post: render, caption,
// upload, and record the outcome in the post history database. history
// may be nil, in which case every write is synchronous.
func (a *app) postOnce(ctx context.Context, database *db.Database, history *db.AsyncWriter, styleArg string) error {
	runStart := time.Now()
	runID := uuid.NewString()

	artwork, imagePath, err := a.generate(styleArg, "", 0)
	if err != nil {
		genErr := err
		a.recordHistory(history, func() error {
			_, createErr := database.Posts().Create(&db.Post{
				Style:  styleArg,
				Status: db.StatusFailed,
				Error:  genErr.Error(),
			})
			return createErr
		})
		a.recordRun(runID, metrics.RunTypePost, styleArg, runStart, err)
		return err
	}
	style := string(artwork.Style)

	text, hashtags := a.buildCaption(ctx, style)
	fullCaption := caption.FormatPost(text, hashtags)

	post := &db.Post{
		ImagePath: imagePath,
		Style:     style,
		Palette:   artwork.PaletteName,
		Caption:   text,
		Hashtags:  hashtags,
		Status:    db.StatusPending,
	}
	postID, err := database.Posts().Create(post)
	if err != nil {
		a.recordRun(runID, metrics.RunTypePost, style, runStart, err)
		return fmt.Errorf("record post: %w", err)
	}

	poster, err := a.newPoster()
	if err != nil {
		cause := err.Error()
		a.recordHistory(history, func() error {
			return database.Posts().MarkFailed(postID, cause)
		})
		a.recordRun(runID, metrics.RunTypePost, style, runStart, err)
		return err
	}

	result, err := poster.Post(ctx, imagePath, fullCaption)
	if err != nil {
		cause := err.Error()
		a.recordHistory(history, func() error {
			return database.Posts().MarkFailed(postID, cause)
		})
		a.recordRun(runID, metrics.RunTypePost, style, runStart, err)
		return err
	}

	// Dry runs stay pending: nothing was uploaded, so there is no media
	// ID to record.
	if !result.DryRun {
		a.recordHistory(history, func() error {
			return database.Posts().MarkPosted(postID, result.MediaID)
		})
	}

	a.logger.Info("post complete",
		logging.PostFields(result.MediaID, a.cfg.PostFormat, result.PreparedPath)...,
	)
	a.recordRun(runID, metrics.RunTypePost, style, runStart, nil)
	a.metrics.UpdateAccountStatus(metrics.AccountStatus{
		Username: a.cfg.InstagramUsername,
		APIURL:   a.cfg.InstagramAPIURL,
		LoggedIn: !result.DryRun,
		LastPost: time.Now(),
	})

	if result.DryRun {
		fmt.Printf("Dry run: prepared %s (not uploaded)\n", result.PreparedPath)
	} else {
		fmt.Printf("Posted %s (media %s)\n", imagePath, result.MediaID)
	}
	fmt.Printf("Caption: %s\n", text)
	fmt.Printf("Hashtags: %s\n", strings.Join(hashtags, " "))

	return nil
}

// recordRun adds one pipeline run to the in-memory metrics.
func (a *app) recordRun(id, runType, style string, start time.Time, err error) {
	status := metrics.RunStatusSuccess
	errMsg := ""
	if err != nil {
		status = metrics.RunStatusError
		errMsg = err.Error()
	}
	end := time.Now()
	a.metrics.RecordRun(metrics.RunRecord{
		ID:        id,
		Type:      runType,
		Style:     style,
		Status:    status,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
		ErrorMsg:  errMsg,
	})
}

// newHistoryWriter builds the async post history writer. Failures from
// deferred writes surface as log warnings.
func (a *app) newHistoryWriter() *db.AsyncWriter {
	return db.NewAsyncWriter(db.DefaultChannelCapacity, func(err error) {
		a.logger.Warn("post history write failed", zap.Error(err))
	})
}

// openDatabase opens the post history database and applies pending
// migrations.
func (a *app) openDatabase() (*db.Database, error) {
	database, err := db.Open(a.cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open post history database: %w", err)
	}
	return database, nil
}
