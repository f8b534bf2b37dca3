package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"malevich/artgen"
	"malevich/core"
	"malevich/core/validation"
	"malevich/scheduler"
	"malevich/shutdown"
	"malevich/social"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newScheduleCommand builds the "schedule" subcommand: the unattended
// posting loop.
func newScheduleCommand() *cobra.Command {
	var (
		postNow    bool
		configFile string
		interval   int
	)

	cmd := &cobra.Command{
		Use:   "schedule [times...]",
		Short: "Post artworks on a schedule until interrupted",
		Long: `Run the posting loop. At each scheduled time an artwork is rendered
in a random style, captioned, uploaded, and recorded in the post
history. Positional arguments are daily HH:MM posting times; without
them the schedule comes from SCHEDULE_TIMES, SCHEDULE_INTERVAL_HOURS,
or a YAML file named by SCHEDULE_CONFIG. With none of those set it
posts at 10:00 and 20:00.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if configFile != "" {
				a.cfg.ScheduleConfig = configFile
			}
			if len(args) > 0 {
				a.cfg.ScheduleTimes = args
				a.cfg.ScheduleConfig = ""
			}
			if interval > 0 {
				a.cfg.IntervalHours = interval
				a.cfg.ScheduleTimes = nil
				a.cfg.ScheduleConfig = ""
			}

			return runScheduleLoop(a, postNow)
		},
	}

	cmd.Flags().BoolVar(&postNow, "now", false, "post once immediately before entering the loop")
	cmd.Flags().StringVar(&configFile, "config", "", "YAML schedule file")
	cmd.Flags().IntVar(&interval, "interval", 0, "post every N hours instead of at fixed times")

	return cmd
}

// runScheduleLoop wires the scheduler, shutdown manager, and post
// pipeline together and blocks until a signal stops it. It is shared
// between the CLI subcommand and the Windows service entry point.
func runScheduleLoop(a *app, postNow bool) error {
	if !a.cfg.DryRun {
		if err := runStartupValidation(a); err != nil {
			return err
		}
	}

	schedCfg, err := resolveSchedule(a.cfg)
	if err != nil {
		return err
	}

	// A schedule file may pin the style and format for every post.
	scheduleStyle := ""
	if schedCfg.Style != "" {
		resolved, err := artgen.NormalizeStyle(schedCfg.Style)
		if err != nil {
			return err
		}
		scheduleStyle = string(resolved)
	}
	if schedCfg.Format != "" {
		if _, err := social.ParseFormat(schedCfg.Format); err != nil {
			return err
		}
		a.cfg.PostFormat = schedCfg.Format
	}

	database, err := a.openDatabase()
	if err != nil {
		return err
	}

	history := a.newHistoryWriter()
	history.Start()

	manager := shutdown.NewManager(a.logger.Zap(), shutdown.WithTimeout(30*time.Second))
	manager.Register("flush-logs", 5, func(ctx context.Context) error {
		return a.logger.Sync()
	})
	manager.Register("drain-history", 25, func(ctx context.Context) error {
		if !history.StopWithTimeout(10 * time.Second) {
			return fmt.Errorf("post history writer did not drain in time")
		}
		return nil
	})
	manager.Register("close-database", 30, func(ctx context.Context) error {
		return database.Close()
	})
	manager.Register("cleanup-prepared", 45,
		shutdown.CleanupPreparedUploads(a.logger.Zap(), a.cfg.OutputDir))
	manager.Start()

	job := func(ctx context.Context) error {
		return manager.WrapOperation(ctx, "scheduled-post", func(ctx context.Context) error {
			return a.postOnce(ctx, database, history, scheduleStyle)
		})
	}

	sched := scheduler.New(job, schedCfg, a.logger.Zap())

	if postNow {
		sched.RunOnce(manager.Context())
	}

	err = sched.Run(manager.Context())
	if err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Error("scheduler stopped with error", zap.Error(err))
	}

	runMetrics := a.metrics.GetRunMetrics()
	a.logger.Info("posting loop finished",
		zap.Int64("total_runs", runMetrics.TotalProcessed),
		zap.Int64("succeeded", runMetrics.TotalSuccess),
		zap.Int64("failed", runMetrics.TotalErrors),
	)

	if err := manager.Shutdown(); err != nil {
		return err
	}

	// Signal-driven exits report the conventional 128+N code.
	if sig := manager.ReceivedSignal(); sig != nil {
		a.close()
		os.Exit(core.ExitCodeForSignal(sig))
	}

	return nil
}

// resolveSchedule turns the configuration into a scheduler.Config.
// A YAML schedule file wins over the environment settings.
func resolveSchedule(cfg *core.Config) (scheduler.Config, error) {
	if cfg.ScheduleConfig != "" {
		schedCfg, err := scheduler.LoadConfig(cfg.ScheduleConfig)
		if err != nil {
			return scheduler.Config{}, fmt.Errorf("load schedule file: %w", err)
		}
		return schedCfg, nil
	}

	if len(cfg.ScheduleTimes) > 0 {
		times, err := scheduler.ParseTimes(cfg.ScheduleTimes)
		if err != nil {
			return scheduler.Config{}, core.ErrInvalidSchedule(strings.Join(cfg.ScheduleTimes, ","), err.Error())
		}
		return scheduler.Config{Times: times}, nil
	}

	return scheduler.Config{IntervalHours: cfg.IntervalHours}, nil
}

// runStartupValidation runs the configuration checks a posting run
// depends on and logs each failure.
func runStartupValidation(a *app) error {
	suite := validation.NewValidationSuite().
		WithAllowSelfSignedCerts(a.cfg.AllowSelfSignedCerts).
		WithShowProgress(true)

	result := suite.Validate()
	if result.Success {
		a.logger.Info("configuration validation passed",
			zap.Int("checks_passed", result.PassedSteps),
			zap.Duration("duration", result.Duration),
		)
		return nil
	}

	a.logger.Error("configuration validation failed",
		zap.Int("passed", result.PassedSteps),
		zap.Int("failed", result.FailedSteps),
		zap.Duration("duration", result.Duration),
	)
	for _, step := range result.Steps {
		if step.Status == validation.StepFailed {
			a.logger.Error("validation step failed",
				zap.String("step", step.Name),
				zap.String("message", step.Message),
				zap.Error(step.Error),
			)
		}
	}

	if err := result.GetFirstError(); err != nil {
		return err
	}
	return fmt.Errorf("configuration validation failed")
}
