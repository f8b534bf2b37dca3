// Package scheduler runs the posting job on a daily timetable or a
// fixed interval. Instead of polling, it sleeps on a timer armed for
// the next run, so an idle scheduler costs nothing.
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Job is the work a scheduler triggers. A returned error is logged and
// the schedule continues.
type Job func(ctx context.Context) error

// TimeOfDay is a wall-clock posting time.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// String formats the time as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseTime parses "HH:MM" into a TimeOfDay.
func ParseTime(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("scheduler: invalid time %q, want HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("scheduler: invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("scheduler: invalid minute in %q", s)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseTimes parses a list of "HH:MM" strings.
func ParseTimes(values []string) ([]TimeOfDay, error) {
	times := make([]TimeOfDay, 0, len(values))
	for _, v := range values {
		t, err := ParseTime(v)
		if err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, nil
}

// DefaultTimes is the fallback timetable: two posts a day.
func DefaultTimes() []TimeOfDay {
	return []TimeOfDay{{Hour: 10}, {Hour: 20}}
}

// Config selects the schedule. Times wins over IntervalHours; with
// neither set the scheduler falls back to DefaultTimes.
type Config struct {
	// Times are daily wall-clock posting times.
	Times []TimeOfDay

	// IntervalHours posts every N hours when Times is empty.
	IntervalHours int

	// Style pins every scheduled post to one art style. Empty means a
	// random style per post. Only set by schedule files.
	Style string

	// Format overrides the post format for scheduled posts. Empty keeps
	// the configured format. Only set by schedule files.
	Format string
}

// Scheduler triggers the job per its Config until the context ends.
type Scheduler struct {
	job    Job
	cfg    Config
	logger *zap.Logger

	// now is replaceable for tests.
	now func() time.Time
}

// New creates a Scheduler. An empty config selects the default
// timetable.
func New(job Job, cfg Config, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(cfg.Times) == 0 && cfg.IntervalHours <= 0 {
		cfg.Times = DefaultTimes()
	}
	if len(cfg.Times) > 0 {
		sort.Slice(cfg.Times, func(i, j int) bool {
			if cfg.Times[i].Hour != cfg.Times[j].Hour {
				return cfg.Times[i].Hour < cfg.Times[j].Hour
			}
			return cfg.Times[i].Minute < cfg.Times[j].Minute
		})
	}
	return &Scheduler{job: job, cfg: cfg, logger: logger, now: time.Now}
}

// NextRun returns the first scheduled time strictly after from.
func (s *Scheduler) NextRun(from time.Time) time.Time {
	if len(s.cfg.Times) == 0 {
		return from.Add(time.Duration(s.cfg.IntervalHours) * time.Hour)
	}

	for _, t := range s.cfg.Times {
		candidate := time.Date(from.Year(), from.Month(), from.Day(),
			t.Hour, t.Minute, 0, 0, from.Location())
		if candidate.After(from) {
			return candidate
		}
	}

	// All of today's slots have passed; take tomorrow's first.
	first := s.cfg.Times[0]
	tomorrow := from.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(),
		first.Hour, first.Minute, 0, 0, from.Location())
}

// Run executes the schedule until ctx is canceled. Job failures and
// panics are logged and the loop continues with the next slot.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("scheduler started", zap.String("schedule", s.describe()))

	for {
		next := s.NextRun(s.now())
		wait := next.Sub(s.now())
		s.logger.Info("next post scheduled",
			zap.Time("at", next),
			zap.Duration("in", wait))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-timer.C:
		}

		s.RunOnce(ctx)
	}
}

// RunOnce executes the job immediately with panic recovery.
func (s *Scheduler) RunOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scheduled post panicked", zap.Any("panic", r))
		}
	}()

	s.logger.Info("running scheduled post")
	if err := s.job(ctx); err != nil {
		s.logger.Error("scheduled post failed", zap.Error(err))
		return
	}
	s.logger.Info("scheduled post completed")
}

// describe renders the schedule for the startup log line.
func (s *Scheduler) describe() string {
	if len(s.cfg.Times) == 0 {
		return fmt.Sprintf("every %d hours", s.cfg.IntervalHours)
	}
	parts := make([]string, len(s.cfg.Times))
	for i, t := range s.cfg.Times {
		parts[i] = t.String()
	}
	return "daily at " + strings.Join(parts, ", ")
}
