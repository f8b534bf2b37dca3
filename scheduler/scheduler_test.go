package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "morning", input: "09:30", want: TimeOfDay{Hour: 9, Minute: 30}},
		{name: "midnight", input: "00:00", want: TimeOfDay{}},
		{name: "last minute", input: "23:59", want: TimeOfDay{Hour: 23, Minute: 59}},
		{name: "padded with spaces", input: " 10:00 ", want: TimeOfDay{Hour: 10}},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "missing colon", input: "1000", wantErr: true},
		{name: "not a number", input: "ten:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTime(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTime(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNextRun(t *testing.T) {
	base := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	at := func(hour, minute int) time.Time {
		return time.Date(2025, 6, 15, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		cfg  Config
		from time.Time
		want time.Time
	}{
		{
			name: "before first slot",
			cfg:  Config{Times: []TimeOfDay{{Hour: 10}, {Hour: 20}}},
			from: at(8, 0),
			want: at(10, 0),
		},
		{
			name: "between slots",
			cfg:  Config{Times: []TimeOfDay{{Hour: 10}, {Hour: 20}}},
			from: at(12, 0),
			want: at(20, 0),
		},
		{
			name: "after last slot rolls to tomorrow",
			cfg:  Config{Times: []TimeOfDay{{Hour: 10}, {Hour: 20}}},
			from: at(21, 0),
			want: base.AddDate(0, 0, 1).Add(10 * time.Hour),
		},
		{
			name: "exactly on a slot moves to the next",
			cfg:  Config{Times: []TimeOfDay{{Hour: 10}, {Hour: 20}}},
			from: at(10, 0),
			want: at(20, 0),
		},
		{
			name: "interval mode",
			cfg:  Config{IntervalHours: 6},
			from: at(9, 15),
			want: at(15, 15),
		},
		{
			name: "unsorted times are ordered",
			cfg:  Config{Times: []TimeOfDay{{Hour: 20}, {Hour: 10}}},
			from: at(8, 0),
			want: at(10, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(func(context.Context) error { return nil }, tt.cfg, nil)
			if got := s.NextRun(tt.from); !got.Equal(tt.want) {
				t.Errorf("NextRun(%v) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestDefaultSchedule(t *testing.T) {
	s := New(func(context.Context) error { return nil }, Config{}, nil)
	from := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	next := s.NextRun(from)
	if next.Hour() != 10 || next.Minute() != 0 {
		t.Errorf("default first slot = %v, want 10:00", next)
	}
}

func TestRunOnce(t *testing.T) {
	ran := false
	s := New(func(context.Context) error {
		ran = true
		return nil
	}, Config{}, nil)

	s.RunOnce(context.Background())
	if !ran {
		t.Error("RunOnce did not execute the job")
	}
}

func TestRunOnceSwallowsErrorsAndPanics(t *testing.T) {
	failing := New(func(context.Context) error {
		return errors.New("upload failed")
	}, Config{}, nil)
	failing.RunOnce(context.Background())

	panicking := New(func(context.Context) error {
		panic("renderer bug")
	}, Config{}, nil)
	panicking.RunOnce(context.Background())
	// Reaching this line is the assertion.
}

func TestRunStopsOnContextCancel(t *testing.T) {
	s := New(func(context.Context) error { return nil }, Config{IntervalHours: 1}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name       string
		yaml       string
		wantTimes  int
		wantHours  int
		wantStyle  string
		wantFormat string
		wantErr    bool
	}{
		{name: "times list", yaml: "times:\n  - \"09:00\"\n  - \"18:30\"\n", wantTimes: 2},
		{name: "interval", yaml: "interval_hours: 6\n", wantHours: 6},
		{name: "empty file", yaml: ""},
		{name: "bad time", yaml: "times:\n  - \"25:00\"\n", wantErr: true},
		{name: "negative interval", yaml: "interval_hours: -2\n", wantErr: true},
		{name: "not yaml", yaml: "{{nope", wantErr: true},
		{
			name:       "generation options",
			yaml:       "times:\n  - \"09:00\"\nstyle: suprematist\nformat: portrait\n",
			wantTimes:  1,
			wantStyle:  "suprematist",
			wantFormat: "portrait",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "schedule.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}

			cfg, err := LoadConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig error: %v", err)
			}
			if len(cfg.Times) != tt.wantTimes {
				t.Errorf("got %d times, want %d", len(cfg.Times), tt.wantTimes)
			}
			if cfg.IntervalHours != tt.wantHours {
				t.Errorf("got interval %d, want %d", cfg.IntervalHours, tt.wantHours)
			}
			if cfg.Style != tt.wantStyle {
				t.Errorf("got style %q, want %q", cfg.Style, tt.wantStyle)
			}
			if cfg.Format != tt.wantFormat {
				t.Errorf("got format %q, want %q", cfg.Format, tt.wantFormat)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
