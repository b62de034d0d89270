// Package cleanup sweeps stale working files (debug CSVs, phone-ready
// batches) out of the pipeline's directories while preserving final outputs.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// preservePrefixes name the final output files that are never deleted,
// regardless of age.
var preservePrefixes = []string{"Cleaned_", "Merged_"}

// Sweeper removes files older than a retention window from its directories.
type Sweeper struct {
	log    *slog.Logger
	dirs   []string
	maxAge time.Duration // maxAge 0 means delete every non-preserved file.
}

// NewSweeper creates a Sweeper over dirs with the given retention window.
func NewSweeper(log *slog.Logger, dirs []string, maxAge time.Duration) *Sweeper {
	return &Sweeper{log: log, dirs: dirs, maxAge: maxAge}
}

// Run sweeps on every tick of interval until the context is canceled.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.InfoContext(ctx, "Cleanup sweeper started", "dirs", s.dirs, "max_age", s.maxAge)

	for {
		select {
		case <-ctx.Done():
			s.log.InfoContext(ctx, "Cleanup sweeper stopped.")
			return
		case <-ticker.C:
			removed, err := s.Sweep(ctx)
			if err != nil {
				s.log.ErrorContext(ctx, "Sweep finished with errors", "removed", removed, "error", err)
				continue
			}
			s.log.InfoContext(ctx, "Sweep finished", "removed", removed)
		}
	}
}

// Sweep walks the configured directories once and deletes expired files.
// It returns the number of files removed. Deletion failures are logged and
// do not stop the sweep; the first one is reported in the returned error.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.maxAge)
	removed := 0
	var firstErr error

	for _, dir := range s.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to read directory %s: %w", dir, err)
			}
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() || Preserved(entry.Name()) {
				continue
			}

			info, err := entry.Info()
			if err != nil {
				continue
			}
			if s.maxAge > 0 && info.ModTime().After(cutoff) {
				continue
			}

			path := filepath.Join(dir, entry.Name())
			if err = os.Remove(path); err != nil {
				s.log.ErrorContext(ctx, "Failed to remove stale file", "path", path, "error", err)
				if firstErr == nil {
					firstErr = fmt.Errorf("failed to remove %s: %w", path, err)
				}
				continue
			}

			s.log.DebugContext(ctx, "Removed stale file",
				"path", path, "age", time.Since(info.ModTime()), "size", info.Size())
			removed++
		}
	}

	return removed, firstErr
}

// Preserved reports whether name is a final output file that must survive
// every sweep.
func Preserved(name string) bool {
	for _, prefix := range preservePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
