package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"frameshuffle/internal/config"
	"frameshuffle/internal/copier"
	"frameshuffle/internal/logging"
	"frameshuffle/internal/plan"
	"frameshuffle/internal/preflight"
	"frameshuffle/internal/scan"
	"frameshuffle/internal/shuffle"
)

// ErrNoCandidates indicates the source folder holds no jpg/jpeg files.
var ErrNoCandidates = errors.New("no .jpg files found in source folder")

// ErrRunInProgress indicates another run already holds the destination lock.
var ErrRunInProgress = errors.New("another frameshuffle run is already targeting this destination")

// Options carries per-run knobs that are not part of the persistent config.
type Options struct {
	Seed         uint64
	ShowProgress bool
}

// Summary describes a completed run.
type Summary struct {
	RunID       string
	Seed        uint64
	Files       int
	Groups      int
	Bytes       int64
	Destination string
}

// Runner executes redistribution runs for one configuration.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
	opts   Options
}

// New constructs a runner. The logger may be nil.
func New(cfg *config.Config, logger *slog.Logger, opts Options) *Runner {
	return &Runner{cfg: cfg, logger: logging.Default(logger), opts: opts}
}

// Plan performs the read-only half of a run: validate the source, collect
// candidates, shuffle them with the run seed, and plan the groups. The
// destination is not touched.
func (r *Runner) Plan(ctx context.Context) (plan.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := preflight.CheckSource(r.cfg.Paths.Source); err != nil {
		return nil, err
	}

	files, err := scan.Collect(r.cfg.Paths.Source)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCandidates, r.cfg.Paths.Source)
	}

	shuffle.Files(files, r.opts.Seed)

	groups, err := plan.Plan(files, r.cfg.Limits.MaxFiles, r.cfg.Limits.MaxBytes)
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// Run executes a full redistribution and returns its summary. The
// destination is guarded by a sibling lock file for the duration of the
// run so two runs cannot interleave output.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	runID := uuid.NewString()
	logger := r.logger.With(logging.String("run_id", runID))

	unlock, err := r.acquireLock()
	if err != nil {
		return Summary{}, err
	}
	defer unlock()

	logger.Info("starting run",
		logging.String("source", r.cfg.Paths.Source),
		logging.String("destination", r.cfg.Paths.Destination),
		logging.Uint64("seed", r.opts.Seed),
		logging.Int("max_files", r.cfg.Limits.MaxFiles),
		logging.Int64("max_bytes", r.cfg.Limits.MaxBytes),
	)

	if err := preflight.CheckDestination(r.cfg.Paths.Destination); err != nil {
		return Summary{}, err
	}

	groups, err := r.Plan(ctx)
	if err != nil {
		return Summary{}, err
	}
	totalBytes := groups.TotalBytes()
	logger.Info("planned groups",
		logging.Int("groups", len(groups)),
		logging.Int("files", groups.TotalFiles()),
		logging.Int64("bytes", totalBytes),
	)

	if err := preflight.CheckFreeSpace(r.cfg.Paths.Destination, totalBytes); err != nil {
		return Summary{}, err
	}

	executor := copier.New(logger, r.opts.ShowProgress)
	if err := executor.Run(ctx, groups, r.cfg.Paths.Destination); err != nil {
		return Summary{}, err
	}

	summary := Summary{
		RunID:       runID,
		Seed:        r.opts.Seed,
		Files:       groups.TotalFiles(),
		Groups:      len(groups),
		Bytes:       totalBytes,
		Destination: r.cfg.Paths.Destination,
	}
	logger.Info("run complete",
		logging.Int("files", summary.Files),
		logging.Int("groups", summary.Groups),
		logging.Int64("bytes", summary.Bytes),
	)
	return summary, nil
}

// acquireLock takes a non-blocking flock on a sibling of the destination
// directory. The lock lives outside the destination because the
// destination itself must stay empty until copying starts.
func (r *Runner) acquireLock() (func(), error) {
	lockPath := filepath.Clean(r.cfg.Paths.Destination) + ".lock"
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create destination parent for lock %s: %w", lockPath, err)
	}

	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", lockPath, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock: %s)", ErrRunInProgress, lockPath)
	}
	return func() { _ = lock.Unlock() }, nil
}
