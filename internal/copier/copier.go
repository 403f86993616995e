package copier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/schollz/progressbar/v3"

	"frameshuffle/internal/logging"
	"frameshuffle/internal/plan"
)

// ErrDestinationExists marks a collision with a pre-existing file at a
// computed destination path. The empty-destination preflight should make
// this impossible; it is still checked before every copy.
var ErrDestinationExists = errors.New("destination file already exists")

// Executor copies planned groups into numbered folders under a destination
// root.
type Executor struct {
	logger       *slog.Logger
	showProgress bool
}

// New constructs an executor. With showProgress set, a byte-level progress
// bar is rendered on stderr while copying.
func New(logger *slog.Logger, showProgress bool) *Executor {
	return &Executor{logger: logging.Default(logger), showProgress: showProgress}
}

// Run copies every group into dstRoot: group i lands in folder
// strconv.Itoa(i+1), each file under its original name. The first error
// stops the run immediately; nothing already copied is cleaned up.
func (e *Executor) Run(ctx context.Context, groups plan.Result, dstRoot string) error {
	var bar *progressbar.ProgressBar
	if e.showProgress {
		bar = progressbar.NewOptions64(
			groups.TotalBytes(),
			progressbar.OptionSetDescription("copying"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
	}

	for i, group := range groups {
		folder := filepath.Join(dstRoot, strconv.Itoa(i+1))
		if err := os.MkdirAll(folder, 0o755); err != nil {
			return fmt.Errorf("cannot create folder %s: %w", folder, err)
		}
		e.logger.Debug("copying group",
			logging.String("folder", folder),
			logging.Int("files", group.Count()),
			logging.Int64("bytes", group.Bytes),
		)

		for _, f := range group.Files {
			if err := ctx.Err(); err != nil {
				return err
			}
			dest := filepath.Join(folder, f.Name)
			if _, err := os.Lstat(dest); err == nil {
				return fmt.Errorf("%w: %s", ErrDestinationExists, dest)
			} else if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("inspect destination %s: %w", dest, err)
			}
			if err := copyFileVerified(f.Path, dest); err != nil {
				return fmt.Errorf("failed to copy %s -> %s: %w", f.Path, dest, err)
			}
			if bar != nil {
				_ = bar.Add64(f.Size)
			}
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}
	return nil
}
